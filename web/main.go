package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-cube-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	textures := flag.String("textures", "textures", "Directory containing block textures")
	scenes := flag.String("scenes", "scenes", "Directory containing .json scene files")
	static := flag.String("static", "static", "Directory with the browser client")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(server.Options{
		Port:       *port,
		TextureDir: *textures,
		SceneDir:   *scenes,
		StaticDir:  *static,
	})

	log.Printf("Cube Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
