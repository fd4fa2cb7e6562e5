package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-cube-raytracer/pkg/renderer"
	"github.com/df07/go-cube-raytracer/pkg/scene"
)

// cliConfig holds the parsed command line options
type cliConfig struct {
	Scene      string
	Width      int
	Height     int
	Frames     int
	TextureDir string
	OutputDir  string
	Orbit      float64 // camera yaw per frame, in radians
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene name ('default', 'glass', 'mirror') or path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	frames := flag.Int("frames", 1, "Number of frames to render; the day/night cycle advances every frame")
	textures := flag.String("textures", "textures", "Directory containing block textures")
	output := flag.String("output", "output", "Directory for rendered frames")
	orbit := flag.Float64("orbit", 0, "Camera yaw per frame in radians")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Cube Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.List() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/frame_<timestamp>_<n>.png")
		return
	}

	cfg := cliConfig{
		Scene:      *sceneType,
		Width:      *width,
		Height:     *height,
		Frames:     *frames,
		TextureDir: *textures,
		OutputDir:  *output,
		Orbit:      *orbit,
	}

	fmt.Println("Starting Cube Raytracer...")
	files, err := run(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("Frame saved as %s\n", file)
	}
}

// createScene resolves a scene name into a scene, logging to stdout
func createScene(sceneType, textureDir string) (*scene.Scene, error) {
	return scene.Create(sceneType, textureDir, renderer.NewDefaultLogger())
}

// run renders the requested frames and returns the written file names
func run(ctx context.Context, cfg cliConfig) ([]string, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("image size must not be negative, got %dx%d", cfg.Width, cfg.Height)
	}

	selectedScene, err := createScene(cfg.Scene, cfg.TextureDir)
	if err != nil {
		return nil, err
	}

	// Create output directory for this scene
	outputDir := filepath.Join(cfg.OutputDir, selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	animator := selectedScene.NewAnimator(cfg.Width, cfg.Height, renderer.NewDefaultLogger())
	if cfg.Orbit != 0 {
		animator.CameraStep = func(camera *renderer.Camera) {
			camera.Orbit(cfg.Orbit, 0)
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	var files []string

	err = animator.Run(ctx, cfg.Frames, func(result renderer.FrameResult) error {
		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%s_%03d.png", timestamp, result.Frame))
		if err := savePNG(filename, result.Image); err != nil {
			return err
		}
		files = append(files, filename)
		return nil
	})
	if err != nil {
		return files, err
	}

	return files, nil
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
