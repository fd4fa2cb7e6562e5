package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/df07/go-cube-raytracer/pkg/lights"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
	"github.com/df07/go-cube-raytracer/pkg/scene"
)

// rotationSpeed is the camera orbit step per tick while a key is held
const rotationSpeed = math.Pi / 10

// Game renders one frame per tick and shows it in the window
type Game struct {
	animator  *renderer.Animator
	width     int
	height    int
	frame     *image.RGBA
	timeOfDay lights.TimeOfDay
	stats     renderer.FrameStats
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	camera := g.animator.Camera()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		camera.Orbit(rotationSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		camera.Orbit(-rotationSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		camera.Orbit(0, -rotationSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		camera.Orbit(0, rotationSpeed)
	}

	result := g.animator.RenderFrame()
	g.frame = result.Image
	g.timeOfDay = result.TimeOfDay
	g.stats = result.Stats
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	screen.WritePixels(g.frame.Pix)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %v", g.timeOfDay, g.stats.RenderTime.Round(1e6)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	sceneType := flag.String("scene", "default", "Scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Framebuffer width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Framebuffer height in pixels (0 = scene default)")
	scale := flag.Int("scale", 2, "Window pixels per framebuffer pixel")
	textures := flag.String("textures", "textures", "Directory containing block textures")
	flag.Parse()

	logger := renderer.NewDefaultLogger()
	selectedScene, err := scene.Create(*sceneType, *textures, logger)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	animator := selectedScene.NewAnimator(*width, *height, logger)
	fb := animator.Framebuffer()
	game := &Game{
		animator: animator,
		width:    fb.Width,
		height:   fb.Height,
	}

	if *scale < 1 {
		*scale = 1
	}
	ebiten.SetWindowSize(fb.Width**scale, fb.Height**scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Cube Raytracer - %s", selectedScene.Name))
	ebiten.SetTPS(10)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
