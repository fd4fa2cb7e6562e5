package renderer

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// RenderConfig contains image settings for a scene
type RenderConfig struct {
	Width  int     `json:"width"`  // Image width in pixels
	Height int     `json:"height"` // Image height in pixels
	FOV    float64 `json:"fov"`    // Vertical field of view in radians

	// Background replaces the sky color for escaped rays when set
	Background *core.Vec3 `json:"-"`
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:  400,
		Height: 300,
		FOV:    math.Pi / 3,
	}
}

// Render fills the framebuffer with the default field of view
func Render(fb *Framebuffer, rt *Raytracer, camera *Camera) {
	RenderWithConfig(fb, rt, camera, DefaultRenderConfig())
}

// RenderWithConfig traces one primary ray per pixel, row by row. Only the
// field of view is read from config; the image size comes from the framebuffer.
func RenderWithConfig(fb *Framebuffer, rt *Raytracer, camera *Camera, config RenderConfig) {
	if fb.Width == 0 || fb.Height == 0 {
		return
	}

	fov := config.FOV
	if fov <= 0 {
		fov = DefaultRenderConfig().FOV
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			ray := PrimaryRay(camera, x, y, fb.Width, fb.Height, fov)
			fb.SetPixel(x, y, PackColor(rt.CastRay(ray, 0)))
		}
	}
}

// PrimaryRay returns the camera ray through the top-left corner of pixel (x, y)
func PrimaryRay(camera *Camera, x, y, width, height int, fov float64) core.Ray {
	w := float64(width)
	h := float64(height)
	scale := math.Tan(fov / 2)

	screenX := (2*float64(x)/w - 1) * (w / h) * scale
	screenY := (1 - 2*float64(y)/h) * scale

	direction := camera.BaseChange(core.NewVec3(screenX, screenY, -1).Normalize())
	return core.NewRay(camera.Eye, direction)
}
