package material

import (
	"image/color"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// ImageTexture is a decoded RGBA image sampled with nearest-neighbor lookup
type ImageTexture struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []color.RGBA) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample returns the texel nearest to (u, v). UV is expected in [0, 1); the
// texel index is clamped to the image bounds regardless.
func (t *ImageTexture) Sample(u, v float64) color.RGBA {
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}

// Color samples the texture and converts the texel to a [0, 1] color
func (t *ImageTexture) Color(u, v float64) core.Vec3 {
	c := t.Sample(u, v)
	return core.NewColor(c.R, c.G, c.B)
}

// toRGBA converts a [0, 1] color to an opaque 8-bit texel
func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}
