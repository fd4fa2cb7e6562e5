package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// Framebuffer stores packed 0xRRGGBB pixels in row-major order
type Framebuffer struct {
	Width  int
	Height int
	Buffer []uint32
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Buffer: make([]uint32, width*height),
	}
}

// SetPixel writes a packed color, ignoring coordinates outside the buffer
func (fb *Framebuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Buffer[y*fb.Width+x] = c
}

// Pixel returns the packed color at (x, y), or 0 outside the buffer
func (fb *Framebuffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0
	}
	return fb.Buffer[y*fb.Width+x]
}

// ToImage converts the buffer to an opaque RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, unpackColor(fb.Pixel(x, y)))
		}
	}
	return img
}

// PackColor converts a linear color to 0xRRGGBB, clamping each channel to [0,1]
func PackColor(c core.Vec3) uint32 {
	r := channelByte(c.X)
	g := channelByte(c.Y)
	b := channelByte(c.Z)
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func channelByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(1, v))*255 + 0.5)
}

func unpackColor(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}
