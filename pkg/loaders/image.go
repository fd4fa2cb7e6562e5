package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-cube-raytracer/pkg/material"
)

// LoadTexture loads a PNG, JPEG or WebP image as a texture
func LoadTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	texture, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}

// DecodeTexture decodes an image stream (format detected from its header) into a texture
func DecodeTexture(r io.Reader) (*material.ImageTexture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	pixels := make([]color.RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pixels[y*width+x] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}
