package material

import (
	"image/color"
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]color.RGBA, width*height)
	c1, c2 := toRGBA(color1), toRGBA(color2)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = c1
			} else {
				pixels[y*width+x] = c2
			}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		c := toRGBA(color1.Multiply(1.0 - t).Add(color2.Multiply(t)))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = c
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewFlatNormalMap creates a normal map that leaves the geometric normal unchanged
func NewFlatNormalMap(width, height int) *ImageTexture {
	pixels := make([]color.RGBA, width*height)
	for i := range pixels {
		pixels[i] = encodeNormal(core.NewVec3(0, 0, 1))
	}
	return NewImageTexture(width, height, pixels)
}

// NewTileNormalMap creates a tangent-space normal map of square tiles with
// bevelled edges. bevel is the fraction of a tile covered by each edge slope.
func NewTileNormalMap(width, height, tileSize int, bevel float64) *ImageTexture {
	pixels := make([]color.RGBA, width*height)
	edge := bevel * float64(tileSize)
	tilt := math.Sin(math.Pi / 6)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := float64(x % tileSize)
			fy := float64(y % tileSize)

			n := core.NewVec3(0, 0, 1)
			switch {
			case fx < edge:
				n = core.NewVec3(-tilt, 0, 1)
			case fx >= float64(tileSize)-edge:
				n = core.NewVec3(tilt, 0, 1)
			case fy < edge:
				n = core.NewVec3(0, tilt, 1)
			case fy >= float64(tileSize)-edge:
				n = core.NewVec3(0, -tilt, 1)
			}
			pixels[y*width+x] = encodeNormal(n.Normalize())
		}
	}

	return NewImageTexture(width, height, pixels)
}

// encodeNormal maps a unit vector from [-1, 1] to the [0, 255] texel range
func encodeNormal(n core.Vec3) color.RGBA {
	return toRGBA(n.Add(core.NewVec3(1, 1, 1)).Multiply(0.5))
}
