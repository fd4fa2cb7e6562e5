package material

import (
	"image/color"
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

func TestCheckerboardTexture(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewCheckerboardTexture(4, 4, 2, white, black)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"First check", 0.1, 0.1, white},
		{"Next check along u", 0.6, 0.1, black},
		{"Next check along v", 0.1, 0.6, black},
		{"Diagonal check", 0.6, 0.6, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Color(tt.u, tt.v); got != tt.expected {
				t.Errorf("Color(%f, %f): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}

func TestGradientTexture(t *testing.T) {
	texture := NewGradientTexture(1, 3, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))

	if got := texture.Sample(0.5, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Top row: expected red, got %v", got)
	}
	if got := texture.Sample(0.5, 0.5); got != (color.RGBA{R: 128, B: 128, A: 255}) {
		t.Errorf("Middle row: expected half blend, got %v", got)
	}
	if got := texture.Sample(0.5, 0.99); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Bottom row: expected blue, got %v", got)
	}
}

func TestGradientTexture_SingleRow(t *testing.T) {
	// A single row must not divide by zero
	texture := NewGradientTexture(2, 1, core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	if got := texture.Sample(0, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("Expected the first color, got %v", got)
	}
}

func TestFlatNormalMap(t *testing.T) {
	normalMap := NewFlatNormalMap(2, 2)
	expected := color.RGBA{R: 128, G: 128, B: 255, A: 255}
	for i, texel := range normalMap.Pixels {
		if texel != expected {
			t.Errorf("Texel %d: expected %v, got %v", i, expected, texel)
		}
	}
}

func TestToRGBA_Clamps(t *testing.T) {
	got := toRGBA(core.NewVec3(-1, 0.5, 2))
	expected := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
