package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadTexture creates a test PNG and verifies loading
func TestLoadTexture(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // Top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // Top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // Bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // Bottom-right: blue

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	texture, err := LoadTexture(testFile)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 texture, got %dx%d", texture.Width, texture.Height)
	}
	if len(texture.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(texture.Pixels))
	}

	expected := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
	for i, want := range expected {
		if texture.Pixels[i] != want {
			t.Errorf("Pixel %d: expected %v, got %v", i, want, texture.Pixels[i])
		}
	}

	// Row 0 is the top of the image
	if got := texture.Sample(0.75, 0.25); got != expected[1] {
		t.Errorf("Sample top-right: expected %v, got %v", expected[1], got)
	}
}

func TestDecodeTexture_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("Failed to encode JPEG: %v", err)
	}

	texture, err := DecodeTexture(&buf)
	if err != nil {
		t.Fatalf("DecodeTexture failed: %v", err)
	}

	c := texture.Sample(0.5, 0.5)
	if absDiff(c.R, 200) > 4 || absDiff(c.G, 100) > 4 || absDiff(c.B, 50) > 4 {
		t.Errorf("Expected approximately (200,100,50), got %v", c)
	}
}

// TestLoadTextureNotFound verifies error handling for missing files
func TestLoadTextureNotFound(t *testing.T) {
	_, err := LoadTexture("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestDecodeTexture_Garbage(t *testing.T) {
	_, err := DecodeTexture(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
