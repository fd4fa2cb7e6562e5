package scene

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func writeTestPNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestNewDefaultScene_Layout(t *testing.T) {
	logger := &recordingLogger{}
	s := NewDefaultScene("", logger)

	if len(s.Shapes) != 10 {
		t.Errorf("Expected 10 blocks, got %d", len(s.Shapes))
	}
	if len(s.Lights) != 2 {
		t.Fatalf("Expected sun and moon, got %d lights", len(s.Lights))
	}
	if s.Lights[0].Intensity != 2.0 || s.Lights[1].Intensity != 0.5 {
		t.Errorf("Unexpected light intensities %f, %f", s.Lights[0].Intensity, s.Lights[1].Intensity)
	}
	if s.Cycle == nil {
		t.Error("Expected a day cycle")
	}
	if s.CameraConfig.Eye != core.NewVec3(0, 0, 100) {
		t.Errorf("Unexpected camera eye %v", s.CameraConfig.Eye)
	}

	// The trunk is four blocks tall
	trunk, ok := s.Shapes[9].(*geometry.Cube)
	if !ok {
		t.Fatalf("Expected *geometry.Cube, got %T", s.Shapes[9])
	}
	if math.Abs(trunk.HalfExtents.Y-4*blockSize) > 1e-12 {
		t.Errorf("Expected trunk half height %f, got %f", 4*blockSize, trunk.HalfExtents.Y)
	}
}

func TestNewDefaultScene_MissingTexturesFallBack(t *testing.T) {
	logger := &recordingLogger{}
	s := NewDefaultScene(t.TempDir(), logger)

	// One warning per texture file
	if len(logger.lines) != 4 {
		t.Errorf("Expected 4 texture warnings, got %d", len(logger.lines))
	}

	grass := s.Shapes[2].(*geometry.Cube).Material
	if grass.Textures[geometry.FacePosY] != nil {
		t.Error("Expected no texture when the file is missing")
	}
	c, _ := grass.Surface(geometry.FacePosY, core.NewVec2(0.5, 0.5), core.NewVec3(0, 1, 0))
	if c != core.NewColor(96, 160, 54) {
		t.Errorf("Expected diffuse fallback color, got %v", c)
	}
}

func TestNewDefaultScene_LoadsTextures(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "grass_top.png"), color.RGBA{R: 0, G: 255, B: 0, A: 255})
	writeTestPNG(t, filepath.Join(dir, "water.png"), color.RGBA{R: 0, G: 0, B: 255, A: 255})
	writeTestPNG(t, filepath.Join(dir, "wood.png"), color.RGBA{R: 128, G: 64, B: 0, A: 255})
	writeTestPNG(t, filepath.Join(dir, "furnace_front.png"), color.RGBA{R: 50, G: 50, B: 50, A: 255})

	logger := &recordingLogger{}
	s := NewDefaultScene(dir, logger)
	if len(logger.lines) != 0 {
		t.Errorf("Expected no warnings, got %v", logger.lines)
	}

	furnace := s.Shapes[8].(*geometry.Cube).Material
	front, _ := furnace.Surface(geometry.FaceNegX, core.NewVec2(0.5, 0.5), core.NewVec3(-1, 0, 0))
	side, _ := furnace.Surface(geometry.FacePosX, core.NewVec2(0.5, 0.5), core.NewVec3(1, 0, 0))
	if front != core.NewColor(50, 50, 50) {
		t.Errorf("Expected furnace front texture, got %v", front)
	}
	if side != core.NewColor(128, 64, 0) {
		t.Errorf("Expected wood on the furnace sides, got %v", side)
	}
}

func TestBuiltInScenes_Render(t *testing.T) {
	scenes := []*Scene{
		NewDefaultScene("", &recordingLogger{}),
		NewGlassScene(),
		NewMirrorScene(),
	}

	for _, s := range scenes {
		t.Run(s.Name, func(t *testing.T) {
			camera := s.NewCamera()
			fb := renderer.NewFramebuffer(16, 12)
			renderer.RenderWithConfig(fb, renderer.NewRaytracer(s, camera.Eye), camera, s.RenderConfig)

			sky := renderer.PackColor(renderer.SkyboxColor)
			nonSky := 0
			for _, c := range fb.Buffer {
				if c != sky {
					nonSky++
				}
			}
			if nonSky == 0 {
				t.Error("Expected some geometry in view")
			}
		})
	}
}

func TestScene_AddCubeRejectsInvalid(t *testing.T) {
	s := NewScene("test", renderer.CameraConfig{})
	mat := material.NewMaterial(core.NewVec3(1, 1, 1), 0, [4]float64{1, 0, 0, 0}, 0)

	err := s.AddCube(core.Vec3{}, core.NewVec3(1, 0, 1), mat)
	if err == nil {
		t.Fatal("Expected error for zero half-extent")
	}
	if !strings.Contains(err.Error(), "test") {
		t.Errorf("Expected scene name in error, got %v", err)
	}
	if len(s.Shapes) != 0 {
		t.Errorf("Invalid cube was added")
	}
}

func TestScene_NewAnimatorOverridesSize(t *testing.T) {
	s := NewGlassScene()
	animator := s.NewAnimator(32, 0, &recordingLogger{})

	fb := animator.Framebuffer()
	if fb.Width != 32 || fb.Height != s.RenderConfig.Height {
		t.Errorf("Expected 32x%d, got %dx%d", s.RenderConfig.Height, fb.Width, fb.Height)
	}
}
