package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/lights"
	"github.com/df07/go-cube-raytracer/pkg/loaders"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Shapes       []geometry.Shape // Objects in the scene
	Lights       []lights.Light   // Point lights; the first two follow the day cycle when one is set
	CameraConfig renderer.CameraConfig
	RenderConfig renderer.RenderConfig
	Cycle        *lights.DayCycle // Optional day/night cycle
}

// NewScene creates an empty scene with default render settings
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		CameraConfig: cameraConfig,
		RenderConfig: renderer.DefaultRenderConfig(),
	}
}

// GetShapes returns all shapes in the scene
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetLights returns the scene's lights. The slice is shared, so the day cycle
// can move the lights in place.
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// AddCube validates and adds an axis-aligned box
func (s *Scene) AddCube(center, halfExtents core.Vec3, mat *material.Material) error {
	cube, err := geometry.NewCube(center, halfExtents, mat)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Shapes = append(s.Shapes, cube)
	return nil
}

// AddLight adds a point light
func (s *Scene) AddLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewLight(position, color, intensity))
}

// NewCamera creates a camera from the scene's camera configuration
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCameraFromConfig(s.CameraConfig)
}

// NewAnimator creates an animator for the scene at the given size. Zero
// width or height keeps the scene's own setting.
func (s *Scene) NewAnimator(width, height int, logger core.Logger) *renderer.Animator {
	config := s.RenderConfig
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	return renderer.NewAnimator(s, s.NewCamera(), s.Cycle, config, logger)
}

// loadTextureOrNil loads an image from dir, logging and returning nil on failure
// so the material falls back to its diffuse color
func loadTextureOrNil(dir, name string, logger core.Logger) *material.ImageTexture {
	if dir == "" || name == "" {
		return nil
	}

	texture, err := loaders.LoadTexture(filepath.Join(dir, name))
	if err != nil {
		if logger != nil {
			logger.Printf("Warning: using diffuse color instead of texture %s: %v\n", name, err)
		}
		return nil
	}
	return texture
}
