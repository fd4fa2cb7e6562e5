package scene

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// NewGlassScene creates a refractive cube over a checkerboard floor, in front
// of a bump-mapped tile wall
func NewGlassScene() *Scene {
	s := NewScene("glass", renderer.CameraConfig{
		Eye:    core.NewVec3(0, 4, 12),
		Center: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
	})

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.2), // Charcoal
	)
	floor := material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), 10, [4]float64{0.9, 0.1, 0, 0}, 0).WithTexture(checkerboard)

	glass := material.NewMaterial(core.NewVec3(0.6, 0.7, 0.8), 125, [4]float64{0, 0.5, 0.1, 0.8}, 1.5)

	tiles := material.NewMaterial(core.NewVec3(0.8, 0.35, 0.25), 50, [4]float64{0.9, 0.2, 0, 0}, 0)
	tiles.NormalMap = material.NewTileNormalMap(256, 256, 32, 0.15)

	sunset := material.NewGradientTexture(256, 256,
		core.NewVec3(0.95, 0.6, 0.3), // Orange (top)
		core.NewVec3(0.3, 0.2, 0.5),  // Purple (bottom)
	)
	backdrop := material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 10, [4]float64{1, 0, 0, 0}, 0).WithTexture(sunset)

	s.Shapes = append(s.Shapes,
		geometry.MustCube(core.NewVec3(0, -1, 0), core.NewVec3(8, 1, 8), floor),
		geometry.MustCube(core.NewVec3(0, 1.25, 1), core.NewVec3(1.25, 1.25, 1.25), glass),
		geometry.MustCube(core.NewVec3(-3, 1, -3), core.NewVec3(1, 1, 1), tiles),
		geometry.MustCube(core.NewVec3(0, 4, -8), core.NewVec3(8, 4, 0.5), backdrop),
	)

	s.AddLight(core.NewVec3(6, 12, 8), core.NewVec3(1, 1, 1), 1.2)
	s.AddLight(core.NewVec3(-8, 6, 10), core.NewVec3(0.9, 0.9, 1), 0.4)

	return s
}
