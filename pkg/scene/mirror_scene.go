package scene

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// NewMirrorScene creates two facing mirrors with a colored block between them.
// The reflections repeat until the recursion limit returns the sky.
func NewMirrorScene() *Scene {
	s := NewScene("mirror", renderer.CameraConfig{
		Eye:    core.NewVec3(2, 4, 14),
		Center: core.NewVec3(0, 1.5, 0),
		Up:     core.NewVec3(0, 1, 0),
	})

	checkerboard := material.NewCheckerboardTexture(128, 128, 16,
		core.NewVec3(0.85, 0.85, 0.8),
		core.NewVec3(0.45, 0.4, 0.35),
	)
	floor := material.NewMaterial(core.NewVec3(0.7, 0.7, 0.7), 10, [4]float64{0.9, 0.1, 0.1, 0}, 0).WithTexture(checkerboard)
	mirror := material.NewMaterial(core.NewVec3(1, 1, 1), 1425, [4]float64{0, 10, 0.8, 0}, 0)
	block := material.NewMaterial(core.NewVec3(0.2, 0.7, 0.3), 50, [4]float64{0.9, 0.3, 0, 0}, 0)
	accent := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.6), 50, [4]float64{0.9, 0.3, 0, 0}, 0)

	s.Shapes = append(s.Shapes,
		geometry.MustCube(core.NewVec3(0, -0.5, 0), core.NewVec3(10, 0.5, 10), floor),
		geometry.MustCube(core.NewVec3(-5, 3, 0), core.NewVec3(0.25, 3, 6), mirror),
		geometry.MustCube(core.NewVec3(5, 3, 0), core.NewVec3(0.25, 3, 6), mirror),
		geometry.MustCube(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), block),
		geometry.MustCube(core.NewVec3(1.5, 0.5, 3), core.NewVec3(0.5, 0.5, 0.5), accent),
	)

	s.AddLight(core.NewVec3(0, 15, 10), core.NewVec3(1, 1, 1), 1.0)

	return s
}
