package scene

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/lights"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// blockSize is the edge length unit of the diorama
const blockSize = 2.75

// NewDefaultScene creates the block diorama: a river and lake, grass floors,
// a crafting table, a furnace and a tree trunk under an orbiting sun and moon.
// Textures are read from textureDir; missing ones fall back to diffuse colors.
func NewDefaultScene(textureDir string, logger core.Logger) *Scene {
	s := NewScene("default", renderer.CameraConfig{
		Eye:    core.NewVec3(0, 0, 100),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
	})
	s.Cycle = lights.DefaultDayCycle()

	grassTexture := loadTextureOrNil(textureDir, "grass_top.png", logger)
	waterTexture := loadTextureOrNil(textureDir, "water.png", logger)
	woodTexture := loadTextureOrNil(textureDir, "wood.png", logger)
	furnaceFront := loadTextureOrNil(textureDir, "furnace_front.png", logger)

	grass := material.NewMaterial(core.NewColor(96, 160, 54), 50, [4]float64{1, 0, 0, 0}, 0).WithTexture(grassTexture)
	water := material.NewMaterial(core.NewColor(10, 40, 225), 50, [4]float64{1, 0.1, 0, 0}, 0).WithTexture(waterTexture)
	wood := material.NewMaterial(core.NewColor(10, 40, 225), 50, [4]float64{0.1, 0.1, 0, 0}, 0).WithTexture(woodTexture)
	furnace := material.NewMaterial(core.NewColor(10, 40, 225), 50, [4]float64{0.1, 0.1, 0, 0}, 0).WithTexture(woodTexture)
	furnace.Textures[geometry.FaceNegX] = furnaceFront

	b := blockSize
	blocks := []struct {
		center      core.Vec3
		halfExtents core.Vec3
		mat         *material.Material
	}{
		// River and lake sit slightly below the grass
		{core.NewVec3(0, -0.6, -8*b), core.NewVec3(2*b, b-0.6, 3*b), water},
		{core.NewVec3(b, -0.6, b), core.NewVec3(7*b, b-0.6, 6*b), water},

		// Grass floors around the water
		{core.NewVec3(-6*b, 0, -8*b), core.NewVec3(4*b, b, 3*b), grass},
		{core.NewVec3(-8*b, 0, b), core.NewVec3(2*b, b, 6*b), grass},
		{core.NewVec3(0, 0, 8*b), core.NewVec3(10*b, b, b), grass},
		{core.NewVec3(9*b, 0, b), core.NewVec3(b, b, 6*b), grass},
		{core.NewVec3(6*b, 0, -8*b), core.NewVec3(4*b, b, 3*b), grass},

		// Crafting table, furnace and tree trunk
		{core.NewVec3(-9*b, 2*b, 6*b), core.NewVec3(b, b, b), wood},
		{core.NewVec3(-9*b, 2*b, 4*b), core.NewVec3(b, b, b), furnace},
		{core.NewVec3(-7*b, 4*b, -8*b), core.NewVec3(b, 4*b, b), wood},
	}
	for _, block := range blocks {
		s.Shapes = append(s.Shapes, geometry.MustCube(block.center, block.halfExtents, block.mat))
	}

	s.AddLight(core.NewVec3(0, 40, 0), core.NewColor(255, 255, 224), 2.0)  // Sun
	s.AddLight(core.NewVec3(0, -40, 0), core.NewColor(173, 216, 230), 0.5) // Moon

	return s
}
