package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/lights"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// RGB is an 8-bit color written as [r, g, b]
type RGB [3]int

// Vec3 converts the color to [0,1] channels
func (c RGB) Vec3() (core.Vec3, error) {
	for _, v := range c {
		if v < 0 || v > 255 {
			return core.Vec3{}, fmt.Errorf("color channel %d out of range 0-255", v)
		}
	}
	return core.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2])), nil
}

type MaterialCfg struct {
	Color           RGB               `json:"color"`
	Specular        float64           `json:"specular"`
	Albedo          [4]float64        `json:"albedo"`
	RefractiveIndex float64           `json:"ior,omitempty"`
	Texture         string            `json:"texture,omitempty"`      // applied to every face
	FaceTextures    map[string]string `json:"faceTextures,omitempty"` // keyed by face label, e.g. "-x"
	NormalMap       string            `json:"normalMap,omitempty"`
}

type CubeCfg struct {
	Center      core.Vec3 `json:"center"`
	HalfExtents core.Vec3 `json:"halfExtents"`
	Material    string    `json:"material"`
}

type LightCfg struct {
	Position  core.Vec3 `json:"position"`
	Color     RGB       `json:"color"`
	Intensity float64   `json:"intensity"`
}

// Config is the JSON scene file format
type Config struct {
	Name      string                 `json:"name"`
	Render    renderer.RenderConfig  `json:"render"`
	Camera    renderer.CameraConfig  `json:"camera"`
	Sky       *RGB                   `json:"background,omitempty"` // sky color for escaped rays
	DayCycle  bool                   `json:"dayCycle,omitempty"`   // orbit the first two lights
	Materials map[string]MaterialCfg `json:"materials"`
	Cubes     []CubeCfg              `json:"cubes"`
	Lights    []LightCfg             `json:"lights"`
}

// LoadJSONScene reads a scene file. Texture paths are relative to the file.
func LoadJSONScene(path string, logger core.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := cfg.Build(filepath.Dir(path), logger)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// Build validates the configuration and constructs the scene
func (cfg Config) Build(textureDir string, logger core.Logger) (*Scene, error) {
	if cfg.Camera.Eye == cfg.Camera.Center {
		return nil, fmt.Errorf("camera eye and center must differ")
	}

	s := NewScene(cfg.Name, cfg.Camera)

	// Defaults / validation
	defaults := renderer.DefaultRenderConfig()
	s.RenderConfig = cfg.Render
	if s.RenderConfig.Width <= 0 {
		s.RenderConfig.Width = defaults.Width
	}
	if s.RenderConfig.Height <= 0 {
		s.RenderConfig.Height = defaults.Height
	}
	if s.RenderConfig.FOV <= 0 {
		s.RenderConfig.FOV = defaults.FOV
	}
	if cfg.Sky != nil {
		sky, err := cfg.Sky.Vec3()
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.RenderConfig.Background = &sky
	}

	materials := make(map[string]*material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		mat, err := mc.Build(textureDir, logger)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, cc := range cfg.Cubes {
		mat, ok := materials[cc.Material]
		if !ok {
			return nil, fmt.Errorf("cube %d: unknown material %q", i, cc.Material)
		}
		if err := s.AddCube(cc.Center, cc.HalfExtents, mat); err != nil {
			return nil, fmt.Errorf("cube %d: %w", i, err)
		}
	}

	for i, lc := range cfg.Lights {
		color, err := lc.Color.Vec3()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(lc.Position, color, lc.Intensity)
	}

	if cfg.DayCycle {
		s.Cycle = lights.DefaultDayCycle()
	}

	return s, nil
}

// Build constructs a material. Textures that fail to load are logged and skipped.
func (mc MaterialCfg) Build(textureDir string, logger core.Logger) (*material.Material, error) {
	diffuse, err := mc.Color.Vec3()
	if err != nil {
		return nil, err
	}
	if mc.Specular < 0 {
		return nil, fmt.Errorf("specular exponent must be >= 0, got %f", mc.Specular)
	}

	mat := material.NewMaterial(diffuse, mc.Specular, mc.Albedo, mc.RefractiveIndex)
	if mc.Texture != "" {
		mat.WithTexture(loadTextureOrNil(textureDir, mc.Texture, logger))
	}

	for label, file := range mc.FaceTextures {
		face, ok := faceByName(label)
		if !ok {
			return nil, fmt.Errorf("unknown face %q", label)
		}
		mat.Textures[face] = loadTextureOrNil(textureDir, file, logger)
	}

	if mc.NormalMap != "" {
		mat.NormalMap = loadTextureOrNil(textureDir, mc.NormalMap, logger)
	}

	return mat, nil
}

func faceByName(label string) (int, bool) {
	for face := 0; face < material.FaceCount; face++ {
		if geometry.FaceName(face) == label {
			return face, true
		}
	}
	return 0, false
}
