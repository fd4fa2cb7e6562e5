package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
	"github.com/df07/go-cube-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit      bool          `json:"hit"`
	Face     string        `json:"face,omitempty"`
	UV       [2]float64    `json:"uv"`
	Point    [3]float64    `json:"point"`
	Normal   [3]float64    `json:"normal"`
	Distance float64       `json:"distance"`
	Material *MaterialInfo `json:"material,omitempty"`
}

// MaterialInfo describes the material of an inspected face
type MaterialInfo struct {
	Type            string     `json:"type"` // "diffuse", "reflective" or "refractive"
	Color           string     `json:"color"`
	Specular        float64    `json:"specular"`
	Albedo          [4]float64 `json:"albedo"`
	RefractiveIndex float64    `json:"refractiveIndex"`
	Textured        bool       `json:"textured"`
	NormalMapped    bool       `json:"normalMapped"`
}

// extractMaterialInfo summarizes a material for the face that was hit
func extractMaterialInfo(mat *material.Material, face int) *MaterialInfo {
	info := &MaterialInfo{
		Type:            "diffuse",
		Color:           hexColor(mat.Diffuse),
		Specular:        mat.Specular,
		Albedo:          mat.Albedo,
		RefractiveIndex: mat.RefractiveIndex,
		NormalMapped:    mat.NormalMap != nil,
	}

	switch {
	case mat.IsTransparent():
		info.Type = "refractive"
	case mat.Albedo[material.AlbedoReflective] > 0:
		info.Type = "reflective"
	}

	if face >= 0 && face < material.FaceCount {
		info.Textured = mat.Textures[face] != nil
	}
	return info
}

// hexColor formats a linear color as #rrggbb
func hexColor(c core.Vec3) string {
	packed := renderer.PackColor(c)
	return fmt.Sprintf("#%06x", packed&0xffffff)
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// inspectPixel casts the primary ray through a pixel and returns the nearest hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) geometry.Intersect {
	camera := sceneObj.NewCamera()
	ray := renderer.PrimaryRay(camera, pixelX, pixelY, width, height, sceneObj.RenderConfig.FOV)
	raytracer := renderer.NewRaytracer(sceneObj, camera.Eye)
	return raytracer.NearestHit(ray)
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	// Create request object for parameter parsing
	inspectReq := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	sceneObj, err := s.createScene(inspectReq.Scene, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hit := inspectPixel(sceneObj, inspectReq.Width, inspectReq.Height, pixelX, pixelY)
	if !hit.IsIntersecting {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	response := InspectResponse{
		Hit:      true,
		Face:     geometry.FaceName(hit.Face),
		UV:       [2]float64{hit.UV.X, hit.UV.Y},
		Point:    vec3Array(hit.Point),
		Normal:   vec3Array(hit.Normal),
		Distance: hit.Distance,
	}
	if hit.Material != nil {
		response.Material = extractMaterialInfo(hit.Material, hit.Face)
	}

	writeJSON(w, http.StatusOK, response)
}
