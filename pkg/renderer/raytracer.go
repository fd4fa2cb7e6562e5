package renderer

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/lights"
	"github.com/df07/go-cube-raytracer/pkg/material"
)

// MaxDepth is the deepest recursion level that still shades a hit
const MaxDepth = 3

// SkyboxColor is returned for rays that escape the scene
var SkyboxColor = core.NewColor(68, 142, 228)

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []geometry.Shape
	GetLights() []lights.Light
}

// Raytracer shades rays against a fixed set of shapes and lights
type Raytracer struct {
	shapes     []geometry.Shape
	lights     []lights.Light
	viewer     core.Vec3 // camera eye, used for back-face culling of every ray
	background core.Vec3
}

// NewRaytracer creates a raytracer for one frame. The scene's lights are
// copied, so later changes to the scene do not affect this raytracer.
func NewRaytracer(scene Scene, viewer core.Vec3) *Raytracer {
	sceneLights := scene.GetLights()
	snapshot := make([]lights.Light, len(sceneLights))
	copy(snapshot, sceneLights)

	return &Raytracer{
		shapes:     scene.GetShapes(),
		lights:     snapshot,
		viewer:     viewer,
		background: SkyboxColor,
	}
}

// SetBackground overrides the color returned for escaped rays
func (rt *Raytracer) SetBackground(color core.Vec3) {
	rt.background = color
}

// Background returns the color returned for escaped rays
func (rt *Raytracer) Background() core.Vec3 {
	return rt.background
}

// NearestHit returns the closest visible intersection along the ray, or an
// empty intersection if nothing is hit
func (rt *Raytracer) NearestHit(ray core.Ray) geometry.Intersect {
	nearest := geometry.EmptyIntersect()
	for _, shape := range rt.shapes {
		hit := shape.Intersect(ray, rt.viewer)
		if hit.IsIntersecting && hit.Distance < nearest.Distance {
			nearest = hit
		}
	}
	return nearest
}

// CastRay returns the color seen along a ray. Depth counts recursion levels
// from the primary ray (depth 0); rays deeper than MaxDepth see the background.
func (rt *Raytracer) CastRay(ray core.Ray, depth int) core.Vec3 {
	if depth > MaxDepth {
		return rt.background
	}

	hit := rt.NearestHit(ray)
	if !hit.IsIntersecting {
		return rt.background
	}

	direction := ray.Direction.Normalize()
	mat := hit.Material
	surfaceColor, normal := mat.Surface(hit.Face, hit.UV, hit.Normal)

	kr := fresnel(direction, normal, mat.RefractiveIndex)
	reflectivity := mat.Albedo[material.AlbedoReflective] * kr
	transparency := mat.Albedo[material.AlbedoRefractive] * (1 - kr)

	if len(rt.lights) == 0 {
		return core.Vec3{}
	}

	// Secondary rays do not depend on the light, so trace them once and add
	// their weighted contribution per light
	var reflectColor, refractColor core.Vec3
	if reflectivity > 0 {
		reflectDir := direction.Reflect(normal).Normalize()
		origin := offsetOrigin(hit.Point, hit.Normal, reflectDir)
		reflectColor = rt.CastRay(core.NewRay(origin, reflectDir), depth+1)
	}
	if transparency > 0 {
		refractDir := refract(direction, normal, mat.RefractiveIndex).Normalize()
		origin := offsetOrigin(hit.Point, hit.Normal, refractDir)
		refractColor = rt.CastRay(core.NewRay(origin, refractDir), depth+1)
	}

	localWeight := math.Max(0, 1-reflectivity-transparency)
	viewDir := direction.Negate()

	var total core.Vec3
	for _, light := range rt.lights {
		lightDir := light.Position.Subtract(hit.Point).Normalize()
		intensity := light.Intensity * (1 - rt.castShadow(hit, light))

		diffuseIntensity := math.Min(1, math.Max(0, normal.Dot(lightDir)))
		diffuse := surfaceColor.Multiply(mat.Albedo[material.AlbedoDiffuse] * diffuseIntensity * intensity)

		lightReflect := lightDir.Negate().Reflect(normal).Normalize()
		specularIntensity := math.Pow(math.Max(0, viewDir.Dot(lightReflect)), mat.Specular)
		specular := light.Color.Multiply(mat.Albedo[material.AlbedoSpecular] * specularIntensity * intensity)

		total = total.
			Add(diffuse.Add(specular).Multiply(localWeight)).
			Add(reflectColor.Multiply(reflectivity)).
			Add(refractColor.Multiply(transparency))
	}

	return total
}

// castShadow returns how strongly the light is blocked at the hit point: 0 when
// unobstructed, approaching 1 as the occluder gets closer to the surface
func (rt *Raytracer) castShadow(hit geometry.Intersect, light lights.Light) float64 {
	toLight := light.Position.Subtract(hit.Point)
	lightDistance := toLight.Length()
	lightDir := toLight.Normalize()

	shadowRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, lightDir), lightDir)
	for _, shape := range rt.shapes {
		occluder := shape.Intersect(shadowRay, rt.viewer)
		if occluder.IsIntersecting && occluder.Distance < lightDistance {
			ratio := occluder.Distance / lightDistance
			return 1 - math.Min(ratio*ratio, 1)
		}
	}
	return 0
}
