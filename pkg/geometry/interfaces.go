package geometry

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// viewer is the position used for back-face culling.
type Shape interface {
	Intersect(ray core.Ray, viewer core.Vec3) Intersect
}

// Intersect contains information about a ray-object intersection
type Intersect struct {
	IsIntersecting bool
	Point          core.Vec3          // Point of intersection
	Normal         core.Vec3          // Outward unit normal of the hit face
	Distance       float64            // Parameter t along the ray
	Face           int                // Face index, see the Face* constants
	UV             core.Vec2          // Texture coordinates on the hit face
	Material       *material.Material // Shared material of the hit object
}

// EmptyIntersect returns the "no hit" sentinel: not intersecting, infinitely far away
func EmptyIntersect() Intersect {
	return Intersect{Distance: math.Inf(1), Face: -1}
}
