package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates an AABB from a center point and half-extents
func NewAABBFromCenter(center, halfExtents Vec3) AABB {
	return AABB{
		Min: center.Subtract(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Intersect runs the slab test and returns the entry distance along the ray.
// The ray misses when the per-axis intervals do not overlap or when the entry
// distance is negative (box behind the origin, or origin inside the box or past it).
// An origin exactly on an entry face hits at distance 0.
func (aabb AABB) Intersect(ray Ray) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: no constraint unless the origin is outside it.
		// Dividing by zero here would give ±Inf, or NaN when origin == bound.
		if direction == 0 {
			if origin < min || origin > max {
				return 0, false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if tMin > t2 || t1 > tMax {
			return 0, false
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMin < 0 {
		return 0, false
	}
	return tMin, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if min < max on every axis
func (aabb AABB) IsValid() bool {
	return aabb.Min.X < aabb.Max.X &&
		aabb.Min.Y < aabb.Max.Y &&
		aabb.Min.Z < aabb.Max.Z
}
