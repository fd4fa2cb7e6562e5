package geometry

import (
	"fmt"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/material"
)

// Face indices in the order they are tested. Edge and corner points match
// several faces; the first one in this order wins.
const (
	FaceNegX = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
)

// faceEpsilon is the tolerance for deciding which face a hit point lies on
const faceEpsilon = 1e-4

var faceNormals = [material.FaceCount]core.Vec3{
	FaceNegX: core.NewVec3(-1, 0, 0),
	FacePosX: core.NewVec3(1, 0, 0),
	FaceNegY: core.NewVec3(0, -1, 0),
	FacePosY: core.NewVec3(0, 1, 0),
	FaceNegZ: core.NewVec3(0, 0, -1),
	FacePosZ: core.NewVec3(0, 0, 1),
}

// FaceName returns a short label for a face index
func FaceName(face int) string {
	switch face {
	case FaceNegX:
		return "-x"
	case FacePosX:
		return "+x"
	case FaceNegY:
		return "-y"
	case FacePosY:
		return "+y"
	case FaceNegZ:
		return "-z"
	case FacePosZ:
		return "+z"
	default:
		return "none"
	}
}

// Cube represents an axis-aligned box
type Cube struct {
	Center      core.Vec3          // Center point of the box
	HalfExtents core.Vec3          // Half the size along each axis
	Material    *material.Material // Shared between cubes, never copied
	bounds      core.AABB          // Cached min/max corners
}

// NewCube creates an axis-aligned box. Every half-extent must be positive.
func NewCube(center, halfExtents core.Vec3, mat *material.Material) (*Cube, error) {
	if halfExtents.X <= 0 || halfExtents.Y <= 0 || halfExtents.Z <= 0 {
		return nil, fmt.Errorf("cube half-extents must be positive, got %v", halfExtents)
	}
	if mat == nil {
		return nil, fmt.Errorf("cube at %v has no material", center)
	}
	return &Cube{
		Center:      center,
		HalfExtents: halfExtents,
		Material:    mat,
		bounds:      core.NewAABBFromCenter(center, halfExtents),
	}, nil
}

// MustCube is like NewCube but panics on invalid input. Used for built-in scenes.
func MustCube(center, halfExtents core.Vec3, mat *material.Material) *Cube {
	cube, err := NewCube(center, halfExtents, mat)
	if err != nil {
		panic(err)
	}
	return cube
}

// Intersect finds where the ray enters the cube. Misses, boxes behind the
// origin and faces turned away from the viewer all return EmptyIntersect.
func (c *Cube) Intersect(ray core.Ray, viewer core.Vec3) Intersect {
	distance, hit := c.bounds.Intersect(ray)
	if !hit {
		return EmptyIntersect()
	}

	point := ray.At(distance)
	face, ok := c.faceAt(point)
	if !ok {
		return EmptyIntersect()
	}
	normal := faceNormals[face]

	viewDirection := viewer.Subtract(point).Normalize()
	if normal.Dot(viewDirection) <= 0 {
		return EmptyIntersect()
	}

	return Intersect{
		IsIntersecting: true,
		Point:          point,
		Normal:         normal,
		Distance:       distance,
		Face:           face,
		UV:             c.faceUV(face, point),
		Material:       c.Material,
	}
}

// faceAt returns the first face, in index order, that the point lies on
func (c *Cube) faceAt(p core.Vec3) (int, bool) {
	min, max := c.bounds.Min, c.bounds.Max
	switch {
	case nearlyEqual(p.X, min.X):
		return FaceNegX, true
	case nearlyEqual(p.X, max.X):
		return FacePosX, true
	case nearlyEqual(p.Y, min.Y):
		return FaceNegY, true
	case nearlyEqual(p.Y, max.Y):
		return FacePosY, true
	case nearlyEqual(p.Z, min.Z):
		return FaceNegZ, true
	case nearlyEqual(p.Z, max.Z):
		return FacePosZ, true
	}
	return -1, false
}

// faceUV maps a point on a face to [0, 1] texture coordinates.
// Side faces keep texture "up" aligned with world +Y.
func (c *Cube) faceUV(face int, p core.Vec3) core.Vec2 {
	min, max := c.bounds.Min, c.bounds.Max
	size := c.bounds.Size()

	switch face {
	case FaceNegX:
		return core.NewVec2((p.Z-min.Z)/size.Z, (max.Y-p.Y)/size.Y)
	case FacePosX:
		return core.NewVec2((max.Z-p.Z)/size.Z, (max.Y-p.Y)/size.Y)
	case FaceNegY:
		return core.NewVec2((p.X-min.X)/size.X, (max.Z-p.Z)/size.Z)
	case FacePosY:
		return core.NewVec2((p.X-min.X)/size.X, (p.Z-min.Z)/size.Z)
	case FaceNegZ:
		return core.NewVec2((max.X-p.X)/size.X, (max.Y-p.Y)/size.Y)
	default:
		return core.NewVec2((p.X-min.X)/size.X, (max.Y-p.Y)/size.Y)
	}
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	return d < faceEpsilon && d > -faceEpsilon
}
