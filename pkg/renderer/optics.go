package renderer

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// OriginBias is how far secondary rays start from the surface along the normal
const OriginBias = 1e-4

// offsetOrigin nudges a surface point to the side of the surface the new ray travels toward
func offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	offset := normal.Multiply(OriginBias)
	if direction.Dot(normal) < 0 {
		return point.Subtract(offset)
	}
	return point.Add(offset)
}

// refract bends a unit incident direction through a surface using Snell's law.
// A ray leaving the medium (incident along the normal) swaps the index ratio and
// uses the flipped normal. Total internal reflection falls back to a mirror bounce.
func refract(incident, normal core.Vec3, refractiveIndex float64) core.Vec3 {
	cosi := -clampUnit(incident.Dot(normal))
	eta := 1.0 / refractiveIndex
	n := normal

	if cosi < 0 {
		cosi = -cosi
		eta = refractiveIndex
		n = normal.Negate()
	}

	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return incident.Reflect(n)
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}

// fresnel returns the fraction of light reflected at the surface, averaging the
// s- and p-polarized reflectances. Total internal reflection gives 1. A
// refractive index <= 0 marks an opaque surface and also gives 1.
func fresnel(incident, normal core.Vec3, refractiveIndex float64) float64 {
	if refractiveIndex <= 0 {
		return 1
	}

	cosi := clampUnit(incident.Dot(normal))
	etai, etat := 1.0, refractiveIndex
	if cosi > 0 {
		etai, etat = etat, etai
	}

	sint := etai / etat * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosi = math.Abs(cosi)
	rs := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	rp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)
	return (rs*rs + rp*rp) / 2
}

func clampUnit(x float64) float64 {
	return max(-1, min(1, x))
}
