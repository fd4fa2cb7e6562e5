package lights

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// DayCycle moves a sun and a moon around a shared orbit, half a turn apart
type DayCycle struct {
	Center    core.Vec3 // Center of the orbit
	Radius    float64   // Orbit radius
	Step      float64   // Angle advanced per frame, in radians
	SunAngle  float64
	MoonAngle float64
}

// DefaultDayCycle returns the orbit used by the built-in scenes
func DefaultDayCycle() *DayCycle {
	return &DayCycle{
		Center:    core.NewVec3(0, 0, 0),
		Radius:    40,
		Step:      0.2,
		SunAngle:  0,
		MoonAngle: math.Pi,
	}
}

// Advance moves lights[0] (sun) and lights[1] (moon) to the current angles,
// then steps both angles forward. Missing lights are skipped.
// It returns the sun's time of day after the move.
func (dc *DayCycle) Advance(ls []Light) TimeOfDay {
	if len(ls) > 0 {
		ls[0].OrbitTo(dc.Center, dc.Radius, dc.SunAngle)
	}
	if len(ls) > 1 {
		ls[1].OrbitTo(dc.Center, dc.Radius, dc.MoonAngle)
	}

	dc.SunAngle = wrapAngle(dc.SunAngle + dc.Step)
	dc.MoonAngle = wrapAngle(dc.MoonAngle + dc.Step)

	if len(ls) == 0 {
		return Night
	}
	return ls[0].TimeOfDay()
}

func wrapAngle(angle float64) float64 {
	if angle > 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}
