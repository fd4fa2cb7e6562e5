package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// TimeOfDay classifies a light's height on its orbit
type TimeOfDay string

const (
	Day   TimeOfDay = "day"
	Dawn  TimeOfDay = "dawn"
	Dusk  TimeOfDay = "dusk"
	Night TimeOfDay = "night"
)

// Light is a point light
type Light struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// OrbitTo places the light on a circle in the XY plane around center.
// Z is left untouched.
func (l *Light) OrbitTo(center core.Vec3, radius, angle float64) {
	l.Position.X = center.X + radius*math.Cos(angle)
	l.Position.Y = center.Y + radius*math.Sin(angle)
}

// TimeOfDay reports the phase of the day implied by the light's height
func (l Light) TimeOfDay() TimeOfDay {
	y := l.Position.Y
	switch {
	case y >= 20 && y < 40:
		return Day
	case y >= 0 && y < 20:
		if l.Position.X > 0 {
			return Dawn
		}
		return Dusk
	default:
		return Night
	}
}

func (l Light) String() string {
	return fmt.Sprintf("Light(Position: (%.2f, %.2f, %.2f))", l.Position.X, l.Position.Y, l.Position.Z)
}
