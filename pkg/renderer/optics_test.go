package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

func TestFresnel(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	grazingExit := core.NewVec3(0.9, math.Sqrt(1-0.81), 0)

	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		ior      float64
		expected float64
	}{
		{"Normal incidence glass", core.NewVec3(0, -1, 0), up, 1.5, 0.04},
		{"Index matched", core.NewVec3(0.6, -0.8, 0), up, 1.0, 0},
		{"Total internal reflection", grazingExit, up, 1.5, 1},
		{"Opaque surface", core.NewVec3(0, -1, 0), up, 0, 1},
		{"Negative index is opaque", core.NewVec3(0, -1, 0), up, -2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fresnel(tt.incident, tt.normal, tt.ior)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestFresnel_GrazingIncreasesReflectance(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	previous := fresnel(core.NewVec3(0, -1, 0), up, 1.5)

	for _, angle := range []float64{0.3, 0.6, 0.9, 1.2, 1.5} {
		incident := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
		kr := fresnel(incident, up, 1.5)
		if kr < 0 || kr > 1 {
			t.Fatalf("Reflectance out of range at %f rad: %f", angle, kr)
		}
		if kr < previous {
			t.Errorf("Reflectance dropped from %f to %f at %f rad", previous, kr, angle)
		}
		previous = kr
	}
}

func TestRefract(t *testing.T) {
	up := core.NewVec3(0, 1, 0)

	t.Run("Normal incidence passes straight through", func(t *testing.T) {
		got := refract(core.NewVec3(0, -1, 0), up, 1.5)
		if !vecNear(got, core.NewVec3(0, -1, 0), 1e-9) {
			t.Errorf("Expected (0,-1,0), got %v", got)
		}
	})

	t.Run("Entering bends toward the normal", func(t *testing.T) {
		incident := core.NewVec3(math.Sqrt2/2, -math.Sqrt2/2, 0)
		got := refract(incident, up, 1.5).Normalize()
		expectedSin := (math.Sqrt2 / 2) / 1.5
		if math.Abs(got.X-expectedSin) > 1e-9 || got.Y >= 0 {
			t.Errorf("Expected sin(theta_t)=%f going down, got %v", expectedSin, got)
		}
	})

	t.Run("Exiting bends away from the normal", func(t *testing.T) {
		incident := core.NewVec3(0.5, math.Sqrt(0.75), 0)
		got := refract(incident, up, 1.2).Normalize()
		if math.Abs(got.X-0.6) > 1e-9 || got.Y <= 0 {
			t.Errorf("Expected sin(theta_t)=0.6 going up, got %v", got)
		}
	})

	t.Run("Total internal reflection mirrors the ray", func(t *testing.T) {
		incident := core.NewVec3(0.9, math.Sqrt(1-0.81), 0)
		got := refract(incident, up, 1.5)
		expected := core.NewVec3(0.9, -math.Sqrt(1-0.81), 0)
		if !vecNear(got, expected, 1e-9) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})
}

func TestOffsetOrigin(t *testing.T) {
	point := core.NewVec3(1, 2, 3)
	normal := core.NewVec3(0, 0, 1)

	above := offsetOrigin(point, normal, core.NewVec3(0, 1, 1))
	if above.Z <= point.Z {
		t.Errorf("Expected origin pushed along the normal, got %v", above)
	}

	below := offsetOrigin(point, normal, core.NewVec3(0, 0, -1))
	if math.Abs(below.Z-(point.Z-OriginBias)) > 1e-12 {
		t.Errorf("Expected origin pushed against the normal, got %v", below)
	}
}
