package renderer

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// pitchLimit keeps the orbiting camera away from the poles, where forward and up align
const pitchLimit = math.Pi/2 - 0.1

// CameraConfig contains the placement of a camera
type CameraConfig struct {
	Eye    core.Vec3 `json:"eye"`    // Camera position
	Center core.Vec3 `json:"center"` // Point the camera looks at
	Up     core.Vec3 `json:"up"`     // World up direction
}

// Camera maps camera-space ray directions to world space
type Camera struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3
}

// NewCamera creates a camera at eye looking at center
func NewCamera(eye, center, up core.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up}
}

// NewCameraFromConfig creates a camera from a configuration
func NewCameraFromConfig(config CameraConfig) *Camera {
	up := config.Up
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}
	return NewCamera(config.Eye, config.Center, up)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.Center.Subtract(c.Eye).Normalize()
}

// BaseChange converts a camera-space direction (camera looks down -Z) to a
// unit world-space direction. It does not modify the camera.
func (c *Camera) BaseChange(v core.Vec3) core.Vec3 {
	forward := c.Forward()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	return right.Multiply(v.X).
		Add(up.Multiply(v.Y)).
		Subtract(forward.Multiply(v.Z)).
		Normalize()
}

// Orbit rotates the eye around the center, keeping the distance between them.
// Pitch is clamped short of straight up and straight down.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	radiusVector := c.Eye.Subtract(c.Center)
	radius := radiusVector.Length()

	currentYaw := math.Atan2(radiusVector.Z, radiusVector.X)
	radiusXZ := math.Sqrt(radiusVector.X*radiusVector.X + radiusVector.Z*radiusVector.Z)
	currentPitch := math.Atan2(-radiusVector.Y, radiusXZ)

	newYaw := math.Mod(currentYaw+deltaYaw, 2*math.Pi)
	newPitch := max(-pitchLimit, min(pitchLimit, currentPitch+deltaPitch))

	c.Eye = c.Center.Add(core.NewVec3(
		radius*math.Cos(newYaw)*math.Cos(newPitch),
		-radius*math.Sin(newPitch),
		radius*math.Sin(newYaw)*math.Cos(newPitch),
	))
}
