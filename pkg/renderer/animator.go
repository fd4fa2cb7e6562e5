package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/lights"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Animator renders a sequence of frames, advancing the day/night cycle and
// optionally moving the camera before each one
type Animator struct {
	scene  Scene
	camera *Camera
	cycle  *lights.DayCycle // nil keeps the lights where they are
	config RenderConfig
	fb     *Framebuffer
	logger core.Logger

	// CameraStep, when set, is applied to the camera before each frame
	CameraStep func(camera *Camera)

	frame int
}

// NewAnimator creates an animator. The cycle moves the scene's lights in place.
func NewAnimator(scene Scene, camera *Camera, cycle *lights.DayCycle, config RenderConfig, logger core.Logger) *Animator {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Animator{
		scene:  scene,
		camera: camera,
		cycle:  cycle,
		config: config,
		fb:     NewFramebuffer(config.Width, config.Height),
		logger: logger,
	}
}

// Camera returns the camera used for the next frame
func (a *Animator) Camera() *Camera {
	return a.camera
}

// Framebuffer returns the buffer holding the most recent frame
func (a *Animator) Framebuffer() *Framebuffer {
	return a.fb
}

// RenderFrame advances the animation by one step and renders the next frame
func (a *Animator) RenderFrame() FrameResult {
	timeOfDay := lights.Night
	if a.cycle != nil {
		timeOfDay = a.cycle.Advance(a.scene.GetLights())
	} else if ls := a.scene.GetLights(); len(ls) > 0 {
		timeOfDay = ls[0].TimeOfDay()
	}

	if a.CameraStep != nil {
		a.CameraStep(a.camera)
	}

	start := time.Now()
	rt := NewRaytracer(a.scene, a.camera.Eye)
	if a.config.Background != nil {
		rt.SetBackground(*a.config.Background)
	}
	RenderWithConfig(a.fb, rt, a.camera, a.config)
	elapsed := time.Since(start)

	result := FrameResult{
		Frame:     a.frame,
		Image:     a.fb.ToImage(),
		TimeOfDay: timeOfDay,
		Stats:     collectStats(a.fb, a.scene, elapsed),
	}
	a.frame++
	return result
}

// Run renders frames one after another, handing each to the callback. It stops
// early when the context is cancelled or the callback returns an error.
func (a *Animator) Run(ctx context.Context, frames int, callback func(FrameResult) error) error {
	if frames < 1 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}

	a.logger.Printf("Starting animation with %d frames at %dx%d...\n", frames, a.fb.Width, a.fb.Height)

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			a.logger.Printf("Animation cancelled before frame %d\n", i+1)
			return err
		}

		result := a.RenderFrame()
		result.IsLast = i == frames-1

		a.logger.Printf("Frame %d/%d rendered in %v (%s, %.0f pixels/s)\n",
			i+1, frames, result.Stats.RenderTime, result.TimeOfDay, result.Stats.PixelsPerSecond())

		if err := callback(result); err != nil {
			return fmt.Errorf("frame %d callback failed: %w", i+1, err)
		}
	}

	return nil
}
