package renderer

import (
	"image"
	"time"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/lights"
)

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	TotalPixels int           // Total number of pixels rendered
	Shapes      int           // Shapes tested per ray
	Lights      int           // Lights shaded per hit
	RenderTime  time.Duration // Wall time spent tracing the frame
	AverageLuma float64       // Mean luminance of the packed image
}

// PixelsPerSecond returns the tracing throughput of the frame
func (fs FrameStats) PixelsPerSecond() float64 {
	if fs.RenderTime <= 0 {
		return 0
	}
	return float64(fs.TotalPixels) / fs.RenderTime.Seconds()
}

// collectStats summarizes a finished frame
func collectStats(fb *Framebuffer, scene Scene, elapsed time.Duration) FrameStats {
	stats := FrameStats{
		TotalPixels: fb.Width * fb.Height,
		Shapes:      len(scene.GetShapes()),
		Lights:      len(scene.GetLights()),
		RenderTime:  elapsed,
	}

	if stats.TotalPixels == 0 {
		return stats
	}

	var sum float64
	for _, c := range fb.Buffer {
		pixel := unpackColor(c)
		sum += luminance(core.NewColor(pixel.R, pixel.G, pixel.B))
	}
	stats.AverageLuma = sum / float64(stats.TotalPixels)
	return stats
}

// luminance uses Rec. 709 weights
func luminance(c core.Vec3) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

// FrameResult is delivered to the animation callback after each frame
type FrameResult struct {
	Frame     int              // Zero-based frame number
	Image     *image.RGBA      // Rendered frame
	TimeOfDay lights.TimeOfDay // Sun phase while the frame was rendered
	Stats     FrameStats
	IsLast    bool
}
