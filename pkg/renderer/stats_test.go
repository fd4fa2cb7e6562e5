package renderer

import (
	"math"
	"testing"
	"time"
)

func TestCollectStats_AverageLuminance(t *testing.T) {
	// Red, green, blue and black average to (0.2126 + 0.7152 + 0.0722 + 0) / 4
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, 0xFF0000)
	fb.SetPixel(1, 0, 0x00FF00)
	fb.SetPixel(0, 1, 0x0000FF)

	stats := collectStats(fb, newTestCubeScene(), time.Second)

	if math.Abs(stats.AverageLuma-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", stats.AverageLuma)
	}
	if stats.TotalPixels != 4 || stats.Shapes != 1 || stats.Lights != 1 {
		t.Errorf("Unexpected counts %+v", stats)
	}
	if stats.PixelsPerSecond() != 4 {
		t.Errorf("Expected 4 pixels/s, got %f", stats.PixelsPerSecond())
	}
}

func TestFrameStats_ZeroDuration(t *testing.T) {
	stats := FrameStats{TotalPixels: 100}
	if stats.PixelsPerSecond() != 0 {
		t.Errorf("Expected 0 pixels/s without timing, got %f", stats.PixelsPerSecond())
	}
}
