package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
)

// FrameUpdate represents a single rendered frame sent via SSE
type FrameUpdate struct {
	Frame       int    `json:"frame"`       // Zero-based frame number
	TotalFrames int    `json:"totalFrames"` // Number of frames requested
	ImageData   string `json:"imageData"`   // Base64 encoded PNG
	TimeOfDay   string `json:"timeOfDay"`
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	Shapes          int     `json:"shapes"`
	Lights          int     `json:"lights"`
	RenderMs        int64   `json:"renderMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
	AverageLuma     float64 `json:"averageLuma"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders an animation and streams every frame via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})

	// Start single SSE writer goroutine
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()

	// The writer must be drained before the handler returns
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	renderID := "render-" + uuid.New().String()
	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	webLogger := NewWebLogger(renderID, consoleChan)
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	err = s.renderFrames(ctx, req, webLogger, sseEventChan)

	// Nothing logs after rendering, so the console can be flushed and closed
	close(consoleChan)
	<-consoleDone

	if err != nil {
		if ctx.Err() != nil {
			// Client disconnected
			return
		}
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	// Send completion event
	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-ctx.Done():
	}
}

// renderFrames builds the scene and runs the animation, sending one frame event per frame
func (s *Server) renderFrames(ctx context.Context, req *RenderRequest, logger core.Logger, sseEventChan chan<- SSEEvent) error {
	// Create scene (logging goes through the WebLogger)
	sceneObj, err := s.createScene(req.Scene, logger)
	if err != nil {
		return err
	}

	animator := sceneObj.NewAnimator(req.Width, req.Height, logger)
	if req.Orbit != 0 {
		animator.CameraStep = func(camera *renderer.Camera) {
			camera.Orbit(req.Orbit, 0)
		}
	}

	startTime := time.Now()
	return animator.Run(ctx, req.Frames, func(result renderer.FrameResult) error {
		imageData, err := s.imageToBase64PNG(result.Image)
		if err != nil {
			return fmt.Errorf("failed to encode frame %d: %w", result.Frame, err)
		}

		update := FrameUpdate{
			Frame:       result.Frame,
			TotalFrames: req.Frames,
			ImageData:   imageData,
			TimeOfDay:   string(result.TimeOfDay),
			Stats: Stats{
				TotalPixels:     result.Stats.TotalPixels,
				Shapes:          result.Stats.Shapes,
				Lights:          result.Stats.Lights,
				RenderMs:        result.Stats.RenderTime.Milliseconds(),
				PixelsPerSecond: result.Stats.PixelsPerSecond(),
				AverageLuma:     result.Stats.AverageLuma,
			},
			IsComplete: result.IsLast,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}

		data, err := json.Marshal(update)
		if err != nil {
			return fmt.Errorf("failed to marshal frame %d: %w", result.Frame, err)
		}

		select {
		case sseEventChan <- SSEEvent{Type: "frame", Data: string(data)}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Write SSE event
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages to the SSE channel until the console closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				// Channel closed
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			// Send to unified SSE channel
			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.Frames, err = parseIntParam(r.URL.Query(), "frames", 1, 1, maxFrames); err != nil {
		return nil, err
	}
	if req.Orbit, err = parseFloatParam(r.URL.Query(), "orbit", 0, -math.Pi, math.Pi); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height*req.Frames > 800*600*10 {
		log.Printf("Render warning: %d frames at %dx%d may render slowly", req.Frames, req.Width, req.Height)
	}

	return req, nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
