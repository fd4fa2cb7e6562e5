package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
	"github.com/df07/go-cube-raytracer/pkg/scene"
)

// Request limits shared by the render, inspect and scene-config endpoints
const (
	minImageSize = 16
	maxImageSize = 2000
	maxFrames    = 1000
)

// Options configures the web server
type Options struct {
	Port       int
	TextureDir string // Block textures for the built-in scenes
	SceneDir   string // Directory scanned for .json scenes
	StaticDir  string // Browser client files
}

// Server handles web requests for the cube raytracer
type Server struct {
	port       int
	textureDir string
	sceneDir   string
	staticDir  string
}

// NewServer creates a new web server
func NewServer(opts Options) *Server {
	return &Server{
		port:       opts.Port,
		textureDir: opts.TextureDir,
		sceneDir:   opts.SceneDir,
		staticDir:  opts.StaticDir,
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string  `json:"scene"`  // Scene ID, see /api/scenes
	Width  int     `json:"width"`  // Image width
	Height int     `json:"height"` // Image height
	Frames int     `json:"frames"` // Number of animation frames
	Orbit  float64 `json:"orbit"`  // Camera yaw per frame in radians
}

// Handler returns the router for all endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth reports liveness and host memory usage
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{"status": "ok"}

	if vm, err := mem.VirtualMemory(); err == nil {
		response["memory"] = map[string]interface{}{
			"total":       vm.Total,
			"used":        vm.Used,
			"usedPercent": vm.UsedPercent,
		}
	} else {
		log.Printf("Health check: memory stats unavailable: %v", err)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleScenes lists the built-in scenes and the JSON scenes on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// parseCommonSceneParams parses the scene and image size shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default"
	}

	defaults := renderer.DefaultRenderConfig()
	var err error
	if req.Width, err = parseIntParam(query, "width", defaults.Width, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", defaults.Height, minImageSize, maxImageSize); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if math.IsNaN(parsed) || parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves a scene ID. JSON scenes are only loaded from the
// configured scene directory, never from an arbitrary client path.
func (s *Server) createScene(sceneID string, logger core.Logger) (*scene.Scene, error) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		return nil, err
	}

	for _, info := range scenes {
		if info.ID != sceneID {
			continue
		}
		if info.Type == "json" {
			return scene.LoadJSONScene(info.FilePath, logger)
		}
		return scene.Create(info.ID, s.textureDir, logger)
	}
	return nil, fmt.Errorf("unknown scene: %s", sceneID)
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(sceneName, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.RenderConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"fov":      config.FOV,
			"frames":   1,
			"maxDepth": renderer.MaxDepth,
			"dayCycle": sceneObj.Cycle != nil,
		},
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": minImageSize,
				"max": maxImageSize,
			},
			"height": map[string]int{
				"min": minImageSize,
				"max": maxImageSize,
			},
			"frames": map[string]int{
				"min": 1,
				"max": maxFrames,
			},
			"orbit": map[string]float64{
				"min": -math.Pi,
				"max": math.Pi,
			},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response with CORS enabled
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
