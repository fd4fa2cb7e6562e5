package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to scene file (json type only)
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Block Diorama",
		Description: "River, lake, grass and a tree under an orbiting sun and moon",
		Type:        "builtin",
	},
	{
		ID:          "glass",
		DisplayName: "Glass Cube",
		Description: "Refractive cube over a checkerboard floor with a bump-mapped wall",
		Type:        "builtin",
	},
	{
		ID:          "mirror",
		DisplayName: "Facing Mirrors",
		Description: "Two mirrors reflecting each other until the recursion limit",
		Type:        "builtin",
	},
}

// List returns the names of the built-in scenes
func List() []string {
	names := make([]string, len(builtInScenes))
	for i, info := range builtInScenes {
		names[i] = info.ID
	}
	return names
}

// ListAllScenes returns the built-in scenes followed by JSON scenes found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	scenes := append([]SceneInfo{}, builtInScenes...)
	if dir == "" {
		return scenes, nil
	}

	if _, err := os.Stat(dir); err != nil {
		// No scenes directory, only built-ins
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		found = append(found, SceneInfo{
			ID:          file,
			DisplayName: titleCase(name),
			Type:        "json",
			FilePath:    file,
		})
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].DisplayName < found[j].DisplayName
	})

	return append(scenes, found...), nil
}

// Create resolves a scene by built-in name or by a path ending in .json
func Create(name, textureDir string, logger core.Logger) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(textureDir, logger), nil
	case "glass":
		return NewGlassScene(), nil
	case "mirror":
		return NewMirrorScene(), nil
	}

	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadJSONScene(name, logger)
	}

	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(List(), ", "))
}

// titleCase converts a filename-style string to title case
// e.g., "lake-house" -> "Lake House"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
