// Package config loads runtime configuration for the Rangoli virtual painter.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Compiled-in defaults. Every knob can be overridden through the
// environment (or a .env file in the working directory).
const (
	DefaultCameraID    = 0
	DefaultFrameWidth  = 1280
	DefaultFrameHeight = 720
	DefaultHeaderDir   = "header"
	DefaultBrushMin    = 5
	DefaultBrushMax    = 60
	DefaultBrushSize   = 15
	DefaultEraserSize  = 50
)

// Config holds the runtime configuration for the application.
type Config struct {
	// CameraID is the video capture device index.
	CameraID int

	// FrameWidth and FrameHeight are the requested capture resolution.
	FrameWidth  int
	FrameHeight int

	// HeaderDir is the directory holding the header strip images.
	// When empty or missing, synthetic swatches are generated instead.
	HeaderDir string

	// BrushMin and BrushMax bound the brush size reachable through the
	// pinch-sizing gesture. BrushSize is the starting size.
	BrushMin  int
	BrushMax  int
	BrushSize int

	// EraserSize is the stroke thickness used in eraser mode.
	EraserSize int
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present; its absence is not an
// error. Malformed numeric variables fail loading.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HeaderDir: envString("RANGOLI_HEADER_DIR", DefaultHeaderDir),
	}

	var err error
	if cfg.CameraID, err = envInt("RANGOLI_CAMERA_ID", DefaultCameraID); err != nil {
		return nil, err
	}
	if cfg.FrameWidth, err = envInt("RANGOLI_FRAME_WIDTH", DefaultFrameWidth); err != nil {
		return nil, err
	}
	if cfg.FrameHeight, err = envInt("RANGOLI_FRAME_HEIGHT", DefaultFrameHeight); err != nil {
		return nil, err
	}
	if cfg.BrushMin, err = envInt("RANGOLI_BRUSH_MIN", DefaultBrushMin); err != nil {
		return nil, err
	}
	if cfg.BrushMax, err = envInt("RANGOLI_BRUSH_MAX", DefaultBrushMax); err != nil {
		return nil, err
	}
	if cfg.BrushSize, err = envInt("RANGOLI_BRUSH_SIZE", DefaultBrushSize); err != nil {
		return nil, err
	}
	if cfg.EraserSize, err = envInt("RANGOLI_ERASER_SIZE", DefaultEraserSize); err != nil {
		return nil, err
	}

	if cfg.BrushMin <= 0 || cfg.BrushMax < cfg.BrushMin {
		return nil, fmt.Errorf("invalid brush bounds: min=%d max=%d", cfg.BrushMin, cfg.BrushMax)
	}

	return cfg, nil
}

// envString returns the value of the named variable, or def when unset.
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt returns the named variable parsed as an int, or def when unset.
func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return n, nil
}
