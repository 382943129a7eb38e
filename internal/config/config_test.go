package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != DefaultCameraID {
		t.Errorf("CameraID = %d, want %d", cfg.CameraID, DefaultCameraID)
	}
	if cfg.FrameWidth != DefaultFrameWidth || cfg.FrameHeight != DefaultFrameHeight {
		t.Errorf("frame size = %dx%d, want %dx%d",
			cfg.FrameWidth, cfg.FrameHeight, DefaultFrameWidth, DefaultFrameHeight)
	}
	if cfg.HeaderDir != DefaultHeaderDir {
		t.Errorf("HeaderDir = %q, want %q", cfg.HeaderDir, DefaultHeaderDir)
	}
	if cfg.BrushMin != DefaultBrushMin || cfg.BrushMax != DefaultBrushMax {
		t.Errorf("brush bounds = [%d, %d], want [%d, %d]",
			cfg.BrushMin, cfg.BrushMax, DefaultBrushMin, DefaultBrushMax)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RANGOLI_CAMERA_ID", "2")
	t.Setenv("RANGOLI_HEADER_DIR", "/opt/rangoli/header")
	t.Setenv("RANGOLI_BRUSH_MAX", "80")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.HeaderDir != "/opt/rangoli/header" {
		t.Errorf("HeaderDir = %q, want /opt/rangoli/header", cfg.HeaderDir)
	}
	if cfg.BrushMax != 80 {
		t.Errorf("BrushMax = %d, want 80", cfg.BrushMax)
	}
}

func TestLoad_MalformedInt(t *testing.T) {
	t.Setenv("RANGOLI_CAMERA_ID", "front")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric camera ID")
	}
}

func TestLoad_InvalidBrushBounds(t *testing.T) {
	t.Setenv("RANGOLI_BRUSH_MIN", "30")
	t.Setenv("RANGOLI_BRUSH_MAX", "10")

	if _, err := Load(); err == nil {
		t.Error("expected error for inverted brush bounds")
	}
}
