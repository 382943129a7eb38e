package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/rangoli/internal/app"
	"github.com/ayusman/rangoli/internal/config"
	"github.com/ayusman/rangoli/internal/tray"
)

func main() {
	fmt.Println("Rangoli - Virtual Painter")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg.HeaderDir = findHeaderDir(cfg.HeaderDir)
	if cfg.HeaderDir != "" {
		fmt.Printf("Loading header assets from: %s\n", cfg.HeaderDir)
	}

	a := app.New(cfg)

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnQuit(a.Stop)
	a.OnQuit(t.Quit)
	a.OnToolChange(t.SetTool)

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	// Blocks until the tray quit item or the window quit key.
	t.Run()
}

// findHeaderDir searches for the header asset directory in common
// locations: the configured path, its parent-relative variant, and
// ~/.rangoli/header. Returns the first existing directory or empty
// string, in which case synthetic swatches are used.
func findHeaderDir(configured string) string {
	candidates := []string{configured, filepath.Join("..", configured), "assets/header"}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeHeaderDir := filepath.Join(homeDir, ".rangoli", "header")
	if info, err := os.Stat(homeHeaderDir); err == nil && info.IsDir() {
		return homeHeaderDir
	}

	return ""
}
