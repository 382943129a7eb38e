// Package app wires the capture, detection, and painting components into
// the main application.
package app

import (
	"fmt"
	"log"
	"sync"

	"github.com/ayusman/rangoli/internal/capture"
	"github.com/ayusman/rangoli/internal/config"
	"github.com/ayusman/rangoli/internal/detector"
	"github.com/ayusman/rangoli/internal/overlay"
	"github.com/ayusman/rangoli/internal/paint"
)

// App owns the frame pipeline and the painting state.
type App struct {
	cfg        *config.Config
	camera     capture.Camera
	detector   detector.Detector
	tools      *overlay.Set
	canvas     *paint.Canvas
	controller *paint.Controller
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}
	doneCh     chan struct{}
	onQuit     func()
	onTool     func(name string)
}

// New creates a new App instance with the given configuration.
// Painting starts enabled.
func New(cfg *config.Config) *App {
	a := &App{
		cfg:     cfg,
		camera:  capture.NewCamera(cfg.CameraID, cfg.FrameWidth, cfg.FrameHeight),
		enabled: true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables painting. Disabled frames still
// display; detection and drawing are skipped.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether painting is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetCamera replaces the camera implementation. Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnQuit sets the callback invoked when the pipeline exits on its own
// (quit key or fatal capture error).
func (a *App) OnQuit(fn func()) {
	a.onQuit = fn
}

// OnToolChange sets the callback invoked when the active tool changes.
func (a *App) OnToolChange(fn func(name string)) {
	a.onTool = fn
}

// Controller returns the paint controller. Only valid after Start.
func (a *App) Controller() *paint.Controller {
	return a.controller
}

// Tools returns the header tool set. Only valid after Start.
func (a *App) Tools() *overlay.Set {
	return a.tools
}

// Start opens the camera, builds the canvas and tool palette against the
// delivered frame size, and launches the frame loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	width := a.camera.Width()
	height := a.camera.Height()

	tools, err := overlay.LoadDir(a.cfg.HeaderDir, width)
	if err != nil {
		log.Printf("Header assets unavailable (%v), using synthetic swatches", err)
		tools = overlay.Synthetic(width)
	}
	a.tools = tools

	a.canvas = paint.NewCanvas(width, height)
	a.controller = paint.NewController(a.canvas, a.tools, paint.Config{
		BrushMin:   a.cfg.BrushMin,
		BrushMax:   a.cfg.BrushMax,
		BrushSize:  a.cfg.BrushSize,
		EraserSize: a.cfg.EraserSize,
	})

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.run(a.stopCh, a.doneCh)

	log.Println("Paint pipeline started")
	return nil
}

// Stop halts the frame loop and releases the camera and detector.
// Safe to call more than once.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	done := a.doneCh
	a.mu.Unlock()

	// Closing the camera also unblocks a loop waiting in ReadFrame.
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	<-done

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Paint pipeline stopped")
}
