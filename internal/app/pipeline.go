package app

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/rangoli/internal/detector"
	"github.com/ayusman/rangoli/internal/gesture"
	"github.com/ayusman/rangoli/internal/paint"
)

// quitKeys end the run loop from the display window.
const (
	keyQuit   = 'q'
	keyEscape = 27
)

var fpsColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// run is the main frame loop: capture, mirror, detect, classify, update
// the paint controller, composite the canvas, blit the header strip,
// and display. Each frame is processed to completion before the next is
// captured. The loop exits on stop signal, quit key, or capture failure;
// the display window, canvas, and header images are released on every
// exit path.
func (a *App) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer a.canvas.Close()
	defer a.tools.Close()

	window := gocv.NewWindow("Rangoli")
	defer window.Close()

	last := time.Now()

	for {
		select {
		case <-stopCh:
			return
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			// Capture failure is fatal for the run, per the no-retry
			// rule; the source signals exhaustion the same way.
			log.Printf("Capture ended: %v", err)
			a.quit()
			return
		}

		// Mirror so on-screen motion matches the user's hand.
		gocv.Flip(*frame, frame, 1)

		a.processFrame(frame)

		a.tools.Apply(frame)

		now := time.Now()
		if dt := now.Sub(last).Seconds(); dt > 0 {
			fps := 1.0 / dt
			gocv.PutText(frame, fmt.Sprintf("FPS: %.0f", fps),
				image.Pt(10, frame.Rows()-20), gocv.FontHersheyPlain, 2, fpsColor, 2)
		}
		last = now

		window.IMShow(*frame)
		key := window.WaitKey(1)
		frame.Close()

		if key == keyQuit || key == keyEscape {
			a.quit()
			return
		}
	}
}

// processFrame runs detection, classification, and the controller update
// for one mirrored frame, then composites the canvas into it.
func (a *App) processFrame(frame *gocv.Mat) {
	if !a.IsEnabled() {
		a.controller.Suspend()
		a.canvas.Composite(frame)
		return
	}

	hands, err := a.detector.Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		hands = nil
	}

	if len(hands) == 0 {
		// No hand is not an error; just drop the stroke memory.
		a.controller.Suspend()
	} else {
		a.applyHand(frame, &hands[0])
	}

	a.canvas.Composite(frame)
}

// applyHand classifies one hand and applies the resulting action.
func (a *App) applyHand(frame *gocv.Mat, hand *detector.HandLandmarks) {
	v := gesture.Classify(hand)

	w := a.canvas.Width()
	h := a.canvas.Height()
	tip := hand.PixelPoint(detector.IndexTip, w, h)
	thumb := hand.PixelPoint(detector.ThumbTip, w, h)

	act := paint.Decide(v, tip, thumb)

	before := a.controller.Tool().Name
	a.controller.Update(act)
	if after := a.controller.Tool().Name; after != before && a.onTool != nil {
		a.onTool(after)
	}

	a.drawCursor(frame, act)
}

// drawCursor marks the fingertip on the display frame so the user can
// see where the stroke lands.
func (a *App) drawCursor(frame *gocv.Mat, act paint.Action) {
	if act.Mode == paint.ModeIdle {
		return
	}

	tool := a.controller.Tool()
	clr := tool.Color
	if tool.Eraser {
		clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	radius := a.controller.StrokeSize()/2 + 2
	gocv.Circle(frame, act.Tip, radius, clr, 2)
}

func (a *App) quit() {
	if a.onQuit != nil {
		a.onQuit()
	}
}
