// Package paint implements the stroke accumulation state machine and the
// persistent drawing canvas.
package paint

import (
	"image"
	"math"

	"github.com/ayusman/rangoli/internal/gesture"
)

// Mode is the per-frame action chosen from the finger vector.
type Mode int

const (
	// ModeIdle draws nothing and clears the previous-position memory.
	ModeIdle Mode = iota
	// ModeDraw extends the current stroke to the fingertip.
	ModeDraw
	// ModeSelect switches the active tool by header region hit.
	ModeSelect
	// ModeSize adjusts the brush size from the thumb-index spread.
	ModeSize
)

// Action is one frame's decision. Tip is the index fingertip in pixel
// coordinates; Spread is the thumb-index distance in pixels and is only
// meaningful for ModeSize.
type Action struct {
	Mode   Mode
	Tip    image.Point
	Spread float64
}

// Decide maps a finger vector and fingertip geometry to the action for
// this frame. It is pure; all carried state lives in the Controller.
//
// Only the index finger raised draws. Index plus middle selects (the
// thumb is ignored there, it trails the index naturally in that pose).
// Thumb plus index sizes the brush. Everything else, including a fist,
// is idle.
func Decide(v gesture.FingerVector, tip, thumb image.Point) Action {
	index := v[gesture.Index]
	middle := v[gesture.Middle]
	ring := v[gesture.Ring]
	pinky := v[gesture.Pinky]

	switch {
	case index && middle && !ring && !pinky:
		return Action{Mode: ModeSelect, Tip: tip}
	case index && v[gesture.Thumb] && !middle && !ring && !pinky:
		return Action{Mode: ModeSize, Tip: tip, Spread: pixelDist(tip, thumb)}
	case index && !v[gesture.Thumb] && !middle && !ring && !pinky:
		return Action{Mode: ModeDraw, Tip: tip}
	default:
		return Action{Mode: ModeIdle}
	}
}

func pixelDist(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
