// Package gesture derives per-frame finger state from hand landmarks.
package gesture

import (
	"github.com/ayusman/rangoli/internal/detector"
)

// Finger indices into a FingerVector, thumb first.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// RaisedTolerance is how far, in normalized coordinates, a fingertip
// must clear its reference joint before the finger counts as raised.
// A raw greater-than comparison flickers on landmark noise right at the
// joint boundary.
const RaisedTolerance = 0.02

// FingerVector reports which fingers are raised, one bool per finger.
// It is recomputed from scratch every frame; there is no smoothing.
type FingerVector [NumFingers]bool

// None reports whether no finger is raised (a fist).
func (v FingerVector) None() bool {
	for _, up := range v {
		if up {
			return false
		}
	}
	return true
}

// tip/PIP landmark pairs for the four non-thumb fingers, in
// FingerVector order starting at Index.
var fingerJoints = [4][2]int{
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// Classify derives the finger vector for one hand.
//
// A non-thumb finger is raised when its tip sits above its PIP joint
// (smaller y, image origin top-left) by more than the tolerance, which
// holds for an extended finger on an upright hand. The thumb extends
// sideways instead, so it is compared horizontally against its IP
// joint; the direction depends on handedness. The hand label is taken
// as the detector reports it for the frame handed in — the pipeline
// mirrors frames before detection, so labels match what the user sees.
// A missing label is treated as "Right".
//
// Classification fails closed: a nil or degenerate landmark set yields
// the zero vector (no fingers raised).
func Classify(hand *detector.HandLandmarks) FingerVector {
	var v FingerVector
	if !hand.Valid() {
		return v
	}

	for i, joints := range fingerJoints {
		tip := hand.Points[joints[0]]
		pip := hand.Points[joints[1]]
		v[Index+i] = tip.Y < pip.Y-RaisedTolerance
	}

	tip := hand.Points[detector.ThumbTip]
	ip := hand.Points[detector.ThumbIP]
	if hand.Handedness == "Left" {
		v[Thumb] = tip.X > ip.X+RaisedTolerance
	} else {
		v[Thumb] = tip.X < ip.X-RaisedTolerance
	}

	return v
}
