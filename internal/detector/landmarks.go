// Package detector provides hand landmark detection for the virtual painter.
package detector

import (
	"image"
	"math"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a landmark position in normalized image coordinates:
// x and y in [0,1] with the origin at the top-left, z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks holds the 21 landmarks of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PixelPoint converts the landmark at index i to pixel coordinates for a
// frame of the given size.
func (h *HandLandmarks) PixelPoint(i, width, height int) image.Point {
	p := h.Points[i]
	return image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
}

// PixelDistance returns the distance in pixels between the landmarks at
// indices a and b for a frame of the given size.
func (h *HandLandmarks) PixelDistance(a, b, width, height int) float64 {
	pa := h.Points[a]
	pb := h.Points[b]
	dx := (pa.X - pb.X) * float64(width)
	dy := (pa.Y - pb.Y) * float64(height)
	return math.Sqrt(dx*dx + dy*dy)
}

// Valid reports whether the landmark set is usable: every coordinate is
// finite and the points are not all collapsed onto a single location.
// Degenerate sets show up when the upstream model emits a partial result.
func (h *HandLandmarks) Valid() bool {
	if h == nil {
		return false
	}
	first := h.Points[0]
	collapsed := true
	for i := 0; i < NumLandmarks; i++ {
		p := h.Points[i]
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
		if p.X != first.X || p.Y != first.Y {
			collapsed = false
		}
	}
	return !collapsed
}
