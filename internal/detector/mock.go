package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Preset hands for the painter gestures. All fixtures describe an
// upright right hand in normalized coordinates, wrist near the bottom
// of the frame, and are built from a fist by extending fingers.

// finger landmark columns for the four non-thumb fingers.
var fingerBases = map[int]float64{
	IndexMCP:  0.48,
	MiddleMCP: 0.53,
	RingMCP:   0.58,
	PinkyMCP:  0.62,
}

// fistHand returns a hand with every finger curled and the thumb folded
// across the palm.
func fistHand() HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.52, Y: 0.85}

	// Thumb folded: tip lies palm-side of the IP joint.
	h.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.78}
	h.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.72}
	h.Points[ThumbIP] = Point3D{X: 0.40, Y: 0.68}
	h.Points[ThumbTip] = Point3D{X: 0.44, Y: 0.66}

	// Each finger curled: tip back down below its PIP joint.
	for mcp, x := range fingerBases {
		h.Points[mcp] = Point3D{X: x, Y: 0.62}
		h.Points[mcp+1] = Point3D{X: x, Y: 0.56} // PIP
		h.Points[mcp+2] = Point3D{X: x, Y: 0.60} // DIP
		h.Points[mcp+3] = Point3D{X: x, Y: 0.66} // tip
	}

	return h
}

// extendFinger straightens the finger whose MCP joint index is given.
func extendFinger(h *HandLandmarks, mcp int) {
	x := fingerBases[mcp]
	h.Points[mcp] = Point3D{X: x, Y: 0.62}
	h.Points[mcp+1] = Point3D{X: x, Y: 0.52}
	h.Points[mcp+2] = Point3D{X: x, Y: 0.44}
	h.Points[mcp+3] = Point3D{X: x, Y: 0.36}
}

// extendThumb spreads the thumb sideways, tip at the given position.
// For a right hand the tip ends up left of (smaller x than) the IP joint.
func extendThumb(h *HandLandmarks, tipX, tipY float64) {
	h.Points[ThumbCMC] = Point3D{X: tipX + 0.14, Y: tipY + 0.16}
	h.Points[ThumbMCP] = Point3D{X: tipX + 0.09, Y: tipY + 0.10}
	h.Points[ThumbIP] = Point3D{X: tipX + 0.05, Y: tipY + 0.04}
	h.Points[ThumbTip] = Point3D{X: tipX, Y: tipY}
}

// FistLandmarks returns a closed fist: no fingers raised.
func FistLandmarks() HandLandmarks {
	return fistHand()
}

// IndexUpLandmarks returns the draw pose: only the index finger raised.
func IndexUpLandmarks() HandLandmarks {
	h := fistHand()
	extendFinger(&h, IndexMCP)
	return h
}

// SelectionLandmarks returns the selection pose: index and middle
// fingers raised, the rest curled.
func SelectionLandmarks() HandLandmarks {
	h := fistHand()
	extendFinger(&h, IndexMCP)
	extendFinger(&h, MiddleMCP)
	return h
}

// PinchLandmarks returns the brush-sizing pose: thumb and index raised
// with the given normalized distance between their tips.
func PinchLandmarks(spread float64) HandLandmarks {
	h := fistHand()
	extendFinger(&h, IndexMCP)
	indexTip := h.Points[IndexTip]
	extendThumb(&h, indexTip.X-spread, indexTip.Y)
	return h
}
