package detector

import (
	"encoding/json"
	"testing"
)

func TestJSONHand_ToHandLandmarks(t *testing.T) {
	fullPoints := func() []jsonPoint {
		pts := make([]jsonPoint, NumLandmarks)
		for i := range pts {
			pts[i] = jsonPoint{X: 0.1 + float64(i)*0.01, Y: 0.5}
		}
		return pts
	}

	tests := []struct {
		name   string
		points []jsonPoint
		wantOK bool
	}{
		{name: "full landmark set", points: fullPoints(), wantOK: true},
		{name: "truncated landmark set", points: fullPoints()[:IndexTip], wantOK: false},
		{name: "empty landmark set", points: nil, wantOK: false},
		{name: "oversized landmark set", points: append(fullPoints(), jsonPoint{}), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := jsonHand{Points: tt.points, Handedness: "Right", Score: 0.9}

			lm, ok := h.toHandLandmarks()
			if ok != tt.wantOK {
				t.Fatalf("toHandLandmarks() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if lm.Handedness != "Right" || lm.Score != 0.9 {
				t.Errorf("hand metadata = (%q, %f), want (Right, 0.9)", lm.Handedness, lm.Score)
			}
			if lm.Points[PinkyTip] != (Point3D{X: 0.1 + float64(PinkyTip)*0.01, Y: 0.5}) {
				t.Errorf("last point = %v, want the decoded value", lm.Points[PinkyTip])
			}
		})
	}
}

func TestJSONHand_TruncatedServiceResponseDropped(t *testing.T) {
	// A partial hand from the service must not reach the classifier:
	// zero-filled fingertips sit at the image origin and would read as
	// raised fingers.
	line := `{"hands": [{"points": [{"x": 0.4, "y": 0.6, "z": 0}], "handedness": "Right", "score": 0.8}]}`

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(response.Hands) != 1 {
		t.Fatalf("decoded %d hands, want 1", len(response.Hands))
	}

	if _, ok := response.Hands[0].toHandLandmarks(); ok {
		t.Error("hand with a single landmark was accepted")
	}
}
