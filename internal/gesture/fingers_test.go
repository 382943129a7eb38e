package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/rangoli/internal/detector"
)

func TestClassify_PresetPoses(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want FingerVector
	}{
		{
			name: "fist has no fingers raised",
			hand: detector.FistLandmarks(),
			want: FingerVector{},
		},
		{
			name: "index up is the draw pose",
			hand: detector.IndexUpLandmarks(),
			want: FingerVector{Index: true},
		},
		{
			name: "index and middle up is the selection pose",
			hand: detector.SelectionLandmarks(),
			want: FingerVector{Index: true, Middle: true},
		},
		{
			name: "pinch raises thumb and index",
			hand: detector.PinchLandmarks(0.15),
			want: FingerVector{Thumb: true, Index: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.hand)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_TipAboveJointRule(t *testing.T) {
	tests := []struct {
		name string
		tipY float64
		want bool
	}{
		{name: "tip well above PIP", tipY: 0.40, want: true},
		{name: "tip just above tolerance", tipY: 0.52 - RaisedTolerance - 0.001, want: true},
		{name: "tip inside tolerance band", tipY: 0.52 - RaisedTolerance + 0.001, want: false},
		{name: "tip level with PIP", tipY: 0.52, want: false},
		{name: "tip below PIP", tipY: 0.60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := detector.FistLandmarks()
			hand.Points[detector.IndexPIP] = detector.Point3D{X: 0.48, Y: 0.52}
			hand.Points[detector.IndexTip] = detector.Point3D{X: 0.48, Y: tt.tipY}

			got := Classify(&hand)
			if got[Index] != tt.want {
				t.Errorf("index raised = %v, want %v (tipY=%f)", got[Index], tt.want, tt.tipY)
			}
		})
	}
}

func TestClassify_ThumbHandedness(t *testing.T) {
	// Thumb tip left of the IP joint: raised for a right hand, folded
	// for a left hand.
	hand := detector.FistLandmarks()
	hand.Points[detector.ThumbIP] = detector.Point3D{X: 0.40, Y: 0.65}
	hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.30, Y: 0.62}

	hand.Handedness = "Right"
	if got := Classify(&hand); !got[Thumb] {
		t.Error("right hand: thumb tip left of IP joint should be raised")
	}

	hand.Handedness = "Left"
	if got := Classify(&hand); got[Thumb] {
		t.Error("left hand: thumb tip left of IP joint should be folded")
	}

	// Missing handedness is treated as right.
	hand.Handedness = ""
	if got := Classify(&hand); !got[Thumb] {
		t.Error("missing handedness should classify like a right hand")
	}
}

func TestClassify_FailsClosed(t *testing.T) {
	t.Run("nil hand", func(t *testing.T) {
		if got := Classify(nil); !got.None() {
			t.Errorf("Classify(nil) = %v, want all fingers down", got)
		}
	})

	t.Run("NaN coordinates", func(t *testing.T) {
		hand := detector.IndexUpLandmarks()
		hand.Points[detector.IndexTip].Y = math.NaN()
		if got := Classify(&hand); !got.None() {
			t.Errorf("Classify() with NaN = %v, want all fingers down", got)
		}
	})

	t.Run("collapsed landmarks", func(t *testing.T) {
		var hand detector.HandLandmarks
		hand.Handedness = "Right"
		// All points at the zero value
		if got := Classify(&hand); !got.None() {
			t.Errorf("Classify() on degenerate hand = %v, want all fingers down", got)
		}
	})
}

func TestFingerVector_None(t *testing.T) {
	var fist FingerVector
	if !fist.None() {
		t.Error("zero vector should report None")
	}

	open := FingerVector{true, true, true, true, true}
	if open.None() {
		t.Error("open hand should not report None")
	}
}
