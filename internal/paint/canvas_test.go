package paint

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func TestCanvas_CompositeUntouchedRegionsUnchanged(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	canvas := NewCanvas(320, 240)
	defer canvas.Close()

	// A stroke in the upper-left corner only.
	canvas.Line(image.Pt(10, 10), image.Pt(60, 10), color.RGBA{B: 255, A: 255}, 5)

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 140, 200, 0), 240, 320, gocv.MatTypeCV8UC3)
	defer frame.Close()

	canvas.Composite(&frame)

	// Pixels never drawn on keep the live-frame value.
	for _, pt := range []image.Point{{200, 200}, {319, 239}, {10, 100}} {
		v := frame.GetVecbAt(pt.Y, pt.X)
		if v[0] != 90 || v[1] != 140 || v[2] != 200 {
			t.Errorf("untouched pixel %v = (%d,%d,%d), want (90,140,200)", pt, v[0], v[1], v[2])
		}
	}
}

func TestCanvas_CompositeStrokesAreOpaque(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	canvas := NewCanvas(320, 240)
	defer canvas.Close()

	// gocv draws RGBA red as BGR (0,0,255) in the Mat.
	canvas.Line(image.Pt(50, 120), image.Pt(250, 120), color.RGBA{R: 255, A: 255}, 8)

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 140, 200, 0), 240, 320, gocv.MatTypeCV8UC3)
	defer frame.Close()

	canvas.Composite(&frame)

	v := frame.GetVecbAt(120, 150)
	if v[0] != 0 || v[1] != 0 || v[2] != 255 {
		t.Errorf("stroke pixel = (%d,%d,%d), want pure red (0,0,255)", v[0], v[1], v[2])
	}
}

func TestCanvas_CompositeIsIdempotentOnEmptyCanvas(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	canvas := NewCanvas(160, 120)
	defer canvas.Close()

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(33, 66, 99, 0), 120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	canvas.Composite(&frame)
	canvas.Composite(&frame)

	v := frame.GetVecbAt(60, 80)
	if v[0] != 33 || v[1] != 66 || v[2] != 99 {
		t.Errorf("pixel after empty composite = (%d,%d,%d), want (33,66,99)", v[0], v[1], v[2])
	}
}

func TestCanvas_Drawn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	canvas := NewCanvas(160, 120)
	defer canvas.Close()

	if canvas.Drawn(image.Pt(80, 60)) {
		t.Error("fresh canvas should have no drawn pixels")
	}

	canvas.Line(image.Pt(40, 60), image.Pt(120, 60), color.RGBA{G: 255, A: 255}, 3)

	if !canvas.Drawn(image.Pt(80, 60)) {
		t.Error("expected pixel on the stroke to be drawn")
	}
	if canvas.Drawn(image.Pt(80, 10)) {
		t.Error("pixel off the stroke reported drawn")
	}

	// Out-of-bounds queries are false, not a panic.
	if canvas.Drawn(image.Pt(-1, 0)) || canvas.Drawn(image.Pt(160, 120)) {
		t.Error("out-of-bounds pixel reported drawn")
	}
}
