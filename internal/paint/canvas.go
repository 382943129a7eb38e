package paint

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// drawnThreshold separates drawn canvas pixels from the black
// background when building the compositing mask.
const drawnThreshold = 10

// Canvas is the persistent raster buffer strokes accumulate on. It has
// the pixel dimensions of the video frame, starts out black, and is
// never reset during a run. The eraser draws in the background color,
// which removes strokes.
type Canvas struct {
	mat    gocv.Mat
	width  int
	height int
}

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		mat:    gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3),
		width:  width,
		height: height,
	}
}

// Line draws a stroke segment onto the canvas.
func (c *Canvas) Line(from, to image.Point, clr color.RGBA, thickness int) {
	gocv.Line(&c.mat, from, to, clr, thickness)
}

// Composite merges the canvas into frame in place: drawn pixels replace
// the video pixel, untouched pixels leave it unchanged. The canvas is
// thresholded to a binary mask, the mask is punched out of the frame,
// and the canvas is OR-ed into the hole, so strokes are fully opaque.
func (c *Canvas) Composite(frame *gocv.Mat) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(c.mat, &gray, gocv.ColorBGRToGray)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(gray, &mask, drawnThreshold, 255, gocv.ThresholdBinaryInv)

	maskBGR := gocv.NewMat()
	defer maskBGR.Close()
	gocv.CvtColor(mask, &maskBGR, gocv.ColorGrayToBGR)

	gocv.BitwiseAnd(*frame, maskBGR, frame)
	gocv.BitwiseOr(*frame, c.mat, frame)
}

// Drawn reports whether the canvas pixel at pt holds a stroke.
func (c *Canvas) Drawn(pt image.Point) bool {
	if pt.X < 0 || pt.Y < 0 || pt.X >= c.width || pt.Y >= c.height {
		return false
	}
	v := c.mat.GetVecbAt(pt.Y, pt.X)
	return int(v[0])+int(v[1])+int(v[2]) > drawnThreshold
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Mat exposes the underlying buffer.
func (c *Canvas) Mat() *gocv.Mat { return &c.mat }

// Close releases the canvas buffer.
func (c *Canvas) Close() {
	c.mat.Close()
}
