package paint

import (
	"image"
	"image/color"

	"github.com/ayusman/rangoli/internal/overlay"
)

// Pinch spread range, in pixels, mapped onto the brush size bounds.
// Spreads outside the range clamp to the nearest bound.
const (
	SpreadMinPx = 40.0
	SpreadMaxPx = 250.0
)

// Config bounds the brush sizes reachable through the sizing gesture.
type Config struct {
	BrushMin   int
	BrushMax   int
	BrushSize  int
	EraserSize int
}

// Controller owns the canvas and the state carried across frames: the
// previous fingertip position (while a stroke is active), the selected
// tool, and the brush size. Update applies exactly one Action per frame.
type Controller struct {
	canvas  *Canvas
	tools   *overlay.Set
	cfg     Config
	prev    image.Point
	hasPrev bool
	tool    overlay.Tool
	brush   int
}

// NewController creates a controller drawing onto canvas with the tool
// palette of tools. The initial tool is the palette's active region.
func NewController(canvas *Canvas, tools *overlay.Set, cfg Config) *Controller {
	brush := cfg.BrushSize
	if brush < cfg.BrushMin {
		brush = cfg.BrushMin
	}
	if brush > cfg.BrushMax {
		brush = cfg.BrushMax
	}
	return &Controller{
		canvas: canvas,
		tools:  tools,
		cfg:    cfg,
		tool:   tools.ActiveTool(),
		brush:  brush,
	}
}

// Update applies one frame's action.
//
// A stroke segment is drawn only when the previous and current fingertip
// positions are both known and the frame is a draw frame. Every other
// outcome invalidates the previous-position memory, so a fresh draw
// gesture (or a briefly lost hand) never connects to a stale point.
func (c *Controller) Update(act Action) {
	switch act.Mode {
	case ModeDraw:
		clr := c.tool.Color
		thickness := c.brush
		if c.tool.Eraser {
			clr = color.RGBA{}
			thickness = c.cfg.EraserSize
		}
		if c.hasPrev {
			c.canvas.Line(c.prev, act.Tip, clr, thickness)
		}
		c.prev = act.Tip
		c.hasPrev = true

	case ModeSelect:
		if i, ok := c.tools.HitTest(act.Tip); ok {
			c.tools.SetActive(i)
			c.tool = c.tools.Tool(i)
		}
		c.hasPrev = false

	case ModeSize:
		c.brush = brushFor(act.Spread, c.cfg.BrushMin, c.cfg.BrushMax)
		c.hasPrev = false

	default:
		c.hasPrev = false
	}
}

// Suspend invalidates the previous-position memory. Called for frames
// with no usable hand and while painting is disabled.
func (c *Controller) Suspend() {
	c.hasPrev = false
}

// Tool returns the active tool.
func (c *Controller) Tool() overlay.Tool {
	return c.tool
}

// StrokeSize returns the thickness the next draw frame would use: the
// eraser size while the eraser is active, the brush size otherwise.
// The cursor ring is drawn at this size so it matches the footprint of
// the stroke it previews.
func (c *Controller) StrokeSize() int {
	if c.tool.Eraser {
		return c.cfg.EraserSize
	}
	return c.brush
}

// Canvas returns the canvas the controller draws on.
func (c *Controller) Canvas() *Canvas {
	return c.canvas
}

// brushFor maps a pinch spread in pixels linearly onto [min, max].
// Monotonic in spread and always within the bounds.
func brushFor(spread float64, min, max int) int {
	if spread <= SpreadMinPx {
		return min
	}
	if spread >= SpreadMaxPx {
		return max
	}
	t := (spread - SpreadMinPx) / (SpreadMaxPx - SpreadMinPx)
	return min + int(t*float64(max-min))
}
