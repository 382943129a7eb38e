// Package overlay manages the header strip of selectable tool swatches
// rendered along the top of the output frame.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocv.io/x/gocv"
)

// StripHeight is the pixel height of the header strip.
const StripHeight = 100

// Tool is a selectable drawing tool: a brush color or the eraser.
type Tool struct {
	Name   string
	Color  color.RGBA
	Eraser bool
}

// Region is a screen area of the header strip bound to a tool.
type Region struct {
	Bounds image.Rectangle
	Tool   Tool
}

// defaultTools is the palette, left to right. The eraser paints the
// canvas background color so strokes can be removed.
var defaultTools = []Tool{
	{Name: "magenta", Color: color.RGBA{R: 255, B: 255, A: 255}},
	{Name: "blue", Color: color.RGBA{B: 255, A: 255}},
	{Name: "green", Color: color.RGBA{G: 255, A: 255}},
	{Name: "eraser", Eraser: true},
}

// LayoutRegions computes the tool regions for a strip of the given
// width: one column per tool, inset so the gaps between swatches stay
// dead zones for selection.
func LayoutRegions(width int) []Region {
	n := len(defaultTools)
	colWidth := width / n
	inset := colWidth / 10

	regions := make([]Region, n)
	for i, tool := range defaultTools {
		left := i * colWidth
		regions[i] = Region{
			Bounds: image.Rect(left+inset, 0, left+colWidth-inset, StripHeight),
			Tool:   tool,
		}
	}
	return regions
}

// Set holds the loaded header images and tool regions. One header image
// exists per tool; the image for the active tool is blitted onto each
// output frame.
type Set struct {
	width   int
	regions []Region
	headers []gocv.Mat
	active  int
}

// LoadDir builds a Set from pre-rendered header images in dir, one per
// tool in lexical filename order, resized to the strip dimensions.
func LoadDir(dir string, width int) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read header dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) != len(defaultTools) {
		return nil, fmt.Errorf("header dir %s: found %d images, need %d", dir, len(names), len(defaultTools))
	}

	s := &Set{
		width:   width,
		regions: LayoutRegions(width),
	}

	for _, name := range names {
		img := gocv.IMRead(filepath.Join(dir, name), gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			s.Close()
			return nil, fmt.Errorf("decode header image %s", name)
		}
		if img.Cols() != width || img.Rows() != StripHeight {
			resized := gocv.NewMat()
			gocv.Resize(img, &resized, image.Pt(width, StripHeight), 0, 0, gocv.InterpolationLinear)
			img.Close()
			img = resized
		}
		s.headers = append(s.headers, img)
	}

	return s, nil
}

// Synthetic builds a Set with generated swatch headers, used when no
// asset directory is available. Each header shows the full palette with
// its own tool highlighted.
func Synthetic(width int) *Set {
	s := &Set{
		width:   width,
		regions: LayoutRegions(width),
	}

	for active := range defaultTools {
		header := gocv.NewMatWithSizeFromScalar(
			gocv.NewScalar(40, 40, 40, 0), StripHeight, width, gocv.MatTypeCV8UC3)

		for i, r := range s.regions {
			swatch := r.Bounds.Inset(8)
			if r.Tool.Eraser {
				gocv.Rectangle(&header, swatch, color.RGBA{R: 230, G: 230, B: 230, A: 255}, 2)
				gocv.PutText(&header, "ERASER",
					image.Pt(swatch.Min.X+10, swatch.Min.Y+swatch.Dy()/2+5),
					gocv.FontHersheyPlain, 1.5, color.RGBA{R: 230, G: 230, B: 230, A: 255}, 2)
			} else {
				gocv.Rectangle(&header, swatch, r.Tool.Color, -1)
			}
			if i == active {
				gocv.Rectangle(&header, swatch, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 3)
			}
		}

		s.headers = append(s.headers, header)
	}

	return s
}

// Regions returns the tool regions of the strip.
func (s *Set) Regions() []Region {
	return s.regions
}

// HitTest returns the index of the region containing pt, if any.
// Points in the strip but between swatches hit nothing.
func (s *Set) HitTest(pt image.Point) (int, bool) {
	for i, r := range s.regions {
		if pt.In(r.Bounds) {
			return i, true
		}
	}
	return 0, false
}

// Tool returns the tool bound to region i.
func (s *Set) Tool(i int) Tool {
	return s.regions[i].Tool
}

// Active returns the index of the active tool region.
func (s *Set) Active() int {
	return s.active
}

// SetActive marks region i as the active tool, selecting which header
// image Apply blits.
func (s *Set) SetActive(i int) {
	if i >= 0 && i < len(s.headers) {
		s.active = i
	}
}

// ActiveTool returns the active tool.
func (s *Set) ActiveTool() Tool {
	return s.regions[s.active].Tool
}

// Apply blits the active header image over the top strip of frame.
func (s *Set) Apply(frame *gocv.Mat) {
	if frame.Cols() < s.width || frame.Rows() < StripHeight {
		return
	}
	roi := frame.Region(image.Rect(0, 0, s.width, StripHeight))
	defer roi.Close()
	s.headers[s.active].CopyTo(&roi)
}

// Close releases the header images.
func (s *Set) Close() {
	for i := range s.headers {
		s.headers[i].Close()
	}
	s.headers = nil
}
