// Package placement maps pointer positions on a rendered page to
// resolution-independent field placements and back.
//
// Positions are stored as ratios of the page size so a placement made at one
// zoom level lands on the same spot of the page content at any other zoom.
// Box sizes stay in pixels at the zoom level active during placement.
package placement

import (
	"math"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
)

// Point : pointer position relative to the rendered page's top-left corner
type Point struct {
	X float64
	Y float64
}

// Size : width and height in pixels
type Size struct {
	Width  float64
	Height float64
}

// Rect : measured size of a rendered page element
type Rect struct {
	Width  float64
	Height float64
}

// Known reports whether the page has finished measuring itself
func (r Rect) Known() bool {
	return r.Width > 0 && r.Height > 0 && !math.IsInf(r.Width, 0) && !math.IsInf(r.Height, 0)
}

// Scale returns the rect multiplied by factor on both axes
func (r Rect) Scale(factor float64) Rect {
	return Rect{Width: r.Width * factor, Height: r.Height * factor}
}

// Ratio : top-left corner of a box as a fraction of the page width/height
type Ratio struct {
	X float64
	Y float64
}

// Placed : stored placement of a field
type Placed struct {
	XRatio float64
	YRatio float64
	Width  float64
	Height float64
}

// Box : pixel box resolved against a concrete page size
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

var defaultSizes = map[model.FieldType]Size{
	model.FieldSignature: {Width: 150, Height: 50},
	model.FieldDate:      {Width: 120, Height: 24},
	model.FieldText:      {Width: 150, Height: 28},
}

// DefaultSize returns the box size used for a new field of type t.
// The second result is false for unknown types.
func DefaultSize(t model.FieldType) (Size, bool) {
	s, ok := defaultSizes[t]
	return s, ok
}

// PlaceField centres a box of the given size on the click, clamps it inside the
// page and converts the clamped corner to page ratios. It returns false when the
// page size is not known yet.
func PlaceField(click Point, page Rect, box Size) (Ratio, bool) {
	if !page.Known() {
		return Ratio{}, false
	}

	left := clamp(click.X-box.Width/2, page.Width-box.Width)
	top := clamp(click.Y-box.Height/2, page.Height-box.Height)

	return Ratio{
		X: left / page.Width,
		Y: top / page.Height,
	}, true
}

// ResolveBox converts a stored placement into pixels for the current page size
func ResolveBox(p Placed, current Rect) Box {
	return Box{
		Left:   p.XRatio * current.Width,
		Top:    p.YRatio * current.Height,
		Width:  p.Width,
		Height: p.Height,
	}
}

// FromField extracts the placement part of a field
func FromField(f model.Field) Placed {
	return Placed{XRatio: f.XRatio, YRatio: f.YRatio, Width: f.Width, Height: f.Height}
}

// clamp keeps v in [0, upper]; when the box is larger than the page upper is
// negative and the box is pinned to the page origin.
func clamp(v, upper float64) float64 {
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}
