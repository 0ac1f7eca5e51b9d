package deviceframe

import (
	"math"

	"github.com/gogpu/gg"
)

// Size is a width and height pair in logical pixels.
type Size struct {
	Width, Height float64
}

// Sz is a convenience constructor for Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsPositive reports whether both dimensions are finite and greater than zero.
func (s Size) IsPositive() bool {
	return s.Width > 0 && s.Height > 0 &&
		!math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Swap returns the size with width and height exchanged.
func (s Size) Swap() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Contains reports whether s is at least as large as other on both axes.
func (s Size) Contains(other Size) bool {
	return s.Width >= other.Width && s.Height >= other.Height
}

// Rect is an axis-aligned rectangle described by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH creates a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// RectFromOrigin creates a rectangle from an origin point and a size.
func RectFromOrigin(origin gg.Point, size Size) Rect {
	return RectXYWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the rectangle extent.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// TopLeft returns the origin corner.
func (r Rect) TopLeft() gg.Point { return gg.Pt(r.Left, r.Top) }

// Center returns the midpoint.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// BottomCenter returns the midpoint of the bottom edge.
func (r Rect) BottomCenter() gg.Point {
	return gg.Pt((r.Left+r.Right)/2, r.Bottom)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Deflate shrinks the rectangle by the given insets.
func (r Rect) Deflate(in EdgeInsets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Within reports whether r lies inside outer, allowing eps of slack for
// rounding in baked coordinates.
func (r Rect) Within(outer Rect, eps float64) bool {
	return r.Left >= outer.Left-eps && r.Top >= outer.Top-eps &&
		r.Right <= outer.Right+eps && r.Bottom <= outer.Bottom+eps
}

func rectFromGG(r gg.Rect) Rect {
	return Rect{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}
