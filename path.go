package deviceframe

import (
	"github.com/gogpu/gg"
)

// FillRule decides which regions of a self-overlapping path are inside.
type FillRule uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota
	// FillEvenOdd uses the even-odd rule. Baked screen outlines use it to
	// punch camera holes through the display silhouette.
	FillEvenOdd
)

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	if r == FillEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Path is a closed vector outline built from gg path elements plus a fill
// rule. Screen paths handed out by DeviceInfo are clones, so callers may
// modify them freely. The zero Path is an empty non-zero path.
type Path struct {
	p    *gg.Path
	rule FillRule
}

// path returns the outline, allocating it on first use.
func (p *Path) path() *gg.Path {
	if p.p == nil {
		p.p = gg.NewPath()
	}
	return p.p
}

// NewPath creates an empty non-zero path.
func NewPath() *Path {
	return &Path{p: gg.NewPath()}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.path().MoveTo(x, y)
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.path().LineTo(x, y)
	return p
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.path().CubicTo(c1x, c1y, c2x, c2y, x, y)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.path().Close()
	return p
}

// AddRect adds r as a closed subpath.
func (p *Path) AddRect(r Rect) *Path {
	p.path().Rectangle(r.Left, r.Top, r.Width(), r.Height())
	return p
}

// AddRoundRect adds r with circular corners of the given radius. The radius
// is clamped to half the shorter side.
func (p *Path) AddRoundRect(r Rect, radius float64) *Path {
	if radius <= 0 {
		return p.AddRect(r)
	}
	p.path().RoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), radius)
	return p
}

// AddOval adds the ellipse inscribed in r.
func (p *Path) AddOval(r Rect) *Path {
	c := r.Center()
	p.path().Ellipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	return p
}

// AddCircle adds a circle centred at c.
func (p *Path) AddCircle(c gg.Point, radius float64) *Path {
	p.path().Circle(c.X, c.Y, radius)
	return p
}

// SetFillRule changes the fill rule.
func (p *Path) SetFillRule(rule FillRule) *Path {
	p.rule = rule
	return p
}

// FillRule returns the fill rule.
func (p *Path) FillRule() FillRule { return p.rule }

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool { return p.p == nil || len(p.p.Elements()) == 0 }

// Elements returns the underlying path elements. The slice must not be
// modified.
func (p *Path) Elements() []gg.PathElement {
	if p.p == nil {
		return nil
	}
	return p.p.Elements()
}

// Bounds returns the tight bounding box, using curve extrema.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	return rectFromGG(p.p.BoundingBox())
}

// Contains reports whether pt is inside the path under its fill rule.
func (p *Path) Contains(pt gg.Point) bool {
	if p.p == nil {
		return false
	}
	w := p.p.Winding(pt)
	if p.rule == FillEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Translate returns a copy moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	if p.p == nil {
		return &Path{rule: p.rule}
	}
	return &Path{p: p.p.Transform(gg.Translate(dx, dy)), rule: p.rule}
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p.p == nil {
		return &Path{rule: p.rule}
	}
	return &Path{p: p.p.Clone(), rule: p.rule}
}

// GG returns a copy of the outline as a gg path, for backends that draw
// through a gg.Context.
func (p *Path) GG() *gg.Path {
	if p.p == nil {
		return gg.NewPath()
	}
	return p.p.Clone()
}

// RoundRectPath is a shorthand for NewPath().AddRoundRect(r, radius).
func RoundRectPath(r Rect, radius float64) *Path {
	return NewPath().AddRoundRect(r, radius)
}
