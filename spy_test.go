package deviceframe

import (
	"fmt"
	"image"
	"math"
)

// spyCall is one recorded Canvas call.
type spyCall struct {
	Op     string
	Args   []float64
	Path   *Path
	Paint  Paint
	Stroke Stroke
	Grad   RadialGradient
	Rect   Rect
	Size   Size
}

func (c spyCall) String() string {
	if len(c.Args) == 0 {
		return c.Op
	}
	s := c.Op + "("
	for i, a := range c.Args {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%g", math.Round(a*1000)/1000)
	}
	return s + ")"
}

// spyCanvas records calls in order. Size() is fixed at construction.
type spyCanvas struct {
	size  Size
	calls []spyCall
}

func newSpy(w, h float64) *spyCanvas {
	return &spyCanvas{size: Sz(w, h)}
}

func (s *spyCanvas) add(c spyCall) { s.calls = append(s.calls, c) }

func (s *spyCanvas) Size() Size { return s.size }
func (s *spyCanvas) Save()      { s.add(spyCall{Op: "save"}) }
func (s *spyCanvas) Restore()   { s.add(spyCall{Op: "restore"}) }

func (s *spyCanvas) Translate(dx, dy float64) {
	s.add(spyCall{Op: "translate", Args: []float64{dx, dy}})
}

func (s *spyCanvas) Rotate(r float64) {
	s.add(spyCall{Op: "rotate", Args: []float64{r}})
}

func (s *spyCanvas) ClipPath(p *Path) { s.add(spyCall{Op: "clip", Path: p}) }

func (s *spyCanvas) FillPath(p *Path, paint Paint) {
	s.add(spyCall{Op: "fill", Path: p, Paint: paint})
}

func (s *spyCanvas) StrokePath(p *Path, st Stroke) {
	s.add(spyCall{Op: "stroke", Path: p, Stroke: st})
}

func (s *spyCanvas) FillGradient(p *Path, g RadialGradient) {
	s.add(spyCall{Op: "gradient", Path: p, Grad: g})
}

func (s *spyCanvas) DrawImage(_ image.Image, dst Rect) {
	s.add(spyCall{Op: "image", Rect: dst})
}

func (s *spyCanvas) ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.String()
	}
	return out
}

func (s *spyCanvas) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (s *spyCanvas) filter(op string) []spyCall {
	var out []spyCall
	for _, c := range s.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func nearly(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func rectNearly(a, b Rect, eps float64) bool {
	return math.Abs(a.Left-b.Left) <= eps && math.Abs(a.Top-b.Top) <= eps &&
		math.Abs(a.Right-b.Right) <= eps && math.Abs(a.Bottom-b.Bottom) <= eps
}
