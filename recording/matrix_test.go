package recording

import (
	"math"
	"testing"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointEqual(a, b gg.Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() should return identity matrix")
	}
	if got := m.Apply(gg.Pt(3, 4)); !pointEqual(got, gg.Pt(3, 4)) {
		t.Errorf("Identity().Apply = %v", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20)
	if got := m.Apply(gg.Pt(5, 5)); !pointEqual(got, gg.Pt(15, 25)) {
		t.Errorf("Translate(10, 20).Apply(5, 5) = %v, want (15, 25)", got)
	}
	if m.IsIdentity() {
		t.Error("translation should not be identity")
	}
}

func TestRotate(t *testing.T) {
	// A quarter turn clockwise on screen maps +X to +Y.
	m := Rotate(math.Pi / 2)
	if got := m.Apply(gg.Pt(1, 0)); !pointEqual(got, gg.Pt(0, 1)) {
		t.Errorf("Rotate(π/2).Apply(1, 0) = %v, want (0, 1)", got)
	}
}

func TestMultiply(t *testing.T) {
	// Landscape container: translate down by the frame width, then turn
	// counter-clockwise. The frame's top-left lands at the bottom-left.
	m := Translate(0, 406).Multiply(Rotate(-math.Pi / 2))
	tests := []struct {
		in, want gg.Point
	}{
		{gg.Pt(0, 0), gg.Pt(0, 406)},
		{gg.Pt(406, 0), gg.Pt(0, 0)},
		{gg.Pt(0, 956), gg.Pt(956, 406)},
	}
	for _, tt := range tests {
		if got := m.Apply(tt.in); !pointEqual(got, tt.want) {
			t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvert(t *testing.T) {
	m := Translate(10, 20).Multiply(Rotate(0.3))
	if got := m.Multiply(m.Invert()); !got.IsIdentity() {
		t.Errorf("m * m^-1 = %+v, want identity", got)
	}
}

func TestInvert_Singular(t *testing.T) {
	m := Matrix{A: 1, B: 2, D: 2, E: 4}
	if !m.Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestDeterminantAndScale(t *testing.T) {
	m := Rotate(1.1)
	if !almostEqual(m.Determinant(), 1) {
		t.Errorf("Determinant() = %v, want 1", m.Determinant())
	}
	if !almostEqual(m.ScaleFactor(), 1) {
		t.Errorf("ScaleFactor() = %v, want 1", m.ScaleFactor())
	}
}

func TestGG(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.5))
	g := m.GG()
	if g.A != m.A || g.B != m.B || g.C != m.C || g.D != m.D || g.E != m.E || g.F != m.F {
		t.Errorf("GG() = %+v, want %+v", g, m)
	}
}

func TestSVG(t *testing.T) {
	tests := []struct {
		m    Matrix
		want string
	}{
		{Identity(), "matrix(1 0 0 1 0 0)"},
		{Translate(21, 86.5), "matrix(1 0 0 1 21 86.5)"},
		{Rotate(-math.Pi / 2), "matrix(0 -1 1 0 0 0)"},
		{Matrix{A: 0.33333, E: 2}, "matrix(0.3333 0 0 2 0 0)"},
	}
	for _, tt := range tests {
		if got := tt.m.SVG(); got != tt.want {
			t.Errorf("SVG() = %q, want %q", got, tt.want)
		}
	}
}

func TestApplyRect(t *testing.T) {
	r := deviceframe.RectXYWH(0, 0, 360, 800)
	got := Translate(0, 956).Multiply(Rotate(-math.Pi / 2)).ApplyRect(r)
	want := deviceframe.Rect{Left: 0, Top: 596, Right: 800, Bottom: 956}
	if math.Abs(got.Left-want.Left) > 1e-9 || math.Abs(got.Top-want.Top) > 1e-9 ||
		math.Abs(got.Right-want.Right) > 1e-9 || math.Abs(got.Bottom-want.Bottom) > 1e-9 {
		t.Errorf("ApplyRect = %+v, want %+v", got, want)
	}
}
