package deviceframe

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestSizeIsPositive(t *testing.T) {
	tests := []struct {
		s    Size
		want bool
	}{
		{Sz(1, 1), true},
		{Sz(0, 10), false},
		{Sz(10, -1), false},
		{Sz(math.Inf(1), 10), false},
		{Sz(math.NaN(), 10), false},
	}
	for _, tt := range tests {
		if got := tt.s.IsPositive(); got != tt.want {
			t.Errorf("%+v.IsPositive() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestSizeSwapAndContains(t *testing.T) {
	s := Sz(360, 800)
	if got := s.Swap(); got != Sz(800, 360) {
		t.Errorf("Swap = %+v", got)
	}
	if !Sz(406, 956).Contains(s) {
		t.Error("larger size should contain smaller")
	}
	if s.Contains(Sz(361, 10)) {
		t.Error("narrower size should not contain wider")
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(10, 20, 100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("size = %vx%v", r.Width(), r.Height())
	}
	if r.Center() != gg.Pt(60, 45) {
		t.Errorf("Center = %v", r.Center())
	}
	if r.BottomCenter() != gg.Pt(60, 70) {
		t.Errorf("BottomCenter = %v", r.BottomCenter())
	}
	if got := r.Translate(-10, -20); got != RectXYWH(0, 0, 100, 50) {
		t.Errorf("Translate = %+v", got)
	}
	if got := r.Deflate(Insets(1, 2, 3, 4)); got != (Rect{Left: 11, Top: 22, Right: 107, Bottom: 66}) {
		t.Errorf("Deflate = %+v", got)
	}
	if got := RectFromOrigin(gg.Pt(5, 5), Sz(2, 3)); got != (Rect{Left: 5, Top: 5, Right: 7, Bottom: 8}) {
		t.Errorf("RectFromOrigin = %+v", got)
	}
	if !(Rect{Left: 5, Top: 5, Right: 5, Bottom: 10}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestRectWithin(t *testing.T) {
	outer := RectXYWH(0, 0, 100, 100)
	if !RectXYWH(10, 10, 80, 80).Within(outer, 0) {
		t.Error("inner rect should be within")
	}
	if RectXYWH(-1, 0, 10, 10).Within(outer, 0) {
		t.Error("rect poking out should not be within")
	}
	if !RectXYWH(-0.1, 0, 10, 10).Within(outer, 0.5) {
		t.Error("slack should absorb rounding")
	}
}

func TestEdgeInsets(t *testing.T) {
	in := Insets(6, 6, 6, 0)
	if in.Horizontal() != 12 || in.Vertical() != 6 {
		t.Errorf("Horizontal/Vertical = %v/%v", in.Horizontal(), in.Vertical())
	}
	if ZeroInsets.Horizontal() != 0 || ZeroInsets.Vertical() != 0 {
		t.Error("ZeroInsets should be empty")
	}
	if got := in.Add(UniformInsets(1)); got != Insets(7, 7, 7, 1) {
		t.Errorf("Add = %+v", got)
	}
}
