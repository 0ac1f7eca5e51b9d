package deviceframe

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestSideButtonRects(t *testing.T) {
	bounds := Rect{Left: 0, Top: 0, Right: 100, Bottom: 400}
	gaps := []float64{100, 80, 15, 80}

	tests := []struct {
		name     string
		side     SideButtonSide
		inverted bool
		want     []Rect
	}{
		{
			name: "right",
			side: SideRight,
			want: []Rect{
				{Left: 96, Top: 100, Right: 104, Bottom: 180},
				{Left: 96, Top: 195, Right: 104, Bottom: 275},
			},
		},
		{
			name:     "right inverted",
			side:     SideRight,
			inverted: true,
			want: []Rect{
				{Left: 96, Top: 220, Right: 104, Bottom: 300},
				{Left: 96, Top: 125, Right: 104, Bottom: 205},
			},
		},
		{
			name: "left",
			side: SideLeft,
			want: []Rect{
				{Left: -4, Top: 100, Right: 4, Bottom: 180},
				{Left: -4, Top: 195, Right: 4, Bottom: 275},
			},
		},
		{
			name:     "top inverted",
			side:     SideTop,
			inverted: true,
			want: []Rect{
				{Left: -80, Top: -4, Right: 0, Bottom: 4},
				{Left: -175, Top: -4, Right: -95, Bottom: 4},
			},
		},
		{
			name: "bottom",
			side: SideBottom,
			want: []Rect{
				{Left: 100, Top: 396, Right: 180, Bottom: 404},
				{Left: 195, Top: 396, Right: 275, Bottom: 404},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SideButtonRects(bounds, 4, tt.side, tt.inverted, gaps)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rects, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSideButtonRectsShortList(t *testing.T) {
	for _, gaps := range [][]float64{nil, {}, {50}} {
		if got := SideButtonRects(RectXYWH(0, 0, 10, 10), 4, SideRight, false, gaps); len(got) != 0 {
			t.Errorf("gaps %v: got %d rects, want none", gaps, len(got))
		}
	}
}

func TestDrawSideButtonsUsesButtonRadius(t *testing.T) {
	c := newSpy(100, 400)
	DrawSideButtons(c, RectXYWH(0, 0, 100, 400), ARGB(0xff121515), 4, SideRight, false, []float64{100, 80})
	fills := c.filter("fill")
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	if got := fills[0].Path.Bounds(); !rectNearly(got, Rect{Left: 96, Top: 100, Right: 104, Bottom: 180}, 1e-6) {
		t.Errorf("button bounds = %+v", got)
	}
}

func TestDrawCamera(t *testing.T) {
	c := newSpy(200, 200)
	DrawCamera(c, gg.Pt(100, 100), DefaultCamera())

	fills := c.filter("fill")
	if len(fills) != 3 {
		t.Fatalf("got %d fills, want 3", len(fills))
	}
	want := []Rect{
		{Left: 87, Top: 87, Right: 113, Bottom: 113},
		{Left: 92, Top: 92, Right: 108, Bottom: 108},
		{Left: 100 - 8.0/3, Top: 98 - 8.0/3, Right: 100 + 8.0/3, Bottom: 98 + 8.0/3},
	}
	for i, f := range fills {
		if got := f.Path.Bounds(); !rectNearly(got, want[i], 1e-6) {
			t.Errorf("circle %d bounds = %+v, want %+v", i, got, want[i])
		}
	}
	if fills[2].Paint.Color != ARGB(0xff465256) {
		t.Errorf("highlight color = %+v", fills[2].Paint.Color)
	}
}

func TestDrawDefaultWallpaper(t *testing.T) {
	c := newSpy(400, 400)
	DrawDefaultWallpaper(c, MacOS, RectXYWH(10, 20, 300, 200))

	grads := c.filter("gradient")
	if len(grads) != 1 {
		t.Fatalf("got %d gradients, want 1", len(grads))
	}
	g := grads[0].Grad
	if g.Center != gg.Pt(0, 200) || g.Radius != 300 {
		t.Errorf("gradient center %v radius %v, want (0,200) 300", g.Center, g.Radius)
	}
	if len(g.Stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(g.Stops))
	}
	for i, want := range []float64{0, 1.0 / 3, 2.0 / 3, 1} {
		if !nearly(g.Stops[i].Offset, want) {
			t.Errorf("stop %d offset = %v, want %v", i, g.Stops[i].Offset, want)
		}
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	black := gg.RGBA{A: 1}
	g := RadialGradient{
		Center: gg.Pt(0, 0),
		Radius: 100,
		Stops: []GradientStop{
			{Offset: 0, Color: black},
			{Offset: 0.5, Color: gg.RGB(1, 0, 0)},
			{Offset: 1, Color: white},
		},
	}

	tests := []struct {
		name string
		pt   gg.Point
		want gg.RGBA
		eps  float64
	}{
		{"center", gg.Pt(0, 0), black, 1e-6},
		{"first boundary", gg.Pt(0, 50), gg.RGB(1, 0, 0), 1e-3},
		{"last boundary", gg.Pt(0, 100), white, 1e-3},
		{"beyond radius", gg.Pt(200, 0), white, 1e-6},
		// Half way between stops in linear light, converted back to sRGB.
		{"between black and red", gg.Pt(25, 0), gg.RGBA{R: 0.7354, A: 1}, 2e-3},
		{"between red and white", gg.Pt(0, 75), gg.RGBA{R: 1, G: 0.7354, B: 0.7354, A: 1}, 2e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.pt)
			if math.Abs(got.R-tt.want.R) > tt.eps || math.Abs(got.G-tt.want.G) > tt.eps ||
				math.Abs(got.B-tt.want.B) > tt.eps || math.Abs(got.A-tt.want.A) > tt.eps {
				t.Errorf("ColorAt(%v) = %+v, want %+v", tt.pt, got, tt.want)
			}
		})
	}

	if got := (RadialGradient{}).ColorAt(gg.Pt(1, 1)); got != (gg.RGBA{}) {
		t.Errorf("empty gradient = %+v", got)
	}
	if got := NewRadialGradient(gg.Pt(0, 0), 0, black, white).ColorAt(gg.Pt(5, 5)); got != black {
		t.Errorf("zero radius = %+v, want first stop", got)
	}
}

func TestDrawLinuxBarGlyphs(t *testing.T) {
	c := newSpy(400, 40)
	DrawWindowBar(c, Linux, RectXYWH(0, 0, 400, 40), 6)

	fills := c.filter("fill")
	if len(fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(fills))
	}
	if got, want := fills[1].Path.Bounds(), (Rect{Left: 345, Top: 9, Right: 367, Bottom: 31}); !rectNearly(got, want, 1e-6) {
		t.Errorf("close circle = %+v, want %+v", got, want)
	}

	want := []Rect{
		{Left: 352, Top: 15, Right: 360, Bottom: 23}, // close cross
		{Left: 352, Top: 15, Right: 360, Bottom: 23},
		{Left: 308, Top: 16, Right: 316, Bottom: 24}, // minimize square
		{Left: 308, Top: 24, Right: 316, Bottom: 24}, // maximize bar on the square's bottom edge
	}
	strokes := c.filter("stroke")
	if len(strokes) != len(want) {
		t.Fatalf("strokes = %d, want %d", len(strokes), len(want))
	}
	for i, st := range strokes {
		if got := st.Path.Bounds(); !rectNearly(got, want[i], 1e-6) {
			t.Errorf("stroke %d bounds = %+v, want %+v", i, got, want[i])
		}
		if st.Stroke.Width != 2 || st.Stroke.Color != white {
			t.Errorf("stroke %d = %+v, want 2px white", i, st.Stroke)
		}
	}
}

func TestDrawWindowBar(t *testing.T) {
	bar := RectXYWH(0, 0, 400, 40)
	tests := []struct {
		platform TargetPlatform
		fills    int
		strokes  int
	}{
		{MacOS, 4, 0},
		{Windows, 1, 4},
		{Linux, 2, 4},
		{Android, 0, 0},
		{IOS, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			c := newSpy(400, 40)
			DrawWindowBar(c, tt.platform, bar, 6)
			if got := c.count("fill"); got != tt.fills {
				t.Errorf("fills = %d, want %d", got, tt.fills)
			}
			if got := c.count("stroke"); got != tt.strokes {
				t.Errorf("strokes = %d, want %d", got, tt.strokes)
			}
		})
	}
}

func TestLinuxBarGlyphsDoNotOverlap(t *testing.T) {
	c := newSpy(400, 40)
	DrawWindowBar(c, Linux, RectXYWH(0, 0, 400, 40), 6)
	strokes := c.filter("stroke")
	maximize := strokes[2].Path.Bounds()
	minimize := strokes[3].Path.Bounds()
	if minimize.Right >= maximize.Left {
		t.Errorf("minimize glyph %+v overlaps maximize glyph %+v", minimize, maximize)
	}
}

func TestDrawMonitorFoot(t *testing.T) {
	c := newSpy(1000, 400)
	foot := RectXYWH(40, 100, 920, 280)
	DrawMonitorFoot(c, foot, MonitorFootStyle{
		Outer: ARGB(0xff3A4245), Inner: ARGB(0xff121515),
		BarWidth: 60, BarSpace: 36, BottomHeight: 6, BaseHeight: 40,
		BaseTopRadius: 12, BaseBottomRadius: 4,
	})
	fills := c.filter("fill")
	if len(fills) != 6 {
		t.Fatalf("got %d fills, want 6", len(fills))
	}
	for i, f := range fills {
		if b := f.Path.Bounds(); !b.Within(foot, 1e-6) {
			t.Errorf("fill %d bounds %+v outside foot %+v", i, b, foot)
		}
	}
}
