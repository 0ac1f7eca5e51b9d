package deviceframe

import (
	"testing"
)

func TestHandheldFrameSize(t *testing.T) {
	phone := NewHandheldPainter(DefaultPhoneStyle())
	if got := phone.FrameSize(Sz(360, 800)); got != Sz(406, 956) {
		t.Errorf("phone FrameSize = %+v, want 406x956", got)
	}
	tablet := NewHandheldPainter(DefaultTabletStyle())
	if got := tablet.FrameSize(Sz(800, 1280)); got != Sz(800+12+50+4, 1280+12+200+4) {
		t.Errorf("tablet FrameSize = %+v", got)
	}
}

func TestHandheldScreenPath(t *testing.T) {
	p := NewHandheldPainter(DefaultPhoneStyle())
	got := p.ScreenPath(Sz(360, 800)).Bounds()
	if !rectNearly(got, RectXYWH(21, 86, 360, 800), 1e-6) {
		t.Errorf("screen bounds = %+v", got)
	}
}

func TestHandheldRender(t *testing.T) {
	p := NewHandheldPainter(DefaultPhoneStyle())
	c := newSpy(406, 956)
	p.Render(c)

	fills := c.filter("fill")
	// 1 top button, 2 right buttons, outer and inner body, 3 camera circles
	if len(fills) != 8 {
		t.Fatalf("got %d fills, want 8", len(fills))
	}
	outer := fills[3].Path.Bounds()
	if !rectNearly(outer, Rect{Left: 0, Top: 4, Right: 402, Bottom: 952}, 1e-6) {
		t.Errorf("outer body = %+v", outer)
	}
	ring := fills[5].Path.Bounds()
	if !nearly(ring.Center().X, 201) || !nearly(ring.Center().Y, 50) {
		t.Errorf("camera center = %v, want (201,50)", ring.Center())
	}
}

func TestFrameContainsScreen(t *testing.T) {
	win := RectXYWH(0, 0, 1000, 600)
	painters := map[string]Painter{
		"phone":   NewHandheldPainter(DefaultPhoneStyle()),
		"tablet":  NewHandheldPainter(DefaultTabletStyle()),
		"laptop":  NewLaptopPainter(MacOS, win, DefaultLaptopStyle()),
		"monitor": NewMonitorPainter(Windows, win, DefaultMonitorStyle()),
	}
	sizes := []Size{Sz(360, 800), Sz(1000, 600), Sz(1920, 1080), Sz(1, 1)}
	for name, p := range painters {
		for _, s := range sizes {
			frame := p.FrameSize(s)
			if !frame.Contains(s) {
				t.Errorf("%s: FrameSize(%+v) = %+v is smaller than the screen", name, s, frame)
			}
			if s.Width < win.Width() || s.Height < win.Height() {
				continue
			}
			b := p.ScreenPath(s).Bounds()
			if !b.Within(RectXYWH(0, 0, frame.Width, frame.Height), 1e-6) {
				t.Errorf("%s: screen %+v outside frame %+v for %+v", name, b, frame, s)
			}
		}
	}
}

func TestWindowPainters(t *testing.T) {
	win := RectXYWH(100, 50, 800, 500)
	for _, platform := range []TargetPlatform{MacOS, Windows, Linux} {
		for _, wp := range []WindowPainter{
			NewLaptopPainter(platform, win, DefaultLaptopStyle()),
			NewMonitorPainter(platform, win, DefaultMonitorStyle()),
		} {
			want := 40.0
			if platform == MacOS {
				want = 30
			}
			if wp.BarHeight() != want {
				t.Errorf("%v: BarHeight = %v, want %v", platform, wp.BarHeight(), want)
			}
			if got := wp.EffectiveWindowSize(); got != Sz(800, 500-want) {
				t.Errorf("%v: EffectiveWindowSize = %+v", platform, got)
			}
			if wp.Window() != win {
				t.Errorf("%v: Window = %+v", platform, wp.Window())
			}
		}
	}
}

func TestLaptopGeometry(t *testing.T) {
	p := NewLaptopPainter(MacOS, RectXYWH(0, 0, 1440, 900), DefaultLaptopStyle())
	frame := p.FrameSize(Sz(1440, 900))
	if frame != Sz(1892, 1162) {
		t.Fatalf("FrameSize = %+v, want 1892x1162", frame)
	}
	if got := p.ScreenPath(Sz(1440, 900)).Bounds(); !rectNearly(got, RectXYWH(226, 116, 1440, 870), 1e-6) {
		t.Errorf("screen path = %+v", got)
	}

	c := newSpy(frame.Width, frame.Height)
	p.Render(c)
	if got := c.count("clip"); got != 1 {
		t.Errorf("clips = %d, want 1", got)
	}
	if got := c.count("gradient"); got != 1 {
		t.Errorf("gradients = %d, want 1", got)
	}
	var shadows []spyCall
	for _, f := range c.filter("fill") {
		if f.Paint.Blend == BlendMultiply {
			shadows = append(shadows, f)
		}
	}
	if len(shadows) != 1 {
		t.Fatalf("got %d multiply fills, want 1", len(shadows))
	}
	if got := shadows[0].Path.Bounds(); !rectNearly(got, RectXYWH(226, 86, 1440, 870), 1e-6) {
		t.Errorf("shadow bounds = %+v", got)
	}
	if !nearly(shadows[0].Paint.Color.A, 0.6) {
		t.Errorf("shadow alpha = %v", shadows[0].Paint.Color.A)
	}
}

func TestMonitorGeometry(t *testing.T) {
	p := NewMonitorPainter(Linux, RectXYWH(10, 20, 1000, 600), DefaultMonitorStyle())
	frame := p.FrameSize(Sz(1920, 1080))
	if frame != Sz(1972, 1432) {
		t.Fatalf("FrameSize = %+v, want 1972x1432", frame)
	}
	if got := p.ScreenPath(Sz(1920, 1080)).Bounds(); !rectNearly(got, RectXYWH(36, 86, 1000, 560), 1e-6) {
		t.Errorf("screen path = %+v", got)
	}

	c := newSpy(frame.Width, frame.Height)
	p.Render(c)
	// the stand is drawn before the body
	fills := c.filter("fill")
	if len(fills) < 8 {
		t.Fatalf("got %d fills", len(fills))
	}
	body := fills[6].Path.Bounds()
	if !rectNearly(body, Rect{Left: 0, Top: 0, Right: 1972, Bottom: 1152}, 1e-6) {
		t.Errorf("body bounds = %+v", body)
	}
}

func TestPainterFunc(t *testing.T) {
	var seen Size
	p := PainterFunc{Frame: Sz(100, 200), Draw: func(c Canvas) { seen = c.Size() }}
	if p.FrameSize(Sz(1, 1)) != Sz(100, 200) {
		t.Error("PainterFunc.FrameSize ignores the screen")
	}
	if got := p.ScreenPath(Sz(1, 1)).Bounds(); !rectNearly(got, RectXYWH(0, 0, 100, 200), 1e-9) {
		t.Errorf("default screen path = %+v", got)
	}
	p.Render(newSpy(100, 200))
	if seen != Sz(100, 200) {
		t.Errorf("Draw saw %+v", seen)
	}
}
