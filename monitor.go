package deviceframe

import "github.com/gogpu/gg"

// MonitorStyle configures the generic desktop monitor frame.
type MonitorStyle struct {
	OuterBody    gg.RGBA
	InnerBody    gg.RGBA
	OuterRadius  float64
	InnerRadius  float64
	InnerInsets  EdgeInsets
	ScreenInsets EdgeInsets
	ScreenRadius float64
	WindowRadius float64

	FootSize       Size
	FootBaseHeight float64
	FootBarWidth   float64
}

// DefaultMonitorStyle returns the generic monitor look.
func DefaultMonitorStyle() MonitorStyle {
	return MonitorStyle{
		OuterBody:      ARGB(0xff3A4245),
		InnerBody:      ARGB(0xff121515),
		OuterRadius:    30,
		InnerRadius:    20,
		InnerInsets:    UniformInsets(6),
		ScreenInsets:   Insets(20, 20, 20, 40),
		ScreenRadius:   10,
		WindowRadius:   6,
		FootSize:       Size{Width: 920, Height: 280},
		FootBaseHeight: 40,
		FootBarWidth:   60,
	}
}

// MonitorPainter draws a monitor on a stand with a desktop window on its
// screen.
type MonitorPainter struct {
	style MonitorStyle
	win   desktopWindow
}

// NewMonitorPainter creates a monitor painter for platform. window is
// relative to the screen's top-left corner, title bar included.
func NewMonitorPainter(platform TargetPlatform, window Rect, style MonitorStyle) *MonitorPainter {
	return &MonitorPainter{
		style: style,
		win:   desktopWindow{platform: platform, window: window, radius: style.WindowRadius},
	}
}

// Style returns the painter configuration.
func (p *MonitorPainter) Style() MonitorStyle { return p.style }

// Platform returns the platform whose window chrome is drawn.
func (p *MonitorPainter) Platform() TargetPlatform { return p.win.platform }

// Window implements WindowPainter.
func (p *MonitorPainter) Window() Rect { return p.win.window }

// BarHeight implements WindowPainter.
func (p *MonitorPainter) BarHeight() float64 { return p.win.barHeight() }

// EffectiveWindowSize implements WindowPainter.
func (p *MonitorPainter) EffectiveWindowSize() Size { return p.win.effectiveSize() }

func (p *MonitorPainter) screenOrigin() gg.Point {
	s := p.style
	return gg.Pt(s.InnerInsets.Left+s.ScreenInsets.Left, s.InnerInsets.Top+s.ScreenInsets.Top)
}

// FrameSize adds the bezels and the stand height.
func (p *MonitorPainter) FrameSize(screen Size) Size {
	s := p.style
	return Size{
		Width:  screen.Width + s.InnerInsets.Horizontal() + s.ScreenInsets.Horizontal(),
		Height: screen.Height + s.InnerInsets.Vertical() + s.ScreenInsets.Vertical() + s.FootSize.Height,
	}
}

// ScreenPath returns the window content area below the title bar.
func (p *MonitorPainter) ScreenPath(Size) *Path {
	return p.win.contentPath(p.screenOrigin())
}

// Render draws the stand behind the body, then the wallpaper and window.
func (p *MonitorPainter) Render(c Canvas) {
	s := p.style
	size := c.Size()
	body := Rect{Left: 0, Top: 0, Right: size.Width, Bottom: size.Height - s.FootSize.Height}

	fc := body.BottomCenter()
	fc.Y += s.FootSize.Height * 0.5
	foot := Rect{
		Left:   fc.X - s.FootSize.Width/2,
		Top:    fc.Y - s.FootSize.Height/2,
		Right:  fc.X + s.FootSize.Width/2,
		Bottom: fc.Y + s.FootSize.Height/2,
	}
	DrawMonitorFoot(c, foot, MonitorFootStyle{
		Outer:            s.OuterBody,
		Inner:            s.InnerBody,
		BarWidth:         s.FootBarWidth,
		BarSpace:         s.FootBarWidth * 0.6,
		BottomHeight:     6,
		BaseHeight:       s.FootBaseHeight,
		BaseTopRadius:    s.FootBaseHeight * 0.3,
		BaseBottomRadius: s.FootBaseHeight * 0.1,
	})
	DrawDeviceBody(c, body, s.OuterBody, s.OuterRadius, s.InnerBody, s.InnerRadius, s.InnerInsets)

	origin := p.screenOrigin()
	screen := Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  body.Right - s.InnerInsets.Right - s.ScreenInsets.Right,
		Bottom: body.Bottom - s.InnerInsets.Bottom - s.ScreenInsets.Bottom,
	}
	p.win.render(c, screen, s.ScreenRadius, origin)
}
