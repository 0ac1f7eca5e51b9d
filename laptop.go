package deviceframe

import "github.com/gogpu/gg"

// LaptopStyle configures the generic laptop frame.
type LaptopStyle struct {
	OuterBody    gg.RGBA
	InnerBody    gg.RGBA
	OuterRadius  float64
	InnerRadius  float64
	InnerInsets  EdgeInsets
	ScreenInsets EdgeInsets
	ScreenRadius float64
	WindowRadius float64

	// BodyHeight is the keyboard deck seen edge-on below the lid,
	// BodyPadHeight the rubber feet under it and BodyInsets the horizontal
	// overhang of the deck on each side of the lid.
	BodyHeight    float64
	BodyPadHeight float64
	BodyInsets    float64
	BaseTop       gg.RGBA
	BaseBottom    gg.RGBA
	BasePad       gg.RGBA
	NotchWidth    float64

	Camera CameraStyle
}

// DefaultLaptopStyle returns the generic laptop look.
func DefaultLaptopStyle() LaptopStyle {
	return LaptopStyle{
		OuterBody:     ARGB(0xff3A4245),
		InnerBody:     ARGB(0xff121515),
		OuterRadius:   30,
		InnerRadius:   20,
		InnerInsets:   Insets(6, 6, 6, 0),
		ScreenInsets:  Insets(20, 80, 20, 100),
		ScreenRadius:  10,
		WindowRadius:  6,
		BodyHeight:    60,
		BodyPadHeight: 16,
		BodyInsets:    200,
		BaseTop:       ARGB(0xff3A4245),
		BaseBottom:    ARGB(0xff323434),
		BasePad:       ARGB(0xff222626),
		NotchWidth:    300,
		Camera:        DefaultCamera(),
	}
}

// LaptopPainter draws an open laptop with a desktop window on its screen.
type LaptopPainter struct {
	style LaptopStyle
	win   desktopWindow
}

// NewLaptopPainter creates a laptop painter for platform. window is the
// window rectangle relative to the screen's top-left corner, title bar
// included.
func NewLaptopPainter(platform TargetPlatform, window Rect, style LaptopStyle) *LaptopPainter {
	return &LaptopPainter{
		style: style,
		win:   desktopWindow{platform: platform, window: window, radius: style.WindowRadius},
	}
}

// Style returns the painter configuration.
func (p *LaptopPainter) Style() LaptopStyle { return p.style }

// Platform returns the platform whose window chrome is drawn.
func (p *LaptopPainter) Platform() TargetPlatform { return p.win.platform }

// Window implements WindowPainter.
func (p *LaptopPainter) Window() Rect { return p.win.window }

// BarHeight implements WindowPainter.
func (p *LaptopPainter) BarHeight() float64 { return p.win.barHeight() }

// EffectiveWindowSize implements WindowPainter.
func (p *LaptopPainter) EffectiveWindowSize() Size { return p.win.effectiveSize() }

func (p *LaptopPainter) screenOrigin() gg.Point {
	s := p.style
	return gg.Pt(s.BodyInsets+s.InnerInsets.Left+s.ScreenInsets.Left, s.InnerInsets.Top+s.ScreenInsets.Top)
}

// FrameSize adds the lid bezels, the deck overhang and the deck itself.
func (p *LaptopPainter) FrameSize(screen Size) Size {
	s := p.style
	return Size{
		Width:  screen.Width + s.InnerInsets.Horizontal() + s.ScreenInsets.Horizontal() + s.BodyInsets*2,
		Height: screen.Height + s.InnerInsets.Vertical() + s.ScreenInsets.Vertical() + s.BodyHeight + s.BodyPadHeight,
	}
}

// ScreenPath returns the window content area below the title bar.
func (p *LaptopPainter) ScreenPath(Size) *Path {
	return p.win.contentPath(p.screenOrigin())
}

// Render draws the lid, the deck, the wallpaper and the window.
func (p *LaptopPainter) Render(c Canvas) {
	s := p.style
	size := c.Size()
	lid := Rect{Left: s.BodyInsets, Top: 0, Right: size.Width - s.BodyInsets, Bottom: size.Height - s.BodyPadHeight - s.BodyHeight}

	DrawDeviceBody(c, lid, s.OuterBody, s.OuterRadius, s.InnerBody, s.InnerRadius, s.InnerInsets)
	DrawCamera(c, gg.Pt(lid.Center().X, s.InnerInsets.Top+s.ScreenInsets.Top/2), s.Camera)

	// deck
	fillRoundRect(c, RectXYWH(s.OuterRadius+s.BodyPadHeight*4, lid.Bottom+s.BodyHeight-1,
		size.Width-2*s.OuterRadius-s.BodyPadHeight*8, s.BodyPadHeight+1), s.BodyPadHeight, s.BasePad)
	fillRoundRect(c, RectXYWH(0, lid.Bottom+s.BodyHeight*0.2-1, size.Width, s.BodyHeight*0.8+1), s.OuterRadius, s.BaseBottom)
	fillRoundRect(c, RectXYWH(0, lid.Bottom, size.Width, s.BodyHeight*0.2), s.InnerRadius*0.5, s.BaseTop)
	fillRoundRect(c, RectXYWH(lid.Center().X-s.NotchWidth*0.5, lid.Bottom+s.BodyHeight*0.2-1, s.NotchWidth, s.BodyHeight*0.2),
		s.BodyHeight*0.2, s.BaseTop)

	origin := p.screenOrigin()
	screen := Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  lid.Right - s.InnerInsets.Right - s.ScreenInsets.Right,
		Bottom: lid.Bottom - s.InnerInsets.Bottom - s.ScreenInsets.Bottom,
	}
	p.win.render(c, screen, s.ScreenRadius, origin)
}
