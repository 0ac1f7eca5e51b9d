package deviceframe

import "github.com/gogpu/gg"

// HandheldStyle configures the generic phone and tablet frames.
type HandheldStyle struct {
	OuterBody    gg.RGBA
	InnerBody    gg.RGBA
	OuterRadius  float64
	InnerRadius  float64
	InnerInsets  EdgeInsets
	ScreenInsets EdgeInsets
	ScreenRadius float64

	ButtonWidth float64
	Button      gg.RGBA
	// RightButtons and TopButtons alternate gap and button length, see
	// SideButtonRects.
	RightButtons []float64
	TopButtons   []float64

	Camera CameraStyle
}

// DefaultPhoneStyle returns the generic phone look.
func DefaultPhoneStyle() HandheldStyle {
	return HandheldStyle{
		OuterBody:    ARGB(0xff3A4245),
		InnerBody:    ARGB(0xff121515),
		OuterRadius:  40,
		InnerRadius:  35,
		InnerInsets:  UniformInsets(6),
		ScreenInsets: Insets(15, 80, 15, 60),
		ScreenRadius: 10,
		ButtonWidth:  4,
		Button:       ARGB(0xff121515),
		RightButtons: []float64{100, 80, 15, 80},
		TopButtons:   []float64{50, 80},
		Camera:       DefaultCamera(),
	}
}

// DefaultTabletStyle returns the generic tablet look: wider bezels and a
// smaller camera.
func DefaultTabletStyle() HandheldStyle {
	s := DefaultPhoneStyle()
	s.ScreenInsets = Insets(25, 120, 25, 80)
	s.Camera.Radius = 6
	s.Camera.BorderWidth = 4
	return s
}

// HandheldPainter draws phones and tablets: a two-tone rounded body with
// buttons on the top and right edges and a front camera centred above the
// screen.
type HandheldPainter struct {
	style HandheldStyle
}

// NewHandheldPainter creates a painter with the given style.
func NewHandheldPainter(style HandheldStyle) *HandheldPainter {
	return &HandheldPainter{style: style}
}

// Style returns the painter configuration.
func (p *HandheldPainter) Style() HandheldStyle { return p.style }

// FrameSize adds the bezels and the button strip to the screen.
func (p *HandheldPainter) FrameSize(screen Size) Size {
	s := p.style
	return Size{
		Width:  screen.Width + s.InnerInsets.Horizontal() + s.ScreenInsets.Horizontal() + s.ButtonWidth,
		Height: screen.Height + s.InnerInsets.Vertical() + s.ScreenInsets.Vertical() + s.ButtonWidth,
	}
}

// ScreenPath returns the rounded screen rectangle.
func (p *HandheldPainter) ScreenPath(screen Size) *Path {
	s := p.style
	origin := gg.Pt(s.InnerInsets.Left+s.ScreenInsets.Left, s.InnerInsets.Top+s.ScreenInsets.Top)
	return RoundRectPath(RectFromOrigin(origin, screen), s.ScreenRadius)
}

// Render draws buttons first so the body covers their inner halves.
func (p *HandheldPainter) Render(c Canvas) {
	s := p.style
	size := c.Size()
	bounds := Rect{Left: 0, Top: s.ButtonWidth, Right: size.Width - s.ButtonWidth, Bottom: size.Height - s.ButtonWidth}

	DrawSideButtons(c, bounds, s.Button, s.ButtonWidth, SideTop, true, s.TopButtons)
	DrawSideButtons(c, bounds, s.Button, s.ButtonWidth, SideRight, false, s.RightButtons)
	DrawDeviceBody(c, bounds, s.OuterBody, s.OuterRadius, s.InnerBody, s.InnerRadius, s.InnerInsets)

	center := gg.Pt((size.Width-s.ButtonWidth)*0.5, s.ButtonWidth+s.InnerInsets.Top+s.ScreenInsets.Top/2)
	DrawCamera(c, center, s.Camera)
}
