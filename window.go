package deviceframe

import "github.com/gogpu/gg"

var windowShadow = Paint{Color: WithAlpha(ARGB(0xFF3F2548), 0.6), Blend: BlendMultiply}

// desktopWindow is the floating window shared by laptops and monitors.
type desktopWindow struct {
	platform TargetPlatform
	window   Rect
	radius   float64
}

func (w desktopWindow) barHeight() float64 { return BarHeight(w.platform) }

func (w desktopWindow) effectiveSize() Size {
	return Size{Width: w.window.Width(), Height: w.window.Height() - w.barHeight()}
}

// location returns the window's top-left corner in frame coordinates given
// the screen origin.
func (w desktopWindow) location(screenOrigin gg.Point) gg.Point {
	return gg.Pt(screenOrigin.X+w.window.Left, screenOrigin.Y+w.window.Top)
}

func (w desktopWindow) contentPath(screenOrigin gg.Point) *Path {
	loc := w.location(screenOrigin)
	return RoundRectPath(RectFromOrigin(gg.Pt(loc.X, loc.Y+w.barHeight()), w.effectiveSize()), w.radius)
}

// render draws the wallpaper clipped to the screen, then the window shadow
// and its title bar.
func (w desktopWindow) render(c Canvas, screenBounds Rect, screenRadius float64, screenOrigin gg.Point) {
	c.Save()
	c.ClipPath(RoundRectPath(screenBounds, screenRadius))
	DrawDefaultWallpaper(c, w.platform, screenBounds)
	c.Restore()

	loc := w.location(screenOrigin)
	c.FillPath(RoundRectPath(RectFromOrigin(loc, w.effectiveSize()), w.radius), windowShadow)
	DrawWindowBar(c, w.platform, RectFromOrigin(loc, Size{Width: w.window.Width(), Height: w.barHeight()}), w.radius)
}

// validate checks the window against the screen it floats in.
func (w desktopWindow) validate(screen Size) error {
	r := w.window
	switch {
	case r.Left < 0 || r.Top < 0:
		return errWindow(r, screen, "negative origin")
	case r.IsEmpty():
		return errWindow(r, screen, "empty window")
	case r.Right > screen.Width || r.Bottom > screen.Height:
		return errWindow(r, screen, "window exceeds screen")
	case r.Height() <= w.barHeight():
		return errWindow(r, screen, "window not taller than title bar")
	}
	return nil
}
