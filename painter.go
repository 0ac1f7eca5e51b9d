package deviceframe

// Painter draws a device frame and describes its geometry.
//
// FrameSize and ScreenPath are pure functions of the requested screen size;
// builders call them once and store the results in DeviceInfo. Render draws
// into a canvas whose Size is the frame size. Implementations keep no state
// between calls and are safe for concurrent use.
type Painter interface {
	// FrameSize returns the size of the decorated device for a screen.
	FrameSize(screen Size) Size
	// ScreenPath returns the visible screen outline in frame coordinates.
	ScreenPath(screen Size) *Path
	// Render draws the frame.
	Render(c Canvas)
}

// WindowPainter is a Painter that emulates a desktop window inside its
// screen. Content goes into the window, below the title bar.
type WindowPainter interface {
	Painter
	// Window returns the window rectangle relative to the screen.
	Window() Rect
	// BarHeight returns the height of the title bar.
	BarHeight() float64
	// EffectiveWindowSize returns the window size without the title bar.
	EffectiveWindowSize() Size
}

// BarHeight returns the title bar height of desktop windows on platform.
func BarHeight(platform TargetPlatform) float64 {
	if platform == MacOS {
		return 30
	}
	return 40
}

// PainterFunc adapts a render function and fixed geometry into a Painter.
// It is handy for tests and one-off artwork.
type PainterFunc struct {
	Frame  Size
	Screen *Path
	Draw   func(c Canvas)
}

// FrameSize returns f.Frame regardless of the screen size.
func (f PainterFunc) FrameSize(Size) Size { return f.Frame }

// ScreenPath returns a copy of f.Screen.
func (f PainterFunc) ScreenPath(Size) *Path {
	if f.Screen == nil {
		return NewPath().AddRect(RectXYWH(0, 0, f.Frame.Width, f.Frame.Height))
	}
	return f.Screen.Clone()
}

// Render calls f.Draw when set.
func (f PainterFunc) Render(c Canvas) {
	if f.Draw != nil {
		f.Draw(c)
	}
}
