package deviceframe

// EdgeInsets is padding on the four sides of a rectangle.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// ZeroInsets is the default, empty padding.
var ZeroInsets = EdgeInsets{}

// Insets is a convenience constructor for EdgeInsets.
func Insets(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Add returns the side-by-side sum of two insets.
func (e EdgeInsets) Add(o EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + o.Left,
		Top:    e.Top + o.Top,
		Right:  e.Right + o.Right,
		Bottom: e.Bottom + o.Bottom,
	}
}
