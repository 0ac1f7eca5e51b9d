package deviceframe

import (
	"image"

	"github.com/gogpu/gg"
)

// BlendMode selects how a fill is composited with what is already drawn.
type BlendMode uint8

const (
	// BlendNormal is source-over compositing.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination colors.
	BlendMultiply
)

// String returns the CSS name of the blend mode.
func (b BlendMode) String() string {
	if b == BlendMultiply {
		return "multiply"
	}
	return "normal"
}

// Paint describes a solid fill.
type Paint struct {
	Color gg.RGBA
	Blend BlendMode
}

// Fill returns a normal-blend paint of the given color.
func Fill(c gg.RGBA) Paint {
	return Paint{Color: c}
}

// Stroke describes a solid outline with butt caps.
type Stroke struct {
	Color gg.RGBA
	Width float64
}

// GradientStop is one color stop of a gradient, Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  gg.RGBA
}

// RadialGradient spreads its stops from Center (offset 0) to Radius
// (offset 1). Points beyond the radius take the last stop's color.
type RadialGradient struct {
	Center gg.Point
	Radius float64
	Stops  []GradientStop
}

// NewRadialGradient spaces colors evenly between the center and the radius.
func NewRadialGradient(center gg.Point, radius float64, colors ...gg.RGBA) RadialGradient {
	g := RadialGradient{Center: center, Radius: radius, Stops: make([]GradientStop, len(colors))}
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		g.Stops[i] = GradientStop{Offset: off, Color: c}
	}
	return g
}

// Brush returns g as a gg brush padded beyond the radius. Stops are
// interpolated in linear light.
func (g RadialGradient) Brush() *gg.RadialGradientBrush {
	b := gg.NewRadialGradientBrush(g.Center.X, g.Center.Y, 0, g.Radius)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, s.Color)
	}
	return b
}

// ColorAt evaluates the gradient at pt.
func (g RadialGradient) ColorAt(pt gg.Point) gg.RGBA {
	return g.Brush().ColorAt(pt.X, pt.Y)
}

// Canvas is the drawing context painters render into. Coordinates are in
// logical pixels with the origin at the top-left; transforms and clips are
// scoped by Save and Restore.
//
// Implementations: recording.Recorder captures the calls, and the raster
// and svg backends replay them.
type Canvas interface {
	// Size returns the extent of the drawing area.
	Size() Size

	Save()
	Restore()

	// Translate and Rotate post-multiply the current transform. Rotate
	// takes radians, positive is clockwise in screen coordinates.
	Translate(dx, dy float64)
	Rotate(radians float64)

	// ClipPath intersects the clip with p, honoring p's fill rule.
	ClipPath(p *Path)

	FillPath(p *Path, paint Paint)
	StrokePath(p *Path, stroke Stroke)
	FillGradient(p *Path, g RadialGradient)

	// DrawImage scales img to fill dst.
	DrawImage(img image.Image, dst Rect)
}
