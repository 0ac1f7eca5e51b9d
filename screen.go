package deviceframe

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Content is whatever is shown on a device screen. Draw receives a canvas
// whose origin is the screen's top-left corner and the size of the visible
// screen area; anything outside the screen shape is clipped.
type Content interface {
	Draw(c Canvas, size Size)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(c Canvas, size Size)

// Draw calls f.
func (f ContentFunc) Draw(c Canvas, size Size) { f(c, size) }

// ImageContent stretches an image over the whole screen.
type ImageContent struct {
	Image image.Image
}

// Draw scales the image to size.
func (ic ImageContent) Draw(c Canvas, size Size) {
	if ic.Image == nil {
		return
	}
	c.DrawImage(ic.Image, RectXYWH(0, 0, size.Width, size.Height))
}

// FillContent paints the screen a solid color.
type FillContent struct {
	Color gg.RGBA
}

// Draw fills size with the color.
func (fc FillContent) Draw(c Canvas, size Size) {
	c.FillPath(NewPath().AddRect(RectXYWH(0, 0, size.Width, size.Height)), Fill(fc.Color))
}

// Screen composes a device frame and content.
type Screen struct {
	Device       *DeviceInfo
	Orientation  Orientation
	FrameVisible bool
}

// NewScreen returns a screen that shows the frame.
func NewScreen(d *DeviceInfo, o Orientation) Screen {
	return Screen{Device: d, Orientation: o, FrameVisible: true}
}

// Rotated reports whether the container is turned to landscape.
func (s Screen) Rotated() bool { return s.Device.IsLandscape(s.Orientation) }

// ContainerSize returns the unrotated extent of the composition: the frame
// when it is shown, otherwise just the screen.
func (s Screen) ContainerSize() Size {
	if s.FrameVisible {
		return s.Device.FrameSize()
	}
	return s.Device.ScreenBounds().Size()
}

// OutputSize returns the size of the canvas Render needs, which is the
// container size turned on its side when rotated.
func (s Screen) OutputSize() Size {
	if s.Rotated() {
		return s.ContainerSize().Swap()
	}
	return s.ContainerSize()
}

// ContentSize returns the size content is drawn at. In landscape the
// content stays upright, so its size is the screen turned on its side.
func (s Screen) ContentSize() Size {
	b := s.Device.ScreenBounds().Size()
	if s.Rotated() {
		return b.Swap()
	}
	return b
}

// Render draws the composition into c, which should be OutputSize large.
// Content may be nil to show the frame alone.
func (s Screen) Render(c Canvas, content Content) {
	d := s.Device
	container := s.ContainerSize()
	bounds := d.ScreenBounds()
	Logger().Debug("deviceframe: render screen",
		"id", d.ID(), "orientation", s.Orientation.String(), "frame", s.FrameVisible)

	c.Save()
	defer c.Restore()

	if s.Rotated() {
		c.Translate(0, container.Width)
		c.Rotate(-math.Pi / 2)
	}

	if s.FrameVisible {
		c.Save()
		d.Painter().Render(sized{Canvas: c, size: container})
		c.Restore()
	} else {
		c.Translate(-bounds.Left, -bounds.Top)
	}

	if content == nil {
		return
	}

	c.ClipPath(d.ScreenPath())
	c.Translate(bounds.Left, bounds.Top)
	if s.Rotated() {
		c.Translate(bounds.Width(), 0)
		c.Rotate(math.Pi / 2)
	}
	size := s.ContentSize()
	content.Draw(sized{Canvas: c, size: size}, size)
}

// sized narrows the reported canvas size for painters and content.
type sized struct {
	Canvas
	size Size
}

func (s sized) Size() Size { return s.size }
