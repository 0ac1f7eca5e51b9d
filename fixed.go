package deviceframe

import (
	"fmt"

	"github.com/gogpu/gg"
)

// ShapeKind selects how a Shape's geometry is interpreted.
type ShapeKind uint8

const (
	// ShapePath decodes Shape.Data with Shape.Rule.
	ShapePath ShapeKind = iota
	// ShapeOval fills the ellipse inscribed in Shape.Rect.
	ShapeOval
	// ShapeRect fills Shape.Rect.
	ShapeRect
	// ShapeRelativeRect fills Shape.Rect scaled by the canvas size, so
	// its coordinates are fractions of the frame.
	ShapeRelativeRect
)

// Shape is one filled element of baked device artwork.
type Shape struct {
	Kind  ShapeKind
	Data  PathData
	Rule  FillRule
	Rect  Rect
	Color gg.RGBA
}

// FixedModel is the constant description of a specific device model.
type FixedModel struct {
	ID         string
	Name       string
	Platform   TargetPlatform
	Type       DeviceType
	PixelRatio float64

	SafeAreas        EdgeInsets
	RotatedSafeAreas *EdgeInsets

	FrameSize  Size
	ScreenSize Size

	// Screen is the outline of the display in frame coordinates.
	Screen     PathData
	ScreenRule FillRule

	// Artwork is filled in order, back to front.
	Artwork []Shape
}

type fixedShape struct {
	path     *Path
	relative Rect
	isRel    bool
	color    gg.RGBA
}

// FixedPainter draws baked artwork of a single model. The frame size is
// constant and the screen path does not depend on the requested screen.
type FixedPainter struct {
	frame  Size
	screen *Path
	shapes []fixedShape
}

// NewFixedPainter decodes the model's screen outline and artwork.
func NewFixedPainter(m FixedModel) (*FixedPainter, error) {
	screen, err := m.Screen.Decode(m.ScreenRule)
	if err != nil {
		return nil, fmt.Errorf("deviceframe: %s screen: %w", m.ID, err)
	}
	p := &FixedPainter{frame: m.FrameSize, screen: screen, shapes: make([]fixedShape, 0, len(m.Artwork))}
	for i, s := range m.Artwork {
		fs := fixedShape{color: s.Color}
		switch s.Kind {
		case ShapePath:
			fs.path, err = s.Data.Decode(s.Rule)
			if err != nil {
				return nil, fmt.Errorf("deviceframe: %s artwork %d: %w", m.ID, i, err)
			}
		case ShapeOval:
			fs.path = NewPath().AddOval(s.Rect)
		case ShapeRect:
			fs.path = NewPath().AddRect(s.Rect)
		case ShapeRelativeRect:
			fs.relative, fs.isRel = s.Rect, true
		default:
			return nil, fmt.Errorf("deviceframe: %s artwork %d: unknown shape kind %d", m.ID, i, s.Kind)
		}
		p.shapes = append(p.shapes, fs)
	}
	return p, nil
}

// FrameSize returns the baked frame size.
func (p *FixedPainter) FrameSize(Size) Size { return p.frame }

// ScreenPath returns the baked screen outline.
func (p *FixedPainter) ScreenPath(Size) *Path { return p.screen.Clone() }

// Render fills every artwork shape in order.
func (p *FixedPainter) Render(c Canvas) {
	size := c.Size()
	for _, s := range p.shapes {
		path := s.path
		if s.isRel {
			r := s.relative
			path = NewPath().AddRect(RectXYWH(size.Width*r.Left, size.Height*r.Top, size.Width*r.Width(), size.Height*r.Height()))
		}
		c.FillPath(path, Fill(s.color))
	}
}
