// Package raster provides the "png" backend for the recording system.
//
// Paths are rasterized with gg, which supplies anti-aliased coverage for
// fills and strokes under the current transform. The backend composites
// that coverage into its own RGBA surface so it can apply clip masks,
// multiply blending and per-pixel radial gradients uniformly.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/deviceframe/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.WriteTo(f)
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/recording"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an RGBA image and encodes it as PNG.
type Backend struct {
	dst    *image.RGBA
	width  int
	height int

	cur   state
	stack []state
}

// state is the part of the drawing state scoped by Save and Restore.
type state struct {
	m recording.Matrix
	// clip is the coverage of the intersected clip paths in device
	// space, nil when nothing is clipped. Masks are never mutated once
	// installed, so saved states can share them.
	clip *gg.Mask
}

var (
	_ recording.Backend    = (*Backend)(nil)
	_ recording.MediaTyper = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent surface of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid surface size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.dst = image.NewRGBA(image.Rect(0, 0, width, height))
	b.cur = state{m: recording.Identity()}
	b.stack = b.stack[:0]
	deviceframe.Logger().Debug("raster: begin", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.dst == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	if len(b.stack) != 0 {
		deviceframe.Logger().Warn("raster: unbalanced save", slog.Int("depth", len(b.stack)))
	}
	return nil
}

// MediaType implements recording.MediaTyper.
func (b *Backend) MediaType() string { return "image/png" }

// Size implements deviceframe.Canvas.
func (b *Backend) Size() deviceframe.Size {
	return deviceframe.Sz(float64(b.width), float64(b.height))
}

// Save saves the transform and clip.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.cur)
}

// Restore restores the transform and clip. An empty stack is a no-op.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.cur = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// Translate implements deviceframe.Canvas.
func (b *Backend) Translate(dx, dy float64) {
	b.cur.m = b.cur.m.Multiply(recording.Translate(dx, dy))
}

// Rotate implements deviceframe.Canvas.
func (b *Backend) Rotate(radians float64) {
	b.cur.m = b.cur.m.Multiply(recording.Rotate(radians))
}

// ClipPath intersects the clip with p.
func (b *Backend) ClipPath(p *deviceframe.Path) {
	mask := gg.NewMask(b.width, b.height)
	r := b.deviceBounds(p, 0)
	if !r.Empty() {
		cov := b.coverage(p, r, nil)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := (y - r.Min.Y) * r.Dx()
			for x := r.Min.X; x < r.Max.X; x++ {
				v := cov[row+x-r.Min.X]
				if b.cur.clip != nil {
					v = mul8(v, b.cur.clip.At(x, y))
				}
				mask.Set(x, y, v)
			}
		}
	}
	b.cur.clip = mask
}

// FillPath fills p with a solid paint.
func (b *Backend) FillPath(p *deviceframe.Path, paint deviceframe.Paint) {
	r := b.deviceBounds(p, 0)
	if r.Empty() || paint.Color.A <= 0 {
		return
	}
	cov := b.coverage(p, r, nil)
	b.composite(r, paint.Blend, func(x, y int) premul {
		return solid(paint.Color, cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X])
	})
}

// StrokePath strokes p with butt caps.
func (b *Backend) StrokePath(p *deviceframe.Path, s deviceframe.Stroke) {
	if s.Width <= 0 || s.Color.A <= 0 {
		return
	}
	r := b.deviceBounds(p, s.Width*b.cur.m.ScaleFactor()/2+1)
	if r.Empty() {
		return
	}
	cov := b.coverage(p, r, &s)
	b.composite(r, deviceframe.BlendNormal, func(x, y int) premul {
		return solid(s.Color, cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X])
	})
}

// FillGradient fills p with g, sampled per pixel in local coordinates.
func (b *Backend) FillGradient(p *deviceframe.Path, g deviceframe.RadialGradient) {
	r := b.deviceBounds(p, 0)
	if r.Empty() {
		return
	}
	cov := b.coverage(p, r, nil)
	inv := b.cur.m.Invert()
	brush := g.Brush()
	b.composite(r, deviceframe.BlendNormal, func(x, y int) premul {
		c := cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X]
		if c == 0 {
			return premul{}
		}
		local := inv.Apply(gg.Pt(float64(x)+0.5, float64(y)+0.5))
		return solid(brush.ColorAt(local.X, local.Y), c)
	})
}

// DrawImage scales img into dst with bilinear filtering.
func (b *Backend) DrawImage(img image.Image, dst deviceframe.Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	m := b.cur.m.
		Multiply(recording.Translate(dst.Left, dst.Top)).
		Multiply(recording.Scale(dst.Width()/float64(sb.Dx()), dst.Height()/float64(sb.Dy()))).
		Multiply(recording.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	r := toPixels(m.ApplyRect(deviceframe.RectXYWH(float64(sb.Min.X), float64(sb.Min.Y), float64(sb.Dx()), float64(sb.Dy()))), 0).
		Intersect(b.dst.Bounds())
	if r.Empty() {
		return
	}

	layer := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	s2d := recording.Translate(-float64(r.Min.X), -float64(r.Min.Y)).Multiply(m)
	xdraw.BiLinear.Transform(layer, f64.Aff3{s2d.A, s2d.B, s2d.C, s2d.D, s2d.E, s2d.F}, img, sb, xdraw.Src, nil)

	b.composite(r, deviceframe.BlendNormal, func(x, y int) premul {
		i := layer.PixOffset(x-r.Min.X, y-r.Min.Y)
		px := layer.Pix[i : i+4 : i+4]
		return premul{
			r: float64(px[0]) / 255,
			g: float64(px[1]) / 255,
			b: float64(px[2]) / 255,
			a: float64(px[3]) / 255,
		}
	})
}

// WriteTo writes the rendered image as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.dst == nil {
		return 0, fmt.Errorf("raster: WriteTo called before Begin")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.dst)
	return cw.n, err
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// deviceBounds returns the pixel rectangle covering p under the current
// transform, grown by pad and limited to the surface.
func (b *Backend) deviceBounds(p *deviceframe.Path, pad float64) image.Rectangle {
	if p == nil || p.IsEmpty() {
		return image.Rectangle{}
	}
	return toPixels(b.cur.m.ApplyRect(p.Bounds()), pad).Intersect(b.dst.Bounds())
}

func toPixels(r deviceframe.Rect, pad float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left-pad)), int(math.Floor(r.Top-pad)),
		int(math.Ceil(r.Right+pad)), int(math.Ceil(r.Bottom+pad)),
	)
}

// coverage rasterizes p (filled, or stroked when s is non-nil) with gg into
// a scratch context the size of r and returns its alpha, row-major.
func (b *Backend) coverage(p *deviceframe.Path, r image.Rectangle, s *deviceframe.Stroke) []uint8 {
	ctx := gg.NewContext(r.Dx(), r.Dy())
	defer func() { _ = ctx.Close() }()

	ctx.SetTransform(recording.Translate(-float64(r.Min.X), -float64(r.Min.Y)).Multiply(b.cur.m).GG())
	appendPath(ctx, p)

	white := gg.Solid(gg.White)
	if s != nil {
		ctx.SetStrokeBrush(white)
		ctx.SetLineWidth(s.Width)
		ctx.SetLineCap(gg.LineCapButt)
		_ = ctx.Stroke()
	} else {
		ctx.SetFillBrush(white)
		ctx.SetFillRule(fillRule(p.FillRule()))
		_ = ctx.Fill()
	}

	cov := make([]uint8, r.Dx()*r.Dy())
	switch img := ctx.Image().(type) {
	case *image.RGBA:
		for i := range cov {
			cov[i] = img.Pix[i*4+3]
		}
	default:
		for i := range cov {
			_, _, _, a := img.At(i%r.Dx(), i/r.Dx()).RGBA()
			// #nosec G115 -- a>>8 is always in [0, 255]
			cov[i] = uint8(a >> 8)
		}
	}
	return cov
}

// appendPath walks path elements and adds them to the context, which
// applies its transform to every point.
func appendPath(ctx *gg.Context, p *deviceframe.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			ctx.ClosePath()
		}
	}
}

func fillRule(rule deviceframe.FillRule) gg.FillRule {
	if rule == deviceframe.FillEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
