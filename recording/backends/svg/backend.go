// Package svg provides the "svg" backend for the recording system.
//
// Paths are written in absolute device coordinates, so the document has no
// transform groups. Clips become clipPath definitions referenced from
// nested groups, radial gradients become userSpaceOnUse gradient
// definitions carrying the local transform, and images are embedded as
// PNG data URIs no larger than their on-screen size.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/deviceframe/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.WriteTo(f)
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/recording"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend writes recordings as an SVG document.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	width  int
	height int

	cur   state
	stack []state

	// open holds the clip ids of the groups currently open in the
	// document, outermost first.
	open []string

	ids   int
	ended bool
	err   error
}

type state struct {
	m     recording.Matrix
	clips []string
}

var (
	_ recording.Backend    = (*Backend)(nil)
	_ recording.MediaTyper = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid document size %dx%d", width, height)
	}
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.canvas.Decimals = 0
	b.width = width
	b.height = height
	b.cur = state{m: recording.Identity()}
	b.stack = b.stack[:0]
	b.open = b.open[:0]
	b.ids = 0
	b.ended = false
	b.err = nil

	b.canvas.Start(float64(width), float64(height), fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	deviceframe.Logger().Debug("svg: begin", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// End closes the document. It reports the first error met while
// embedding images.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("svg: End called before Begin")
	}
	if len(b.stack) != 0 {
		deviceframe.Logger().Warn("svg: unbalanced save", slog.Int("depth", len(b.stack)))
	}
	b.closeGroups(0)
	b.canvas.End()
	b.ended = true
	return b.err
}

// MediaType implements recording.MediaTyper.
func (b *Backend) MediaType() string { return "image/svg+xml" }

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

// ClipPath defines a clipPath from p and pushes it on the clip list.
// The group referencing it is opened lazily by the next draw.
func (b *Backend) ClipPath(p *deviceframe.Path) {
	if p == nil {
		p = deviceframe.NewPath()
	}
	id := b.newID("clip")
	attrs := []string{}
	if p.FillRule() == deviceframe.FillEvenOdd {
		attrs = append(attrs, `clip-rule="evenodd"`)
	}
	b.canvas.Def()
	b.canvas.ClipPath(`id="` + id + `"`)
	b.canvas.Path(pathData(p, b.cur.m), attrs...)
	b.canvas.ClipEnd()
	b.canvas.DefEnd()

	// Full slice expression: saved states may share the backing array.
	b.cur.clips = append(b.cur.clips[:len(b.cur.clips):len(b.cur.clips)], id)
}

// FillPath writes p filled with a solid paint.
func (b *Backend) FillPath(p *deviceframe.Path, paint deviceframe.Paint) {
	if p == nil || p.IsEmpty() {
		return
	}
	b.syncClip()
	attrs := colorAttrs("fill", paint.Color)
	if p.FillRule() == deviceframe.FillEvenOdd {
		attrs = append(attrs, `fill-rule="evenodd"`)
	}
	if paint.Blend == deviceframe.BlendMultiply {
		attrs = append(attrs, "mix-blend-mode:multiply")
	}
	b.canvas.Path(pathData(p, b.cur.m), attrs...)
}

// StrokePath writes p outlined with butt caps. The width is scaled with
// the transform since the coordinates are already in device space.
func (b *Backend) StrokePath(p *deviceframe.Path, s deviceframe.Stroke) {
	if p == nil || p.IsEmpty() || s.Width <= 0 {
		return
	}
	b.syncClip()
	attrs := append([]string{`fill="none"`}, colorAttrs("stroke", s.Color)...)
	attrs = append(attrs,
		`stroke-width="`+num(s.Width*b.cur.m.ScaleFactor())+`"`,
		`stroke-linecap="butt"`,
	)
	b.canvas.Path(pathData(p, b.cur.m), attrs...)
}

// FillGradient writes p filled with g.
func (b *Backend) FillGradient(p *deviceframe.Path, g deviceframe.RadialGradient) {
	if p == nil || p.IsEmpty() {
		return
	}
	b.syncClip()
	id := b.newID("grad")

	w := b.canvas.Writer
	b.canvas.Def()
	fmt.Fprintf(w, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" color-interpolation="linearRGB" cx="%s" cy="%s" r="%s" gradientTransform="%s">`+"\n",
		id, num(g.Center.X), num(g.Center.Y), num(g.Radius), b.cur.m.SVG())
	for _, s := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s"`, num(s.Offset), opaqueHex(s.Color))
		if s.Color.A < 1 {
			fmt.Fprintf(w, ` stop-opacity="%s"`, num(s.Color.A))
		}
		fmt.Fprintln(w, "/>")
	}
	fmt.Fprintln(w, "</radialGradient>")
	b.canvas.DefEnd()

	attrs := []string{`fill="url(#` + id + `)"`}
	if p.FillRule() == deviceframe.FillEvenOdd {
		attrs = append(attrs, `fill-rule="evenodd"`)
	}
	b.canvas.Path(pathData(p, b.cur.m), attrs...)
}

// DrawImage embeds img as a PNG data URI stretched over dst.
func (b *Backend) DrawImage(img image.Image, dst deviceframe.Rect) {
	if img == nil || dst.IsEmpty() || img.Bounds().Empty() {
		return
	}
	b.syncClip()

	scaled := fitImage(img, dst, b.cur.m.ScaleFactor())
	var enc bytes.Buffer
	if err := png.Encode(&enc, scaled); err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("svg: encode image: %w", err)
		}
		return
	}

	sb := scaled.Bounds()
	m := b.cur.m.
		Multiply(recording.Translate(dst.Left, dst.Top)).
		Multiply(recording.Scale(dst.Width()/float64(sb.Dx()), dst.Height()/float64(sb.Dy())))
	b.canvas.Image(0, 0, sb.Dx(), sb.Dy(),
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(enc.Bytes()),
		`preserveAspectRatio="none"`,
		`transform="`+m.SVG()+`"`,
	)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, fmt.Errorf("svg: WriteTo called before End")
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

func (b *Backend) newID(prefix string) string {
	b.ids++
	return prefix + strconv.Itoa(b.ids)
}

// syncClip makes the open groups match the current clip list, keeping
// the common prefix open.
func (b *Backend) syncClip() {
	n := 0
	for n < len(b.open) && n < len(b.cur.clips) && b.open[n] == b.cur.clips[n] {
		n++
	}
	b.closeGroups(n)
	for _, id := range b.cur.clips[n:] {
		b.canvas.Group(`clip-path="url(#` + id + `)"`)
		b.open = append(b.open, id)
	}
}

func (b *Backend) closeGroups(depth int) {
	for len(b.open) > depth {
		b.canvas.Gend()
		b.open = b.open[:len(b.open)-1]
	}
}

// fitImage downscales img to the device size of dst. Images already at or
// below that size are returned unchanged.
func fitImage(img image.Image, dst deviceframe.Rect, scale float64) image.Image {
	sb := img.Bounds()
	w := int(math.Ceil(dst.Width() * scale))
	h := int(math.Ceil(dst.Height() * scale))
	if w <= 0 || h <= 0 || (w >= sb.Dx() && h >= sb.Dy()) {
		return img
	}
	w = min(w, sb.Dx())
	h = min(h, sb.Dy())
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, sb, xdraw.Src, nil)
	return out
}

// pathData formats p as SVG path data with every point transformed by m.
func pathData(p *deviceframe.Path, m recording.Matrix) string {
	var sb strings.Builder
	pt := func(q gg.Point) {
		q = m.Apply(q)
		sb.WriteString(num(q.X))
		sb.WriteByte(' ')
		sb.WriteString(num(q.Y))
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			sb.WriteByte('M')
			pt(e.Point)
		case gg.LineTo:
			sb.WriteByte('L')
			pt(e.Point)
		case gg.QuadTo:
			sb.WriteByte('Q')
			pt(e.Control)
			sb.WriteByte(' ')
			pt(e.Point)
		case gg.CubicTo:
			sb.WriteByte('C')
			pt(e.Control1)
			sb.WriteByte(' ')
			pt(e.Control2)
			sb.WriteByte(' ')
			pt(e.Point)
		case gg.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// colorAttrs returns the paint and opacity attributes for c.
func colorAttrs(prop string, c gg.RGBA) []string {
	attrs := []string{prop + `="` + opaqueHex(c) + `"`}
	if c.A < 1 {
		attrs = append(attrs, prop+`-opacity="`+num(c.A)+`"`)
	}
	return attrs
}

func opaqueHex(c gg.RGBA) string {
	c.A = 1
	return deviceframe.HexString(c)
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
