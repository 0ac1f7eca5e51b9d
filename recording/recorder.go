package recording

import (
	"image"

	"github.com/gogpu/deviceframe"
)

// Recorder captures Canvas calls as commands. Use Finish to obtain an
// immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(406, 956)
//	painter.Render(rec)
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	transform  Matrix
	stateStack []Matrix
}

var _ deviceframe.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder for the given pixel dimensions with an
// identity transform and no clip.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		resources:  NewResourcePool(),
		transform:  Identity(),
		stateStack: make([]Matrix, 0, 8),
	}
}

// Finish returns an immutable Recording of everything drawn so far.
// The Recorder should not be used afterwards.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Size implements deviceframe.Canvas.
func (r *Recorder) Size() deviceframe.Size {
	return deviceframe.Sz(float64(r.width), float64(r.height))
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() Matrix { return r.transform }

// Save pushes the current transform. The clip is saved by the backend on
// playback.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.transform)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore pops the saved state. Unbalanced calls are ignored.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.transform = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate implements deviceframe.Canvas.
func (r *Recorder) Translate(dx, dy float64) {
	r.transform = r.transform.Multiply(Translate(dx, dy))
	r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
}

// Rotate implements deviceframe.Canvas.
func (r *Recorder) Rotate(radians float64) {
	r.transform = r.transform.Multiply(Rotate(radians))
	r.commands = append(r.commands, RotateCommand{Radians: radians})
}

// ClipPath implements deviceframe.Canvas.
func (r *Recorder) ClipPath(p *deviceframe.Path) {
	r.commands = append(r.commands, ClipCommand{Path: r.resources.AddPath(p)})
}

// FillPath implements deviceframe.Canvas.
func (r *Recorder) FillPath(p *deviceframe.Path, paint deviceframe.Paint) {
	r.commands = append(r.commands, FillPathCommand{Path: r.resources.AddPath(p), Paint: paint})
}

// StrokePath implements deviceframe.Canvas.
func (r *Recorder) StrokePath(p *deviceframe.Path, stroke deviceframe.Stroke) {
	r.commands = append(r.commands, StrokePathCommand{Path: r.resources.AddPath(p), Stroke: stroke})
}

// FillGradient implements deviceframe.Canvas.
func (r *Recorder) FillGradient(p *deviceframe.Path, g deviceframe.RadialGradient) {
	stops := make([]deviceframe.GradientStop, len(g.Stops))
	copy(stops, g.Stops)
	g.Stops = stops
	r.commands = append(r.commands, FillGradientCommand{Path: r.resources.AddPath(p), Gradient: g})
}

// DrawImage implements deviceframe.Canvas. Nil images and empty
// destinations are not recorded.
func (r *Recorder) DrawImage(img image.Image, dst deviceframe.Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	r.commands = append(r.commands, DrawImageCommand{Image: r.resources.AddImage(img), Dst: dst})
}

// Recording is an immutable list of commands with the resources they
// reference. It is safe to replay from several goroutines at once.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Replay issues every command to c without Begin or End. It can be used to
// draw a recording into another canvas, including another Recorder.
func (r *Recording) Replay(c deviceframe.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
		case RestoreCommand:
			c.Restore()
		case TranslateCommand:
			c.Translate(cmd.DX, cmd.DY)
		case RotateCommand:
			c.Rotate(cmd.Radians)
		case ClipCommand:
			c.ClipPath(r.resources.Path(cmd.Path))
		case FillPathCommand:
			c.FillPath(r.resources.Path(cmd.Path), cmd.Paint)
		case StrokePathCommand:
			c.StrokePath(r.resources.Path(cmd.Path), cmd.Stroke)
		case FillGradientCommand:
			c.FillGradient(r.resources.Path(cmd.Path), cmd.Gradient)
		case DrawImageCommand:
			c.DrawImage(r.resources.Image(cmd.Image), cmd.Dst)
		}
	}
}

// Playback renders the recording into backend: Begin, every command, End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	r.Replay(backend)
	return backend.End()
}
