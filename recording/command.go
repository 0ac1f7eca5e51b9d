package recording

import (
	"fmt"

	"github.com/gogpu/deviceframe"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdTranslate                    // Post-multiply a translation
	CmdRotate                       // Post-multiply a rotation
	CmdClip                         // Intersect the clip with a path

	// Drawing commands
	CmdFillPath     // Fill a path with a solid paint
	CmdStrokePath   // Stroke a path
	CmdFillGradient // Fill a path with a radial gradient
	CmdDrawImage    // Draw a scaled image
)

var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdTranslate:    "Translate",
	CmdRotate:       "Rotate",
	CmdClip:         "Clip",
	CmdFillPath:     "FillPath",
	CmdStrokePath:   "StrokePath",
	CmdFillGradient: "FillGradient",
	CmdDrawImage:    "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	fmt.Stringer
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference is not InvalidRef.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the transform and clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

func (SaveCommand) String() string { return "Save" }

// RestoreCommand restores the previously saved transform and clip.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

func (RestoreCommand) String() string { return "Restore" }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

func (c TranslateCommand) String() string {
	return fmt.Sprintf("Translate(%g, %g)", c.DX, c.DY)
}

// RotateCommand rotates about the origin, clockwise on screen.
type RotateCommand struct {
	Radians float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

func (c RotateCommand) String() string {
	return fmt.Sprintf("Rotate(%.4f)", c.Radians)
}

// ClipCommand intersects the clip with a path under the path's fill rule.
type ClipCommand struct {
	Path PathRef
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

func (c ClipCommand) String() string {
	return fmt.Sprintf("Clip(path#%d)", c.Path)
}

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillPathCommand fills a path with a solid paint.
type FillPathCommand struct {
	Path  PathRef
	Paint deviceframe.Paint
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

func (c FillPathCommand) String() string {
	return fmt.Sprintf("FillPath(path#%d, %s, %s)", c.Path, deviceframe.HexString(c.Paint.Color), c.Paint.Blend)
}

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path   PathRef
	Stroke deviceframe.Stroke
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

func (c StrokePathCommand) String() string {
	return fmt.Sprintf("StrokePath(path#%d, %s, %g)", c.Path, deviceframe.HexString(c.Stroke.Color), c.Stroke.Width)
}

// FillGradientCommand fills a path with a radial gradient. The gradient is
// in the same coordinate space as the path.
type FillGradientCommand struct {
	Path     PathRef
	Gradient deviceframe.RadialGradient
}

// Type implements Command.
func (FillGradientCommand) Type() CommandType { return CmdFillGradient }

func (c FillGradientCommand) String() string {
	return fmt.Sprintf("FillGradient(path#%d, center=(%g,%g) r=%g stops=%d)",
		c.Path, c.Gradient.Center.X, c.Gradient.Center.Y, c.Gradient.Radius, len(c.Gradient.Stops))
}

// DrawImageCommand scales an image into a destination rectangle.
type DrawImageCommand struct {
	Image ImageRef
	Dst   deviceframe.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

func (c DrawImageCommand) String() string {
	return fmt.Sprintf("DrawImage(image#%d, %g,%g %gx%g)",
		c.Image, c.Dst.Left, c.Dst.Top, c.Dst.Width(), c.Dst.Height())
}
