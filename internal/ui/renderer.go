// Package ui formats CLI output with colors.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/gogpu/deviceframe"
)

// Renderer writes listings to out and status messages to errOut.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewRenderer creates a Renderer on stdout and stderr.
func NewRenderer() *Renderer {
	return NewRendererTo(os.Stdout, os.Stderr)
}

// NewRendererTo creates a Renderer on the given writers.
func NewRendererTo(out, errOut io.Writer) *Renderer {
	return &Renderer{out: out, errOut: errOut}
}

// Colors
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func (r *Renderer) status(mark, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// Success prints a success message
func (r *Renderer) Success(format string, args ...any) { r.status(green("✓"), format, args...) }

// Error prints an error message
func (r *Renderer) Error(format string, args ...any) { r.status(red("✗"), format, args...) }

// Warning prints a warning message
func (r *Renderer) Warning(format string, args ...any) { r.status(yellow("!"), format, args...) }

// Info prints an info message
func (r *Renderer) Info(format string, args ...any) { r.status(" ", format, args...) }

// Dim prints dimmed/secondary text
func (r *Renderer) Dim(format string, args ...any) {
	r.status(" ", "%s", dim(fmt.Sprintf(format, args...)))
}

// RenderDeviceList prints devices grouped by platform, in catalog order
// within each group.
func (r *Renderer) RenderDeviceList(devices []*deviceframe.DeviceInfo) {
	if len(devices) == 0 {
		r.Info("No devices found")
		return
	}

	byPlatform := make(map[deviceframe.TargetPlatform][]*deviceframe.DeviceInfo)
	for _, d := range devices {
		p := d.Identifier().Platform
		byPlatform[p] = append(byPlatform[p], d)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, platform := range deviceframe.Platforms() {
		devs := byPlatform[platform]
		if len(devs) == 0 {
			continue
		}
		fmt.Fprintf(r.out, "\n%s\n", bold(platform.String()))
		for _, d := range devs {
			s := d.ScreenSize()
			fmt.Fprintf(r.out, "  %-36s %-22s %s %s\n",
				cyan(d.ID()),
				d.Name(),
				dim(fmt.Sprintf("%gx%g", s.Width, s.Height)),
				dim(fmt.Sprintf("@%gx", d.PixelRatio())),
			)
		}
	}
	fmt.Fprintln(r.out)
}

// RenderDeviceInfo prints the geometry of one device.
func (r *Renderer) RenderDeviceInfo(d *deviceframe.DeviceInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := d.Identifier()
	frame := d.FrameSize()
	screen := d.ScreenSize()
	b := d.ScreenBounds()
	safe := d.SafeAreas()

	row := func(label, value string) {
		fmt.Fprintf(r.out, "  %-20s %s\n", dim(label), value)
	}
	fmt.Fprintf(r.out, "%s %s\n", bold(d.Name()), cyan(d.ID()))
	row("platform", id.Platform.String())
	row("type", id.Type.String())
	row("frame", fmt.Sprintf("%gx%g", frame.Width, frame.Height))
	row("screen", fmt.Sprintf("%gx%g", screen.Width, screen.Height))
	row("screen bounds", fmt.Sprintf("%g,%g %gx%g", b.Left, b.Top, b.Width(), b.Height()))
	row("pixel ratio", fmt.Sprintf("%g", d.PixelRatio()))
	row("safe areas", insets(safe))
	if rot, ok := d.RotatedSafeAreas(); ok {
		row("rotated safe areas", insets(rot))
	} else {
		row("rotated safe areas", dim("cannot rotate"))
	}
}

func insets(e deviceframe.EdgeInsets) string {
	return fmt.Sprintf("left %g, top %g, right %g, bottom %g", e.Left, e.Top, e.Right, e.Bottom)
}
