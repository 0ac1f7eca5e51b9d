package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // screenshot formats
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/internal/watcher"
	"github.com/gogpu/deviceframe/recording"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"
)

const watchDebounce = 250 * time.Millisecond

// job is one framed output.
type job struct {
	screen deviceframe.Screen
	format string
	output string
}

func (a *app) renderCmd() *cobra.Command {
	var (
		input     string
		output    string
		format    string
		landscape bool
		noFrame   bool
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "render <device>",
		Short: "Frame a screenshot on one device",
		Example: `  deviceframe render ios_phone_iphone-13 -i shot.png
  deviceframe render oneplus -i shot.webp -o framed.svg
  deviceframe render medium-tablet --landscape
  deviceframe render iphone -i shot.png --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			if watch && input == "" {
				return errors.New("--watch needs an input screenshot (-i)")
			}

			orientation := deviceframe.Portrait
			if landscape {
				orientation = deviceframe.Landscape
				if !d.CanRotate() {
					a.ui.Warning("%s cannot rotate, rendering portrait", d.Name())
				}
			}
			screen := deviceframe.NewScreen(d, orientation)
			screen.FrameVisible = !noFrame

			j, err := a.newJob(screen, format, output, "")
			if err != nil {
				return err
			}
			if err := a.runJob(j, input); err != nil {
				return err
			}
			a.ui.Success("Wrote %s", j.output)

			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), j, input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Screenshot to frame (png, jpeg or webp)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <output_dir>/<device id>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", formatUsage("default from the output extension or config"))
	cmd.Flags().BoolVar(&landscape, "landscape", false, "Turn the device to landscape")
	cmd.Flags().BoolVar(&noFrame, "no-frame", false, "Render the screen without the frame")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the input changes")

	return cmd
}

// resolve finds a device for a command argument.
func (a *app) resolve(query string) (*deviceframe.DeviceInfo, error) {
	d, err := resolveDevice(a.catalog, query)
	if err != nil {
		return nil, err
	}
	if d.ID() != strings.ToLower(strings.TrimSpace(query)) {
		a.ui.Dim("Using %s", d.ID())
	}
	return d, nil
}

// newJob picks the format from the flag, the output extension or the
// config, in that order, and the output path from the flag or dir.
func (a *app) newJob(screen deviceframe.Screen, format, output, dir string) (job, error) {
	if format == "" && output != "" {
		format = filepath.Ext(output)
	}
	if format == "" {
		format = a.cfg.Format
	}
	format, err := recording.ParseFormat(format)
	if err != nil {
		return job{}, err
	}
	if output == "" {
		if dir == "" {
			dir = a.cfg.OutputDir
		}
		output = filepath.Join(dir, outputName(screen)+"."+format)
	}
	return job{screen: screen, format: format, output: output}, nil
}

// formatUsage lists the registered formats for a --format flag.
func formatUsage(def string) string {
	return fmt.Sprintf("Output format: %s (%s)", strings.Join(recording.Backends(), ", "), def)
}

func outputName(s deviceframe.Screen) string {
	name := s.Device.ID()
	if s.Rotated() {
		name += "_landscape"
	}
	return name
}

// runJob renders j, framing the screenshot at input when set.
func (a *app) runJob(j job, input string) error {
	var content deviceframe.Content
	if input != "" {
		img, err := loadImage(input)
		if err != nil {
			return err
		}
		content = deviceframe.ImageContent{Image: img}
	}
	return writeFrame(j, content)
}

func writeFrame(j job, content deviceframe.Content) (err error) {
	if dir := filepath.Dir(j.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	f, err := os.Create(j.output)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return recording.Render(f, j.format, j.screen, content)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}
	return img, nil
}

// watch re-renders j each time input settles after a change, until ctx is
// cancelled.
func (a *app) watch(ctx context.Context, j job, input string) error {
	w, err := watcher.New(watchDebounce)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	if err := w.AddFile(input); err != nil {
		return err
	}

	a.ui.Info("Watching %s (Ctrl+C to stop)", input)
	for range w.Watch(ctx) {
		if err := a.runJob(j, input); err != nil {
			a.ui.Error("%v", err)
			continue
		}
		a.ui.Success("Wrote %s", j.output)
	}
	return nil
}
