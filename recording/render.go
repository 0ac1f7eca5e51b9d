package recording

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/deviceframe"
)

// Record composes s and content into a new recording sized to
// s.OutputSize(), rounded up to whole pixels.
func Record(s deviceframe.Screen, content deviceframe.Content) *Recording {
	size := s.OutputSize()
	rec := NewRecorder(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	s.Render(rec, content)
	return rec.Finish()
}

// Render composes s and content and writes the result in the given format
// ("png", "svg", or any other registered backend name).
func Render(w io.Writer, format string, s deviceframe.Screen, content deviceframe.Content) error {
	b, err := NewBackend(format)
	if err != nil {
		return err
	}
	r := Record(s, content)
	if err := r.Playback(b); err != nil {
		return fmt.Errorf("recording: %s playback: %w", format, err)
	}
	n, err := b.WriteTo(w)
	if err != nil {
		return fmt.Errorf("recording: write %s: %w", format, err)
	}
	deviceframe.Logger().Debug("recording: rendered",
		slog.String("format", format),
		slog.String("device", s.Device.ID()),
		slog.Int("commands", len(r.Commands())),
		slog.Int64("bytes", n))
	return nil
}
