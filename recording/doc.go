// Package recording captures drawing as typed commands and replays them
// into output backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: implements deviceframe.Canvas and captures every call
//   - Recording: stores commands and resources for playback
//   - Backend: renders commands to a specific output format
//
// Commands are typed structs rather than a binary stream so tests can
// assert exact draw calls. Paths and images live in a [ResourcePool] and
// are referenced by handle; paths are cloned on the way in, so a
// Recording never changes after Finish.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(406, 956)
//	screen.Render(rec, content)
//	r := rec.Finish()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd)
//	}
//
// # Backends
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/deviceframe/recording"
//	    _ "github.com/gogpu/deviceframe/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/deviceframe/recording/backends/svg"    // "svg"
//	)
//
//	err := recording.Render(f, "svg", screen, content)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after Finish and can be played back from multiple goroutines, each into
// its own backend instance.
package recording
