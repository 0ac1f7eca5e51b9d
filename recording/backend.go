package recording

import (
	"io"

	"github.com/gogpu/deviceframe"
)

// Backend is the interface all output backends implement. A backend is a
// deviceframe.Canvas bracketed by Begin and End, with the encoded result
// available from WriteTo afterwards.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Manage its own state stack for Save/Restore (transform and clip)
//  3. Treat Restore on an empty stack as a no-op
//  4. Report encoding errors from End or WriteTo, never from drawing calls
//
// A backend instance renders one image; create a new one per render.
type Backend interface {
	deviceframe.Canvas

	// Begin initializes the backend for rendering at the given pixel
	// dimensions. It must be called before any drawing operation.
	Begin(width, height int) error

	// End finalizes the rendering. After End, WriteTo can be used.
	End() error

	// WriteTo writes the encoded image. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// MediaTyper is implemented by backends that know the MIME type of their
// output.
type MediaTyper interface {
	MediaType() string
}
