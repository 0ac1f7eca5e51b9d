package deviceframe

import (
	"errors"
	"fmt"
)

// Construction errors. Builders and catalogs wrap these with the offending
// values; test with errors.Is.
var (
	ErrInvalidScreenSize   = errors.New("deviceframe: screen size must be positive")
	ErrWindowOutOfBounds   = errors.New("deviceframe: window does not fit the screen")
	ErrInvalidPixelRatio   = errors.New("deviceframe: pixel ratio must be positive")
	ErrDuplicateIdentifier = errors.New("deviceframe: duplicate device identifier")
	ErrUnknownDevice       = errors.New("deviceframe: unknown device")
	ErrUnknownPlatform     = errors.New("deviceframe: unknown platform")
	ErrOptionMismatch      = errors.New("deviceframe: option does not apply to this device type")
)

func errWindow(window Rect, screen Size, reason string) error {
	return fmt.Errorf("%w: %s: window %gx%g at (%g,%g), screen %gx%g", ErrWindowOutOfBounds, reason,
		window.Width(), window.Height(), window.Left, window.Top, screen.Width, screen.Height)
}
