package deviceframe

import (
	"fmt"
	"strings"
)

// Orientation is the way a device is held.
type Orientation uint8

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// IsPortrait reports o == Portrait.
func (o Orientation) IsPortrait() bool { return o == Portrait }

// IsLandscape reports o == Landscape.
func (o Orientation) IsLandscape() bool { return o == Landscape }

// OrientationFromSize returns Portrait when s is at least as tall as it is
// wide, so square sizes are Portrait.
func OrientationFromSize(s Size) Orientation {
	if s.Height >= s.Width {
		return Portrait
	}
	return Landscape
}

// AreOpposite reports whether a and b differ.
func AreOpposite(a, b Orientation) bool {
	return a != b
}

// ParseOrientation accepts "portrait" or "landscape" in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("deviceframe: unknown orientation %q", s)
}
