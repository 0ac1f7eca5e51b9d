package deviceframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// ARGB converts a packed 0xAARRGGBB value into a gg color.
func ARGB(v uint32) gg.RGBA {
	return gg.RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(v>>24&0xff) / 255,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional).
func ParseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("deviceframe: invalid color %q", s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("deviceframe: invalid color %q", s)
		}
	}
	return gg.Hex(h), nil
}

var white = gg.RGBA{R: 1, G: 1, B: 1, A: 1}

// HexString formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func HexString(c gg.RGBA) string {
	b := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	if b(c.A) == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", b(c.R), b(c.G), b(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}
