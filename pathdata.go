package deviceframe

import (
	"fmt"
)

// Path commands for PathData. Each command is followed by its
// coordinates, like an SVG path element in absolute form.
const (
	MoveToCmd  = 0 // x y
	LineToCmd  = 1 // x y
	CubicToCmd = 2 // c1x c1y c2x c2y x y
	CloseCmd   = 3
)

// PathData is a flat command+coordinate encoding of a path, used to keep
// baked device artwork as plain data.
type PathData []float64

var cmdArgs = [...]int{
	MoveToCmd:  2,
	LineToCmd:  2,
	CubicToCmd: 6,
	CloseCmd:   0,
}

// Decode builds a Path from the encoded commands.
func (d PathData) Decode(rule FillRule) (*Path, error) {
	p := NewPath().SetFillRule(rule)
	for i := 0; i < len(d); {
		cmd := int(d[i])
		if float64(cmd) != d[i] || cmd < 0 || cmd >= len(cmdArgs) {
			return nil, fmt.Errorf("deviceframe: path data: bad command %v at %d", d[i], i)
		}
		n := cmdArgs[cmd]
		if i+1+n > len(d) {
			return nil, fmt.Errorf("deviceframe: path data: command %d at %d needs %d values", cmd, i, n)
		}
		a := d[i+1 : i+1+n]
		switch cmd {
		case MoveToCmd:
			p.MoveTo(a[0], a[1])
		case LineToCmd:
			p.LineTo(a[0], a[1])
		case CubicToCmd:
			p.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case CloseCmd:
			p.Close()
		}
		i += 1 + n
	}
	return p, nil
}

// MustDecode is like Decode but panics on malformed data. It is meant for
// compiled-in artwork.
func (d PathData) MustDecode(rule FillRule) *Path {
	p, err := d.Decode(rule)
	if err != nil {
		panic(err)
	}
	return p
}
