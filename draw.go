package deviceframe

import (
	"github.com/gogpu/gg"
)

// SideButtonSide is the device edge a row of hardware buttons sits on.
type SideButtonSide uint8

const (
	SideTop SideButtonSide = iota
	SideLeft
	SideRight
	SideBottom
)

func (s SideButtonSide) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

func fillRoundRect(c Canvas, r Rect, radius float64, col gg.RGBA) {
	c.FillPath(RoundRectPath(r, radius), Fill(col))
}

func fillRect(c Canvas, r Rect, col gg.RGBA) {
	c.FillPath(NewPath().AddRect(r), Fill(col))
}

func fillCircle(c Canvas, center gg.Point, radius float64, col gg.RGBA) {
	c.FillPath(NewPath().AddCircle(center, radius), Fill(col))
}

func strokeLine(c Canvas, a, b gg.Point, width float64, col gg.RGBA) {
	c.StrokePath(NewPath().MoveTo(a.X, a.Y).LineTo(b.X, b.Y), Stroke{Color: col, Width: width})
}

// DrawDeviceBody fills the outer body over bounds and the inner body over
// bounds deflated by innerInsets.
func DrawDeviceBody(c Canvas, bounds Rect, outer gg.RGBA, outerRadius float64, inner gg.RGBA, innerRadius float64, innerInsets EdgeInsets) {
	fillRoundRect(c, bounds, outerRadius, outer)
	fillRoundRect(c, bounds.Deflate(innerInsets), innerRadius, inner)
}

// CameraStyle configures a front camera drawn as three concentric circles.
type CameraStyle struct {
	Radius      float64
	BorderWidth float64
	Border      gg.RGBA
	Inner       gg.RGBA
	Reflect     gg.RGBA
}

// DefaultCamera is the camera used by the generic families.
func DefaultCamera() CameraStyle {
	return CameraStyle{
		Radius:      8,
		BorderWidth: 5,
		Border:      ARGB(0xff262C2D),
		Inner:       ARGB(0xff121515),
		Reflect:     ARGB(0xff465256),
	}
}

// DrawCamera draws the border ring, the lens body and a highlight of a
// third of the radius lifted by a quarter of the radius.
func DrawCamera(c Canvas, center gg.Point, cam CameraStyle) {
	fillCircle(c, center, cam.Radius+cam.BorderWidth, cam.Border)
	fillCircle(c, center, cam.Radius, cam.Inner)
	fillCircle(c, gg.Pt(center.X, center.Y-cam.Radius*0.25), cam.Radius/3, cam.Reflect)
}

// SideButtonRects lays out hardware buttons along one edge of bounds.
//
// gapsAndSizes alternates gap, size, gap, size...: even entries are skipped,
// odd entries become buttons of half-thickness buttonWidth straddling the
// edge. With inverted set the walk starts from the far end of the edge
// (bottom for LEFT/RIGHT, right for TOP/BOTTOM). Fewer than two entries
// yield no buttons.
func SideButtonRects(bounds Rect, buttonWidth float64, side SideButtonSide, inverted bool, gapsAndSizes []float64) []Rect {
	if len(gapsAndSizes) < 2 {
		return nil
	}
	var x, y float64
	switch side {
	case SideLeft:
		x, y = bounds.Left, bounds.Top
	case SideRight:
		x, y = bounds.Right, bounds.Top
	case SideTop:
		x, y = bounds.Left, bounds.Top
	case SideBottom:
		x, y = bounds.Left, bounds.Bottom
	}
	vertical := side == SideLeft || side == SideRight

	var rects []Rect
	for i, cur := range gapsAndSizes {
		if i%2 == 1 {
			var r Rect
			if vertical {
				r = Rect{Left: x - buttonWidth, Top: y, Right: x + buttonWidth, Bottom: y + cur}
				if inverted {
					r.Top, r.Bottom = bounds.Bottom-y-cur, bounds.Bottom-y
				}
			} else {
				r = Rect{Left: x, Top: y - buttonWidth, Right: x + cur, Bottom: y + buttonWidth}
				if inverted {
					r.Left, r.Right = bounds.Right-x-cur, bounds.Right-x
				}
			}
			rects = append(rects, r)
		}
		if vertical {
			y += cur
		} else {
			x += cur
		}
	}
	return rects
}

// DrawSideButtons draws the rectangles computed by SideButtonRects with a
// corner radius of buttonWidth.
func DrawSideButtons(c Canvas, bounds Rect, col gg.RGBA, buttonWidth float64, side SideButtonSide, inverted bool, gapsAndSizes []float64) {
	for _, r := range SideButtonRects(bounds, buttonWidth, side, inverted, gapsAndSizes) {
		fillRoundRect(c, r, buttonWidth, col)
	}
}

// WallpaperColors returns the default desktop wallpaper palette for a
// platform.
func WallpaperColors(platform TargetPlatform) []gg.RGBA {
	switch platform {
	case MacOS:
		return []gg.RGBA{ARGB(0xFF4817A6), ARGB(0xFFB236AF), ARGB(0xFFC7BDD6), ARGB(0xFFC870A2)}
	case Linux:
		return []gg.RGBA{ARGB(0xFFBE15DA), ARGB(0xFFE22888), ARGB(0xFFD84E00)}
	default:
		return []gg.RGBA{ARGB(0xFF1491F8), ARGB(0xFF0043D8)}
	}
}

// DrawDefaultWallpaper fills bounds with the platform's radial wallpaper.
// The gradient is centred at (0, bounds height) with a radius of the bounds
// width.
func DrawDefaultWallpaper(c Canvas, platform TargetPlatform, bounds Rect) {
	g := NewRadialGradient(gg.Pt(0, bounds.Height()), bounds.Width(), WallpaperColors(platform)...)
	c.FillGradient(NewPath().AddRect(bounds), g)
}

// DrawWindowBar draws a title bar with the platform's window controls.
// Android and iOS have no desktop chrome and draw nothing.
func DrawWindowBar(c Canvas, platform TargetPlatform, bounds Rect, windowRadius float64) {
	switch platform {
	case Linux:
		drawLinuxBar(c, bounds, windowRadius)
	case Windows:
		drawWindowsBar(c, bounds, windowRadius)
	case MacOS:
		drawMacOSBar(c, bounds, windowRadius)
	}
}

func drawLinuxBar(c Canvas, bounds Rect, windowRadius float64) {
	fillRoundRect(c, bounds, windowRadius, ARGB(0xFE323030))

	const icon, inner = 22.0, 8.0
	cy := bounds.Center().Y

	// close
	iconBounds := Rect{
		Left:   bounds.Right - icon*1.5 - icon,
		Top:    cy - icon/2,
		Right:  bounds.Right - icon*1.5,
		Bottom: cy + icon/2,
	}
	ic := iconBounds.Center()
	glyph := Rect{Left: ic.X - inner/2, Top: ic.Y - inner/2 - 1, Right: ic.X + inner/2, Bottom: ic.Y + inner/2 - 1}
	fillCircle(c, ic, iconBounds.Width()*0.5, ARGB(0xFFE95420))
	strokeLine(c, glyph.TopLeft(), gg.Pt(glyph.Right, glyph.Bottom), 2, white)
	strokeLine(c, gg.Pt(glyph.Right, glyph.Top), gg.Pt(glyph.Left, glyph.Bottom), 2, white)

	// minimize
	iconBounds = iconBounds.Translate(-icon*2, 0)
	ic = iconBounds.Center()
	glyph = Rect{Left: ic.X - inner/2, Top: ic.Y - inner/2, Right: ic.X + inner/2, Bottom: ic.Y + inner/2}
	c.StrokePath(NewPath().AddRect(glyph), Stroke{Color: white, Width: 2})

	// maximize, drawn along the square's bottom edge
	strokeLine(c, gg.Pt(glyph.Left, glyph.Bottom), gg.Pt(glyph.Right, glyph.Bottom), 2, white)
}

func drawWindowsBar(c Canvas, bounds Rect, windowRadius float64) {
	fillRoundRect(c, bounds, windowRadius, ARGB(0xBB000000))

	const icon = 12.0
	cy := bounds.Center().Y
	iconBounds := Rect{
		Left:   bounds.Right - icon*2.5 - icon,
		Top:    cy - icon/2,
		Right:  bounds.Right - icon*2.5,
		Bottom: cy + icon/2,
	}
	strokeLine(c, iconBounds.TopLeft(), gg.Pt(iconBounds.Right, iconBounds.Bottom), 2, white)
	strokeLine(c, gg.Pt(iconBounds.Right, iconBounds.Top), gg.Pt(iconBounds.Left, iconBounds.Bottom), 2, white)

	iconBounds = iconBounds.Translate(-icon*3, 0)
	c.StrokePath(NewPath().AddRect(iconBounds), Stroke{Color: white, Width: 2})

	iconBounds = iconBounds.Translate(-icon*3, 0)
	mid := iconBounds.Center().Y
	strokeLine(c, gg.Pt(iconBounds.Left, mid), gg.Pt(iconBounds.Right, mid), 2, white)
}

func drawMacOSBar(c Canvas, bounds Rect, windowRadius float64) {
	fillRoundRect(c, bounds, windowRadius, ARGB(0xBB000000))

	const icon, offset = 12.0, 8.0
	lights := []gg.RGBA{ARGB(0xFFEE695E), ARGB(0xFFF5BD4E), ARGB(0xFF61C354)}
	iconBounds := RectXYWH(bounds.Left+offset, bounds.Top+offset, icon, icon)
	for _, col := range lights {
		fillCircle(c, iconBounds.Center(), icon*0.5, col)
		iconBounds = RectXYWH(iconBounds.Right+offset, iconBounds.Top, icon, icon)
	}
}

// MonitorFootStyle configures the stand under a desktop monitor.
type MonitorFootStyle struct {
	Outer            gg.RGBA
	Inner            gg.RGBA
	BarWidth         float64
	BarSpace         float64
	BottomHeight     float64
	BaseHeight       float64
	BaseTopRadius    float64
	BaseBottomRadius float64
}

// DrawMonitorFoot draws two vertical bars, a two-tone base and two pads
// inside bounds.
func DrawMonitorFoot(c Canvas, bounds Rect, f MonitorFootStyle) {
	cx := bounds.Center().X
	barH := bounds.Height() - f.BottomHeight
	fillRect(c, RectXYWH(cx-f.BarSpace/2-f.BarWidth, bounds.Top, f.BarWidth, barH), f.Inner)
	fillRect(c, RectXYWH(cx+f.BarSpace/2, bounds.Top, f.BarWidth, barH), f.Inner)

	fillRoundRect(c, RectXYWH(bounds.Left, bounds.Bottom-f.BottomHeight-f.BaseHeight, bounds.Width(), f.BaseHeight*0.5), f.BaseTopRadius, f.Outer)
	fillRoundRect(c, RectXYWH(bounds.Left, bounds.Bottom-f.BottomHeight-f.BaseHeight*0.5, bounds.Width(), f.BaseHeight*0.5), f.BaseBottomRadius, f.Inner)

	padW := f.BottomHeight * 5
	fillRoundRect(c, RectXYWH(bounds.Left+padW, bounds.Bottom-f.BottomHeight, padW, f.BottomHeight), f.BottomHeight, f.Inner)
	fillRoundRect(c, RectXYWH(bounds.Right-padW*2, bounds.Bottom-f.BottomHeight, padW, f.BottomHeight), f.BottomHeight, f.Inner)
}
