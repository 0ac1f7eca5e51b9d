package deviceframe

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeviceType classifies a device.
type DeviceType uint8

const (
	Unknown DeviceType = iota
	Phone
	Tablet
	TV
	Desktop
	Laptop
)

var deviceTypeNames = [...]string{
	Unknown: "UNKNOWN",
	Phone:   "PHONE",
	Tablet:  "TABLET",
	TV:      "TV",
	Desktop: "DESKTOP",
	Laptop:  "LAPTOP",
}

// String returns the upper-case name of the type.
func (t DeviceType) String() string {
	if int(t) < len(deviceTypeNames) {
		return deviceTypeNames[t]
	}
	return deviceTypeNames[Unknown]
}

// DeviceTypes lists every device type.
func DeviceTypes() []DeviceType {
	return []DeviceType{Unknown, Phone, Tablet, TV, Desktop, Laptop}
}

// ParseDeviceType matches s against the type names ignoring case.
// Unrecognized input yields Unknown.
func ParseDeviceType(s string) DeviceType {
	for i, name := range deviceTypeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return DeviceType(i)
		}
	}
	return Unknown
}

// TargetPlatform is the operating system a device runs.
type TargetPlatform uint8

const (
	Android TargetPlatform = iota
	IOS
	MacOS
	Windows
	Linux
)

var platformNames = [...]string{
	Android: "ANDROID",
	IOS:     "IOS",
	MacOS:   "MACOS",
	Windows: "WINDOWS",
	Linux:   "LINUX",
}

// String returns the upper-case name of the platform.
func (p TargetPlatform) String() string {
	if int(p) < len(platformNames) {
		return platformNames[p]
	}
	return fmt.Sprintf("TargetPlatform(%d)", uint8(p))
}

// Platforms lists every target platform.
func Platforms() []TargetPlatform {
	return []TargetPlatform{Android, IOS, MacOS, Windows, Linux}
}

// ParsePlatform matches s against the platform names ignoring case.
func ParsePlatform(s string) (TargetPlatform, error) {
	for i, name := range platformNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return TargetPlatform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// DeviceIdentifier names a device uniquely within a catalog.
type DeviceIdentifier struct {
	Name     string
	Type     DeviceType
	Platform TargetPlatform
}

// String returns "{platform}_{type}_{name}" in lower case. A Caser is
// not safe for concurrent use, so one is built per call.
func (id DeviceIdentifier) String() string {
	return cases.Lower(language.Und).String(id.Platform.String() + "_" + id.Type.String() + "_" + id.Name)
}

// DeviceInfo describes a device: identity, screen and frame geometry,
// safe areas and the painter that draws its frame. It is immutable once
// built; use the New* builders to create one. The zero DeviceInfo has no
// painter and cannot be rendered.
type DeviceInfo struct {
	identifier       DeviceIdentifier
	name             string
	safeAreas        EdgeInsets
	rotatedSafeAreas *EdgeInsets
	screenPath       *Path
	pixelRatio       float64
	painter          Painter
	frameSize        Size
	screenSize       Size
}

// Identifier returns the device identifier.
func (d *DeviceInfo) Identifier() DeviceIdentifier { return d.identifier }

// ID returns the identifier string form.
func (d *DeviceInfo) ID() string { return d.identifier.String() }

// Name returns the display name.
func (d *DeviceInfo) Name() string { return d.name }

// SafeAreas returns the portrait safe-area insets.
func (d *DeviceInfo) SafeAreas() EdgeInsets { return d.safeAreas }

// RotatedSafeAreas returns the landscape safe-area insets. ok is false when
// the device cannot rotate.
func (d *DeviceInfo) RotatedSafeAreas() (insets EdgeInsets, ok bool) {
	if d.rotatedSafeAreas == nil {
		return EdgeInsets{}, false
	}
	return *d.rotatedSafeAreas, true
}

// ScreenPath returns a copy of the screen outline in frame coordinates.
func (d *DeviceInfo) ScreenPath() *Path {
	if d.screenPath == nil {
		return NewPath()
	}
	return d.screenPath.Clone()
}

// PixelRatio returns the number of physical pixels per logical pixel.
func (d *DeviceInfo) PixelRatio() float64 { return d.pixelRatio }

// Painter returns the frame painter.
func (d *DeviceInfo) Painter() Painter { return d.painter }

// FrameSize returns the size of the decorated device.
func (d *DeviceInfo) FrameSize() Size { return d.frameSize }

// ScreenSize returns the logical size of the content area. For laptops and
// monitors this is the emulated window's content area.
func (d *DeviceInfo) ScreenSize() Size { return d.screenSize }

// CanRotate reports whether the device declares landscape safe areas.
func (d *DeviceInfo) CanRotate() bool { return d.rotatedSafeAreas != nil }

// IsLandscape reports whether the device is shown rotated for o.
func (d *DeviceInfo) IsLandscape(o Orientation) bool {
	return d.CanRotate() && o == Landscape
}

// IsInLandscape reports whether o is landscape and the screen itself is
// wider than tall.
func (d *DeviceInfo) IsInLandscape(o Orientation) bool {
	return o.IsLandscape() && d.screenSize.Width > d.screenSize.Height
}

// OrientedScreenSize returns the screen size with width and height swapped
// in landscape.
func (d *DeviceInfo) OrientedScreenSize(o Orientation) Size {
	if o.IsLandscape() {
		return d.screenSize.Swap()
	}
	return d.screenSize
}

// SafeAreasFor returns the safe areas that apply in orientation o.
func (d *DeviceInfo) SafeAreasFor(o Orientation) EdgeInsets {
	if d.IsLandscape(o) {
		return *d.rotatedSafeAreas
	}
	return d.safeAreas
}

// ScreenBounds returns the bounding box of the screen path.
func (d *DeviceInfo) ScreenBounds() Rect {
	if d.screenPath == nil {
		return Rect{}
	}
	return d.screenPath.Bounds()
}

func (d *DeviceInfo) String() string {
	return d.identifier.String()
}
