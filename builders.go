package deviceframe

import (
	"fmt"
	"log/slog"
	"math"
)

// DeviceOption configures a device during construction.
//
// Example:
//
//	d, err := deviceframe.NewGenericPhone(deviceframe.Android, "pixel", "Pixel", deviceframe.Sz(412, 915),
//	    deviceframe.WithSafeAreas(deviceframe.Insets(0, 24, 0, 16)),
//	    deviceframe.WithPixelRatio(2.625))
type DeviceOption func(*deviceOptions)

type deviceOptions struct {
	safeAreas    EdgeInsets
	rotated      *EdgeInsets
	pixelRatio   float64
	painter      Painter
	handheld     *HandheldStyle
	laptopStyle  *LaptopStyle
	monitorStyle *MonitorStyle
}

func defaultDeviceOptions() deviceOptions {
	return deviceOptions{pixelRatio: 2}
}

// WithSafeAreas sets the portrait safe areas. The default is ZeroInsets.
func WithSafeAreas(in EdgeInsets) DeviceOption {
	return func(o *deviceOptions) { o.safeAreas = in }
}

// WithRotatedSafeAreas sets the landscape safe areas and makes the device
// rotatable. Without it the device cannot rotate.
func WithRotatedSafeAreas(in EdgeInsets) DeviceOption {
	return func(o *deviceOptions) { o.rotated = &in }
}

// WithPixelRatio sets the physical-to-logical pixel ratio. The default
// is 2.
func WithPixelRatio(r float64) DeviceOption {
	return func(o *deviceOptions) { o.pixelRatio = r }
}

// WithPainter replaces the family painter. For laptops and monitors a
// WindowPainter keeps the window content area as the screen size.
func WithPainter(p Painter) DeviceOption {
	return func(o *deviceOptions) { o.painter = p }
}

// WithHandheldStyle overrides the phone or tablet look.
func WithHandheldStyle(s HandheldStyle) DeviceOption {
	return func(o *deviceOptions) { o.handheld = &s }
}

// WithLaptopStyle overrides the laptop look. Other builders reject it
// with ErrOptionMismatch, as they do the other family styles.
func WithLaptopStyle(s LaptopStyle) DeviceOption {
	return func(o *deviceOptions) { o.laptopStyle = &s }
}

// WithMonitorStyle overrides the desktop monitor look.
func WithMonitorStyle(s MonitorStyle) DeviceOption {
	return func(o *deviceOptions) { o.monitorStyle = &s }
}

// checkStyles rejects style options meant for another device family.
func (o deviceOptions) checkStyles(ident DeviceIdentifier) error {
	var stray string
	switch ident.Type {
	case Phone, Tablet:
		if o.laptopStyle != nil {
			stray = "laptop style"
		} else if o.monitorStyle != nil {
			stray = "monitor style"
		}
	case Laptop:
		if o.handheld != nil {
			stray = "handheld style"
		} else if o.monitorStyle != nil {
			stray = "monitor style"
		}
	case Desktop:
		if o.handheld != nil {
			stray = "handheld style"
		} else if o.laptopStyle != nil {
			stray = "laptop style"
		}
	}
	if stray != "" {
		return fmt.Errorf("%w: %s on %s", ErrOptionMismatch, stray, ident)
	}
	return nil
}

func applyOptions(opts []DeviceOption) deviceOptions {
	o := defaultDeviceOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewGenericPhone builds a phone drawn by a HandheldPainter with
// DefaultPhoneStyle.
func NewGenericPhone(platform TargetPlatform, id, name string, screen Size, opts ...DeviceOption) (*DeviceInfo, error) {
	return newHandheld(platform, Phone, id, name, screen, DefaultPhoneStyle(), opts)
}

// NewGenericTablet builds a tablet drawn by a HandheldPainter with
// DefaultTabletStyle.
func NewGenericTablet(platform TargetPlatform, id, name string, screen Size, opts ...DeviceOption) (*DeviceInfo, error) {
	return newHandheld(platform, Tablet, id, name, screen, DefaultTabletStyle(), opts)
}

func newHandheld(platform TargetPlatform, typ DeviceType, id, name string, screen Size, style HandheldStyle, opts []DeviceOption) (*DeviceInfo, error) {
	o := applyOptions(opts)
	ident := DeviceIdentifier{Name: id, Type: typ, Platform: platform}
	if err := o.checkStyles(ident); err != nil {
		return nil, err
	}
	if o.handheld != nil {
		style = *o.handheld
	}
	painter := o.painter
	if painter == nil {
		painter = NewHandheldPainter(style)
	}
	return newDevice(ident, name, screen, screen, painter, o)
}

// NewGenericLaptop builds a laptop showing a desktop window. window is
// the window rectangle relative to the screen, title bar included; the
// device's screen size becomes the window's content area.
func NewGenericLaptop(platform TargetPlatform, id, name string, screen Size, window Rect, opts ...DeviceOption) (*DeviceInfo, error) {
	o := applyOptions(opts)
	ident := DeviceIdentifier{Name: id, Type: Laptop, Platform: platform}
	if err := o.checkStyles(ident); err != nil {
		return nil, err
	}
	style := DefaultLaptopStyle()
	if o.laptopStyle != nil {
		style = *o.laptopStyle
	}
	painter := o.painter
	if painter == nil {
		painter = NewLaptopPainter(platform, window, style)
	}
	return newWindowed(ident, name, screen, window, platform, painter, o)
}

// NewGenericDesktopMonitor builds a monitor on a stand showing a desktop
// window. window follows the same rules as for NewGenericLaptop.
func NewGenericDesktopMonitor(platform TargetPlatform, id, name string, screen Size, window Rect, opts ...DeviceOption) (*DeviceInfo, error) {
	o := applyOptions(opts)
	ident := DeviceIdentifier{Name: id, Type: Desktop, Platform: platform}
	if err := o.checkStyles(ident); err != nil {
		return nil, err
	}
	style := DefaultMonitorStyle()
	if o.monitorStyle != nil {
		style = *o.monitorStyle
	}
	painter := o.painter
	if painter == nil {
		painter = NewMonitorPainter(platform, window, style)
	}
	return newWindowed(ident, name, screen, window, platform, painter, o)
}

func newWindowed(ident DeviceIdentifier, name string, screen Size, window Rect, platform TargetPlatform, painter Painter, o deviceOptions) (*DeviceInfo, error) {
	if !screen.IsPositive() {
		return nil, fmt.Errorf("%w: %s: %gx%g", ErrInvalidScreenSize, ident, screen.Width, screen.Height)
	}
	if err := (desktopWindow{platform: platform, window: window}).validate(screen); err != nil {
		return nil, fmt.Errorf("%s: %w", ident, err)
	}
	content := screen
	if wp, ok := painter.(WindowPainter); ok {
		content = wp.EffectiveWindowSize()
	}
	return newDevice(ident, name, screen, content, painter, o)
}

// NewFixedDevice builds a device from baked model data.
func NewFixedDevice(m FixedModel) (*DeviceInfo, error) {
	ident := DeviceIdentifier{Name: m.ID, Type: m.Type, Platform: m.Platform}
	if !m.FrameSize.IsPositive() || !m.ScreenSize.IsPositive() {
		return nil, fmt.Errorf("%w: %s: frame %gx%g, screen %gx%g", ErrInvalidScreenSize, ident,
			m.FrameSize.Width, m.FrameSize.Height, m.ScreenSize.Width, m.ScreenSize.Height)
	}
	painter, err := NewFixedPainter(m)
	if err != nil {
		return nil, err
	}
	o := defaultDeviceOptions()
	o.pixelRatio = m.PixelRatio
	o.safeAreas = m.SafeAreas
	o.rotated = m.RotatedSafeAreas
	return newDevice(ident, m.Name, m.ScreenSize, m.ScreenSize, painter, o)
}

// newDevice asks the painter for the geometry of screen and stores
// content as the device's screen size.
func newDevice(ident DeviceIdentifier, name string, screen, content Size, painter Painter, o deviceOptions) (*DeviceInfo, error) {
	if !screen.IsPositive() || !content.IsPositive() {
		return nil, fmt.Errorf("%w: %s: %gx%g", ErrInvalidScreenSize, ident, content.Width, content.Height)
	}
	if !(o.pixelRatio > 0) || math.IsInf(o.pixelRatio, 0) {
		return nil, fmt.Errorf("%w: %s: %g", ErrInvalidPixelRatio, ident, o.pixelRatio)
	}

	d := &DeviceInfo{
		identifier: ident,
		name:       name,
		safeAreas:  o.safeAreas,
		pixelRatio: o.pixelRatio,
		painter:    painter,
		frameSize:  painter.FrameSize(screen),
		screenPath: painter.ScreenPath(screen),
		screenSize: content,
	}
	if o.rotated != nil {
		r := *o.rotated
		d.rotatedSafeAreas = &r
	}

	log := Logger()
	frame := RectXYWH(0, 0, d.frameSize.Width, d.frameSize.Height)
	if !d.screenPath.Bounds().Within(frame, 0.5) {
		log.Warn("deviceframe: screen path exceeds frame",
			slog.String("id", ident.String()),
			slog.Any("bounds", d.screenPath.Bounds()),
			slog.Any("frame", d.frameSize))
	}
	log.Debug("deviceframe: device built",
		slog.String("id", ident.String()),
		slog.Float64("frame_w", d.frameSize.Width),
		slog.Float64("frame_h", d.frameSize.Height),
		slog.Float64("screen_w", content.Width),
		slog.Float64("screen_h", content.Height),
		slog.Bool("rotatable", d.CanRotate()))
	return d, nil
}
