// Package devices holds the built-in device catalog: baked models and
// generic presets for every platform.
//
// Nothing here is global state. Each function builds fresh DeviceInfo
// values, and Load assembles them into an immutable catalog:
//
//	catalog, err := devices.Load()
//	if err != nil {
//	    return err
//	}
//	phone, err := catalog.Lookup("ios_phone_iphone-13")
package devices

import (
	"log/slog"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/gg"
)

// Command codes used by the baked path data.
const (
	moveTo    = deviceframe.MoveToCmd
	lineTo    = deviceframe.LineToCmd
	cubicTo   = deviceframe.CubicToCmd
	closePath = deviceframe.CloseCmd
)

func oval(left, top, right, bottom float64, c gg.RGBA) deviceframe.Shape {
	return deviceframe.Shape{
		Kind:  deviceframe.ShapeOval,
		Rect:  deviceframe.Rect{Left: left, Top: top, Right: right, Bottom: bottom},
		Color: c,
	}
}

func relRect(x, y, w, h float64, c gg.RGBA) deviceframe.Shape {
	return deviceframe.Shape{
		Kind:  deviceframe.ShapeRelativeRect,
		Rect:  deviceframe.RectXYWH(x, y, w, h),
		Color: c,
	}
}

// must is used for compiled-in presets, which are covered by tests.
func must(d *deviceframe.DeviceInfo, err error) *deviceframe.DeviceInfo {
	if err != nil {
		panic(err)
	}
	return d
}

// IOS returns the iOS phones and tablets.
func IOS() []*deviceframe.DeviceInfo {
	return []*deviceframe.DeviceInfo{
		must(deviceframe.NewFixedDevice(IPhone13())),
		must(deviceframe.NewGenericTablet(deviceframe.IOS, "ipad", "iPad", deviceframe.Sz(810, 1080),
			deviceframe.WithSafeAreas(deviceframe.Insets(0, 24, 0, 20)),
			deviceframe.WithRotatedSafeAreas(deviceframe.Insets(0, 24, 0, 20)))),
	}
}

// Android returns the Android phones and tablets.
func Android() []*deviceframe.DeviceInfo {
	return []*deviceframe.DeviceInfo{
		must(deviceframe.NewFixedDevice(OnePlus8Pro())),
		must(deviceframe.NewGenericPhone(deviceframe.Android, "medium-phone", "Medium Phone", deviceframe.Sz(412, 915),
			deviceframe.WithSafeAreas(deviceframe.Insets(0, 24, 0, 16)),
			deviceframe.WithRotatedSafeAreas(deviceframe.Insets(24, 0, 24, 0)),
			deviceframe.WithPixelRatio(2.625))),
		must(deviceframe.NewGenericTablet(deviceframe.Android, "medium-tablet", "Medium Tablet", deviceframe.Sz(800, 1280),
			deviceframe.WithSafeAreas(deviceframe.Insets(0, 24, 0, 0)),
			deviceframe.WithRotatedSafeAreas(deviceframe.Insets(0, 24, 0, 0)))),
	}
}

// MacOS returns the macOS laptops and desktops.
func MacOS() []*deviceframe.DeviceInfo {
	return []*deviceframe.DeviceInfo{
		must(deviceframe.NewGenericLaptop(deviceframe.MacOS, "macbook-pro", "MacBook Pro",
			deviceframe.Sz(1512, 982), deviceframe.RectXYWH(96, 60, 1320, 860))),
		must(deviceframe.NewGenericDesktopMonitor(deviceframe.MacOS, "studio-display", "Studio Display",
			deviceframe.Sz(2560, 1440), deviceframe.RectXYWH(320, 160, 1920, 1120))),
	}
}

// Windows returns the Windows laptops and desktops.
func Windows() []*deviceframe.DeviceInfo {
	return []*deviceframe.DeviceInfo{
		must(deviceframe.NewGenericLaptop(deviceframe.Windows, "laptop", "Windows Laptop",
			deviceframe.Sz(1366, 768), deviceframe.RectXYWH(43, 34, 1280, 700))),
		must(deviceframe.NewGenericDesktopMonitor(deviceframe.Windows, "wide-monitor", "Wide Monitor",
			deviceframe.Sz(1920, 1080), deviceframe.RectXYWH(160, 100, 1600, 880))),
	}
}

// Linux returns the Linux laptops and desktops.
func Linux() []*deviceframe.DeviceInfo {
	return []*deviceframe.DeviceInfo{
		must(deviceframe.NewGenericLaptop(deviceframe.Linux, "laptop", "Linux Laptop",
			deviceframe.Sz(1366, 768), deviceframe.RectXYWH(43, 34, 1280, 700))),
		must(deviceframe.NewGenericDesktopMonitor(deviceframe.Linux, "monitor", "Linux Monitor",
			deviceframe.Sz(1920, 1080), deviceframe.RectXYWH(160, 100, 1600, 880))),
	}
}

// All returns every built-in device, grouped by platform.
func All() []*deviceframe.DeviceInfo {
	var all []*deviceframe.DeviceInfo
	for _, group := range [][]*deviceframe.DeviceInfo{IOS(), Android(), MacOS(), Windows(), Linux()} {
		all = append(all, group...)
	}
	return all
}

// Load builds the built-in catalog. extra devices are appended after the
// built-ins; an identifier collision with them is reported as
// deviceframe.ErrDuplicateIdentifier.
func Load(extra ...*deviceframe.DeviceInfo) (*deviceframe.Catalog, error) {
	c, err := deviceframe.NewCatalog(append(All(), extra...)...)
	if err != nil {
		return nil, err
	}
	deviceframe.Logger().Debug("devices: catalog loaded", slog.Int("devices", c.Len()))
	return c, nil
}

// MustLoad is like Load without extras and panics on error.
func MustLoad() *deviceframe.Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
