package devices

import (
	"errors"
	"testing"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/gg"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != len(All()) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(All()))
	}
	for _, id := range []string{
		"ios_phone_iphone-13",
		"ios_tablet_ipad",
		"android_phone_oneplus-8-pro",
		"android_tablet_medium-tablet",
		"macos_laptop_macbook-pro",
		"windows_desktop_wide-monitor",
		"linux_laptop_laptop",
	} {
		if _, err := c.Lookup(id); err != nil {
			t.Errorf("Lookup(%q) error = %v", id, err)
		}
	}
}

func TestLoadExtraCollision(t *testing.T) {
	dup, err := deviceframe.NewGenericLaptop(deviceframe.Linux, "laptop", "Clone",
		deviceframe.Sz(1366, 768), deviceframe.RectXYWH(0, 0, 800, 600))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dup); !errors.Is(err, deviceframe.ErrDuplicateIdentifier) {
		t.Errorf("Load(dup) error = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestMustLoad(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad panicked: %v", r)
		}
	}()
	if MustLoad().Len() == 0 {
		t.Error("MustLoad() returned an empty catalog")
	}
}

func TestBuiltinsScreenWithinFrame(t *testing.T) {
	for _, d := range All() {
		t.Run(d.ID(), func(t *testing.T) {
			frame := deviceframe.RectXYWH(0, 0, d.FrameSize().Width, d.FrameSize().Height)
			if !d.ScreenBounds().Within(frame, 0.5) {
				t.Errorf("screen %v outside frame %v", d.ScreenBounds(), frame)
			}
			if !d.ScreenSize().IsPositive() {
				t.Errorf("ScreenSize() = %v", d.ScreenSize())
			}
		})
	}
}

func TestPlatformGroups(t *testing.T) {
	groups := map[deviceframe.TargetPlatform][]*deviceframe.DeviceInfo{
		deviceframe.IOS:     IOS(),
		deviceframe.Android: Android(),
		deviceframe.MacOS:   MacOS(),
		deviceframe.Windows: Windows(),
		deviceframe.Linux:   Linux(),
	}
	for p, list := range groups {
		if len(list) == 0 {
			t.Errorf("%v: no devices", p)
		}
		for _, d := range list {
			if got := d.Identifier().Platform; got != p {
				t.Errorf("%s: platform = %v, want %v", d.ID(), got, p)
			}
		}
	}
}

func TestIPhone13(t *testing.T) {
	d, err := deviceframe.NewFixedDevice(IPhone13())
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "iPhone 13" {
		t.Errorf("Name() = %q", d.Name())
	}
	if got := d.FrameSize(); got != deviceframe.Sz(873, 1771) {
		t.Errorf("FrameSize() = %v", got)
	}
	if got := d.ScreenSize(); got != deviceframe.Sz(390, 844) {
		t.Errorf("ScreenSize() = %v", got)
	}
	if d.PixelRatio() != 3 {
		t.Errorf("PixelRatio() = %v", d.PixelRatio())
	}
	if !d.CanRotate() {
		t.Error("CanRotate() = false")
	}
	if got := d.SafeAreasFor(deviceframe.Landscape); got != deviceframe.Insets(47, 0, 47, 21) {
		t.Errorf("SafeAreasFor(Landscape) = %v", got)
	}
	if got := d.SafeAreasFor(deviceframe.Portrait); got != deviceframe.Insets(0, 47, 0, 34) {
		t.Errorf("SafeAreasFor(Portrait) = %v", got)
	}
}

func TestOnePlus8Pro(t *testing.T) {
	d, err := deviceframe.NewFixedDevice(OnePlus8Pro())
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Identifier(); got.Platform != deviceframe.Android || got.Type != deviceframe.Phone {
		t.Errorf("Identifier() = %+v", got)
	}
	// The punch-hole camera is cut out of the screen.
	p := d.ScreenPath()
	if p.Contains(gg.Pt(108.7, 88.7)) {
		t.Error("camera hole is inside the screen path")
	}
	if !p.Contains(gg.Pt(426, 900)) {
		t.Error("screen center is outside the screen path")
	}
}

func TestPresetsAreFresh(t *testing.T) {
	a, b := IOS(), IOS()
	if a[0] == b[0] {
		t.Error("IOS() returned shared DeviceInfo values")
	}
}
