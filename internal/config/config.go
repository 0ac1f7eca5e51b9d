// Package config loads the deviceframe CLI configuration: output defaults
// and custom devices merged into the built-in catalog.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Config is the file layout.
//
//	format: svg
//	output_dir: shots
//	jobs: 4
//	devices:
//	  - family: phone
//	    platform: android
//	    id: kiosk
//	    name: Kiosk
//	    screen: {width: 600, height: 1024}
//	    colors: {outer_body: "#202020", inner_body: "#000000"}
type Config struct {
	Format    string   `yaml:"format"`
	OutputDir string   `yaml:"output_dir"`
	Jobs      int      `yaml:"jobs"`
	Devices   []Device `yaml:"devices"`
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Window places a desktop window on a laptop or monitor screen.
type Window struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Insets are safe-area paddings.
type Insets struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Colors override the two body tones of the generic frames.
type Colors struct {
	OuterBody string `yaml:"outer_body"`
	InnerBody string `yaml:"inner_body"`
}

// Device is a custom generic device.
type Device struct {
	// Family is one of phone, tablet, laptop or monitor.
	Family           string  `yaml:"family"`
	Platform         string  `yaml:"platform"`
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Screen           Size    `yaml:"screen"`
	Window           *Window `yaml:"window,omitempty"`
	SafeAreas        *Insets `yaml:"safe_areas,omitempty"`
	RotatedSafeAreas *Insets `yaml:"rotated_safe_areas,omitempty"`
	PixelRatio       float64 `yaml:"pixel_ratio,omitempty"`
	Colors           *Colors `yaml:"colors,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:    "png",
		OutputDir: ".",
		Jobs:      runtime.NumCPU(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/deviceframe/config.yaml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "deviceframe", "config.yaml"), nil
}

// Load reads the file at path. An empty path loads the default location,
// where a missing file yields Default.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the scalar settings. Devices are checked when built.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// BuildDevices builds every custom device.
func (c *Config) BuildDevices() ([]*deviceframe.DeviceInfo, error) {
	out := make([]*deviceframe.DeviceInfo, 0, len(c.Devices))
	for i, d := range c.Devices {
		info, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("devices[%d]: %w", i, err)
		}
		out = append(out, info)
	}
	return out, nil
}

// Build turns d into a device with the matching generic builder.
func (d Device) Build() (*deviceframe.DeviceInfo, error) {
	platform, err := deviceframe.ParsePlatform(d.Platform)
	if err != nil {
		return nil, err
	}
	if d.ID == "" {
		return nil, errors.New("device id is required")
	}
	name := d.Name
	if name == "" {
		name = d.ID
	}

	opts, err := d.options()
	if err != nil {
		return nil, err
	}
	screen := deviceframe.Sz(d.Screen.Width, d.Screen.Height)

	switch family := strings.ToLower(d.Family); family {
	case "phone":
		return deviceframe.NewGenericPhone(platform, d.ID, name, screen, opts...)
	case "tablet":
		return deviceframe.NewGenericTablet(platform, d.ID, name, screen, opts...)
	case "laptop", "monitor":
		if d.Window == nil {
			return nil, fmt.Errorf("%s %q needs a window", family, d.ID)
		}
		window := deviceframe.RectXYWH(d.Window.X, d.Window.Y, d.Window.Width, d.Window.Height)
		if family == "laptop" {
			return deviceframe.NewGenericLaptop(platform, d.ID, name, screen, window, opts...)
		}
		return deviceframe.NewGenericDesktopMonitor(platform, d.ID, name, screen, window, opts...)
	default:
		return nil, fmt.Errorf("unknown device family %q", d.Family)
	}
}

func (d Device) options() ([]deviceframe.DeviceOption, error) {
	var opts []deviceframe.DeviceOption
	if d.SafeAreas != nil {
		opts = append(opts, deviceframe.WithSafeAreas(d.SafeAreas.edge()))
	}
	if d.RotatedSafeAreas != nil {
		opts = append(opts, deviceframe.WithRotatedSafeAreas(d.RotatedSafeAreas.edge()))
	}
	if d.PixelRatio != 0 {
		opts = append(opts, deviceframe.WithPixelRatio(d.PixelRatio))
	}
	if d.Colors == nil {
		return opts, nil
	}

	switch strings.ToLower(d.Family) {
	case "phone", "tablet":
		s := deviceframe.DefaultPhoneStyle()
		if strings.EqualFold(d.Family, "tablet") {
			s = deviceframe.DefaultTabletStyle()
		}
		if err := d.Colors.apply(&s.OuterBody, &s.InnerBody); err != nil {
			return nil, err
		}
		opts = append(opts, deviceframe.WithHandheldStyle(s))
	case "laptop":
		s := deviceframe.DefaultLaptopStyle()
		if err := d.Colors.apply(&s.OuterBody, &s.InnerBody); err != nil {
			return nil, err
		}
		opts = append(opts, deviceframe.WithLaptopStyle(s))
	case "monitor":
		s := deviceframe.DefaultMonitorStyle()
		if err := d.Colors.apply(&s.OuterBody, &s.InnerBody); err != nil {
			return nil, err
		}
		opts = append(opts, deviceframe.WithMonitorStyle(s))
	}
	return opts, nil
}

func (in Insets) edge() deviceframe.EdgeInsets {
	return deviceframe.Insets(in.Left, in.Top, in.Right, in.Bottom)
}

// apply overwrites the body tones that are set, leaving the others at
// their defaults.
func (c Colors) apply(outer, inner *gg.RGBA) error {
	for _, f := range []struct {
		hex string
		dst *gg.RGBA
	}{{c.OuterBody, outer}, {c.InnerBody, inner}} {
		if f.hex == "" {
			continue
		}
		col, err := deviceframe.ParseColor(f.hex)
		if err != nil {
			return err
		}
		*f.dst = col
	}
	return nil
}
