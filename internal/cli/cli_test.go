package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/devices"
	"github.com/gogpu/deviceframe/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customConfig = `
format: svg
devices:
  - family: phone
    platform: android
    id: kiosk
    name: Kiosk
    screen: {width: 300, height: 500}
`

// run executes the CLI with a private config file.
func run(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if cfg == "" {
		cfg = "output_dir: " + dir + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	t.Cleanup(func() { deviceframe.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestListJSON(t *testing.T) {
	out, _, err := run(t, "", "list", "--json")
	require.NoError(t, err)

	var got []deviceJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, devices.MustLoad().Len())
}

func TestListFilters(t *testing.T) {
	out, _, err := run(t, "", "list", "--platform", "ios", "--type", "tablet", "--json")
	require.NoError(t, err)

	var got []deviceJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.Equal(t, "IOS", d.Platform)
		assert.Equal(t, "TABLET", d.Type)
	}
}

func TestListQuery(t *testing.T) {
	out, _, err := run(t, "", "list", "iphone")
	require.NoError(t, err)
	assert.Contains(t, out, "ios_phone_iphone-13")
	assert.NotContains(t, out, "windows_laptop_laptop")
}

func TestListBadFilter(t *testing.T) {
	_, _, err := run(t, "", "list", "--type", "toaster")
	assert.Error(t, err)

	_, _, err = run(t, "", "list", "--platform", "beos")
	assert.ErrorIs(t, err, deviceframe.ErrUnknownPlatform)
}

func TestListIncludesConfigDevices(t *testing.T) {
	out, _, err := run(t, customConfig, "list", "kiosk")
	require.NoError(t, err)
	assert.Contains(t, out, "android_phone_kiosk")
}

func TestConfigCollision(t *testing.T) {
	cfg := `
devices:
  - family: phone
    platform: ios
    id: iphone-13
    screen: {width: 390, height: 844}
`
	_, _, err := run(t, cfg, "list")
	assert.ErrorIs(t, err, deviceframe.ErrDuplicateIdentifier)
}

func TestInfo(t *testing.T) {
	out, errOut, err := run(t, "", "info", "oneplus")
	require.NoError(t, err)
	assert.Contains(t, out, "android_phone_oneplus-8-pro")
	assert.Contains(t, errOut, "Using android_phone_oneplus-8-pro")
}

func TestInfoJSON(t *testing.T) {
	out, _, err := run(t, "", "info", "ios_phone_iphone-13", "--json")
	require.NoError(t, err)

	var got deviceJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sizeJSON{Width: 873, Height: 1771}, got.Frame)
	assert.Equal(t, 3.0, got.PixelRatio)
	assert.True(t, got.CanRotate)
}

func TestInfoUnknown(t *testing.T) {
	_, _, err := run(t, "", "info", "qqqqxxxxzzzz")
	assert.ErrorIs(t, err, deviceframe.ErrUnknownDevice)
}

func TestRenderPNG(t *testing.T) {
	in := writePNG(t, 39, 84)
	out := filepath.Join(t.TempDir(), "nested", "framed.png")

	_, errOut, err := run(t, "", "render", "ios_phone_iphone-13", "-i", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Wrote "+out)

	img := decodePNG(t, out)
	assert.Equal(t, 873, img.Bounds().Dx())
	assert.Equal(t, 1771, img.Bounds().Dy())
}

func TestRenderDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := "format: svg\noutput_dir: " + dir + "\n" + strings.TrimPrefix(customConfig, "\nformat: svg\n")

	_, _, err := run(t, cfg, "render", "android_phone_kiosk")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "android_phone_kiosk.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderLandscapeNoFrame(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "output_dir: "+dir+"\n", "render", "ios_phone_iphone-13", "--landscape", "--no-frame", "-f", "png")
	require.NoError(t, err)

	img := decodePNG(t, filepath.Join(dir, "ios_phone_iphone-13_landscape.png"))
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "", "render", "ios_phone_iphone-13", "-f", "gif")
	assert.ErrorIs(t, err, recording.ErrUnknownFormat)
	assert.ErrorContains(t, err, "available: png, svg")

	_, _, err = run(t, "", "render", "ios_phone_iphone-13", "--watch")
	assert.ErrorContains(t, err, "--watch")

	_, _, err = run(t, "", "render", "ios_phone_iphone-13", "-i", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestRenderFormatFromExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "FRAMED.SVG")
	_, _, err := run(t, "", "render", "ios_phone_iphone-13", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestFormatFlagListsBackends(t *testing.T) {
	out, _, err := run(t, "", "render", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Output format: png, svg")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, 20, 20)

	_, errOut, err := run(t, "", "batch", "-i", in, "-d", dir, "-p", "linux", "-f", "svg", "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "2 frames written")

	for _, name := range []string{"linux_laptop_laptop.svg", "linux_desktop_monitor.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestBackends(t *testing.T) {
	out, _, err := run(t, "", "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "png")
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "image/svg+xml")
}

func TestResolveDevice(t *testing.T) {
	c := devices.MustLoad()

	d, err := resolveDevice(c, "IOS_PHONE_IPHONE-13")
	require.NoError(t, err)
	assert.Equal(t, "ios_phone_iphone-13", d.ID())

	d, err = resolveDevice(c, "studio")
	require.NoError(t, err)
	assert.Equal(t, "macos_desktop_studio-display", d.ID())
}
