package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gogpu/deviceframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out, errOut bytes.Buffer
	return NewRendererTo(&out, &errOut), &out, &errOut
}

func phone(t *testing.T, platform deviceframe.TargetPlatform, id string) *deviceframe.DeviceInfo {
	t.Helper()
	d, err := deviceframe.NewGenericPhone(platform, id, strings.ToUpper(id), deviceframe.Sz(360, 800))
	require.NoError(t, err)
	return d
}

func TestStatusMessages(t *testing.T) {
	r, out, errOut := plain(t)
	r.Success("wrote %s", "a.png")
	r.Error("failed")
	r.Warning("careful")

	assert.Empty(t, out.String())
	assert.Equal(t, "✓ wrote a.png\n✗ failed\n! careful\n", errOut.String())
}

func TestRenderDeviceListGroupsByPlatform(t *testing.T) {
	r, out, _ := plain(t)
	r.RenderDeviceList([]*deviceframe.DeviceInfo{
		phone(t, deviceframe.IOS, "b"),
		phone(t, deviceframe.Android, "a"),
		phone(t, deviceframe.IOS, "c"),
	})

	s := out.String()
	android := strings.Index(s, "ANDROID")
	ios := strings.Index(s, "IOS")
	require.True(t, android >= 0 && ios > android, "platforms out of order:\n%s", s)
	assert.Less(t, strings.Index(s, "ios_phone_b"), strings.Index(s, "ios_phone_c"))
	assert.Contains(t, s, "360x800")
	assert.Contains(t, s, "@2x")
}

func TestRenderDeviceListEmpty(t *testing.T) {
	r, out, errOut := plain(t)
	r.RenderDeviceList(nil)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "No devices found")
}

func TestRenderDeviceInfo(t *testing.T) {
	r, out, _ := plain(t)
	r.RenderDeviceInfo(phone(t, deviceframe.Android, "p"))

	s := out.String()
	assert.Contains(t, s, "android_phone_p")
	assert.Contains(t, s, "406x956")
	assert.Contains(t, s, "cannot rotate")
}
