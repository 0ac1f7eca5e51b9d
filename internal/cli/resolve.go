package cli

import (
	"fmt"
	"strings"

	"github.com/gogpu/deviceframe"
	"github.com/sahilm/fuzzy"
)

// resolveDevice looks up an exact identifier first, then falls back to the
// best fuzzy match over identifiers and names.
func resolveDevice(c *deviceframe.Catalog, query string) (*deviceframe.DeviceInfo, error) {
	if d, err := c.Lookup(strings.ToLower(strings.TrimSpace(query))); err == nil {
		return d, nil
	}
	matches := searchDevices(c.All(), query)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", deviceframe.ErrUnknownDevice, query)
	}
	return matches[0], nil
}

// searchDevices ranks devices by fuzzy match of query against
// "id name". An empty query keeps every device in order.
func searchDevices(all []*deviceframe.DeviceInfo, query string) []*deviceframe.DeviceInfo {
	if query == "" {
		return all
	}
	searchStrings := make([]string, len(all))
	for i, d := range all {
		searchStrings[i] = d.ID() + " " + d.Name()
	}
	matches := fuzzy.Find(query, searchStrings)
	out := make([]*deviceframe.DeviceInfo, 0, len(matches))
	for _, match := range matches {
		out = append(out, all[match.Index])
	}
	return out
}

// filterDevices keeps devices of the given platform and type names; empty
// names match everything.
func filterDevices(all []*deviceframe.DeviceInfo, platform, typ string) ([]*deviceframe.DeviceInfo, error) {
	var (
		wantPlatform deviceframe.TargetPlatform
		wantType     deviceframe.DeviceType
	)
	if platform != "" {
		p, err := deviceframe.ParsePlatform(platform)
		if err != nil {
			return nil, err
		}
		wantPlatform = p
	}
	if typ != "" {
		wantType = deviceframe.ParseDeviceType(typ)
		if wantType == deviceframe.Unknown {
			return nil, fmt.Errorf("unknown device type %q", typ)
		}
	}

	out := make([]*deviceframe.DeviceInfo, 0, len(all))
	for _, d := range all {
		id := d.Identifier()
		if platform != "" && id.Platform != wantPlatform {
			continue
		}
		if typ != "" && id.Type != wantType {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
