package deviceframe

import (
	"fmt"
	"log/slog"
	"sort"
)

// Catalog is an immutable set of devices indexed by identifier string.
// It is safe for concurrent use.
type Catalog struct {
	order []*DeviceInfo
	byID  map[string]*DeviceInfo
}

// NewCatalog indexes devices, rejecting two devices whose identifiers
// render to the same string. Nil entries are skipped.
func NewCatalog(devices ...*DeviceInfo) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*DeviceInfo, len(devices))}
	if err := c.add(devices); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(devices []*DeviceInfo) error {
	for _, d := range devices {
		if d == nil {
			continue
		}
		id := d.ID()
		if prev, ok := c.byID[id]; ok {
			Logger().Warn("deviceframe: identifier collision",
				slog.String("id", id), slog.String("existing", prev.Name()), slog.String("new", d.Name()))
			return fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateIdentifier, id, prev.Name(), d.Name())
		}
		c.byID[id] = d
		c.order = append(c.order, d)
	}
	return nil
}

// With returns a new catalog holding c's devices followed by devices.
// c itself is unchanged.
func (c *Catalog) With(devices ...*DeviceInfo) (*Catalog, error) {
	all := make([]*DeviceInfo, 0, c.Len()+len(devices))
	all = append(all, c.All()...)
	all = append(all, devices...)
	return NewCatalog(all...)
}

// Lookup returns the device with the given identifier string.
func (c *Catalog) Lookup(id string) (*DeviceInfo, error) {
	if c != nil {
		if d, ok := c.byID[id]; ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, id)
}

// Len returns the number of devices.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// All returns the devices in insertion order.
func (c *Catalog) All() []*DeviceInfo {
	if c == nil {
		return nil
	}
	out := make([]*DeviceInfo, len(c.order))
	copy(out, c.order)
	return out
}

// IDs returns the identifier strings, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, c.Len())
	for _, d := range c.All() {
		ids = append(ids, d.ID())
	}
	sort.Strings(ids)
	return ids
}

// ByPlatform returns the devices of a platform in insertion order.
func (c *Catalog) ByPlatform(p TargetPlatform) []*DeviceInfo {
	return c.filter(func(d *DeviceInfo) bool { return d.identifier.Platform == p })
}

// ByType returns the devices of a type in insertion order.
func (c *Catalog) ByType(t DeviceType) []*DeviceInfo {
	return c.filter(func(d *DeviceInfo) bool { return d.identifier.Type == t })
}

func (c *Catalog) filter(keep func(*DeviceInfo) bool) []*DeviceInfo {
	var out []*DeviceInfo
	for _, d := range c.All() {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
