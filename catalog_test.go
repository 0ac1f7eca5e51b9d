package deviceframe

import (
	"errors"
	"testing"
)

func mustPhone(t *testing.T, platform TargetPlatform, id string) *DeviceInfo {
	t.Helper()
	d, err := NewGenericPhone(platform, id, id, Sz(360, 800))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestCatalog(t *testing.T) {
	a := mustPhone(t, Android, "a")
	b := mustPhone(t, IOS, "b")
	tab, err := NewGenericTablet(Android, "tab", "Tab", Sz(800, 1280))
	if err != nil {
		t.Fatal(err)
	}

	c, err := NewCatalog(b, nil, a, tab)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}

	got, err := c.Lookup("android_phone_a")
	if err != nil || got != a {
		t.Errorf("Lookup = %v, %v", got, err)
	}
	if _, err := c.Lookup("android_phone_missing"); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("Lookup miss error = %v", err)
	}

	all := c.All()
	if all[0] != b || all[1] != a || all[2] != tab {
		t.Error("All should keep insertion order")
	}
	all[0] = nil
	if c.All()[0] != b {
		t.Error("All should return a copy")
	}

	ids := c.IDs()
	want := []string{"android_phone_a", "android_tablet_tab", "ios_phone_b"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if got := c.ByPlatform(Android); len(got) != 2 {
		t.Errorf("ByPlatform(Android) = %d devices", len(got))
	}
	if got := c.ByType(Tablet); len(got) != 1 || got[0] != tab {
		t.Errorf("ByType(Tablet) = %v", got)
	}
	if got := c.ByPlatform(Linux); len(got) != 0 {
		t.Errorf("ByPlatform(Linux) = %v", got)
	}
}

func TestCatalogDuplicate(t *testing.T) {
	a := mustPhone(t, Android, "dup")
	b := mustPhone(t, Android, "DUP")

	_, err := NewCatalog(a, b)
	if !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("error = %v, want ErrDuplicateIdentifier", err)
	}

	c, err := NewCatalog(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.With(b); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("With duplicate error = %v", err)
	}
	if c.Len() != 1 {
		t.Error("failed With must not modify the catalog")
	}
}

func TestCatalogWith(t *testing.T) {
	a := mustPhone(t, Android, "a")
	b := mustPhone(t, Android, "b")
	c, err := NewCatalog(a)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := c.With(b)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 || c2.Len() != 2 {
		t.Errorf("Len = %d, %d; want 1, 2", c.Len(), c2.Len())
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.All() != nil || len(c.IDs()) != 0 {
		t.Error("nil catalog should be empty")
	}
	if _, err := c.Lookup("x"); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("Lookup on nil catalog = %v", err)
	}
}
