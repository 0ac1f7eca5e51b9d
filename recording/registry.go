package recording

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned for output formats no backend is registered
// under.
var ErrUnknownFormat = errors.New("recording: unknown format")

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// Format describes a registered output format.
type Format struct {
	Name      string // registry name, also the file extension
	MediaType string // empty if the backend does not report one
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name, which is also the output
// format name and file extension ("png", "svg"). Names are case-insensitive.
// It is typically called from init() in the backend package, following the
// database/sql driver pattern:
//
//	func init() {
//	    recording.Register("png", func() recording.Backend {
//	        return New()
//	    })
//	}
//
// Register panics if name is empty, factory is nil or name is already
// registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name = normalizeFormat(name)
	if name == "" {
		panic("recording: Register name is empty")
	}
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// ParseFormat resolves a format name or file extension (".PNG", "svg") to
// a registered format name.
func ParseFormat(s string) (string, error) {
	name := normalizeFormat(s)
	if !IsRegistered(name) {
		return "", unknownFormat(s)
	}
	return name, nil
}

// NewBackend creates a new backend instance for a format.
//
//	import _ "github.com/gogpu/deviceframe/recording/backends/svg"
//
//	b, err := recording.NewBackend("svg")
func NewBackend(format string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[normalizeFormat(format)]
	registryMu.RUnlock()

	if !ok {
		return nil, unknownFormat(format)
	}
	return factory(), nil
}

// Backends returns the registered format names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Formats describes every registered format, sorted by name.
func Formats() []Format {
	names := Backends()
	out := make([]Format, 0, len(names))
	for _, name := range names {
		f := Format{Name: name}
		if b, err := NewBackend(name); err == nil {
			if mt, ok := b.(MediaTyper); ok {
				f.MediaType = mt.MediaType()
			}
		}
		out = append(out, f)
	}
	return out
}

// IsRegistered reports whether a backend is registered for format.
func IsRegistered(format string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[normalizeFormat(format)]
	return ok
}

func normalizeFormat(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
}

func unknownFormat(s string) error {
	return fmt.Errorf("%w %q (available: %s; forgotten import?)",
		ErrUnknownFormat, s, strings.Join(Backends(), ", "))
}
