package device

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Normalize canonicalizes a device name for registry lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a device factory available under the given name. It
// panics on a duplicate name, like database/sql driver registration.
func Register(name string, f Factory) {
	key := Normalize(name)
	if key == "" {
		panic("device: Register with empty name")
	}
	if f == nil {
		panic("device: Register with nil factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[key]; dup {
		panic(fmt.Sprintf("device: Register called twice for %q", key))
	}
	registry[key] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[Normalize(name)]
	if !ok {
		return nil, fmt.Errorf("device: no device registered as %q (registered: %s)",
			name, strings.Join(names(), ", "))
	}
	return f, nil
}

// New constructs a device by registered name.
func New(name string, wires int, opts Options) (Device, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(wires, opts)
}

// Names lists registered device names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
