// Package testutil provides shared skip helpers for conformance tests.
//
// Each helper calls t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so the suite remains runnable against partial
// device registries without failing noisily.
package testutil

import (
	"testing"

	"github.com/example/go-qconform/internal/device"
)

// RequireDevice skips the test if no factory is registered under name.
func RequireDevice(tb testing.TB, name string) {
	tb.Helper()

	if _, err := device.Lookup(name); err != nil {
		tb.Skipf("device %q not registered: %v", name, err)
	}
}

// NewDevice constructs a device handle or fails the test.
func NewDevice(tb testing.TB, name string, wires int, opts device.Options) device.Device {
	tb.Helper()

	dev, err := device.New(name, wires, opts)
	if err != nil {
		tb.Fatalf("construct device %q: %v", name, err)
	}
	return dev
}
