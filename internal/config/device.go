package config

import (
	"strings"
)

// DeviceStatevector is the bundled reference simulator device.
const DeviceStatevector = "statevector"

// NormalizeDevice canonicalizes a device name. Unknown names pass through
// normalized; the device registry is the authority on what exists.
func NormalizeDevice(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "", "default", "simulator":
		return DeviceStatevector
	}
	return name
}
