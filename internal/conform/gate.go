package conform

import (
	"errors"
	"fmt"

	"github.com/example/go-qconform/internal/device"
)

// SkipError signals that a case does not apply to the device under test.
// The runner records it as a skip, never a failure.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "skip: " + e.Reason }

// Skipf builds a SkipError.
func Skipf(format string, args ...any) *SkipError {
	return &SkipError{Reason: fmt.Sprintf(format, args...)}
}

// IsSkip reports whether err is a capability-gate skip.
func IsSkip(err error) bool {
	var se *SkipError
	return errors.As(err, &se)
}

// skipReason extracts the human-readable reason from a skip error.
func skipReason(err error) string {
	var se *SkipError
	if errors.As(err, &se) {
		return se.Reason
	}
	return err.Error()
}

// CheckCapabilities decides whether a case applies to a device with the
// given capability mapping. It skips when the declared model is not "qubit",
// or when a required capability is absent or explicitly false.
func CheckCapabilities(caps map[string]any, needs ...string) error {
	model, _ := caps[device.CapModel].(string)
	if model != device.ModelQubit {
		return Skipf("device model %q is not %q", model, device.ModelQubit)
	}
	for _, need := range needs {
		v, ok := caps[need]
		if !ok {
			return Skipf("capability %q not declared", need)
		}
		if b, isBool := v.(bool); isBool && !b {
			return Skipf("capability %q is disabled", need)
		}
	}
	return nil
}
