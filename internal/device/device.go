// Package device defines the contract a quantum backend must satisfy to be
// exercised by the conformance battery, plus a name-keyed factory registry.
package device

import (
	"github.com/example/go-qconform/internal/qop"
)

// Capability keys every conforming device is expected to report.
const (
	CapModel            = "model"
	CapTensorObservable = "tensor_observable"

	// ModelQubit is the only model the battery targets.
	ModelQubit = "qubit"
)

// Options configure device construction for one conformance run.
type Options struct {
	// Shots is the number of samples drawn per execution when the device is
	// not analytic.
	Shots int
	// Analytic selects exact expectation values over shot estimates, for
	// devices that support both.
	Analytic bool
	// Seed seeds the device's sample generator, when it has one.
	Seed int64
}

// Result is what one circuit execution returns: one value per measured
// observable for expectation/variance reads, or a per-shot eigenvalue
// sequence for sample reads.
type Result struct {
	Values  []float64
	Samples []float64
}

// Device is a backend under test. A handle is constructed per case with a
// wire count and discarded afterwards; Execute runs a circuit terminated by
// a single measurement request.
type Device interface {
	Name() string
	Wires() int
	Analytic() bool

	// Capabilities reports the device's self-declared support matrix. It
	// must include CapModel; CapTensorObservable is optional and absent
	// means unsupported.
	Capabilities() map[string]any

	Execute(c *qop.Circuit, m qop.Measurement) (*Result, error)
}

// Factory constructs a device handle with the given wire count.
type Factory func(wires int, opts Options) (Device, error)
