// Package conform holds the device conformance battery: parametrized
// circuits with hand-derived closed-form outcomes, a capability gate that
// skips inapplicable cases, tolerance-based comparison, and a flaky-retry
// runner that absorbs statistical outliers on shot-based devices.
package conform

import (
	"fmt"

	"github.com/example/go-qconform/internal/device"
)

// Status of one executed case.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// DefaultMaxRuns is how many attempts a shot-based case gets before its
// failure counts. Sequential re-execution, never concurrent.
const DefaultMaxRuns = 10

// seedStride derives per-attempt seeds so retries draw fresh samples
// deterministically.
const seedStride = 7919

// Case is one conformance check: a fixed circuit plus an assertion against
// its closed-form outcome.
type Case struct {
	Name string
	// Wires the device handle is constructed with.
	Wires int
	// Needs lists required capabilities beyond the qubit model.
	Needs []string
	// Sampling marks cases that read raw samples and therefore need a
	// shot-based device.
	Sampling bool
	// Run executes the case against a fresh device handle, comparing with
	// the tolerance matching the device's execution mode.
	Run func(dev device.Device, tol Tolerance) error
}

// Outcome records one case result.
type Outcome struct {
	Case     string `json:"case"`
	Device   string `json:"device"`
	Status   Status `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Attempts int    `json:"attempts"`
}

// Runner executes cases against one registered device.
type Runner struct {
	// Device is the registry name of the backend under test.
	Device string
	// Options configure each device handle.
	Options device.Options
	// MaxRuns caps attempts for shot-based execution; zero means
	// DefaultMaxRuns.
	MaxRuns int
}

func (r *Runner) maxRuns() int {
	if r.MaxRuns > 0 {
		return r.MaxRuns
	}
	return DefaultMaxRuns
}

// RunCase executes one case. On a shot-based device every case is
// statistical, so a failing attempt is retried with a derived seed; the
// case fails only when all attempts fail. Analytic devices get exactly one
// attempt.
func (r *Runner) RunCase(c Case) Outcome {
	out := Outcome{Case: c.Name, Device: r.Device}

	for attempt := 0; ; attempt++ {
		out.Attempts = attempt + 1

		opts := r.Options
		opts.Seed += int64(attempt) * seedStride
		dev, err := device.New(r.Device, c.Wires, opts)
		if err != nil {
			out.Status = StatusFailed
			out.Reason = fmt.Sprintf("construct device: %v", err)
			return out
		}

		if err := CheckCapabilities(dev.Capabilities(), c.Needs...); err != nil {
			out.Status = StatusSkipped
			out.Reason = skipReason(err)
			return out
		}
		if c.Sampling && dev.Analytic() {
			out.Status = StatusSkipped
			out.Reason = "sample measurements require shot-based execution"
			return out
		}

		err = c.Run(dev, ToleranceFor(dev.Analytic()))
		if err == nil {
			out.Status = StatusOK
			return out
		}
		if IsSkip(err) {
			out.Status = StatusSkipped
			out.Reason = skipReason(err)
			return out
		}
		if dev.Analytic() || attempt+1 >= r.maxRuns() {
			out.Status = StatusFailed
			out.Reason = err.Error()
			return out
		}
	}
}

// RunAll executes every case in order. One failing case never aborts the
// battery.
func (r *Runner) RunAll(cases []Case) []Outcome {
	outcomes := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		outcomes = append(outcomes, r.RunCase(c))
	}
	return outcomes
}
