// Package simulator provides the reference statevector device: an exact
// qubit simulator over complex128 amplitudes that implements the device
// contract in both analytic and shot-sampling modes. It exists so the
// conformance battery is runnable (and testable) without external backends.
package simulator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

// DeviceName is the registry name of the reference simulator.
const DeviceName = "statevector"

// maxWires bounds the dense statevector; the battery never needs more than
// three wires.
const maxWires = 12

// ErrAnalyticSampling is returned when a sample measurement is requested in
// analytic mode.
var ErrAnalyticSampling = errors.New("simulator: sample measurement requires shot-based execution")

func init() {
	device.Register(DeviceName, New)
}

// Simulator is a dense statevector qubit device.
type Simulator struct {
	wires    int
	shots    int
	analytic bool
	rng      *rand.Rand
}

// New constructs a simulator handle. In non-analytic mode every measurement
// is estimated from opts.Shots seeded draws.
func New(wires int, opts device.Options) (device.Device, error) {
	if wires < 1 || wires > maxWires {
		return nil, fmt.Errorf("simulator: wire count %d out of range [1,%d]", wires, maxWires)
	}
	shots := opts.Shots
	if !opts.Analytic && shots < 1 {
		return nil, fmt.Errorf("simulator: shot-based mode needs a positive shot count, got %d", shots)
	}
	return &Simulator{
		wires:    wires,
		shots:    shots,
		analytic: opts.Analytic,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

func (s *Simulator) Name() string   { return DeviceName }
func (s *Simulator) Wires() int     { return s.wires }
func (s *Simulator) Analytic() bool { return s.analytic }

func (s *Simulator) Capabilities() map[string]any {
	return map[string]any{
		device.CapModel:            device.ModelQubit,
		device.CapTensorObservable: true,
	}
}

// Execute runs the circuit on |0...0> and evaluates the measurement. In
// analytic mode expectation values and variances are exact; otherwise they
// are Monte Carlo estimates over the configured shot count.
func (s *Simulator) Execute(c *qop.Circuit, m qop.Measurement) (*device.Result, error) {
	if c.Wires != s.wires {
		return nil, fmt.Errorf("simulator: circuit has %d wires, device has %d", c.Wires, s.wires)
	}
	if err := m.Validate(s.wires); err != nil {
		return nil, err
	}
	st, err := run(c)
	if err != nil {
		return nil, err
	}

	switch m.Kind {
	case qop.MeasureExpval, qop.MeasureVar:
		values := make([]float64, len(m.Observables))
		for i, obs := range m.Observables {
			v, err := s.estimate(st, obs, m.Kind)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return &device.Result{Values: values}, nil

	case qop.MeasureSample:
		if s.analytic {
			return nil, ErrAnalyticSampling
		}
		samples, err := s.sample(st, m.Observables[0])
		if err != nil {
			return nil, err
		}
		return &device.Result{Samples: samples}, nil
	}
	return nil, fmt.Errorf("simulator: unknown measurement kind %q", m.Kind)
}

func (s *Simulator) estimate(st *state, obs qop.Observable, kind qop.MeasureKind) (float64, error) {
	if s.analytic {
		op, err := obs.FullMatrix(s.wires)
		if err != nil {
			return 0, err
		}
		if kind == qop.MeasureVar {
			return variance(st, op), nil
		}
		return expval(st, op), nil
	}

	samples, err := s.sample(st, obs)
	if err != nil {
		return 0, err
	}
	if kind == qop.MeasureVar {
		return samplePopVariance(samples), nil
	}
	return sampleMean(samples), nil
}

func (s *Simulator) sample(st *state, obs qop.Observable) ([]float64, error) {
	eigvals, probs, err := eigenProbabilities(st, obs)
	if err != nil {
		return nil, err
	}
	return drawSamples(s.rng, eigvals, probs, s.shots), nil
}
