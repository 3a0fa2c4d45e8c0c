package qop

import "fmt"

// MeasureKind selects the terminal measurement of a circuit.
type MeasureKind string

const (
	MeasureExpval MeasureKind = "expval"
	MeasureVar    MeasureKind = "var"
	MeasureSample MeasureKind = "sample"
)

// Measurement is the terminal read of a circuit: an expectation value or
// variance of one or more observables, or a per-shot sample of a single
// observable. Sample measurements require a shot-based device.
type Measurement struct {
	Kind        MeasureKind
	Observables []Observable
}

// Expval measures the expectation value of each observable.
func Expval(obs ...Observable) Measurement {
	return Measurement{Kind: MeasureExpval, Observables: obs}
}

// Var measures the variance of each observable.
func Var(obs ...Observable) Measurement {
	return Measurement{Kind: MeasureVar, Observables: obs}
}

// Sample draws per-shot eigenvalues of obs.
func Sample(obs Observable) Measurement {
	return Measurement{Kind: MeasureSample, Observables: []Observable{obs}}
}

// Validate checks the measurement against a register of nWires wires.
func (m Measurement) Validate(nWires int) error {
	switch m.Kind {
	case MeasureExpval, MeasureVar:
		if len(m.Observables) == 0 {
			return fmt.Errorf("qop: %s measurement needs at least one observable", m.Kind)
		}
	case MeasureSample:
		if len(m.Observables) != 1 {
			return fmt.Errorf("qop: sample measurement reads exactly one observable, got %d", len(m.Observables))
		}
	default:
		return fmt.Errorf("qop: unknown measurement kind %q", m.Kind)
	}
	for _, o := range m.Observables {
		if err := o.Validate(nWires); err != nil {
			return err
		}
	}
	return nil
}
