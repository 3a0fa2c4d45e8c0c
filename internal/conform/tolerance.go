package conform

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance defines acceptable numeric drift versus the analytic closed
// forms.
type Tolerance struct {
	Abs float64
	Rel float64
}

// AnalyticTolerance is the tight target for devices returning exact
// expectation values; SamplingTolerance absorbs Monte Carlo noise on
// shot-based devices. The relative term matters for observables whose
// closed forms are far from unit magnitude, such as the tensor Hermitian
// variances.
var (
	AnalyticTolerance = Tolerance{Abs: 1e-6, Rel: 0}
	SamplingTolerance = Tolerance{Abs: 5e-2, Rel: 5e-2}
)

// ToleranceFor picks the comparison target for a device's execution mode.
func ToleranceFor(analytic bool) Tolerance {
	if analytic {
		return AnalyticTolerance
	}
	return SamplingTolerance
}

// Close reports whether got approximates want within the tolerance.
func (t Tolerance) Close(got, want float64) bool {
	return scalar.EqualWithinAbsOrRel(got, want, t.Abs, t.Rel)
}

// CheckClose returns a descriptive error when got is not close to want.
func (t Tolerance) CheckClose(label string, got, want float64) error {
	if !t.Close(got, want) {
		return fmt.Errorf("%s = %v, want %v (abs tol %v, rel tol %v)", label, got, want, t.Abs, t.Rel)
	}
	return nil
}

// CheckAllClose compares element-wise and reports the first mismatch.
func (t Tolerance) CheckAllClose(label string, got, want []float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%s returned %d values, want %d", label, len(got), len(want))
	}
	for i := range got {
		if !t.Close(got[i], want[i]) {
			return fmt.Errorf("%s[%d] = %v, want %v (abs tol %v, rel tol %v)", label, i, got[i], want[i], t.Abs, t.Rel)
		}
	}
	return nil
}
