package conform

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

// Battery returns every conformance case, in the order they are reported.
func Battery() []Case {
	var cases []Case
	cases = append(cases, expvalCases()...)
	cases = append(cases, sampleCases()...)
	cases = append(cases, varCases()...)
	return cases
}

// checkExpval executes the circuit with an expectation measurement and
// compares against the closed forms.
func checkExpval(dev device.Device, c *qop.Circuit, tol Tolerance, want []float64, obs ...qop.Observable) error {
	res, err := dev.Execute(c, qop.Expval(obs...))
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return tol.CheckAllClose("expval", res.Values, want)
}

// checkVar executes the circuit with a variance measurement and compares
// against the closed forms.
func checkVar(dev device.Device, c *qop.Circuit, tol Tolerance, want []float64, obs ...qop.Observable) error {
	res, err := dev.Execute(c, qop.Var(obs...))
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return tol.CheckAllClose("var", res.Values, want)
}

// drawSample executes the circuit with a sample measurement.
func drawSample(dev device.Device, c *qop.Circuit, obs qop.Observable) ([]float64, error) {
	res, err := dev.Execute(c, qop.Sample(obs))
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	if len(res.Samples) == 0 {
		return nil, fmt.Errorf("device returned no samples")
	}
	return res.Samples, nil
}

// checkSpectrum verifies every sample lies in the observable's eigenvalue
// set.
func checkSpectrum(samples, spectrum []float64, tol Tolerance) error {
	for i, s := range samples {
		found := false
		for _, ev := range spectrum {
			if tol.Close(s, ev) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("sample[%d] = %v not in eigenvalue spectrum %v", i, s, spectrum)
		}
	}
	return nil
}

// checkDichotomic verifies samples of a +-1-valued observable square to one.
func checkDichotomic(samples []float64, tol Tolerance) error {
	for i, s := range samples {
		if !tol.Close(s*s, 1) {
			return fmt.Errorf("sample[%d] = %v, want an eigenvalue in {-1, +1}", i, s)
		}
	}
	return nil
}

// empiricalMean is the mean over shots.
func empiricalMean(samples []float64) float64 {
	return stat.Mean(samples, nil)
}

// empiricalVariance is the population variance over shots (divide by n),
// the statistic the closed forms describe.
func empiricalVariance(samples []float64) float64 {
	n := float64(len(samples))
	if n < 2 {
		return 0
	}
	return stat.Variance(samples, nil) * (n - 1) / n
}
