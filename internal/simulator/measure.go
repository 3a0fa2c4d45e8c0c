package simulator

import (
	"fmt"
	"math/cmplx"
	"math/rand"

	"github.com/example/go-qconform/internal/qop"
)

// expval computes <psi|O|psi> for the full-register operator O.
func expval(s *state, op qop.Matrix) float64 {
	v := qop.MatVec(op, s.amps)
	var sum complex128
	for i, a := range s.amps {
		sum += cmplx.Conj(a) * v[i]
	}
	return real(sum)
}

// variance computes <O^2> - <O>^2.
func variance(s *state, op qop.Matrix) float64 {
	mean := expval(s, op)
	return expval(s, qop.Mul(op, op)) - mean*mean
}

// eigenProbabilities returns the distinct eigenvalues of obs and the
// probability of observing each one in state s, computed as
// <psi|P_lambda|psi> over the spectral projectors of the full-register
// operator.
func eigenProbabilities(s *state, obs qop.Observable) ([]float64, []float64, error) {
	uniq, err := obs.Spectrum()
	if err != nil {
		return nil, nil, err
	}
	op, err := obs.FullMatrix(s.wires)
	if err != nil {
		return nil, nil, err
	}

	probs := make([]float64, len(uniq))
	if len(uniq) == 1 {
		probs[0] = 1
		return uniq, probs, nil
	}

	var total float64
	for k, proj := range qop.SpectralProjectors(op, uniq) {
		p := expval(s, proj)
		// Projector expectations are probabilities; clamp the rounding drift.
		if p < 0 {
			p = 0
		}
		probs[k] = p
		total += p
	}
	if total <= 0 {
		return nil, nil, fmt.Errorf("simulator: degenerate probability distribution for %s", obs)
	}
	for k := range probs {
		probs[k] /= total
	}
	return uniq, probs, nil
}

// drawSamples draws shots eigenvalues from the categorical distribution.
func drawSamples(rng *rand.Rand, eigvals, probs []float64, shots int) []float64 {
	out := make([]float64, shots)
	for i := 0; i < shots; i++ {
		r := rng.Float64()
		acc := 0.0
		idx := len(eigvals) - 1
		for k, p := range probs {
			acc += p
			if r < acc {
				idx = k
				break
			}
		}
		out[i] = eigvals[idx]
	}
	return out
}

func sampleMean(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// samplePopVariance is the population variance (divide by n), matching the
// statistic the closed forms describe.
func samplePopVariance(samples []float64) float64 {
	mean := sampleMean(samples)
	var sum float64
	for _, v := range samples {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(samples))
}
