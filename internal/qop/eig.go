package qop

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// hermTol bounds the allowed asymmetry when validating that a user-supplied
// matrix is Hermitian.
const hermTol = 1e-9

// eigClusterTol decides when two numerically computed eigenvalues are the
// same spectral point.
const eigClusterTol = 1e-8

// Eigvalsh returns the eigenvalues of the Hermitian matrix h, ascending.
//
// gonum has no eigensolver for complex Hermitian matrices, so the standard
// embedding is used: for H = X + iY the real symmetric matrix
// [[X, -Y], [Y, X]] has the eigenvalues of H, each with doubled
// multiplicity. Factorizing the embedding with mat.EigenSym and collapsing
// adjacent pairs recovers the spectrum.
func Eigvalsh(h Matrix) ([]float64, error) {
	n, err := checkSquare(h)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("qop: empty matrix has no spectrum")
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cmplx.Abs(h[i][j]-cmplx.Conj(h[j][i])) > hermTol {
				return nil, fmt.Errorf("qop: matrix is not Hermitian at (%d,%d)", i, j)
			}
		}
	}

	embed := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := real(h[i][j])
			y := imag(h[i][j])
			embed.SetSym(i, j, x)
			embed.SetSym(n+i, n+j, x)
			// SetSym mirrors (i, n+j) into (n+j, i); Y is antisymmetric for
			// a Hermitian input, so the mirrored entry is consistent.
			embed.SetSym(i, n+j, -y)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(embed, false) {
		return nil, fmt.Errorf("qop: eigendecomposition of %dx%d Hermitian embedding failed", n, n)
	}
	all := es.Values(nil)
	sort.Float64s(all)

	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = 0.5 * (all[2*i] + all[2*i+1])
	}
	return vals, nil
}

// UniqueEigvals collapses a sorted or unsorted spectrum into its distinct
// eigenvalues, ascending.
func UniqueEigvals(vals []float64) []float64 {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	out := []float64{sorted[0]}
	for _, v := range sorted[1:] {
		last := out[len(out)-1]
		if math.Abs(v-last) > eigClusterTol*(1+math.Abs(v)) {
			out = append(out, v)
		}
	}
	return out
}
