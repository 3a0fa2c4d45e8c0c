package qop

import "fmt"

// Matrix is a dense row-major complex matrix. The operators handled by the
// suite act on at most three qubits, so these kernels stay naive on purpose.
type Matrix [][]complex128

// Ident returns the n-by-n identity.
func Ident(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]complex128, n)
		m[i][i] = 1
	}
	return m
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b Matrix) Matrix {
	ra, rb := len(a), len(b)
	ca, cb := 0, 0
	if ra > 0 {
		ca = len(a[0])
	}
	if rb > 0 {
		cb = len(b[0])
	}
	out := make(Matrix, ra*rb)
	for i := range out {
		out[i] = make([]complex128, ca*cb)
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out[i*rb+k][j*cb+l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return out
}

// Mul returns the matrix product a·b.
func Mul(a, b Matrix) Matrix {
	n, inner, m := len(a), len(b), 0
	if inner > 0 {
		m = len(b[0])
	}
	out := make(Matrix, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, m)
		for k := 0; k < inner; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < m; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}

// MatVec returns a·v.
func MatVec(a Matrix, v []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i, row := range a {
		var sum complex128
		for j, e := range row {
			sum += e * v[j]
		}
		out[i] = sum
	}
	return out
}

// subScaledIdent returns a - mu·I without touching a.
func subScaledIdent(a Matrix, mu complex128) Matrix {
	out := make(Matrix, len(a))
	for i, row := range a {
		out[i] = make([]complex128, len(row))
		copy(out[i], row)
		out[i][i] -= mu
	}
	return out
}

// scaleMat returns s·a.
func scaleMat(a Matrix, s complex128) Matrix {
	out := make(Matrix, len(a))
	for i, row := range a {
		out[i] = make([]complex128, len(row))
		for j, e := range row {
			out[i][j] = s * e
		}
	}
	return out
}

// SpectralProjectors returns the projector onto each eigenspace of the
// Hermitian operator op, one per distinct eigenvalue in uniq, via Lagrange
// interpolation: P_k = prod_{j != k} (op - mu_j I) / (mu_k - mu_j). The
// construction needs only eigenvalues, which sidesteps extracting complex
// eigenvectors from the real symmetric embedding used by Eigvalsh.
func SpectralProjectors(op Matrix, uniq []float64) []Matrix {
	out := make([]Matrix, len(uniq))
	for k, lambda := range uniq {
		proj := Ident(len(op))
		for j, mu := range uniq {
			if j == k {
				continue
			}
			proj = scaleMat(Mul(proj, subScaledIdent(op, complex(mu, 0))), complex(1/(lambda-mu), 0))
		}
		out[k] = proj
	}
	return out
}

func checkSquare(m Matrix) (int, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("qop: matrix row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return n, nil
}
