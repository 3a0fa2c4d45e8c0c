package qop

import (
	"math"
	"testing"
)

func floatsClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEigvalshPauli(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		want []float64
	}{
		{"pauli-x", Matrix{{0, 1}, {1, 0}}, []float64{-1, 1}},
		{"pauli-y", Matrix{{0, -1i}, {1i, 0}}, []float64{-1, 1}},
		{"pauli-z", Matrix{{1, 0}, {0, -1}}, []float64{-1, 1}},
		{"hadamard", Matrix{
			{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
			{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
		}, []float64{-1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eigvalsh(tc.m)
			if err != nil {
				t.Fatalf("Eigvalsh: %v", err)
			}
			floatsClose(t, got, tc.want, 1e-9)
		})
	}
}

func TestEigvalshComplexHermitian(t *testing.T) {
	// [[1, 2i], [-2i, 0]] has eigenvalues (1 ± sqrt(17)) / 2.
	h := Matrix{{1, 2i}, {-2i, 0}}
	got, err := Eigvalsh(h)
	if err != nil {
		t.Fatalf("Eigvalsh: %v", err)
	}
	r := math.Sqrt(17)
	floatsClose(t, got, []float64{(1 - r) / 2, (1 + r) / 2}, 1e-9)
}

func TestEigvalshDegenerate(t *testing.T) {
	got, err := Eigvalsh(Ident(4))
	if err != nil {
		t.Fatalf("Eigvalsh: %v", err)
	}
	floatsClose(t, got, []float64{1, 1, 1, 1}, 1e-9)
}

func TestEigvalshRejectsNonHermitian(t *testing.T) {
	if _, err := Eigvalsh(Matrix{{0, 1}, {2, 0}}); err == nil {
		t.Fatal("expected error for non-Hermitian input")
	}
	if _, err := Eigvalsh(Matrix{{0, 1i}, {1i, 0}}); err == nil {
		t.Fatal("expected error for anti-Hermitian off-diagonal")
	}
}

func TestEigvalshRejectsRaggedMatrix(t *testing.T) {
	if _, err := Eigvalsh(Matrix{{1, 0}, {0}}); err == nil {
		t.Fatal("expected error for ragged input")
	}
}

func TestUniqueEigvals(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"empty", nil, nil},
		{"distinct", []float64{1, -1}, []float64{-1, 1}},
		{"degenerate", []float64{1, 1, -1, -1}, []float64{-1, 1}},
		{"near-duplicates", []float64{2, 2 + 1e-12, -0.5}, []float64{-0.5, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			floatsClose(t, UniqueEigvals(tc.in), tc.want, 1e-9)
		})
	}
}
