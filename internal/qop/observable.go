// Package qop models the circuits, observables and measurements a qubit
// device under test is asked to execute: single-qubit rotations plus CNOT,
// the named observables (Identity, the Paulis, Hadamard), arbitrary
// Hermitian observables, and tensor products of those.
package qop

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ObsKind tags the variants of Observable.
type ObsKind string

const (
	KindIdentity  ObsKind = "Identity"
	KindPauliX    ObsKind = "PauliX"
	KindPauliY    ObsKind = "PauliY"
	KindPauliZ    ObsKind = "PauliZ"
	KindHadamard  ObsKind = "Hadamard"
	KindHermitian ObsKind = "Hermitian"
	KindTensor    ObsKind = "Tensor"
)

// Observable is a measurable operator on one or more wires. Hermitian
// observables carry an explicit matrix; tensor observables carry an ordered
// list of factors acting on disjoint wires.
type Observable struct {
	Kind    ObsKind
	Wires   []int
	Matrix  Matrix       // KindHermitian only
	Factors []Observable // KindTensor only
}

func Identity(wire int) Observable { return Observable{Kind: KindIdentity, Wires: []int{wire}} }
func PauliX(wire int) Observable   { return Observable{Kind: KindPauliX, Wires: []int{wire}} }
func PauliY(wire int) Observable   { return Observable{Kind: KindPauliY, Wires: []int{wire}} }
func PauliZ(wire int) Observable   { return Observable{Kind: KindPauliZ, Wires: []int{wire}} }
func Hadamard(wire int) Observable { return Observable{Kind: KindHadamard, Wires: []int{wire}} }

// Hermitian builds an observable from an explicit Hermitian matrix acting on
// the given wires. The matrix dimension must be 2^len(wires).
func Hermitian(m Matrix, wires ...int) Observable {
	return Observable{Kind: KindHermitian, Wires: append([]int(nil), wires...), Matrix: m}
}

// Tensor builds the tensor product of the given factors. Factors must act on
// disjoint wires; their order is irrelevant, the register's wire order
// decides the Kronecker order.
func Tensor(factors ...Observable) Observable {
	return Observable{Kind: KindTensor, Factors: append([]Observable(nil), factors...)}
}

func (o Observable) String() string {
	switch o.Kind {
	case KindTensor:
		parts := make([]string, len(o.Factors))
		for i, f := range o.Factors {
			parts[i] = f.String()
		}
		return strings.Join(parts, "@")
	default:
		parts := make([]string, len(o.Wires))
		for i, w := range o.Wires {
			parts[i] = fmt.Sprintf("%d", w)
		}
		return fmt.Sprintf("%s(%s)", o.Kind, strings.Join(parts, ","))
	}
}

// AllWires returns every wire the observable touches, ascending.
func (o Observable) AllWires() []int {
	var ws []int
	if o.Kind == KindTensor {
		for _, f := range o.Factors {
			ws = append(ws, f.AllWires()...)
		}
	} else {
		ws = append(ws, o.Wires...)
	}
	sort.Ints(ws)
	return ws
}

// Validate checks the observable against a register of nWires wires.
func (o Observable) Validate(nWires int) error {
	switch o.Kind {
	case KindIdentity, KindPauliX, KindPauliY, KindPauliZ, KindHadamard:
		if len(o.Wires) != 1 {
			return fmt.Errorf("qop: %s acts on exactly one wire, got %v", o.Kind, o.Wires)
		}
	case KindHermitian:
		if len(o.Wires) == 0 {
			return fmt.Errorf("qop: Hermitian observable needs at least one wire")
		}
		n, err := checkSquare(o.Matrix)
		if err != nil {
			return err
		}
		if n != 1<<len(o.Wires) {
			return fmt.Errorf("qop: Hermitian matrix is %dx%d, want %dx%d for %d wires",
				n, n, 1<<len(o.Wires), 1<<len(o.Wires), len(o.Wires))
		}
		for i := 1; i < len(o.Wires); i++ {
			if o.Wires[i] != o.Wires[i-1]+1 {
				return fmt.Errorf("qop: multi-wire Hermitian observables require contiguous ascending wires, got %v", o.Wires)
			}
		}
	case KindTensor:
		if len(o.Factors) == 0 {
			return fmt.Errorf("qop: tensor observable needs at least one factor")
		}
		seen := map[int]bool{}
		for _, f := range o.Factors {
			if f.Kind == KindTensor {
				return fmt.Errorf("qop: nested tensor observables are not supported")
			}
			if err := f.Validate(nWires); err != nil {
				return err
			}
			for _, w := range f.AllWires() {
				if seen[w] {
					return fmt.Errorf("qop: tensor factors overlap on wire %d", w)
				}
				seen[w] = true
			}
		}
	default:
		return fmt.Errorf("qop: unknown observable kind %q", o.Kind)
	}
	for _, w := range o.AllWires() {
		if w < 0 || w >= nWires {
			return fmt.Errorf("qop: observable wire %d out of range for %d wires", w, nWires)
		}
	}
	return nil
}

// base2x2 returns the matrix of a named single-wire observable.
func (o Observable) base2x2() (Matrix, bool) {
	s := complex(1/math.Sqrt2, 0)
	switch o.Kind {
	case KindIdentity:
		return Matrix{{1, 0}, {0, 1}}, true
	case KindPauliX:
		return Matrix{{0, 1}, {1, 0}}, true
	case KindPauliY:
		return Matrix{{0, -1i}, {1i, 0}}, true
	case KindPauliZ:
		return Matrix{{1, 0}, {0, -1}}, true
	case KindHadamard:
		return Matrix{{s, s}, {s, -s}}, true
	}
	return nil, false
}

// blocks maps each starting wire to the matrix block placed there.
func (o Observable) blocks() (map[int]Matrix, error) {
	out := map[int]Matrix{}
	switch o.Kind {
	case KindTensor:
		for _, f := range o.Factors {
			sub, err := f.blocks()
			if err != nil {
				return nil, err
			}
			for w, m := range sub {
				out[w] = m
			}
		}
	case KindHermitian:
		out[o.Wires[0]] = o.Matrix
	default:
		m, ok := o.base2x2()
		if !ok {
			return nil, fmt.Errorf("qop: unknown observable kind %q", o.Kind)
		}
		out[o.Wires[0]] = m
	}
	return out, nil
}

// FullMatrix expands the observable to the full 2^nWires register, with
// wire 0 as the most significant Kronecker factor and identities on
// untouched wires.
func (o Observable) FullMatrix(nWires int) (Matrix, error) {
	if err := o.Validate(nWires); err != nil {
		return nil, err
	}
	blocks, err := o.blocks()
	if err != nil {
		return nil, err
	}
	out := Matrix{{1}}
	for w := 0; w < nWires; {
		if b, ok := blocks[w]; ok {
			out = Kron(out, b)
			w += intLog2(len(b))
			continue
		}
		out = Kron(out, Ident(2))
		w++
	}
	return out, nil
}

// Spectrum returns the distinct eigenvalues of the observable, ascending.
// Identity wires in the register do not change the set of eigenvalues, so
// the spectrum is computed on the observable's own wires only.
func (o Observable) Spectrum() ([]float64, error) {
	switch o.Kind {
	case KindIdentity:
		return []float64{1}, nil
	case KindPauliX, KindPauliY, KindPauliZ, KindHadamard:
		return []float64{-1, 1}, nil
	case KindHermitian:
		vals, err := Eigvalsh(o.Matrix)
		if err != nil {
			return nil, err
		}
		return UniqueEigvals(vals), nil
	case KindTensor:
		ordered := append([]Observable(nil), o.Factors...)
		for _, f := range ordered {
			if f.Kind == KindTensor {
				return nil, fmt.Errorf("qop: nested tensor observables are not supported")
			}
			if len(f.Wires) == 0 {
				return nil, fmt.Errorf("qop: tensor factor %q has no wires", f.Kind)
			}
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Wires[0] < ordered[j].Wires[0] })
		compact := Matrix{{1}}
		for _, f := range ordered {
			var m Matrix
			if f.Kind == KindHermitian {
				m = f.Matrix
			} else if b, ok := f.base2x2(); ok {
				m = b
			} else {
				return nil, fmt.Errorf("qop: unknown observable kind %q", f.Kind)
			}
			compact = Kron(compact, m)
		}
		vals, err := Eigvalsh(compact)
		if err != nil {
			return nil, err
		}
		return UniqueEigvals(vals), nil
	}
	return nil, fmt.Errorf("qop: unknown observable kind %q", o.Kind)
}

func intLog2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
