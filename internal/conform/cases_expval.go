package conform

import (
	"math"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

// Fixture observables shared across the battery.
var (
	// hermSingle is the single-qubit Hermitian fixture.
	hermSingle = qop.Matrix{
		{1.02789352, 1.61296440 - 0.3498192i},
		{1.61296440 + 0.3498192i, 1.23920938},
	}

	// hermTwoWire is the two-qubit Hermitian fixture used by the
	// multi-wire expectation, sample and variance cases.
	hermTwoWire = qop.Matrix{
		{-6, 2 + 1i, -3, -5 + 2i},
		{2 - 1i, 0, 2 - 1i, -5 + 4i},
		{-3, 2 + 1i, 0, -4 + 3i},
		{-5 - 2i, -5 - 4i, -4 - 3i, -6},
	}
)

// prepRX builds RX(theta) 0, RX(phi) 1, CNOT(0,1).
func prepRX(theta, phi float64) *qop.Circuit {
	return qop.NewCircuit(2).RX(theta, 0).RX(phi, 1).CNOT(0, 1)
}

// prepRY builds RY(theta) 0, RY(phi) 1, CNOT(0,1).
func prepRY(theta, phi float64) *qop.Circuit {
	return qop.NewCircuit(2).RY(theta, 0).RY(phi, 1).CNOT(0, 1)
}

// prepThreeWire builds RX(theta) 0, RX(phi) 1, RX(varphi) 2, CNOT(0,1),
// CNOT(1,2), the fixture circuit of every tensor-observable case.
func prepThreeWire(theta, phi, varphi float64) *qop.Circuit {
	return qop.NewCircuit(3).
		RX(theta, 0).
		RX(phi, 1).
		RX(varphi, 2).
		CNOT(0, 1).
		CNOT(1, 2)
}

// tensorZHermMean is the closed-form expectation of
// PauliZ(0) @ Hermitian(hermTwoWire, 1, 2) on the three-wire fixture.
func tensorZHermMean(theta, phi, varphi float64) float64 {
	return 0.5 * (-6*math.Cos(theta)*(math.Cos(varphi)+1) -
		2*math.Sin(varphi)*(math.Cos(theta)+math.Sin(phi)-2*math.Cos(phi)) +
		3*math.Cos(varphi)*math.Sin(phi) +
		math.Sin(phi))
}

func expvalCases() []Case {
	const (
		theta  = 0.432
		phi    = 0.123
		varphi = -0.543
	)
	tensorNeeds := []string{device.CapTensorObservable}

	return []Case{
		{
			Name:  "expval/identity",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				// The identity expectation is the trace, always 1.
				return checkExpval(dev, prepRX(theta, phi), tol,
					[]float64{1, 1},
					qop.Identity(0), qop.Identity(1))
			},
		},
		{
			Name:  "expval/pauliz",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				return checkExpval(dev, prepRX(theta, phi), tol,
					[]float64{math.Cos(theta), math.Cos(theta) * math.Cos(phi)},
					qop.PauliZ(0), qop.PauliZ(1))
			},
		},
		{
			Name:  "expval/paulix",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				return checkExpval(dev, prepRY(theta, phi), tol,
					[]float64{math.Sin(theta) * math.Sin(phi), math.Sin(phi)},
					qop.PauliX(0), qop.PauliX(1))
			},
		},
		{
			Name:  "expval/pauliy",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				return checkExpval(dev, prepRX(theta, phi), tol,
					[]float64{0, -math.Cos(theta) * math.Sin(phi)},
					qop.PauliY(0), qop.PauliY(1))
			},
		},
		{
			Name:  "expval/hadamard",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				want := []float64{
					(math.Sin(theta)*math.Sin(phi) + math.Cos(theta)) / math.Sqrt2,
					(math.Cos(theta)*math.Cos(phi) + math.Sin(phi)) / math.Sqrt2,
				}
				return checkExpval(dev, prepRY(theta, phi), tol, want,
					qop.Hadamard(0), qop.Hadamard(1))
			},
		},
		{
			Name:  "expval/hermitian",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				a := real(hermSingle[0][0])
				reB := real(hermSingle[0][1])
				d := real(hermSingle[1][1])
				want := []float64{
					((a-d)*math.Cos(theta) + 2*reB*math.Sin(theta)*math.Sin(phi) + a + d) / 2,
					((a-d)*math.Cos(theta)*math.Cos(phi) + 2*reB*math.Sin(phi) + a + d) / 2,
				}
				return checkExpval(dev, prepRY(theta, phi), tol, want,
					qop.Hermitian(hermSingle, 0), qop.Hermitian(hermSingle, 1))
			},
		},
		{
			Name:  "expval/hermitian-two-wires",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				want := 0.5 * (6*math.Cos(theta)*math.Sin(phi) -
					math.Sin(theta)*(8*math.Sin(phi)+7*math.Cos(phi)+3) -
					2*math.Sin(phi) - 6*math.Cos(phi) - 6)
				return checkExpval(dev, prepRY(theta, phi), tol,
					[]float64{want}, qop.Hermitian(hermTwoWire, 0, 1))
			},
		},
		{
			Name:  "expval/tensor-paulix-pauliy",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := math.Sin(theta) * math.Sin(phi) * math.Sin(varphi)
				return checkExpval(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliX(0), qop.PauliY(2)))
			},
		},
		{
			Name:  "expval/tensor-pauliz-hadamard-pauliy",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := -(math.Cos(varphi)*math.Sin(phi) + math.Sin(varphi)*math.Cos(theta)) / math.Sqrt2
				return checkExpval(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliZ(0), qop.Hadamard(1), qop.PauliY(2)))
			},
		},
		{
			Name:  "expval/tensor-pauliz-hermitian",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := tensorZHermMean(theta, phi, varphi)
				return checkExpval(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliZ(0), qop.Hermitian(hermTwoWire, 1, 2)))
			},
		},
	}
}
