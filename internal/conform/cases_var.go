package conform

import (
	"math"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

// varHerm is the Hermitian variance fixture, 0.1 * [[4, -1+6i], [-1-6i, 2]].
var varHerm = qop.Matrix{
	{0.4, -0.1 + 0.6i},
	{-0.1 - 0.6i, 0.2},
}

// tensorXYVariance is the closed-form variance of PauliX(0) @ PauliY(2) on
// the three-wire fixture.
func tensorXYVariance(theta, phi, varphi float64) float64 {
	return (8*math.Pow(math.Sin(theta), 2)*math.Cos(2*varphi)*math.Pow(math.Sin(phi), 2) -
		math.Cos(2*(theta-phi)) -
		math.Cos(2*(theta+phi)) +
		2*math.Cos(2*theta) +
		2*math.Cos(2*phi) + 14) / 16
}

// tensorZHYVariance is the closed-form variance of
// PauliZ(0) @ Hadamard(1) @ PauliY(2) on the three-wire fixture.
func tensorZHYVariance(theta, phi, varphi float64) float64 {
	return (3 +
		math.Cos(2*phi)*math.Pow(math.Cos(varphi), 2) -
		math.Cos(2*theta)*math.Pow(math.Sin(varphi), 2) -
		2*math.Cos(theta)*math.Sin(phi)*math.Sin(2*varphi)) / 4
}

// tensorZHermVariance is the closed-form variance of
// PauliZ(0) @ Hermitian(hermTwoWire, 1, 2) on the three-wire fixture.
func tensorZHermVariance(theta, phi, varphi float64) float64 {
	return (1057 -
		math.Cos(2*phi) +
		12*(27+math.Cos(2*phi))*math.Cos(varphi) -
		2*math.Cos(2*varphi)*math.Sin(phi)*(16*math.Cos(phi)+21*math.Sin(phi)) +
		16*math.Sin(2*phi) -
		8*(-17+math.Cos(2*phi)+2*math.Sin(2*phi))*math.Sin(varphi) -
		8*math.Cos(2*theta)*math.Pow(3+3*math.Cos(varphi)+math.Sin(varphi), 2) -
		24*math.Cos(phi)*(math.Cos(phi)+2*math.Sin(phi))*math.Sin(2*varphi) -
		8*math.Cos(theta)*(
			4*math.Cos(phi)*(4+8*math.Cos(varphi)+math.Cos(2*varphi)-
				(1+6*math.Cos(varphi))*math.Sin(varphi))+
				math.Sin(phi)*(15+8*math.Cos(varphi)-11*math.Cos(2*varphi)+
					42*math.Sin(varphi)+3*math.Sin(2*varphi)))) / 16
}

func varCases() []Case {
	tensorNeeds := []string{device.CapTensorObservable}

	// The single-observable variance cases use their own angle pair.
	const (
		varPhi   = 0.543
		varTheta = 0.6543
	)
	// Tensor variance shares the three-wire fixture angles.
	const (
		theta  = 0.432
		phi    = 0.123
		varphi = -0.543
	)

	return []Case{
		{
			Name:  "var/pauliz",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				c := qop.NewCircuit(2).RX(varPhi, 0).RY(varTheta, 0)
				want := 0.25 * (3 - math.Cos(2*varTheta) -
					2*math.Pow(math.Cos(varTheta), 2)*math.Cos(2*varPhi))
				return checkVar(dev, c, tol, []float64{want}, qop.PauliZ(0))
			},
		},
		{
			Name:  "var/hermitian",
			Wires: 2,
			Run: func(dev device.Device, tol Tolerance) error {
				c := qop.NewCircuit(2).RX(varPhi, 0).RY(varTheta, 0)
				want := 0.01 * 0.5 * (2*math.Sin(2*varTheta)*math.Pow(math.Cos(varPhi), 2) +
					24*math.Sin(varPhi)*math.Cos(varPhi)*(math.Sin(varTheta)-math.Cos(varTheta)) +
					35*math.Cos(2*varPhi) + 39)
				return checkVar(dev, c, tol, []float64{want}, qop.Hermitian(varHerm, 0))
			},
		},
		{
			Name:  "var/tensor-paulix-pauliy",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := tensorXYVariance(theta, phi, varphi)
				return checkVar(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliX(0), qop.PauliY(2)))
			},
		},
		{
			Name:  "var/tensor-pauliz-hadamard-pauliy",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := tensorZHYVariance(theta, phi, varphi)
				return checkVar(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliZ(0), qop.Hadamard(1), qop.PauliY(2)))
			},
		},
		{
			Name:  "var/tensor-pauliz-hermitian",
			Wires: 3,
			Needs: tensorNeeds,
			Run: func(dev device.Device, tol Tolerance) error {
				want := tensorZHermVariance(theta, phi, varphi)
				return checkVar(dev, prepThreeWire(theta, phi, varphi), tol,
					[]float64{want},
					qop.Tensor(qop.PauliZ(0), qop.Hermitian(hermTwoWire, 1, 2)))
			},
		},
	}
}
