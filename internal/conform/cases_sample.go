package conform

import (
	"math"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

// sampleHermSingle is the single-qubit Hermitian sampling fixture, with
// eigenvalues (1 +- sqrt(17))/2.
var sampleHermSingle = qop.Matrix{
	{1, 2i},
	{-2i, 0},
}

// sampleHermTwoWire is the two-qubit Hermitian sampling fixture.
var sampleHermTwoWire = qop.Matrix{
	{1, 2i, 1 - 2i, 0.5i},
	{-2i, 0, 3 + 4i, 1},
	{1 + 2i, 3 - 4i, 0.75, 1.5 - 2i},
	{-0.5i, 1, 1.5 + 2i, -1},
}

func sampleCases() []Case {
	tensorNeeds := []string{device.CapTensorObservable}
	const (
		theta  = 0.432
		phi    = 0.123
		varphi = -0.543
	)

	return []Case{
		{
			Name:     "sample/pauliz-values",
			Wires:    1,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				c := qop.NewCircuit(1).RX(1.5708, 0)
				samples, err := drawSample(dev, c, qop.PauliZ(0))
				if err != nil {
					return err
				}
				return checkDichotomic(samples, tol)
			},
		},
		{
			Name:     "sample/hermitian",
			Wires:    1,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				const angle = 0.543
				obs := qop.Hermitian(sampleHermSingle, 0)
				c := qop.NewCircuit(1).RX(angle, 0)
				samples, err := drawSample(dev, c, obs)
				if err != nil {
					return err
				}
				spectrum, err := obs.Spectrum()
				if err != nil {
					return err
				}
				if err := checkSpectrum(samples, spectrum, tol); err != nil {
					return err
				}
				wantMean := 2*math.Sin(angle) + 0.5*math.Cos(angle) + 0.5
				if err := tol.CheckClose("sample mean", empiricalMean(samples), wantMean); err != nil {
					return err
				}
				wantVar := 0.25 * math.Pow(math.Sin(angle)-4*math.Cos(angle), 2)
				return tol.CheckClose("sample variance", empiricalVariance(samples), wantVar)
			},
		},
		{
			Name:     "sample/hermitian-two-wires",
			Wires:    2,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				const angle = 0.543
				obs := qop.Hermitian(sampleHermTwoWire, 0, 1)
				c := qop.NewCircuit(2).RX(angle, 0).RY(2*angle, 1).CNOT(0, 1)
				samples, err := drawSample(dev, c, obs)
				if err != nil {
					return err
				}
				spectrum, err := obs.Spectrum()
				if err != nil {
					return err
				}
				if err := checkSpectrum(samples, spectrum, tol); err != nil {
					return err
				}
				wantMean := (88*math.Sin(angle) +
					24*math.Sin(2*angle) -
					40*math.Sin(3*angle) +
					5*math.Cos(angle) -
					6*math.Cos(2*angle) +
					27*math.Cos(3*angle) + 6) / 32
				return tol.CheckClose("sample mean", empiricalMean(samples), wantMean)
			},
		},
		{
			Name:     "sample/tensor-paulix-pauliy",
			Wires:    3,
			Needs:    tensorNeeds,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				obs := qop.Tensor(qop.PauliX(0), qop.PauliY(2))
				samples, err := drawSample(dev, prepThreeWire(theta, phi, varphi), obs)
				if err != nil {
					return err
				}
				if err := checkDichotomic(samples, tol); err != nil {
					return err
				}
				wantMean := math.Sin(theta) * math.Sin(phi) * math.Sin(varphi)
				if err := tol.CheckClose("sample mean", empiricalMean(samples), wantMean); err != nil {
					return err
				}
				wantVar := tensorXYVariance(theta, phi, varphi)
				return tol.CheckClose("sample variance", empiricalVariance(samples), wantVar)
			},
		},
		{
			Name:     "sample/tensor-pauliz-hadamard-pauliy",
			Wires:    3,
			Needs:    tensorNeeds,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				obs := qop.Tensor(qop.PauliZ(0), qop.Hadamard(1), qop.PauliY(2))
				samples, err := drawSample(dev, prepThreeWire(theta, phi, varphi), obs)
				if err != nil {
					return err
				}
				if err := checkDichotomic(samples, tol); err != nil {
					return err
				}
				wantMean := -(math.Cos(varphi)*math.Sin(phi) + math.Sin(varphi)*math.Cos(theta)) / math.Sqrt2
				if err := tol.CheckClose("sample mean", empiricalMean(samples), wantMean); err != nil {
					return err
				}
				wantVar := tensorZHYVariance(theta, phi, varphi)
				return tol.CheckClose("sample variance", empiricalVariance(samples), wantVar)
			},
		},
		{
			Name:     "sample/tensor-pauliz-hermitian",
			Wires:    3,
			Needs:    tensorNeeds,
			Sampling: true,
			Run: func(dev device.Device, tol Tolerance) error {
				obs := qop.Tensor(qop.PauliZ(0), qop.Hermitian(hermTwoWire, 1, 2))
				samples, err := drawSample(dev, prepThreeWire(theta, phi, varphi), obs)
				if err != nil {
					return err
				}
				// Samples must lie in the spectrum of Z (x) A.
				spectrum, err := obs.Spectrum()
				if err != nil {
					return err
				}
				if err := checkSpectrum(samples, spectrum, tol); err != nil {
					return err
				}
				wantMean := tensorZHermMean(theta, phi, varphi)
				if err := tol.CheckClose("sample mean", empiricalMean(samples), wantMean); err != nil {
					return err
				}
				wantVar := tensorZHermVariance(theta, phi, varphi)
				return tol.CheckClose("sample variance", empiricalVariance(samples), wantVar)
			},
		},
	}
}
