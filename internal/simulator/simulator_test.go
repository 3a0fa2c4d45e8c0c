package simulator

import (
	"errors"
	"math"
	"testing"

	"github.com/example/go-qconform/internal/device"
	"github.com/example/go-qconform/internal/qop"
)

func newAnalytic(t *testing.T, wires int) device.Device {
	t.Helper()
	dev, err := New(wires, device.Options{Analytic: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return dev
}

func newSampling(t *testing.T, wires, shots int, seed int64) device.Device {
	t.Helper()
	dev, err := New(wires, device.Options{Shots: shots, Seed: seed})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return dev
}

func execValues(t *testing.T, dev device.Device, c *qop.Circuit, m qop.Measurement) []float64 {
	t.Helper()
	res, err := dev.Execute(c, m)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return res.Values
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(0, device.Options{Analytic: true}); err == nil {
		t.Fatal("expected error for zero wires")
	}
	if _, err := New(maxWires+1, device.Options{Analytic: true}); err == nil {
		t.Fatal("expected error for too many wires")
	}
	if _, err := New(1, device.Options{Analytic: false, Shots: 0}); err == nil {
		t.Fatal("expected error for shot mode without shots")
	}
}

func TestCapabilities(t *testing.T) {
	dev := newAnalytic(t, 1)
	caps := dev.Capabilities()
	if caps[device.CapModel] != device.ModelQubit {
		t.Fatalf("model = %v, want %q", caps[device.CapModel], device.ModelQubit)
	}
	if caps[device.CapTensorObservable] != true {
		t.Fatalf("tensor_observable = %v, want true", caps[device.CapTensorObservable])
	}
	if dev.Name() != DeviceName {
		t.Fatalf("Name() = %q, want %q", dev.Name(), DeviceName)
	}
}

func TestExecuteWireMismatch(t *testing.T) {
	dev := newAnalytic(t, 2)
	_, err := dev.Execute(qop.NewCircuit(3), qop.Expval(qop.PauliZ(0)))
	if err == nil {
		t.Fatal("expected error for wire count mismatch")
	}
}

func TestAnalyticSampleRejected(t *testing.T) {
	dev := newAnalytic(t, 1)
	_, err := dev.Execute(qop.NewCircuit(1), qop.Sample(qop.PauliZ(0)))
	if !errors.Is(err, ErrAnalyticSampling) {
		t.Fatalf("err = %v, want ErrAnalyticSampling", err)
	}
}

func TestAnalyticExpvalSingleRotations(t *testing.T) {
	theta := 0.432

	cases := []struct {
		name string
		c    *qop.Circuit
		obs  qop.Observable
		want float64
	}{
		{"rx-then-z", qop.NewCircuit(1).RX(theta, 0), qop.PauliZ(0), math.Cos(theta)},
		{"ry-then-z", qop.NewCircuit(1).RY(theta, 0), qop.PauliZ(0), math.Cos(theta)},
		{"ry-then-x", qop.NewCircuit(1).RY(theta, 0), qop.PauliX(0), math.Sin(theta)},
		{"rx-then-y", qop.NewCircuit(1).RX(theta, 0), qop.PauliY(0), -math.Sin(theta)},
		{"rx-then-identity", qop.NewCircuit(1).RX(theta, 0), qop.Identity(0), 1},
		{"ry-then-hadamard", qop.NewCircuit(1).RY(theta, 0), qop.Hadamard(0),
			(math.Sin(theta) + math.Cos(theta)) / math.Sqrt2},
	}
	dev := newAnalytic(t, 1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := execValues(t, dev, tc.c, qop.Expval(tc.obs))
			if math.Abs(got[0]-tc.want) > 1e-12 {
				t.Fatalf("expval = %v, want %v", got[0], tc.want)
			}
		})
	}
}

func TestAnalyticExpvalEntangled(t *testing.T) {
	theta, phi := 0.432, 0.123
	c := qop.NewCircuit(2).RX(theta, 0).RX(phi, 1).CNOT(0, 1)

	dev := newAnalytic(t, 2)
	got := execValues(t, dev, c, qop.Expval(qop.PauliZ(0), qop.PauliZ(1)))
	want := []float64{math.Cos(theta), math.Cos(theta) * math.Cos(phi)}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("expval[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAnalyticExpvalTensor(t *testing.T) {
	theta, phi, varphi := 0.432, 0.123, -0.543
	c := qop.NewCircuit(3).
		RX(theta, 0).RX(phi, 1).RX(varphi, 2).
		CNOT(0, 1).CNOT(1, 2)

	dev := newAnalytic(t, 3)
	got := execValues(t, dev, c, qop.Expval(qop.Tensor(qop.PauliX(0), qop.PauliY(2))))
	want := math.Sin(theta) * math.Sin(phi) * math.Sin(varphi)
	if math.Abs(got[0]-want) > 1e-12 {
		t.Fatalf("tensor expval = %v, want %v", got[0], want)
	}
}

func TestAnalyticVariance(t *testing.T) {
	phi, theta := 0.543, 0.6543
	c := qop.NewCircuit(1).RX(phi, 0).RY(theta, 0)

	dev := newAnalytic(t, 1)
	got := execValues(t, dev, c, qop.Var(qop.PauliZ(0)))
	want := 0.25 * (3 - math.Cos(2*theta) - 2*math.Cos(theta)*math.Cos(theta)*math.Cos(2*phi))
	if math.Abs(got[0]-want) > 1e-12 {
		t.Fatalf("var = %v, want %v", got[0], want)
	}
}

func TestAnalyticVarianceOfEigenstateIsZero(t *testing.T) {
	dev := newAnalytic(t, 1)
	got := execValues(t, dev, qop.NewCircuit(1), qop.Var(qop.PauliZ(0)))
	if math.Abs(got[0]) > 1e-12 {
		t.Fatalf("var on |0> = %v, want 0", got[0])
	}
}

func TestSampleValuesAreEigenvalues(t *testing.T) {
	dev := newSampling(t, 1, 200, 7)
	res, err := dev.Execute(qop.NewCircuit(1).RX(1.5708, 0), qop.Sample(qop.PauliZ(0)))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Samples) != 200 {
		t.Fatalf("len(Samples) = %d, want 200", len(res.Samples))
	}
	for i, v := range res.Samples {
		if math.Abs(v*v-1) > 1e-9 {
			t.Fatalf("sample %d = %v, want an eigenvalue of PauliZ", i, v)
		}
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	run := func(seed int64) []float64 {
		dev := newSampling(t, 1, 50, seed)
		res, err := dev.Execute(qop.NewCircuit(1).RX(0.543, 0), qop.Sample(qop.PauliZ(0)))
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return res.Samples
	}
	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at sample %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleMeanConverges(t *testing.T) {
	theta := 0.543
	dev := newSampling(t, 1, 400000, 11)
	res, err := dev.Execute(qop.NewCircuit(1).RX(theta, 0), qop.Sample(qop.PauliZ(0)))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mean := sampleMean(res.Samples)
	if math.Abs(mean-math.Cos(theta)) > 0.02 {
		t.Fatalf("sample mean = %v, want about %v", mean, math.Cos(theta))
	}
}

func TestShotEstimatedExpvalAndVar(t *testing.T) {
	theta := 0.543
	c := qop.NewCircuit(1).RX(theta, 0)
	dev := newSampling(t, 1, 400000, 3)

	got := execValues(t, dev, c, qop.Expval(qop.PauliZ(0)))
	if math.Abs(got[0]-math.Cos(theta)) > 0.02 {
		t.Fatalf("shot expval = %v, want about %v", got[0], math.Cos(theta))
	}

	got = execValues(t, dev, c, qop.Var(qop.PauliZ(0)))
	want := 1 - math.Cos(theta)*math.Cos(theta)
	if math.Abs(got[0]-want) > 0.02 {
		t.Fatalf("shot var = %v, want about %v", got[0], want)
	}
}

func TestHermitianSampleSpectrum(t *testing.T) {
	h := qop.Matrix{{1, 2i}, {-2i, 0}}
	uniq, err := qop.Hermitian(h, 0).Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}

	dev := newSampling(t, 1, 1000, 5)
	res, err := dev.Execute(qop.NewCircuit(1).RX(0.543, 0), qop.Sample(qop.Hermitian(h, 0)))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i, v := range res.Samples {
		onSpectrum := false
		for _, mu := range uniq {
			if math.Abs(v-mu) < 1e-9 {
				onSpectrum = true
				break
			}
		}
		if !onSpectrum {
			t.Fatalf("sample %d = %v, not in spectrum %v", i, v, uniq)
		}
	}
}
