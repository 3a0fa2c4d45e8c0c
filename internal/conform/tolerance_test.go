package conform

import (
	"strings"
	"testing"
)

func TestToleranceFor(t *testing.T) {
	if got := ToleranceFor(true); got != AnalyticTolerance {
		t.Fatalf("ToleranceFor(true) = %+v, want %+v", got, AnalyticTolerance)
	}
	if got := ToleranceFor(false); got != SamplingTolerance {
		t.Fatalf("ToleranceFor(false) = %+v, want %+v", got, SamplingTolerance)
	}
}

func TestClose(t *testing.T) {
	cases := []struct {
		name      string
		tol       Tolerance
		got, want float64
		close     bool
	}{
		{"exact", Tolerance{Abs: 1e-6}, 0.5, 0.5, true},
		{"within-abs", Tolerance{Abs: 1e-6}, 0.5 + 5e-7, 0.5, true},
		{"outside-abs", Tolerance{Abs: 1e-6}, 0.5 + 5e-5, 0.5, false},
		{"within-rel-only", Tolerance{Abs: 1e-6, Rel: 0.05}, 103, 100, true},
		{"outside-both", Tolerance{Abs: 1e-6, Rel: 0.05}, 110, 100, false},
		{"loose-sampling", SamplingTolerance, 0.93, 0.9, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tol.Close(tc.got, tc.want); got != tc.close {
				t.Fatalf("Close(%v, %v) = %v, want %v", tc.got, tc.want, got, tc.close)
			}
		})
	}
}

func TestCheckClose(t *testing.T) {
	tol := Tolerance{Abs: 1e-6}
	if err := tol.CheckClose("expval", 1.0, 1.0); err != nil {
		t.Fatalf("CheckClose: %v", err)
	}
	err := tol.CheckClose("expval", 1.1, 1.0)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if !strings.Contains(err.Error(), "expval") {
		t.Fatalf("error %q does not carry the label", err)
	}
}

func TestCheckCloseReportsBothBounds(t *testing.T) {
	// 80 vs 60 misses both the absolute and the 5% relative bound.
	err := SamplingTolerance.CheckClose("var", 80, 60)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	for _, want := range []string{"abs tol 0.05", "rel tol 0.05"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestCheckAllClose(t *testing.T) {
	tol := Tolerance{Abs: 1e-6}
	if err := tol.CheckAllClose("expval", []float64{1, -0.5}, []float64{1, -0.5}); err != nil {
		t.Fatalf("CheckAllClose: %v", err)
	}
	if err := tol.CheckAllClose("expval", []float64{1}, []float64{1, -0.5}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	err := tol.CheckAllClose("expval", []float64{1, -0.4}, []float64{1, -0.5})
	if err == nil {
		t.Fatal("expected value mismatch error")
	}
	if !strings.Contains(err.Error(), "[1]") {
		t.Fatalf("error %q does not name the mismatching index", err)
	}
}
