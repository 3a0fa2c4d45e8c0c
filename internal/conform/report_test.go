package conform

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	outcomes := []Outcome{
		{Case: "a", Status: StatusOK},
		{Case: "b", Status: StatusOK},
		{Case: "c", Status: StatusSkipped},
		{Case: "d", Status: StatusFailed},
	}
	got := Summarize(outcomes)
	want := Summary{OK: 2, Skipped: 1, Failed: 1}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero", got)
	}
}

func TestReportRoundTrip(t *testing.T) {
	report := Report{
		Device:   "statevector",
		Shots:    1024,
		Analytic: false,
		Seed:     42,
		Summary:  Summary{OK: 2, Skipped: 1},
		Outcomes: []Outcome{
			{Case: "expval/pauliz", Device: "statevector", Status: StatusOK, Attempts: 2},
			{Case: "sample/pauliz-values", Device: "statevector", Status: StatusOK, Attempts: 1},
			{Case: "expval/tensor-paulix-pauliy", Device: "statevector", Status: StatusSkipped,
				Reason: `capability "tensor_observable" not declared`, Attempts: 1},
		},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveReport(path, report); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	got, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if !reflect.DeepEqual(got, report) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, report)
	}
}

func TestLoadReportErrors(t *testing.T) {
	if _, err := LoadReport(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, err := LoadReport(path); err == nil {
		t.Fatal("expected error for corrupt JSON")
	}
}
