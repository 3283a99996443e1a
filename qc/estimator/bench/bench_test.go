package bench

import (
	"bytes"
	"os"
	"testing"

	"github.com/kegliz/qre/qc/estimator/registry"
	"github.com/kegliz/qre/qc/overheadmodel"
	"github.com/kegliz/qre/qc/testutil"
)

func TestRunSingleAcrossBackends(t *testing.T) {
	testutil.SkipIfShort(t, "exercises the estimator search across every registered backend")

	backends := registry.ListBackends()
	if len(backends) == 0 {
		t.Skip("no backends registered")
	}

	reporter := NewReporter()

	for _, name := range backends {
		t.Run(name, func(t *testing.T) {
			cfg := Config{
				Backend:           name,
				CliffordErrorRate: 1e-4,
				Counts: overheadmodel.LogicalCounts{
					Qubits: 100,
					TCount: 1_000_000,
					Depth:  1_000_000,
				},
				BudgetLogical:     1.0 / 3,
				BudgetMagicStates: 1.0 / 3,
				BudgetRotations:   1.0 / 3,
			}

			b := &testing.B{}
			result := RunSingle(b, cfg)
			reporter.Add(result)

			if !result.Success {
				t.Errorf("estimate failed for backend %s: %s", name, result.Error)
			}
			t.Logf("%s", result)
		})
	}

	var buf bytes.Buffer
	reporter.PrintSummary(&buf)
	if buf.Len() == 0 {
		t.Error("expected a non-empty summary")
	}

	path, cleanup := testutil.TempFile(t, ".json")
	defer cleanup()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating report file: %v", err)
	}
	defer f.Close()

	if err := reporter.WriteJSON(f); err != nil {
		t.Fatalf("writing JSON report: %v", err)
	}
}
