// Package bench benchmarks the physical-resource search itself: how long
// Estimate takes, and what it finds, for one algorithm configuration per
// run, typically repeated across the registered backends. It follows the
// config/result/reporter shape of a circuit-execution benchmark harness,
// applied to estimator search.
package bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/kegliz/qre/qc/estimator"
	"github.com/kegliz/qre/qc/estimator/modeling"
	"github.com/kegliz/qre/qc/estimator/registry"
	"github.com/kegliz/qre/qc/factorybuilder"
	"github.com/kegliz/qre/qc/overheadmodel"
	"github.com/kegliz/qre/qc/protocol"
)

// Config describes one estimator search to benchmark.
type Config struct {
	Backend           string
	CliffordErrorRate float64
	Counts            overheadmodel.LogicalCounts
	BudgetLogical     float64
	BudgetMagicStates float64
	BudgetRotations   float64
}

// Result is the outcome of running one Config through Estimate, timed.
type Result struct {
	Backend        string                      `json:"backend"`
	Counts         overheadmodel.LogicalCounts `json:"counts"`
	Success        bool                        `json:"success"`
	Error          string                      `json:"error,omitempty"`
	Duration       time.Duration               `json:"duration"`
	CodeDistance   uint64                      `json:"code_distance,omitempty"`
	PhysicalQubits uint64                      `json:"physical_qubits,omitempty"`
	RuntimeNs      uint64                      `json:"runtime_ns,omitempty"`
}

// RunSingle builds the estimation described by cfg and times one Estimate
// call. b is accepted (and its StopTimer/StartTimer used around setup) so
// this can be driven both standalone and from *testing.B benchmarks.
func RunSingle(b *testing.B, cfg Config) Result {
	b.Helper()
	b.StopTimer()

	backend, err := registry.Create(cfg.Backend, cfg.CliffordErrorRate)
	if err != nil {
		return Result{Backend: cfg.Backend, Counts: cfg.Counts, Success: false, Error: err.Error()}
	}

	budget, err := modeling.NewErrorBudget(cfg.BudgetLogical, cfg.BudgetMagicStates, cfg.BudgetRotations)
	if err != nil {
		return Result{Backend: cfg.Backend, Counts: cfg.Counts, Success: false, Error: err.Error()}
	}

	est := estimator.New[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts](
		backend.ECP, backend.Qubit, backend.Builder, cfg.Counts, budget,
	)

	b.StartTimer()
	start := time.Now()
	result, err := est.Estimate()
	duration := time.Since(start)
	b.StopTimer()

	if err != nil {
		return Result{Backend: cfg.Backend, Counts: cfg.Counts, Success: false, Error: err.Error(), Duration: duration}
	}

	return Result{
		Backend:        cfg.Backend,
		Counts:         cfg.Counts,
		Success:        true,
		Duration:       duration,
		CodeDistance:   result.LogicalQubit().CodeDistance(),
		PhysicalQubits: result.PhysicalQubits(),
		RuntimeNs:      result.Runtime(),
	}
}

func (r Result) String() string {
	if !r.Success {
		return fmt.Sprintf("%s: FAILED (%s)", r.Backend, r.Error)
	}
	return fmt.Sprintf("%s: distance=%d qubits=%d runtime=%dns search=%v",
		r.Backend, r.CodeDistance, r.PhysicalQubits, r.RuntimeNs, r.Duration)
}
