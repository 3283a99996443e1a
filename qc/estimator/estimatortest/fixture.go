// Package estimatortest provides a minimal, hand-computable
// error-correction protocol, factory and overhead fixture for exercising
// qc/estimator's search logic without pulling in the concrete surface-code
// or distillation implementations. The constants mirror a simplified
// textbook model: cycle time scales linearly with code distance, physical
// qubit count scales quadratically, and a single factory shape is available
// at every code distance.
package estimatortest

import (
	"fmt"
	"math"

	"github.com/kegliz/qre/qc/estimator/modeling"
)

// Qubit is the fixture's minimal physical qubit: a fixed Clifford error
// rate.
type Qubit struct {
	ErrorRate float64
}

// CliffordErrorRate implements modeling.Qubit.
func (q *Qubit) CliffordErrorRate() float64 { return q.ErrorRate }

// NewQubit returns the fixture qubit from spec scenario: clifford error
// rate 1e-4.
func NewQubit() *Qubit { return &Qubit{ErrorRate: 1e-4} }

// ECP is the fixture error-correction protocol: max code distance 99,
// prefactor 0.03, threshold 0.01, cycle time 100ns * d,
// physical_qubits_per_logical_qubit = 2*d^2.
type ECP struct {
	MaxDistance uint64
	Prefactor   float64
	Threshold   float64
	CycleNs     uint64
}

// NewECP returns the fixture protocol from spec scenario.
func NewECP() *ECP {
	return &ECP{MaxDistance: 99, Prefactor: 0.03, Threshold: 0.01, CycleNs: 100}
}

func (e *ECP) MaxCodeDistance() uint64 { return e.MaxDistance }

func (e *ECP) PhysicalQubitsPerLogicalQubit(codeDistance uint64) (uint64, error) {
	if codeDistance == 0 {
		return 0, fmt.Errorf("estimatortest: code distance must be positive")
	}
	return 2 * codeDistance * codeDistance, nil
}

func (e *ECP) LogicalCycleTime(qubit *Qubit, codeDistance uint64) (uint64, error) {
	if codeDistance == 0 {
		return 0, fmt.Errorf("estimatortest: code distance must be positive")
	}
	return e.CycleNs * codeDistance, nil
}

func (e *ECP) LogicalFailureProbability(qubit *Qubit, codeDistance uint64) (float64, error) {
	if codeDistance == 0 {
		return 0, fmt.Errorf("estimatortest: code distance must be positive")
	}
	ratio := qubit.CliffordErrorRate() / e.Threshold
	exponent := float64(codeDistance+1) / 2.0
	return e.Prefactor * math.Pow(ratio, exponent), nil
}

func (e *ECP) ComputeCodeDistance(qubit *Qubit, requiredLogicalErrorRate float64) uint64 {
	if requiredLogicalErrorRate <= 0 {
		return e.MaxDistance
	}
	ratio := qubit.CliffordErrorRate() / e.Threshold
	if ratio >= 1 {
		return e.MaxDistance + 1
	}
	d := 2*(math.Log(requiredLogicalErrorRate/e.Prefactor)/math.Log(ratio)) - 1
	if d < 1 {
		return 1
	}
	codeDistance := uint64(math.Ceil(d))
	if codeDistance%2 == 0 {
		codeDistance++
	}
	return codeDistance
}

// Factory is the fixture's single factory shape: physical_qubits = 100*d^2,
// duration = 1000*d, num_output_states = 1, max_code_distance = d.
type Factory struct {
	CodeDistance uint64
}

func (f *Factory) PhysicalQubits() uint64  { return 100 * f.CodeDistance * f.CodeDistance }
func (f *Factory) Duration() uint64        { return 1000 * f.CodeDistance }
func (f *Factory) NumOutputStates() uint64 { return 1 }
func (f *Factory) MaxCodeDistance() uint64 { return f.CodeDistance }

// Builder returns a single Factory candidate at maxCodeDistance, regardless
// of the requested output error rate, matching the spec's single-factory
// fixture scenario.
type Builder struct{}

func (Builder) FindFactories(ftp modeling.ErrorCorrection[*Qubit], qubit *Qubit, outputErrorRate float64, maxCodeDistance uint64) []*Factory {
	if maxCodeDistance == 0 {
		return nil
	}
	return []*Factory{{CodeDistance: maxCodeDistance}}
}

// Overhead is the fixture's algorithm overhead: a fixed logical qubit count,
// T-count, depth and no rotations.
type Overhead struct {
	Qubits uint64
	TCount uint64
	Depth  uint64
}

func (o Overhead) LogicalQubits() uint64                            { return o.Qubits }
func (o Overhead) LogicalDepth(uint64) uint64                       { return o.Depth }
func (o Overhead) NumMagicStates(uint64) uint64                     { return o.TCount }
func (o Overhead) NumMagicStatesPerRotation(float64) (uint64, bool) { return 0, false }
