// Package overheadmodel provides a concrete estimator.Overhead
// implementation: a flat count of an algorithm's logical resources, the way
// a compiled or hand-analyzed circuit reports them.
package overheadmodel

import "math"

// LogicalCounts is a snapshot of an algorithm's logical resource
// requirements, independent of any physical realization.
type LogicalCounts struct {
	// Qubits is the number of logical qubits the algorithm needs.
	Qubits uint64
	// TCount is the number of T-gates (and thus T-states) the algorithm's
	// circuit consumes directly.
	TCount uint64
	// RotationCount is the number of arbitrary-angle single-qubit rotations
	// the circuit performs; each is synthesized into a sequence of T-gates
	// at runtime, at a cost depending on the allotted rotation error budget.
	RotationCount uint64
	// RotationDepth is the number of logical cycles the rotation gates
	// alone would need if synthesized serially. It is carried with the
	// profile; LogicalDepth does not read it.
	RotationDepth uint64
	// Depth is the number of logical cycles the algorithm's circuit takes,
	// not counting rotation synthesis overhead.
	Depth uint64
}

// LogicalQubits implements estimator.Overhead.
func (l LogicalCounts) LogicalQubits() uint64 { return l.Qubits }

// LogicalDepth implements estimator.Overhead. When the circuit performs
// rotations, it returns the larger of Depth and RotationCount times
// numMagicStatesPerRotation (the Ross-Selinger-style "gate ~ log(1/eps)"
// synthesis cost of one rotation); otherwise it returns Depth.
func (l LogicalCounts) LogicalDepth(numMagicStatesPerRotation uint64) uint64 {
	if l.RotationCount == 0 {
		return l.Depth
	}
	rotationSynthesisDepth := l.RotationCount * numMagicStatesPerRotation
	if rotationSynthesisDepth > l.Depth {
		return rotationSynthesisDepth
	}
	return l.Depth
}

// NumMagicStates implements estimator.Overhead: the direct T-count plus the
// T-states consumed synthesizing every rotation gate.
func (l LogicalCounts) NumMagicStates(numMagicStatesPerRotation uint64) uint64 {
	return l.TCount + l.RotationCount*numMagicStatesPerRotation
}

// NumMagicStatesPerRotation implements estimator.Overhead using the
// standard asymptotic synthesis-cost bound for an arbitrary single-qubit
// rotation: roughly 4*log2(1/eps) T-gates to reach a synthesis error of eps
// (Ross-Selinger, "Optimal ancilla-free Clifford+T approximation").
func (l LogicalCounts) NumMagicStatesPerRotation(rotationErrorRate float64) (uint64, bool) {
	if l.RotationCount == 0 {
		return 0, false
	}
	perRotationBudget := rotationErrorRate / float64(l.RotationCount)
	count := uint64(math.Ceil(4 * math.Log2(1/perRotationBudget)))
	if count < 1 {
		count = 1
	}
	return count, true
}
