package estimator

// Overhead describes an algorithm's logical resource requirements,
// independent of any physical realization: how many logical qubits it needs,
// how many logical cycles its circuit takes, and how many magic states its
// T-gates and arbitrary rotations consume.
type Overhead interface {
	// LogicalQubits is the number of logical qubits the algorithm needs.
	LogicalQubits() uint64

	// LogicalDepth is the number of logical cycles the algorithm's circuit
	// takes, given that each arbitrary rotation synthesizes to
	// numMagicStatesPerRotation T-states (0 if the algorithm performs no
	// rotations).
	LogicalDepth(numMagicStatesPerRotation uint64) uint64

	// NumMagicStates returns the total number of T-states the algorithm
	// consumes, given that each arbitrary rotation synthesizes to
	// numMagicStatesPerRotation T-states (0 if the algorithm performs no
	// rotations).
	NumMagicStates(numMagicStatesPerRotation uint64) uint64

	// NumMagicStatesPerRotation returns the number of T-states a single
	// arbitrary rotation synthesizes to, for the given per-rotation error
	// budget. The second return value is false when the algorithm performs
	// no rotations, in which case the estimator skips rotation synthesis
	// entirely.
	NumMagicStatesPerRotation(rotationErrorRate float64) (uint64, bool)
}
