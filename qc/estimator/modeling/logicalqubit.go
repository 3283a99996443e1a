package modeling

import "fmt"

// LogicalQubit is a logical qubit realized at a specific code distance under
// a specific error-correction protocol. It is immutable once built; callers
// that want a different code distance construct a new value.
type LogicalQubit[Q Qubit] struct {
	codeDistance              uint64
	physicalQubits            uint64
	logicalCycleTime          uint64
	logicalFailureProbability float64
}

// NewLogicalQubit builds a LogicalQubit by evaluating the protocol's derived
// quantities at codeDistance for qubit. It returns an error if the protocol
// rejects the code distance (e.g. it is even, or exceeds MaxCodeDistance).
func NewLogicalQubit[Q Qubit](ecp ErrorCorrection[Q], qubit Q, codeDistance uint64) (*LogicalQubit[Q], error) {
	physicalQubits, err := ecp.PhysicalQubitsPerLogicalQubit(codeDistance)
	if err != nil {
		return nil, fmt.Errorf("modeling: physical qubits per logical qubit at distance %d: %w", codeDistance, err)
	}
	cycleTime, err := ecp.LogicalCycleTime(qubit, codeDistance)
	if err != nil {
		return nil, fmt.Errorf("modeling: logical cycle time at distance %d: %w", codeDistance, err)
	}
	failureProb, err := ecp.LogicalFailureProbability(qubit, codeDistance)
	if err != nil {
		return nil, fmt.Errorf("modeling: logical failure probability at distance %d: %w", codeDistance, err)
	}
	return &LogicalQubit[Q]{
		codeDistance:              codeDistance,
		physicalQubits:            physicalQubits,
		logicalCycleTime:          cycleTime,
		logicalFailureProbability: failureProb,
	}, nil
}

// CodeDistance is the code distance this logical qubit was built at.
func (l *LogicalQubit[Q]) CodeDistance() uint64 { return l.codeDistance }

// PhysicalQubits is the number of physical qubits this logical qubit
// occupies.
func (l *LogicalQubit[Q]) PhysicalQubits() uint64 { return l.physicalQubits }

// LogicalCycleTime is the duration, in nanoseconds, of one logical QEC cycle.
func (l *LogicalQubit[Q]) LogicalCycleTime() uint64 { return l.logicalCycleTime }

// LogicalErrorRate is the per-cycle logical failure probability.
func (l *LogicalQubit[Q]) LogicalErrorRate() float64 { return l.logicalFailureProbability }

// LogicalCyclesPerSecond is the inverse of LogicalCycleTime, converting the
// nanosecond cycle time into a rate.
func (l *LogicalQubit[Q]) LogicalCyclesPerSecond() float64 {
	return 1e9 / float64(l.logicalCycleTime)
}
