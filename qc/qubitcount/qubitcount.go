// Package qubitcount derives an estimator.Overhead-ready logical resource
// profile from a built circuit.Circuit, so a caller can feed a circuit
// straight into the estimator instead of hand-computing its qubit/T-count/
// rotation-count/depth.
package qubitcount

import (
	"github.com/kegliz/qre/qc/circuit"
	"github.com/kegliz/qre/qc/gate"
	"github.com/kegliz/qre/qc/overheadmodel"
)

// Count walks every operation in c and tallies it into a LogicalCounts
// profile: magic-state-consuming gates (T, T†) into TCount, arbitrary
// rotations (RZ, RX, RY) into RotationCount, the circuit's own layered
// depth into Depth, and the largest number of rotations on any single
// layout line into RotationDepth.
func Count(c circuit.Circuit) overheadmodel.LogicalCounts {
	counts := overheadmodel.LogicalCounts{
		Qubits: uint64(c.Qubits()),
		Depth:  uint64(c.Depth()),
	}

	rotationDepth := make(map[int]uint64)
	for _, op := range c.Operations() {
		switch {
		case gate.IsMagicState(op.G):
			counts.TCount++
		case gate.IsRotation(op.G):
			counts.RotationCount++
			rotationDepth[op.Line]++
		}
	}

	var maxLineRotations uint64
	for _, n := range rotationDepth {
		if n > maxLineRotations {
			maxLineRotations = n
		}
	}
	counts.RotationDepth = maxLineRotations

	return counts
}
