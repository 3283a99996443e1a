// Package factorybuilder provides a concrete magic-state factory builder:
// single-level Clifford+T distillation units enumerated across internal code
// distances and filtered to their non-dominated (qubits, duration) frontier.
package factorybuilder

import (
	"math"

	"github.com/kegliz/qre/qc/estimator/modeling"
	"github.com/kegliz/qre/qc/estimator/optimization"
	"github.com/kegliz/qre/qc/protocol"
)

// DistillationFactory is one single-level 15-to-1 magic-state distillation
// unit, built at a given internal code distance.
type DistillationFactory struct {
	physicalQubits  uint64
	duration        uint64
	numOutputStates uint64
	codeDistance    uint64
}

// PhysicalQubits implements estimator.Factory.
func (f *DistillationFactory) PhysicalQubits() uint64 { return f.physicalQubits }

// Duration implements estimator.Factory.
func (f *DistillationFactory) Duration() uint64 { return f.duration }

// NumOutputStates implements estimator.Factory.
func (f *DistillationFactory) NumOutputStates() uint64 { return f.numOutputStates }

// MaxCodeDistance implements estimator.Factory.
func (f *DistillationFactory) MaxCodeDistance() uint64 { return f.codeDistance }

// Distillation builds 15-to-1 distillation unit candidates at every internal
// code distance up to the enclosing logical code distance, filtering the
// raw enumeration to the non-dominated (physical qubits, duration) set
// before returning.
type Distillation struct {
	// PhysicalQubitsPerUnitCell is the number of physical qubits one
	// distillation unit occupies per unit of squared internal code
	// distance (qubits = PhysicalQubitsPerUnitCell * d^2).
	PhysicalQubitsPerUnitCell uint64
	// RoundsPerUnitCell scales a unit's duration with its internal code
	// distance: the factory duration, in nanoseconds, is
	// RoundsPerUnitCell * d.
	RoundsPerUnitCell uint64
	// InputErrorRate is the physical error rate feeding the distillation
	// unit's inputs (typically the Clifford error rate of the underlying
	// qubit).
	InputErrorRate float64
}

// FindFactories implements estimator.FactoryBuilder. It enumerates one
// candidate per internal code distance from 1 to maxCodeDistance, keeping
// only odd distances (surface-code patches require an odd distance), and
// prunes to the Pareto frontier over (physical qubits, duration).
func (d *Distillation) FindFactories(
	ftp modeling.ErrorCorrection[*protocol.SuperconductingQubit],
	qubit *protocol.SuperconductingQubit,
	outputErrorRate float64,
	maxCodeDistance uint64,
) []*DistillationFactory {
	if outputErrorRate <= 0 || maxCodeDistance == 0 {
		return nil
	}

	population := optimization.NewPopulation[*DistillationFactory]()

	for internalDistance := uint64(1); internalDistance <= maxCodeDistance; internalDistance += 2 {
		outputError := distillationOutputErrorRate(d.InputErrorRate, internalDistance)
		if outputError > outputErrorRate {
			continue
		}

		factory := &DistillationFactory{
			physicalQubits:  d.PhysicalQubitsPerUnitCell * internalDistance * internalDistance,
			duration:        d.RoundsPerUnitCell * internalDistance,
			numOutputStates: 1,
			codeDistance:    internalDistance,
		}
		population.Push(optimization.Point2D[*DistillationFactory]{
			X:    float64(factory.PhysicalQubits()),
			Y:    float64(factory.Duration()),
			Item: factory,
		})
	}

	population.FilterOutDominated()
	return population.Extract()
}

// distillationOutputErrorRate models the output error rate of a single-level
// 15-to-1 distillation unit built at the given internal code distance:
// roughly cubic suppression of the input error rate, further suppressed by
// the surface-code patch protecting the unit.
func distillationOutputErrorRate(inputErrorRate float64, internalDistance uint64) float64 {
	return 35.0 * math.Pow(inputErrorRate, 3) / math.Pow(float64(internalDistance), 2)
}
