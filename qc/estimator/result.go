package estimator

import (
	"math"

	"github.com/kegliz/qre/internal/qmath"
	"github.com/kegliz/qre/qc/estimator/modeling"
)

// Result is one feasible physical realization of an algorithm, found by
// Estimation.Estimate or as one point of Estimation.BuildFrontier. Factory is
// nil when the algorithm consumes no magic states.
type Result[Q modeling.Qubit, F Factory, L Overhead] struct {
	logicalQubit                        *modeling.LogicalQubit[Q]
	numCycles                           uint64
	factory                             F
	hasFactory                          bool
	numFactories                        uint64
	requiredLogicalQubitErrorRate       float64
	requiredLogicalMagicStateErrorRate  float64
	hasRequiredLogicalMagicStateErrRate bool
	numFactoryRuns                      uint64
	physicalQubitsForFactories          uint64
	physicalQubitsForAlgorithm          uint64
	physicalQubits                      uint64
	runtime                             uint64
	rqops                               uint64
	layoutOverhead                      L
	errorBudget                         modeling.ErrorBudget
}

// newResult mirrors PhysicalResourceEstimationResult::new: it derives every
// counter below from the chosen logical qubit, factory and cycle count.
func newResult[Q modeling.Qubit, F Factory, L Overhead](
	est *Estimation[Q, F, L],
	logicalQubit *modeling.LogicalQubit[Q],
	numCycles uint64,
	factory F,
	hasFactory bool,
	numFactories uint64,
	requiredLogicalQubitErrorRate float64,
	requiredLogicalMagicStateErrorRate float64,
	hasRequiredLogicalMagicStateErrRate bool,
) *Result[Q, F, L] {
	var magicStatesPerRun uint64
	if hasFactory {
		magicStatesPerRun = numFactories * factory.NumOutputStates()
	}

	numMagicStatesPerRotation, _ := est.layoutOverhead.NumMagicStatesPerRotation(est.errorBudget.Rotations())

	var numFactoryRuns uint64
	if magicStatesPerRun != 0 {
		numMagicStates := est.layoutOverhead.NumMagicStates(numMagicStatesPerRotation)
		numFactoryRuns = qmath.CeilDiv(numMagicStates, magicStatesPerRun)
	}

	var physicalQubitsForSingleFactory uint64
	if hasFactory {
		physicalQubitsForSingleFactory = factory.PhysicalQubits()
	}

	physicalQubitsForFactories := numFactories * physicalQubitsForSingleFactory
	physicalQubitsForAlgorithm := est.layoutOverhead.LogicalQubits() * logicalQubit.PhysicalQubits()
	physicalQubits := physicalQubitsForAlgorithm + physicalQubitsForFactories

	runtime := logicalQubit.LogicalCycleTime() * numCycles

	rqops := uint64(math.Ceil(float64(est.layoutOverhead.LogicalQubits()) * logicalQubit.LogicalCyclesPerSecond()))

	return &Result[Q, F, L]{
		logicalQubit:                        logicalQubit,
		numCycles:                           numCycles,
		factory:                             factory,
		hasFactory:                          hasFactory,
		numFactories:                        numFactories,
		requiredLogicalQubitErrorRate:       requiredLogicalQubitErrorRate,
		requiredLogicalMagicStateErrorRate:  requiredLogicalMagicStateErrorRate,
		hasRequiredLogicalMagicStateErrRate: hasRequiredLogicalMagicStateErrRate,
		numFactoryRuns:                      numFactoryRuns,
		physicalQubitsForFactories:          physicalQubitsForFactories,
		physicalQubitsForAlgorithm:          physicalQubitsForAlgorithm,
		physicalQubits:                      physicalQubits,
		runtime:                             runtime,
		rqops:                               rqops,
		layoutOverhead:                      est.layoutOverhead,
		errorBudget:                         est.errorBudget,
	}
}

func (r *Result[Q, F, L]) LogicalQubit() *modeling.LogicalQubit[Q] { return r.logicalQubit }
func (r *Result[Q, F, L]) NumCycles() uint64                      { return r.numCycles }

// Factory returns the chosen factory and true, or the zero value and false if
// the algorithm needed no magic states.
func (r *Result[Q, F, L]) Factory() (F, bool) { return r.factory, r.hasFactory }

func (r *Result[Q, F, L]) NumFactories() uint64                       { return r.numFactories }
func (r *Result[Q, F, L]) RequiredLogicalQubitErrorRate() float64      { return r.requiredLogicalQubitErrorRate }
func (r *Result[Q, F, L]) RequiredLogicalMagicStateErrorRate() (float64, bool) {
	return r.requiredLogicalMagicStateErrorRate, r.hasRequiredLogicalMagicStateErrRate
}
func (r *Result[Q, F, L]) NumFactoryRuns() uint64             { return r.numFactoryRuns }
func (r *Result[Q, F, L]) PhysicalQubitsForFactories() uint64 { return r.physicalQubitsForFactories }
func (r *Result[Q, F, L]) PhysicalQubitsForAlgorithm() uint64 { return r.physicalQubitsForAlgorithm }
func (r *Result[Q, F, L]) PhysicalQubits() uint64             { return r.physicalQubits }
func (r *Result[Q, F, L]) Runtime() uint64                    { return r.runtime }
func (r *Result[Q, F, L]) RQOPS() uint64                      { return r.rqops }
func (r *Result[Q, F, L]) LayoutOverhead() L                  { return r.layoutOverhead }
func (r *Result[Q, F, L]) ErrorBudget() modeling.ErrorBudget  { return r.errorBudget }

// AlgorithmicLogicalDepth is the number of logical cycles the algorithm's
// circuit itself takes, independent of any magic-state-bound stretching.
func (r *Result[Q, F, L]) AlgorithmicLogicalDepth() uint64 {
	numMagicStatesPerRotation, _ := r.layoutOverhead.NumMagicStatesPerRotation(r.errorBudget.Rotations())
	return r.layoutOverhead.LogicalDepth(numMagicStatesPerRotation)
}

// NumMagicStates is the total number of magic states the algorithm consumes.
func (r *Result[Q, F, L]) NumMagicStates() uint64 {
	numMagicStatesPerRotation, _ := r.layoutOverhead.NumMagicStatesPerRotation(r.errorBudget.Rotations())
	return r.layoutOverhead.NumMagicStates(numMagicStatesPerRotation)
}
