// Package estimator implements the physical-resource search: given an
// algorithm's logical overhead, an error-correction protocol, a magic-state
// factory builder and an error budget, it searches code distances and
// factory configurations for a feasible, cost-minimal physical realization,
// or sweeps the search to build a Pareto frontier of runtime-vs-qubits
// trade-offs.
package estimator

import (
	"math"
	"sort"

	"github.com/kegliz/qre/internal/qmath"
	"github.com/kegliz/qre/qc/estimator/modeling"
	"github.com/kegliz/qre/qc/estimator/optimization"
)

// Estimation drives one physical-resource search. It is built once via New
// and configured with the optional Set* methods before calling Estimate or
// BuildFrontier; it holds no mutable search state between calls.
type Estimation[Q modeling.Qubit, F Factory, L Overhead] struct {
	ftp            modeling.ErrorCorrection[Q]
	qubit          Q
	factoryBuilder FactoryBuilder[Q, F]
	layoutOverhead L
	errorBudget    modeling.ErrorBudget

	logicalDepthFactor float64
	hasLogicalDepth    bool
	maxFactories       uint64
	hasMaxFactories    bool
	maxDuration        uint64
	hasMaxDuration     bool
	maxPhysicalQubits  uint64
	hasMaxQubits       bool
}

// New builds an Estimation with no optional constraints set.
func New[Q modeling.Qubit, F Factory, L Overhead](
	ftp modeling.ErrorCorrection[Q],
	qubit Q,
	factoryBuilder FactoryBuilder[Q, F],
	layoutOverhead L,
	errorBudget modeling.ErrorBudget,
) *Estimation[Q, F, L] {
	return &Estimation[Q, F, L]{
		ftp:            ftp,
		qubit:          qubit,
		factoryBuilder: factoryBuilder,
		layoutOverhead: layoutOverhead,
		errorBudget:    errorBudget,
	}
}

func (e *Estimation[Q, F, L]) LayoutOverhead() L                 { return e.layoutOverhead }
func (e *Estimation[Q, F, L]) ErrorBudget() modeling.ErrorBudget { return e.errorBudget }

// SetLogicalDepthFactor scales the algorithm's logical depth by factor before
// the search begins. Per design, a factor <= 1.0 is accepted without
// complaint, matching the reference implementation's behavior; callers that
// want to shrink the depth are trusted to know what they are doing.
func (e *Estimation[Q, F, L]) SetLogicalDepthFactor(factor float64) {
	e.logicalDepthFactor = factor
	e.hasLogicalDepth = true
}

// SetMaxFactories bounds the number of parallel copies of the chosen factory
// the search may use.
func (e *Estimation[Q, F, L]) SetMaxFactories(max uint64) {
	e.maxFactories = max
	e.hasMaxFactories = true
}

// SetMaxDuration bounds the total runtime, in nanoseconds, the search may
// return. Mutually exclusive with SetMaxPhysicalQubits.
func (e *Estimation[Q, F, L]) SetMaxDuration(max uint64) {
	e.maxDuration = max
	e.hasMaxDuration = true
}

// SetMaxPhysicalQubits bounds the total physical qubit count the search may
// return. Mutually exclusive with SetMaxDuration.
func (e *Estimation[Q, F, L]) SetMaxPhysicalQubits(max uint64) {
	e.maxPhysicalQubits = max
	e.hasMaxQubits = true
}

// Estimate runs a single-point search, dispatching on which of
// SetMaxDuration / SetMaxPhysicalQubits was called.
func (e *Estimation[Q, F, L]) Estimate() (*Result[Q, F, L], error) {
	switch {
	case !e.hasMaxDuration && !e.hasMaxQubits:
		return e.estimateWithoutRestrictions()
	case !e.hasMaxDuration && e.hasMaxQubits:
		return e.estimateWithMaxNumQubits(e.maxPhysicalQubits)
	case e.hasMaxDuration && !e.hasMaxQubits:
		return e.estimateWithMaxDuration(e.maxDuration)
	default:
		return nil, newInvalidInput(BothDurationAndPhysicalQubitsProvided)
	}
}

func (e *Estimation[Q, F, L]) numMagicStatesPerRotation() uint64 {
	n, _ := e.layoutOverhead.NumMagicStatesPerRotation(e.errorBudget.Rotations())
	return n
}

func (e *Estimation[Q, F, L]) numMagicStates() uint64 {
	return e.layoutOverhead.NumMagicStates(e.numMagicStatesPerRotation())
}

// computeNumCycles is the starting cycle count C_min, scaled by the optional
// logical-depth factor.
func (e *Estimation[Q, F, L]) computeNumCycles() (uint64, error) {
	numCycles := e.layoutOverhead.LogicalDepth(e.numMagicStatesPerRotation())

	if e.hasLogicalDepth {
		numCycles = uint64(math.Ceil(float64(numCycles) * e.logicalDepthFactor))
	}

	if e.numMagicStates() == 0 && numCycles == 0 {
		return 0, newInvalidInput(AlgorithmHasNoResources)
	}
	return numCycles, nil
}

func (e *Estimation[Q, F, L]) requiredLogicalQubitErrorRate(numCycles uint64) float64 {
	return e.errorBudget.Logical() / float64(e.layoutOverhead.LogicalQubits()*numCycles)
}

func (e *Estimation[Q, F, L]) requiredLogicalMagicStateErrorRate() float64 {
	return e.errorBudget.MagicStates() / float64(e.numMagicStates())
}

func (e *Estimation[Q, F, L]) getMaxOddCodeDistance() uint64 {
	maxCodeDistance := e.ftp.MaxCodeDistance()
	if maxCodeDistance%2 == 0 {
		return maxCodeDistance - 1
	}
	return maxCodeDistance
}

func findHighestCodeDistance[F Factory](factories []F) uint64 {
	var max uint64
	for _, f := range factories {
		if d := f.MaxCodeDistance(); d > max {
			max = d
		}
	}
	return max
}

// numFactories chooses the number of parallel factory copies needed so that
// the magic states they produce keep up with numCycles logical cycles. The
// intermediate product of four u64 quantities can exceed 64 bits even though
// the final factory count never does, so the multiply-divide runs in
// qmath.MulDivCeil (128-bit-safe via math/big).
func (e *Estimation[Q, F, L]) numFactories(logicalQubit *modeling.LogicalQubit[Q], factory F, numCycles uint64) uint64 {
	return qmath.MulDivCeil(
		e.numMagicStates(),
		factory.Duration(),
		factory.NumOutputStates(),
		logicalQubit.LogicalCycleTime(),
		numCycles,
	)
}

func (e *Estimation[Q, F, L]) computeNumCyclesRequiredForMagicStates(numFactories uint64, factory F, logicalQubit *modeling.LogicalQubit[Q]) uint64 {
	magicStatesPerRun := numFactories * factory.NumOutputStates()
	requiredRuns := qmath.CeilDiv(e.numMagicStates(), magicStatesPerRun)
	requiredDuration := requiredRuns * factory.Duration()
	return qmath.CeilDiv(requiredDuration, logicalQubit.LogicalCycleTime())
}

// pickedFactory bundles a chosen factory together with the cycle count it
// was chosen under, standing in for the Rust code's ad hoc tuples.
type pickedFactory[F Factory] struct {
	factory   F
	numCycles uint64
}

func tryPickFactoryWithNumCycles[Q modeling.Qubit, F Factory](factories []F, logicalQubit *modeling.LogicalQubit[Q], maxAllowedNumCycles uint64) (pickedFactory[F], bool) {
	var best pickedFactory[F]
	found := false
	for _, factory := range factories {
		numCycles := uint64(math.Ceil(float64(factory.Duration()) / float64(logicalQubit.LogicalCycleTime())))
		if numCycles > maxAllowedNumCycles {
			continue
		}
		if !found || NormalizedVolume(factory) < NormalizedVolume(best.factory) {
			best = pickedFactory[F]{factory: factory, numCycles: numCycles}
			found = true
		}
	}
	return best, found
}

func (e *Estimation[Q, F, L]) isMaxFactoriesConstraintSatisfied(logicalQubit *modeling.LogicalQubit[Q], factory F, numCycles uint64) bool {
	if !e.hasMaxFactories {
		return true
	}
	return e.numFactories(logicalQubit, factory, numCycles) <= e.maxFactories
}

func (e *Estimation[Q, F, L]) tryPickFactoryBelowOrEqualMaxDurationUnderMaxFactories(factories []F, logicalQubit *modeling.LogicalQubit[Q], numCycles uint64) (F, bool) {
	algorithmDuration := numCycles * logicalQubit.LogicalCycleTime()
	var best F
	found := false
	for _, factory := range factories {
		if factory.Duration() > algorithmDuration {
			continue
		}
		if !e.isMaxFactoriesConstraintSatisfied(logicalQubit, factory, numCycles) {
			continue
		}
		if !found || NormalizedVolume(factory) < NormalizedVolume(best) {
			best = factory
			found = true
		}
	}
	return best, found
}

func (e *Estimation[Q, F, L]) tryPickFactoryWithNumCyclesAndMaxFactories(factories []F, logicalQubit *modeling.LogicalQubit[Q], maxAllowedNumCycles, maxFactories uint64) (pickedFactory[F], bool) {
	var best pickedFactory[F]
	found := false
	for _, factory := range factories {
		magicStatesPerRun := maxFactories * factory.NumOutputStates()
		requiredRuns := uint64(math.Ceil(float64(e.numMagicStates()) / float64(magicStatesPerRun)))
		requiredDuration := requiredRuns * factory.Duration()
		numCycles := uint64(math.Ceil(float64(requiredDuration) / float64(logicalQubit.LogicalCycleTime())))
		if numCycles > maxAllowedNumCycles {
			continue
		}
		if !found {
			best = pickedFactory[F]{factory: factory, numCycles: numCycles}
			found = true
			continue
		}
		bv, cv := NormalizedVolume(factory), NormalizedVolume(best.factory)
		if bv < cv || (bv == cv && numCycles < best.numCycles) {
			best = pickedFactory[F]{factory: factory, numCycles: numCycles}
		}
	}
	return best, found
}

func (e *Estimation[Q, F, L]) tryFindFactoryForCodeDistanceDurationAndMaxFactories(factories []F, logicalQubit *modeling.LogicalQubit[Q], maxAllowedNumCycles uint64) (pickedFactory[F], bool) {
	if e.hasMaxFactories {
		return e.tryPickFactoryWithNumCyclesAndMaxFactories(factories, logicalQubit, maxAllowedNumCycles, e.maxFactories)
	}
	return tryPickFactoryWithNumCycles(factories, logicalQubit, maxAllowedNumCycles)
}

func (e *Estimation[Q, F, L]) tryPickFactoryForCodeDistanceAndMaxFactories(factories []F, logicalQubit *modeling.LogicalQubit[Q], numCycles, maxAllowedNumCyclesForCodeDistance uint64) (pickedFactory[F], bool) {
	if factory, ok := e.tryPickFactoryBelowOrEqualMaxDurationUnderMaxFactories(factories, logicalQubit, numCycles); ok {
		return pickedFactory[F]{factory: factory, numCycles: numCycles}, true
	}
	if picked, ok := e.tryFindFactoryForCodeDistanceDurationAndMaxFactories(factories, logicalQubit, maxAllowedNumCyclesForCodeDistance); ok {
		if picked.numCycles <= maxAllowedNumCyclesForCodeDistance {
			return picked, true
		}
	}
	var zero pickedFactory[F]
	return zero, false
}

func tryPickFactoryBelowOrEqualNumQubits[F Factory](factories []F, maxNumQubits uint64) (F, bool) {
	var best F
	found := false
	for _, factory := range factories {
		if factory.PhysicalQubits() > maxNumQubits {
			continue
		}
		if !found || NormalizedVolume(factory) < NormalizedVolume(best) {
			best = factory
			found = true
		}
	}
	return best, found
}

func (e *Estimation[Q, F, L]) estimateWithoutRestrictions() (*Result[Q, F, L], error) {
	numCycles, err := e.computeNumCycles()
	if err != nil {
		return nil, err
	}

	loadedFactoriesAtLeastOnce := false

	var (
		logicalQubit                       *modeling.LogicalQubit[Q]
		factory                            F
		hasFactory                         bool
		numFactories                       uint64
		requiredLogicalQubitErrorRate      float64
		requiredLogicalMagicStateErrorRate float64
		hasRequiredMagicStateRate          bool
	)

	for {
		requiredLogicalQubitErrorRate = e.requiredLogicalQubitErrorRate(numCycles)

		codeDistance := e.ftp.ComputeCodeDistance(e.qubit, requiredLogicalQubitErrorRate)

		if codeDistance > e.ftp.MaxCodeDistance() {
			if !loadedFactoriesAtLeastOnce {
				return nil, newInvalidInput(NoTFactoriesFound)
			}
			if e.hasMaxFactories {
				return nil, newInvalidInput(NoSolutionFoundForMaxTFactories)
			}
			return nil, newInvalidInput(InvalidCodeDistance, codeDistance, e.ftp.MaxCodeDistance())
		}

		lq, err := modeling.NewLogicalQubit(e.ftp, e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}
		logicalQubit = lq

		if e.numMagicStates() == 0 {
			hasFactory = false
			numFactories = 0
			hasRequiredMagicStateRate = false
			break
		}

		requiredLogicalMagicStateErrorRate = e.requiredLogicalMagicStateErrorRate()
		hasRequiredMagicStateRate = true

		factories := e.factoryBuilder.FindFactories(e.ftp, e.qubit, requiredLogicalMagicStateErrorRate, logicalQubit.CodeDistance())

		maxAllowedErrorRate, err := e.ftp.LogicalFailureProbability(e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}
		maxAllowedNumCyclesForCodeDistance := uint64(math.Floor(e.errorBudget.Logical() / (float64(e.layoutOverhead.LogicalQubits()) * maxAllowedErrorRate)))

		if len(factories) > 0 {
			loadedFactoriesAtLeastOnce = true
			if picked, ok := e.tryPickFactoryForCodeDistanceAndMaxFactories(factories, logicalQubit, numCycles, maxAllowedNumCyclesForCodeDistance); ok {
				numCycles = picked.numCycles
				factory = picked.factory
				hasFactory = true
				numFactories = e.numFactories(logicalQubit, picked.factory, picked.numCycles)
				break
			}
		}

		numCycles = maxAllowedNumCyclesForCodeDistance + 1
	}

	return newResult(e, logicalQubit, numCycles, factory, hasFactory, numFactories,
		requiredLogicalQubitErrorRate, requiredLogicalMagicStateErrorRate, hasRequiredMagicStateRate), nil
}

func (e *Estimation[Q, F, L]) estimateWithMaxDuration(maxDurationNs uint64) (*Result[Q, F, L], error) {
	numCyclesRequired, err := e.computeNumCycles()
	if err != nil {
		return nil, err
	}

	requiredLogicalMagicStateErrorRate := e.requiredLogicalMagicStateErrorRate()
	requiredLogicalQubitErrorRate := e.requiredLogicalQubitErrorRate(numCyclesRequired)

	minCodeDistance := e.ftp.ComputeCodeDistance(e.qubit, requiredLogicalQubitErrorRate)
	maxCodeDistance := e.ftp.MaxCodeDistance()
	if minCodeDistance > maxCodeDistance {
		return nil, newInvalidInput(InvalidCodeDistance, minCodeDistance, maxCodeDistance)
	}

	if e.numMagicStates() == 0 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, minCodeDistance)
		if err != nil {
			return nil, err
		}
		if numCyclesRequired*logicalQubit.LogicalCycleTime() <= maxDurationNs {
			var zero F
			return newResult(e, logicalQubit, numCyclesRequired, zero, false, 0, requiredLogicalQubitErrorRate, 0, false), nil
		}
		return nil, newInvalidInput(MaxDurationTooSmall)
	}

	var best *Result[Q, F, L]

	maxOddCodeDistance := e.getMaxOddCodeDistance()
	var lastFactories []F
	lastCodeDistance := maxCodeDistance + 1

	for codeDistance := maxOddCodeDistance; codeDistance >= minCodeDistance; codeDistance -= 2 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}

		maxNumCyclesAllowedByDuration := uint64(math.Floor(float64(maxDurationNs) / float64(logicalQubit.LogicalCycleTime())))
		if maxNumCyclesAllowedByDuration < numCyclesRequired {
			if codeDistance < 2 {
				break
			}
			continue
		}

		allowedLogicalQubitErrorRate, err := e.ftp.LogicalFailureProbability(e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}
		maxNumCyclesAllowedByErrorRate := uint64(math.Floor(e.errorBudget.Logical() / (float64(e.layoutOverhead.LogicalQubits()) * allowedLogicalQubitErrorRate)))
		if maxNumCyclesAllowedByErrorRate < numCyclesRequired {
			if codeDistance < 2 {
				break
			}
			continue
		}

		maxNumCyclesAllowed := min64(maxNumCyclesAllowedByDuration, maxNumCyclesAllowedByErrorRate)

		if lastCodeDistance > codeDistance {
			lastFactories = e.factoryBuilder.FindFactories(e.ftp, e.qubit, requiredLogicalMagicStateErrorRate, codeDistance)
			lastCodeDistance = findHighestCodeDistance(lastFactories)
		}

		if picked, ok := tryPickFactoryWithNumCycles(lastFactories, logicalQubit, maxNumCyclesAllowed); ok {
			numFactories := e.numFactories(logicalQubit, picked.factory, maxNumCyclesAllowed)
			numCyclesRequiredForMagicStates := e.computeNumCyclesRequiredForMagicStates(numFactories, picked.factory, logicalQubit)
			numCycles := max64(numCyclesRequiredForMagicStates, numCyclesRequired)

			if e.hasMaxFactories && numFactories > e.maxFactories {
				if codeDistance < 2 {
					break
				}
				continue
			}

			result := newResult(e, logicalQubit, numCycles, picked.factory, true, numFactories,
				requiredLogicalQubitErrorRate, requiredLogicalMagicStateErrorRate, true)

			if best == nil || result.PhysicalQubits() < best.PhysicalQubits() {
				best = result
			}
		}

		if codeDistance < 2 {
			break
		}
	}

	if best == nil {
		return nil, newInvalidInput(MaxDurationTooSmall)
	}
	return best, nil
}

func (e *Estimation[Q, F, L]) estimateWithMaxNumQubits(maxNumQubits uint64) (*Result[Q, F, L], error) {
	minNumCyclesRequired, err := e.computeNumCycles()
	if err != nil {
		return nil, err
	}

	requiredLogicalMagicStateErrorRate := e.requiredLogicalMagicStateErrorRate()
	requiredLogicalQubitErrorRate := e.requiredLogicalQubitErrorRate(minNumCyclesRequired)

	minCodeDistance := e.ftp.ComputeCodeDistance(e.qubit, requiredLogicalQubitErrorRate)
	maxCodeDistance := e.ftp.MaxCodeDistance()
	if minCodeDistance > maxCodeDistance {
		return nil, newInvalidInput(InvalidCodeDistance, minCodeDistance, maxCodeDistance)
	}

	if e.numMagicStates() == 0 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, minCodeDistance)
		if err != nil {
			return nil, err
		}
		if e.layoutOverhead.LogicalQubits()*logicalQubit.PhysicalQubits() <= maxNumQubits {
			var zero F
			return newResult(e, logicalQubit, minNumCyclesRequired, zero, false, 0, requiredLogicalQubitErrorRate, 0, false), nil
		}
		return nil, newInvalidInput(MaxPhysicalQubitsTooSmall)
	}

	var best *Result[Q, F, L]

	maxOddCodeDistance := e.getMaxOddCodeDistance()
	var lastFactories []F
	lastCodeDistance := maxCodeDistance + 1

	for codeDistance := maxOddCodeDistance; codeDistance >= minCodeDistance; codeDistance -= 2 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}

		physicalQubitsForAlgorithm := e.layoutOverhead.LogicalQubits() * logicalQubit.PhysicalQubits()
		if maxNumQubits <= physicalQubitsForAlgorithm {
			if codeDistance < 2 {
				break
			}
			continue
		}
		physicalQubitsAllowedForMagicStates := maxNumQubits - physicalQubitsForAlgorithm

		minAllowedLogicalQubitErrorRate, err := e.ftp.LogicalFailureProbability(e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}
		maxNumCyclesAllowedByErrorRate := uint64(math.Floor(e.errorBudget.Logical() / (float64(e.layoutOverhead.LogicalQubits()) * minAllowedLogicalQubitErrorRate)))
		if maxNumCyclesAllowedByErrorRate < minNumCyclesRequired {
			if codeDistance < 2 {
				break
			}
			continue
		}

		if lastCodeDistance > codeDistance {
			lastFactories = e.factoryBuilder.FindFactories(e.ftp, e.qubit, requiredLogicalMagicStateErrorRate, codeDistance)
			lastCodeDistance = findHighestCodeDistance(lastFactories)
		}

		if factory, ok := tryPickFactoryBelowOrEqualNumQubits(lastFactories, physicalQubitsAllowedForMagicStates); ok {
			numFactories := physicalQubitsAllowedForMagicStates / factory.PhysicalQubits()
			if numFactories == 0 {
				if codeDistance < 2 {
					break
				}
				continue
			}

			numCyclesRequiredForMagicStates := e.computeNumCyclesRequiredForMagicStates(numFactories, factory, logicalQubit)
			numCycles := max64(numCyclesRequiredForMagicStates, minNumCyclesRequired)

			if numCycles > maxNumCyclesAllowedByErrorRate {
				if codeDistance < 2 {
					break
				}
				continue
			}
			if e.hasMaxFactories && numFactories > e.maxFactories {
				if codeDistance < 2 {
					break
				}
				continue
			}

			result := newResult(e, logicalQubit, numCycles, factory, true, numFactories,
				requiredLogicalQubitErrorRate, requiredLogicalMagicStateErrorRate, true)

			if best == nil || result.Runtime() < best.Runtime() {
				best = result
			}
		}

		if codeDistance < 2 {
			break
		}
	}

	if best == nil {
		return nil, newInvalidInput(MaxPhysicalQubitsTooSmall)
	}
	return best, nil
}

// BuildFrontier sweeps every usable code distance and, for each, every
// factory-count step that still shortens the magic-state-bound runtime,
// collecting the non-dominated (runtime, physical qubits) trade-offs.
func (e *Estimation[Q, F, L]) BuildFrontier() ([]*Result[Q, F, L], error) {
	numCyclesRequiredByLayoutOverhead, err := e.computeNumCycles()
	if err != nil {
		return nil, err
	}

	requiredLogicalMagicStateErrorRate := e.requiredLogicalMagicStateErrorRate()
	requiredLogicalQubitErrorRate := e.requiredLogicalQubitErrorRate(numCyclesRequiredByLayoutOverhead)

	minCodeDistance := e.ftp.ComputeCodeDistance(e.qubit, requiredLogicalQubitErrorRate)
	maxCodeDistance := e.ftp.MaxCodeDistance()
	if minCodeDistance > maxCodeDistance {
		return nil, newInvalidInput(InvalidCodeDistance, minCodeDistance, maxCodeDistance)
	}

	if e.numMagicStates() == 0 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, minCodeDistance)
		if err != nil {
			return nil, err
		}
		var zero F
		result := newResult(e, logicalQubit, numCyclesRequiredByLayoutOverhead, zero, false, 0, requiredLogicalQubitErrorRate, 0, false)
		return []*Result[Q, F, L]{result}, nil
	}

	population := optimization.NewPopulation[*Result[Q, F, L]]()

	maxOddCodeDistance := e.getMaxOddCodeDistance()
	var lastFactories []F
	lastCodeDistance := maxCodeDistance + 1

	for codeDistance := maxOddCodeDistance; codeDistance >= minCodeDistance; codeDistance -= 2 {
		logicalQubit, err := modeling.NewLogicalQubit(e.ftp, e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}

		allowedLogicalQubitErrorRate, err := e.ftp.LogicalFailureProbability(e.qubit, codeDistance)
		if err != nil {
			return nil, err
		}
		maxNumCyclesAllowedByErrorRate := uint64(math.Floor(e.errorBudget.Logical() / (float64(e.layoutOverhead.LogicalQubits()) * allowedLogicalQubitErrorRate)))
		if maxNumCyclesAllowedByErrorRate < numCyclesRequiredByLayoutOverhead {
			if codeDistance < 2 {
				break
			}
			continue
		}

		if lastCodeDistance > codeDistance {
			lastFactories = e.factoryBuilder.FindFactories(e.ftp, e.qubit, requiredLogicalMagicStateErrorRate, codeDistance)
			lastCodeDistance = findHighestCodeDistance(lastFactories)
		}

		if picked, ok := tryPickFactoryWithNumCycles(lastFactories, logicalQubit, maxNumCyclesAllowedByErrorRate); ok {
			minNumFactories := e.numFactories(logicalQubit, picked.factory, maxNumCyclesAllowedByErrorRate)
			numFactories := minNumFactories

			for {
				numCyclesRequiredForMagicStates := e.computeNumCyclesRequiredForMagicStates(numFactories, picked.factory, logicalQubit)
				numCycles := max64(numCyclesRequiredForMagicStates, numCyclesRequiredByLayoutOverhead)

				lq, err := modeling.NewLogicalQubit(e.ftp, e.qubit, codeDistance)
				if err != nil {
					return nil, err
				}
				result := newResult(e, lq, numCycles, picked.factory, true, numFactories,
					requiredLogicalQubitErrorRate, requiredLogicalMagicStateErrorRate, true)

				numFactoryRuns := result.NumFactoryRuns()
				population.Push(optimization.Point2D[*Result[Q, F, L]]{
					X:    float64(result.Runtime()),
					Y:    float64(result.PhysicalQubits()),
					Item: result,
				})

				if numCyclesRequiredForMagicStates <= numCyclesRequiredByLayoutOverhead || numFactoryRuns <= 1 {
					break
				}
				numFactories++
			}
		}

		if codeDistance < 2 {
			break
		}
	}

	population.FilterOutDominated()
	results := population.Extract()

	sort.Slice(results, func(i, j int) bool {
		return results[i].PhysicalQubits() < results[j].PhysicalQubits()
	})

	return results, nil
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
