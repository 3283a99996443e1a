package estimator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qre/qc/estimator"
	"github.com/kegliz/qre/qc/estimator/estimatortest"
	"github.com/kegliz/qre/qc/estimator/modeling"
)

func newFixtureEstimation(t *testing.T, overhead estimatortest.Overhead) *estimator.Estimation[*estimatortest.Qubit, *estimatortest.Factory, estimatortest.Overhead] {
	t.Helper()
	budget, err := modeling.NewErrorBudget(1.0/3, 1.0/3, 1.0/3)
	require.NoError(t, err)

	return estimator.New[*estimatortest.Qubit, *estimatortest.Factory, estimatortest.Overhead](
		estimatortest.NewECP(),
		estimatortest.NewQubit(),
		estimatortest.Builder{},
		overhead,
		budget,
	)
}

func TestEstimateWithoutRestrictionsFindsFeasibleResult(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})

	result, err := est.Estimate()
	require.NoError(t, err)

	assert.Greater(t, result.PhysicalQubits(), uint64(0))
	assert.Greater(t, result.Runtime(), uint64(0))
	factory, hasFactory := result.Factory()
	assert.True(t, hasFactory)
	assert.NotNil(t, factory)
	assert.Equal(t, uint64(1000), result.NumMagicStates())
}

func TestEstimateWithNoMagicStatesSkipsFactorySelection(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 5, TCount: 0, Depth: 100})

	result, err := est.Estimate()
	require.NoError(t, err)

	_, hasFactory := result.Factory()
	assert.False(t, hasFactory)
	assert.Equal(t, uint64(0), result.NumFactories())
	assert.Equal(t, uint64(0), result.PhysicalQubitsForFactories())
}

func TestEstimateWithNoResourcesIsInvalid(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 5, TCount: 0, Depth: 0})

	_, err := est.Estimate()
	require.Error(t, err)

	var invalid *estimator.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, estimator.AlgorithmHasNoResources, invalid.Kind)
}

func TestEstimateWithBothConstraintsIsRejected(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 100, Depth: 100})
	est.SetMaxDuration(1_000_000)
	est.SetMaxPhysicalQubits(1_000_000)

	_, err := est.Estimate()
	require.Error(t, err)

	var invalid *estimator.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, estimator.BothDurationAndPhysicalQubitsProvided, invalid.Kind)
}

func TestEstimateWithMaxDurationTooSmallFails(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})
	est.SetMaxDuration(1)

	_, err := est.Estimate()
	require.Error(t, err)

	var invalid *estimator.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, estimator.MaxDurationTooSmall, invalid.Kind)
}

func TestEstimateWithMaxPhysicalQubitsTooSmallFails(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})
	est.SetMaxPhysicalQubits(1)

	_, err := est.Estimate()
	require.Error(t, err)

	var invalid *estimator.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, estimator.MaxPhysicalQubitsTooSmall, invalid.Kind)
}

func TestEstimateWithMaxDurationReturnsRuntimeWithinBound(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})

	unconstrained, err := est.Estimate()
	require.NoError(t, err)

	constrained := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})
	constrained.SetMaxDuration(unconstrained.Runtime() * 10)

	result, err := constrained.Estimate()
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Runtime(), unconstrained.Runtime()*10)
}

func TestEstimateWithMaxPhysicalQubitsReturnsQubitsWithinBound(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})

	unconstrained, err := est.Estimate()
	require.NoError(t, err)

	constrained := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})
	constrained.SetMaxPhysicalQubits(unconstrained.PhysicalQubits() * 10)

	result, err := constrained.Estimate()
	require.NoError(t, err)
	assert.LessOrEqual(t, result.PhysicalQubits(), unconstrained.PhysicalQubits()*10)
}

func TestEstimateIsIdempotent(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})

	first, err := est.Estimate()
	require.NoError(t, err)
	second, err := est.Estimate()
	require.NoError(t, err)

	assert.Equal(t, first.PhysicalQubits(), second.PhysicalQubits())
	assert.Equal(t, first.Runtime(), second.Runtime())
	assert.Equal(t, first.NumFactories(), second.NumFactories())
}

func TestBuildFrontierReturnsNonDominatedPoints(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})

	frontier, err := est.BuildFrontier()
	require.NoError(t, err)
	require.NotEmpty(t, frontier)

	for i := range frontier {
		for j := range frontier {
			if i == j {
				continue
			}
			dominated := frontier[j].Runtime() <= frontier[i].Runtime() &&
				frontier[j].PhysicalQubits() <= frontier[i].PhysicalQubits() &&
				(frontier[j].Runtime() < frontier[i].Runtime() || frontier[j].PhysicalQubits() < frontier[i].PhysicalQubits())
			assert.False(t, dominated, "point %d dominated by point %d", i, j)
		}
	}
}

func TestBuildFrontierWithNoMagicStatesReturnsSinglePoint(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 5, TCount: 0, Depth: 100})

	frontier, err := est.BuildFrontier()
	require.NoError(t, err)
	assert.Len(t, frontier, 1)
}

func TestLogicalDepthFactorIsAcceptedWithoutValidation(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1000, Depth: 1000})
	est.SetLogicalDepthFactor(0.1)

	_, err := est.Estimate()
	require.NoError(t, err)
}

func TestMaxFactoriesConstrainsFactoryCount(t *testing.T) {
	est := newFixtureEstimation(t, estimatortest.Overhead{Qubits: 10, TCount: 1_000_000, Depth: 10})
	est.SetMaxFactories(2)
	est.SetMaxDuration(1 << 50)

	result, err := est.Estimate()
	require.NoError(t, err)
	assert.LessOrEqual(t, result.NumFactories(), uint64(2))
}
