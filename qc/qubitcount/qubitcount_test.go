package qubitcount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qre/qc/builder"
	"github.com/kegliz/qre/qc/qubitcount"
	"github.com/kegliz/qre/qc/testutil"
)

func TestCountTallysMagicStatesAndRotations(t *testing.T) {
	b := builder.New(builder.Q(2), builder.C(2))
	b.H(0).T(0).T(0).RZ(1).CNOT(0, 1).Measure(0, 0).Measure(1, 1)

	c, err := b.BuildCircuit()
	require.NoError(t, err)

	counts := qubitcount.Count(c)

	assert.Equal(t, uint64(2), counts.Qubits)
	assert.Equal(t, uint64(2), counts.TCount)
	assert.Equal(t, uint64(1), counts.RotationCount)
	assert.Equal(t, uint64(c.Depth()), counts.Depth)
}

func TestCountOnCircuitWithNoMagicStatesOrRotations(t *testing.T) {
	b := builder.New(builder.Q(2), builder.C(2))
	b.H(0).CNOT(0, 1).Measure(0, 0).Measure(1, 1)

	c, err := b.BuildCircuit()
	require.NoError(t, err)

	counts := qubitcount.Count(c)

	assert.Equal(t, uint64(0), counts.TCount)
	assert.Equal(t, uint64(0), counts.RotationCount)
	assert.Equal(t, uint64(0), counts.RotationDepth)
}

func TestCountOnBellStateCircuitHasNoMagicStates(t *testing.T) {
	c := testutil.NewBellStateCircuit(t)

	counts := qubitcount.Count(c)

	assert.Equal(t, uint64(2), counts.Qubits)
	assert.Equal(t, uint64(0), counts.TCount)
	assert.Equal(t, uint64(0), counts.RotationCount)
}

func TestCountOnGroverCircuitHasNoMagicStates(t *testing.T) {
	c := testutil.NewGroverCircuit(t)

	var counts struct {
		qubits uint64
		tCount uint64
	}
	testutil.RequireWithinTimeout(t, testutil.DefaultTestTimeout, func() error {
		result := qubitcount.Count(c)
		counts.qubits, counts.tCount = result.Qubits, result.TCount
		return nil
	})

	assert.Equal(t, uint64(2), counts.qubits)
	assert.Equal(t, uint64(0), counts.tCount)
}
