package proximity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/proximity"
)

func buildInstance(t *testing.T) *core.Instance {
	t.Helper()
	a, err := core.NewMatrix(1, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 3))
	require.NoError(t, a.Set(0, 1, -4))
	inst, err := core.NewInstance(a, []int32{10}, []int32{1, 1}, []core.Relation{core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)

	return inst
}

func TestCompute_Basic(t *testing.T) {
	inst := buildInstance(t)
	b := proximity.Compute(inst, 1.0)
	assert.Equal(t, int32(4), b.Delta)
	assert.Equal(t, int32(10), b.BInf)
	// m=1: RStart = 1*(2*1*4 + 10) = 18
	assert.Equal(t, int64(18), b.RStart)
	assert.Positive(t, b.REnd)
	assert.GreaterOrEqual(t, b.DepthCap, int64(2))
}

func TestCompute_RadiusMultiplierScalesUp(t *testing.T) {
	inst := buildInstance(t)
	base := proximity.Compute(inst, 1.0)
	scaled := proximity.Compute(inst, 2.0)
	assert.Greater(t, scaled.RStart, base.RStart)
}

func TestCompute_MonotoneInM(t *testing.T) {
	small := buildInstance(t)
	smallBounds := proximity.Compute(small, 1.0)

	a, err := core.NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 3))
	require.NoError(t, a.Set(0, 1, -4))
	require.NoError(t, a.Set(1, 0, 1))
	require.NoError(t, a.Set(1, 1, 1))
	big, err := core.NewInstance(a, []int32{10, 5}, []int32{1, 1}, []core.Relation{core.LE, core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)
	bigBounds := proximity.Compute(big, 1.0)

	assert.Greater(t, bigBounds.RStart, smallBounds.RStart)
}
