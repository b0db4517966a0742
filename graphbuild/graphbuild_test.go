package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/graphbuild"
	"github.com/mstrand-dev/steinitzgraph/proximity"
)

// The classic diagonal knapsack-like instance from a small proximity
// example: two independent unit columns bounded by x1<=5, x2<=3.
func diagInstance(t *testing.T) *core.Instance {
	t.Helper()
	a, err := core.NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(1, 1, 1))
	inst, err := core.NewInstance(a, []int32{5, 3}, []int32{1, 2}, []core.Relation{core.LE, core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)

	return inst
}

func TestBuild_ReachesTarget(t *testing.T) {
	inst := diagInstance(t)
	bounds := proximity.Compute(inst, 1.0)
	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)
	assert.Positive(t, g.Stats.Vertices)
	assert.Positive(t, g.Stats.Edges)

	target := graphbuild.TargetSet(inst, g)
	assert.NotEmpty(t, target)

	var foundB bool
	for _, v := range target {
		if v.At(0) == 5 && v.At(1) == 3 {
			foundB = true
		}
	}
	assert.True(t, foundB, "b itself must be a member of the target set once reached")
}

func TestBuild_IsAcyclic(t *testing.T) {
	inst := diagInstance(t)
	bounds := proximity.Compute(inst, 1.0)
	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)
	assert.NoError(t, assertAcyclic(g))
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	inst := diagInstance(t)
	bounds := proximity.Compute(inst, 1.0)

	seq, err := graphbuild.Build(inst, bounds, graphbuild.WithMaxParallelism(1))
	require.NoError(t, err)
	par, err := graphbuild.Build(inst, bounds, graphbuild.WithMaxParallelism(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Stats, par.Stats)
	assert.Equal(t, len(seq.Layers), len(par.Layers))
	for i := range seq.Layers {
		assert.Equal(t, seq.Layers[i], par.Layers[i])
	}
}

func TestBuild_ZeroColumnUnbounded(t *testing.T) {
	a, err := core.NewMatrix(1, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	// column 1 is all zero
	inst, err := core.NewInstance(a, []int32{5}, []int32{1, 3}, []core.Relation{core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)
	bounds := proximity.Compute(inst, 1.0)

	_, err = graphbuild.Build(inst, bounds)
	assert.ErrorIs(t, err, graphbuild.ErrUnbounded)
}

func TestBuild_ZeroColumnNonPositiveObjectiveIsHarmless(t *testing.T) {
	a, err := core.NewMatrix(1, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	inst, err := core.NewInstance(a, []int32{5}, []int32{1, 0}, []core.Relation{core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)
	bounds := proximity.Compute(inst, 1.0)

	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)
	assert.Positive(t, g.Stats.Vertices)
}

func TestBuild_DepthCapStopsWithoutError(t *testing.T) {
	// R_start normally exceeds DepthCap, so the frontier keeps producing
	// fresh layers well past the depth where b is already reachable;
	// reaching the cap must be silent termination, not an error, and b
	// must still be found among the layers built before the cap.
	inst := diagInstance(t)
	bounds := proximity.Compute(inst, 1.0)
	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)
	assert.True(t, g.Stats.DepthCapReached)

	target := graphbuild.TargetSet(inst, g)
	var foundB bool
	for _, v := range target {
		if v.At(0) == 5 && v.At(1) == 3 {
			foundB = true
		}
	}
	assert.True(t, foundB, "b must already be settled before the depth cap stops enumeration")
}

func TestBuild_TargetKeptDespiteTighterRadius(t *testing.T) {
	// A single column jumps straight to b in one hop from the origin; a
	// hand-built radius tighter than that hop would normally prune the
	// candidate, but the exact target vector must be kept regardless. The
	// origin also satisfies 0 <= 5, so the target set is {0, 5} in layer
	// order.
	a, err := core.NewMatrix(1, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 5))
	inst, err := core.NewInstance(a, []int32{5}, []int32{1}, []core.Relation{core.LE}, []string{"x1"}, core.Maximize)
	require.NoError(t, err)

	bounds := proximity.Bounds{Delta: 5, BInf: 5, RStart: 3, REnd: 3, DepthCap: 10}
	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)

	target := graphbuild.TargetSet(inst, g)
	require.Len(t, target, 2)
	assert.Equal(t, int32(5), target[1].At(0))
}

func TestBuild_NegativeColumnPermitted(t *testing.T) {
	a, err := core.NewMatrix(1, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(0, 1, -1))
	inst, err := core.NewInstance(a, []int32{2}, []int32{1, 1}, []core.Relation{core.LE}, []string{"x1", "x2"}, core.Maximize)
	require.NoError(t, err)
	bounds := proximity.Compute(inst, 1.0)

	g, err := graphbuild.Build(inst, bounds)
	require.NoError(t, err)
	assert.Positive(t, g.Stats.Vertices)
}

// assertAcyclic walks the adjacency list with the classic white/gray/black
// scheme, failing if a back-edge to a Gray node is ever found.
func assertAcyclic(g *graphbuild.Graph) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make(map[core.Vector]int)

	var visit func(v core.Vector) error
	visit = func(v core.Vector) error {
		if state[v] == gray {
			return assertCycleErr
		}
		if state[v] == black {
			return nil
		}
		state[v] = gray
		for _, e := range g.Adjacency[v] {
			if err := visit(e.To); err != nil {
				return err
			}
		}
		state[v] = black

		return nil
	}

	for _, layer := range g.Layers {
		for _, v := range layer {
			if state[v] == white {
				if err := visit(v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

var assertCycleErr = errAcyclicViolation{}

type errAcyclicViolation struct{}

func (errAcyclicViolation) Error() string { return "graphbuild: cycle detected in constructed DAG" }
