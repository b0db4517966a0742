package solver

import (
	"time"

	"github.com/mstrand-dev/steinitzgraph/canonical"
	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/graphbuild"
	"github.com/mstrand-dev/steinitzgraph/ilptext"
	"github.com/mstrand-dev/steinitzgraph/longestpath"
	"github.com/mstrand-dev/steinitzgraph/proximity"
	"github.com/mstrand-dev/steinitzgraph/reconstruct"
)

// Solve runs canonicalisation, proximity-bound computation, graph
// construction, longest-path relaxation, and reconstruction over parsed,
// returning either a Result or a SolveError classifying which stage and
// how it failed.
func Solve(parsed ilptext.ParsedILP, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	totalStart := time.Now()

	inst, err := canonical.Canonicalise(parsed)
	if err != nil {
		return Result{}, wrap(err)
	}

	buildStart := time.Now()
	bounds := proximity.Compute(inst, o.radiusMultiplier)
	g, err := graphbuild.Build(inst, bounds,
		graphbuild.WithContext(o.ctx),
		graphbuild.WithMaxParallelism(o.maxParallelism),
	)
	if err != nil {
		return Result{}, wrap(err)
	}
	buildNS := time.Since(buildStart).Nanoseconds()

	solveStart := time.Now()
	res, err := longestpath.Solve(g, inst.A.Rows(),
		longestpath.WithContext(o.ctx),
		longestpath.WithMaxSweeps(o.maxSweeps),
		longestpath.WithOverflowCap(o.overflowCap),
	)
	if err != nil {
		return Result{}, wrap(err)
	}

	target := graphbuild.TargetSet(inst, g)
	sink, err := longestpath.SelectSink(target, res, g.Stats.DepthCapReached)
	if err != nil {
		return Result{}, wrap(err)
	}

	x, err := reconstruct.Walk(inst, res, sink)
	if err != nil {
		return Result{}, wrap(err)
	}
	solveNS := time.Since(solveStart).Nanoseconds()

	objective := res.Dist[sink]
	if inst.Sense == core.Minimize {
		objective = -objective
	}

	variables := make([]NamedValue, len(inst.VarNames))
	for i, name := range inst.VarNames {
		variables[i] = NamedValue{Name: name, Value: x[i]}
	}

	return Result{
		Variables: variables,
		Objective: objective,
		Stats: Stats{
			Vertices:     g.Stats.Vertices,
			Edges:        g.Stats.Edges,
			Depth:        g.Stats.Depth,
			MaxLayerSize: g.Stats.MaxLayerSize,
			Sweeps:       int64(res.Sweeps),
			BuildNS:      buildNS,
			SolveNS:      solveNS,
			TotalNS:      time.Since(totalStart).Nanoseconds(),
			REnd:         bounds.REnd,
		},
	}, nil
}
