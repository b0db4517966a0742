package longestpath

import (
	"sort"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/graphbuild"
)

// runner holds the mutable state for a single relaxation run.
type runner struct {
	graph *graphbuild.Graph
	opts  Options
	dist  map[core.Vector]int64
	prev  map[core.Vector]core.Parent
}

// Solve runs iterated relaxation over g's layers in topological order.
// dim is the coordinate dimension, needed to construct the origin key
// the same way graphbuild did.
func Solve(g *graphbuild.Graph, dim int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	total := 0
	for _, layer := range g.Layers {
		total += len(layer)
	}

	r := &runner{
		graph: g,
		opts:  o,
		dist:  make(map[core.Vector]int64, total),
		prev:  make(map[core.Vector]core.Parent, total),
	}

	origin := core.ZeroVector(dim)
	r.dist[origin] = 0
	for _, layer := range g.Layers {
		for _, v := range layer {
			if _, ok := r.dist[v]; !ok {
				r.dist[v] = negInf
			}
		}
	}

	sweeps, err := r.run()
	if err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Parent: r.prev, Sweeps: sweeps}, nil
}

// run performs one topological-order pass over the layers, relaxing
// every edge exactly once; because graphbuild only emits forward edges
// (layer k -> layer k+1), this single pass already computes the optimal
// distance for every node, so a confirming second pass never finds an
// update. Only passes that changed a distance are counted, so the sweep
// count reported is 1 for every graph with at least one edge. The
// MaxSweeps cap is honored defensively in case a future graph is not
// strictly layered.
func (r *runner) run() (int, error) {
	sweeps := 0
	for pass := 1; pass <= r.opts.MaxSweeps; pass++ {
		select {
		case <-r.opts.Ctx.Done():
			return sweeps, r.opts.Ctx.Err()
		default:
		}

		updated, err := r.relaxOnce()
		if err != nil {
			return sweeps, err
		}
		if !updated {
			return sweeps, nil
		}
		sweeps = pass
	}

	return sweeps, nil
}

func (r *runner) relaxOnce() (bool, error) {
	updated := false
	for _, layer := range r.graph.Layers {
		select {
		case <-r.opts.Ctx.Done():
			return updated, r.opts.Ctx.Err()
		default:
		}

		for _, u := range layer {
			ud := r.dist[u]
			if ud <= negInf {
				continue
			}
			for _, e := range r.graph.Adjacency[u] {
				cand := ud + int64(e.Weight)
				if cand < -r.opts.OverflowCap || cand > r.opts.OverflowCap {
					return updated, ErrOverflow
				}
				if cand > r.dist[e.To] {
					r.dist[e.To] = cand
					r.prev[e.To] = core.Parent{From: u, Col: e.Col}
					updated = true
				}
			}
		}
	}

	return updated, nil
}

// SelectSink picks the target-set node with the largest distance,
// breaking ties by lexicographically smallest coordinate — which, since
// no two enumerated nodes share a coordinate, already resolves any tie
// deterministically. The predecessor each node records is the first one,
// in relaxOnce's fixed layer/coordinate-then-column processing order, to
// reach its best distance; column sequences of equally good paths are
// not compared, but the fixed order keeps the reconstructed solution
// deterministic.
//
// depthCapReached should be graphbuild.Graph.Stats.DepthCapReached from
// the build that produced target: when no target-set node has a finite
// distance, that means either the instance is genuinely infeasible, or
// (if the depth cap cut enumeration short) the radius was simply too
// small to reach it. This distinguishes ErrInfeasible from
// graphbuild.ErrRadiusExceeded.
func SelectSink(target []core.Vector, res *Result, depthCapReached bool) (core.Vector, error) {
	best := make([]core.Vector, 0, len(target))
	for _, v := range target {
		if d, ok := res.Dist[v]; ok && d > negInf {
			best = append(best, v)
		}
	}
	if len(best) == 0 {
		if depthCapReached {
			return core.Vector{}, graphbuild.ErrRadiusExceeded
		}

		return core.Vector{}, ErrInfeasible
	}

	sort.Slice(best, func(i, j int) bool {
		di, dj := res.Dist[best[i]], res.Dist[best[j]]
		if di != dj {
			return di > dj
		}

		return lessVector(best[i], best[j])
	})

	return best[0], nil
}

func lessVector(a, b core.Vector) bool {
	for i := 0; i < a.Dim; i++ {
		if a.At(i) != b.At(i) {
			return a.At(i) < b.At(i)
		}
	}

	return false
}
