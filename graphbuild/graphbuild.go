package graphbuild

import (
	"sort"
	"sync"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/proximity"
)

// candidate is one (from, column) -> to edge produced during layer
// enumeration, before back-edges are filtered out.
type candidate struct {
	from core.Vector
	to   core.Vector
	col  int
}

// Build enumerates the layered DAG reachable from the origin within
// bounds.RStart, one layer per constraint-matrix column added to the
// previous layer's nodes. It reports ErrUnbounded immediately if a zero
// column carries positive objective weight.
// Reaching bounds.DepthCap is ordinary termination, like a layer coming
// up empty: enumeration simply stops and the graph built so far is
// returned, with Stats.DepthCapReached set so a caller can tell the two
// cases apart.
func Build(inst *core.Instance, bounds proximity.Bounds, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := inst.A.Cols()
	freeCols := make([]bool, n)
	for j := 0; j < n; j++ {
		if inst.A.IsZeroColumn(j) {
			freeCols[j] = true
			if inst.C[j] > 0 {
				return nil, ErrUnbounded
			}
		}
	}

	m := inst.A.Rows()
	origin := core.ZeroVector(m)
	assigned := map[core.Vector]int{origin: 0}
	adjacency := make(map[core.Vector][]Edge)
	layers := [][]core.Vector{{origin}}

	target := core.ZeroVector(m)
	for i := 0; i < m; i++ {
		target.Data[i] = inst.B[i]
	}

	cols := make([]core.Vector, n)
	weights := make([]int32, n)
	for j := 0; j < n; j++ {
		if freeCols[j] {
			continue
		}
		col, err := inst.A.Column(j)
		if err != nil {
			return nil, err
		}
		cols[j] = col
		weights[j] = inst.C[j]
	}

	stats := Stats{Vertices: 1, MaxLayerSize: 1}
	depth := 0

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		current := layers[depth]
		if len(current) == 0 {
			break
		}
		if depth >= int(bounds.DepthCap) {
			stats.DepthCapReached = true
			break
		}

		candidates := enumerateCandidates(current, cols, freeCols, bounds.RStart, target, o.MaxParallelism)

		// Emit edges, discarding back-edges to nodes already assigned a
		// layer <= depth; every other candidate — new or a repeat within
		// this same round — keeps its edge.
		var freshSet []core.Vector
		freshSeen := make(map[core.Vector]bool)
		for _, c := range candidates {
			if lay, ok := assigned[c.to]; ok && lay <= depth {
				continue
			}
			adjacency[c.from] = append(adjacency[c.from], Edge{From: c.from, To: c.to, Weight: weights[c.col], Col: c.col})
			if !freshSeen[c.to] {
				freshSeen[c.to] = true
				if _, already := assigned[c.to]; !already {
					freshSet = append(freshSet, c.to)
				}
			}
		}

		if len(freshSet) == 0 {
			break
		}
		sort.Slice(freshSet, func(i, j int) bool { return lessVector(freshSet[i], freshSet[j]) })
		for _, v := range freshSet {
			assigned[v] = depth + 1
		}
		layers = append(layers, freshSet)

		stats.Vertices += int64(len(freshSet))
		if int64(len(freshSet)) > stats.MaxLayerSize {
			stats.MaxLayerSize = int64(len(freshSet))
		}
		depth++
	}

	for _, edges := range adjacency {
		stats.Edges += int64(len(edges))
	}
	stats.Depth = int64(depth)

	return &Graph{Layers: layers, Adjacency: adjacency, Stats: stats}, nil
}

// enumerateCandidates computes every (u, j) -> u+A[:,j] candidate for the
// nodes in layer, filtered by the radius bound — except the exact target
// vector b, which is always kept even if its arrival norm would
// otherwise be pruned, so the target remains reachable regardless of how
// tightly the radius filters everything else. Work is partitioned across
// up to parallelism workers by
// node index; results are merged after every worker finishes, so the
// caller sees a result independent of scheduling.
func enumerateCandidates(layer []core.Vector, cols []core.Vector, freeCols []bool, rStart int64, target core.Vector, parallelism int) []candidate {
	if parallelism <= 1 || len(layer) < parallelism {
		return enumerateRange(layer, 0, len(layer), cols, freeCols, rStart, target)
	}

	chunks := partition(len(layer), parallelism)
	results := make([][]candidate, len(chunks))
	var wg sync.WaitGroup
	for i, ch := range chunks {
		wg.Add(1)
		go func(i int, lo, hi int) {
			defer wg.Done()
			results[i] = enumerateRange(layer, lo, hi, cols, freeCols, rStart, target)
		}(i, ch[0], ch[1])
	}
	wg.Wait()

	var all []candidate
	for _, r := range results {
		all = append(all, r...)
	}

	return all
}

func enumerateRange(layer []core.Vector, lo, hi int, cols []core.Vector, freeCols []bool, rStart int64, target core.Vector) []candidate {
	var out []candidate
	for i := lo; i < hi; i++ {
		u := layer[i]
		for j, col := range cols {
			if freeCols[j] {
				continue
			}
			w := u.Add(col)
			if w != target && int64(w.InfNorm()) > rStart {
				continue
			}
			out = append(out, candidate{from: u, to: w, col: j})
		}
	}

	return out
}

// partition splits [0, total) into up to parts contiguous [lo, hi) ranges.
func partition(total, parts int) [][2]int {
	if parts > total {
		parts = total
	}
	if parts < 1 {
		parts = 1
	}
	base := total / parts
	rem := total % parts
	out := make([][2]int, 0, parts)
	lo := 0
	for i := 0; i < parts; i++ {
		sz := base
		if i < rem {
			sz++
		}
		out = append(out, [2]int{lo, lo + sz})
		lo += sz
	}

	return out
}

// TargetSet scans every node the builder enumerated — across all
// layers, not just the last — and returns those satisfying the row-wise
// relation against b: v_i ≤ b_i for a ≤ row, v_i = b_i for an = row,
// v_i ≥ b_i for a ≥ row. b itself always satisfies its own row relation,
// so if enumeration reached it — which Build guarantees by never
// radius-pruning the exact target vector — it is already a member here
// without any special-casing.
func TargetSet(inst *core.Instance, g *Graph) []core.Vector {
	var target []core.Vector
	for _, layer := range g.Layers {
		for _, v := range layer {
			if satisfiesTarget(inst, v) {
				target = append(target, v)
			}
		}
	}

	return target
}

func satisfiesTarget(inst *core.Instance, v core.Vector) bool {
	for i := 0; i < inst.A.Rows(); i++ {
		if !inst.Rel[i].Holds(v.At(i), inst.B[i]) {
			return false
		}
	}

	return true
}

// lessVector orders vectors lexicographically by coordinate, giving the
// canonical per-layer node ordering required for deterministic tie-breaks
// downstream in longest-path relaxation.
func lessVector(a, b core.Vector) bool {
	for i := 0; i < a.Dim; i++ {
		if a.At(i) != b.At(i) {
			return a.At(i) < b.At(i)
		}
	}

	return false
}
