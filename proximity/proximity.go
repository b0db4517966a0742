// Package proximity computes the coordinate-norm radius that bounds the
// graph builder's node enumeration, following the proximity bounds of
// Eisenbrand and Weismantel's Steinitz-lemma technique for integer
// programming. It performs a single pass over the canonicalised instance
// and returns pure diagnostics — nothing here allocates a node or an
// edge.
package proximity

import "github.com/mstrand-dev/steinitzgraph/core"

// Bounds holds the proximity radius and its inputs, reported verbatim in
// solve stats for diagnostics.
type Bounds struct {
	// Delta is max_{i,j} |A_{i,j}|.
	Delta int32

	// BInf is ‖b‖∞ = max_i |b_i|.
	BInf int32

	// RStart is the integer radius the graph builder prunes node
	// enumeration against: m·(2·m·Δ + ‖b‖∞).
	RStart int64

	// REnd is a fractional refinement of the same envelope, reported for
	// diagnostics only; the builder never prunes against it.
	REnd float64

	// DepthCap is the maximum layer depth the builder will enumerate:
	// n·max|b_i|, and at least n. Reaching it ends enumeration normally;
	// RadiusExceeded is reported later only if no target-set node was
	// reached.
	DepthCap int64
}

// Compute derives Bounds from a canonicalised instance. The radius
// formulas are the ones published for the proximity-via-graph technique;
// RadiusMultiplier (solver.Option) scales RStart up for instances where
// the published bound proves too tight; values <= 1.0 leave it unchanged.
func Compute(inst *core.Instance, radiusMultiplier float64) Bounds {
	m := int64(inst.A.Rows())
	n := int64(inst.A.Cols())

	delta := inst.A.MaxAbs()
	bInf := maxAbsInt32(inst.B)

	rStart := m * (2*m*int64(delta) + int64(bInf))
	if radiusMultiplier > 1.0 {
		rStart = int64(float64(rStart) * radiusMultiplier)
	}

	rEnd := float64(m) * (float64(2*m)*float64(delta) + float64(bInf))
	// The published end radius only needs to be reported, not enforced,
	// so it is derived as a fraction of the start radius rather than
	// tracked as a second independent bound.
	rEnd *= 0.5

	depthCap := n * int64(bInf)
	if depthCap < n {
		depthCap = n
	}

	return Bounds{
		Delta:    delta,
		BInf:     bInf,
		RStart:   rStart,
		REnd:     rEnd,
		DepthCap: depthCap,
	}
}

func maxAbsInt32(xs []int32) int32 {
	var m int32
	for _, x := range xs {
		a := x
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}

	return m
}
