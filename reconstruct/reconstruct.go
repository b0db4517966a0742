package reconstruct

import (
	"errors"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/longestpath"
)

// ErrInfeasible indicates the sink's coordinates fail the per-row
// relation against b — unreachable if target-set selection is correct;
// this is a safety belt against a builder bug rather than an expected
// outcome.
var ErrInfeasible = errors.New("reconstruct: sink fails post-check against b")

// Walk verifies sink row-by-row against inst.Rel and inst.B, then follows
// res.Parent from sink back to the origin, incrementing x*[col] once per
// column label encountered, and returns x*.
func Walk(inst *core.Instance, res *longestpath.Result, sink core.Vector) ([]int64, error) {
	for i := 0; i < inst.A.Rows(); i++ {
		if !inst.Rel[i].Holds(sink.At(i), inst.B[i]) {
			return nil, ErrInfeasible
		}
	}

	x := make([]int64, inst.A.Cols())
	cur := sink
	for {
		p, ok := res.Parent[cur]
		if !ok {
			break
		}
		x[p.Col]++
		cur = p.From
	}

	return x, nil
}
