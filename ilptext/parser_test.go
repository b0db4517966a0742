package ilptext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/ilptext"
)

func TestParse_Basic(t *testing.T) {
	src := `maximize
x1 + 2x2 + 3*x3
x1 <= 5
2 x2 <= 6
x3 <= 5
`
	parsed, err := ilptext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, core.Maximize, parsed.Sense)
	require.Len(t, parsed.Objective, 3)
	assert.Equal(t, ilptext.Term{Coeff: 1, Var: "x1"}, parsed.Objective[0])
	assert.Equal(t, ilptext.Term{Coeff: 2, Var: "x2"}, parsed.Objective[1])
	assert.Equal(t, ilptext.Term{Coeff: 3, Var: "x3"}, parsed.Objective[2])
	require.Len(t, parsed.Constraints, 3)
	assert.Equal(t, core.LE, parsed.Constraints[0].Rel)
}

func TestParse_NegativeAndImplicitCoefficients(t *testing.T) {
	src := `minimize
-x1 - 3*x2
subject to
x1 + x2 = 4
`
	parsed, err := ilptext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, core.Minimize, parsed.Sense)
	assert.Equal(t, []ilptext.Term{{Coeff: -1, Var: "x1"}, {Coeff: -3, Var: "x2"}}, parsed.Objective)
	assert.Equal(t, core.EQ, parsed.Constraints[0].Rel)
}

func TestParse_NotesTrailerIgnored(t *testing.T) {
	src := `maximize
x1
x1 <= 1
notes:
this is not: valid <= ilp syntax +++ at all
`
	parsed, err := ilptext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, parsed.Constraints, 1)
}

func TestParse_UnknownSense(t *testing.T) {
	_, err := ilptext.Parse(strings.NewReader("optimize\nx1\nx1<=1\n"))
	assert.ErrorIs(t, err, ilptext.ErrUnknownSense)
}

func TestParse_NoConstraints(t *testing.T) {
	_, err := ilptext.Parse(strings.NewReader("maximize\nx1\n"))
	assert.ErrorIs(t, err, ilptext.ErrNoConstraints)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := ilptext.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ilptext.ErrEmptyFile)
}

func TestParse_BadToken(t *testing.T) {
	_, err := ilptext.Parse(strings.NewReader("maximize\nx1 # bad\nx1<=1\n"))
	assert.ErrorIs(t, err, ilptext.ErrBadToken)
}

func TestParse_BareConstant(t *testing.T) {
	parsed, err := ilptext.Parse(strings.NewReader("maximize\nx1 + 5\nx1 <= 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []ilptext.Term{{Coeff: 1, Var: "x1"}, {Coeff: 5, Var: ""}}, parsed.Objective)
}
