package ilptext

import (
	"errors"
	"fmt"
)

// Sentinel errors for ilptext parsing. All except ErrEmptyFile and
// ErrNoConstraints, which Parse returns bare, are wrapped into ErrSyntax
// so callers get line context; errors.Is still matches the sentinel
// through the wrap.
var (
	// ErrEmptyFile indicates the input has no sense line at all.
	ErrEmptyFile = errors.New("ilptext: empty input")

	// ErrUnknownSense indicates the first line is none of "maximize",
	// "minimize", "max", or "min".
	ErrUnknownSense = errors.New("ilptext: expected \"maximize\" or \"minimize\"")

	// ErrMissingObjective indicates the file ends before an objective sum
	// is read.
	ErrMissingObjective = errors.New("ilptext: missing objective")

	// ErrNoConstraints indicates zero constraint lines were found; the
	// canonicaliser also rejects this (canonical.ErrNoConstraints), but
	// ilptext catches the more specific "the input had no constraint
	// section at all" case at parse time.
	ErrNoConstraints = errors.New("ilptext: no constraints found")

	// ErrBadToken indicates a character sequence that matches no grammar
	// production; an unknown token is rejected here, upstream of core.
	ErrBadToken = errors.New("ilptext: unrecognized token")

	// ErrBadRelation indicates a constraint line with no "<=", ">=", or
	// "=" found between its two sums.
	ErrBadRelation = errors.New("ilptext: missing relation operator")
)

// ErrSyntax wraps a sentinel with the 1-based source line it occurred on,
// giving CLI users actionable feedback without requiring core packages
// to know anything about line numbers.
type ErrSyntax struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("ilptext: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is/errors.As.
func (e *ErrSyntax) Unwrap() error { return e.Err }

func syntaxErr(line int, err error) error {
	return &ErrSyntax{Line: line, Err: err}
}
