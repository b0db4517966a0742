package ilptext

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mstrand-dev/steinitzgraph/core"
)

// Parse reads a ParsedILP from r. See the package doc comment for the
// grammar. Blank lines are skipped everywhere except inside the notes
// trailer, where nothing is interpreted at all.
func Parse(r io.Reader) (ParsedILP, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, true
			}
		}

		return "", false
	}

	senseLine, ok := nextLine()
	if !ok {
		return ParsedILP{}, ErrEmptyFile
	}

	var sense core.Sense
	switch strings.ToLower(senseLine) {
	case "maximize", "max":
		sense = core.Maximize
	case "minimize", "min":
		sense = core.Minimize
	default:
		return ParsedILP{}, syntaxErr(lineNo, ErrUnknownSense)
	}

	objLine, ok := nextLine()
	if !ok {
		return ParsedILP{}, syntaxErr(lineNo, ErrMissingObjective)
	}
	objective, err := parseSum(objLine)
	if err != nil {
		return ParsedILP{}, syntaxErr(lineNo, err)
	}

	var constraints []Constraint
	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		if strings.HasPrefix(strings.ToLower(line), "subject") {
			// "subject to" header; only the leading keyword is
			// recognized, and the rest of the line is skipped entirely.
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "notes:") {
			// Everything from here to EOF is intentionally uninterpreted.
			break
		}

		lhsText, rhsText, relTok, found := splitConstraint(line)
		if !found {
			return ParsedILP{}, syntaxErr(lineNo, ErrBadRelation)
		}
		lhs, err := parseSum(lhsText)
		if err != nil {
			return ParsedILP{}, syntaxErr(lineNo, err)
		}
		rhs, err := parseSum(rhsText)
		if err != nil {
			return ParsedILP{}, syntaxErr(lineNo, err)
		}

		var rel core.Relation
		switch relTok {
		case relLE:
			rel = core.LE
		case relGE:
			rel = core.GE
		default:
			rel = core.EQ
		}

		constraints = append(constraints, Constraint{LHS: lhs, Rel: rel, RHS: rhs})
	}

	if err := scanner.Err(); err != nil {
		return ParsedILP{}, err
	}
	if len(constraints) == 0 {
		return ParsedILP{}, ErrNoConstraints
	}

	return ParsedILP{Sense: sense, Objective: objective, Constraints: constraints}, nil
}

// ParseFile is a convenience wrapper around Parse for the CLI's single
// positional .ilp argument.
func ParseFile(path string) (ParsedILP, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParsedILP{}, err
	}
	defer f.Close()

	return Parse(f)
}
