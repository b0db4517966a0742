package ilptext

import (
	"strconv"
	"strings"
)

// tokKind enumerates the atoms a sum expression scans into.
type tokKind int

const (
	tokEOF tokKind = iota
	tokPlus
	tokMinus
	tokNumber
	tokIdent
	tokStar
)

type token struct {
	kind tokKind
	text string
}

// sumLexer tokenizes a single sum expression (no relation operators —
// those are split off by splitConstraint before the lexer ever sees the
// two sides).
type sumLexer struct {
	s   string
	pos int
}

func newSumLexer(s string) *sumLexer {
	return &sumLexer{s: s}
}

func (l *sumLexer) skipSpace() {
	for l.pos < len(l.s) && (l.s[l.pos] == ' ' || l.s[l.pos] == '\t') {
		l.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// next returns the next token, or tokEOF once the input is exhausted.
// Returns ErrBadToken (via ok=false) on a character matching no grammar
// production.
func (l *sumLexer) next() (token, bool) {
	l.skipSpace()
	if l.pos >= len(l.s) {
		return token{kind: tokEOF}, true
	}

	c := l.s[l.pos]
	switch {
	case c == '+':
		l.pos++
		return token{kind: tokPlus}, true
	case c == '-':
		l.pos++
		return token{kind: tokMinus}, true
	case c == '*':
		l.pos++
		return token{kind: tokStar}, true
	case isDigit(c):
		start := l.pos
		for l.pos < len(l.s) && isDigit(l.s[l.pos]) {
			l.pos++
		}
		return token{kind: tokNumber, text: l.s[start:l.pos]}, true
	case isIdentStart(c):
		start := l.pos
		for l.pos < len(l.s) && isIdentCont(l.s[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.s[start:l.pos]}, true
	default:
		return token{}, false
	}
}

// parseSum tokenizes and groups a sum expression into Terms. Each term is
// [sign] [number] ["*"] [ident], with an implicit leading "+" and an
// implicit coefficient of 1 when the number is omitted.
func parseSum(s string) ([]Term, error) {
	lex := newSumLexer(s)
	var terms []Term

	sign := int32(1)
	var coeff int32
	haveCoeff := false
	var varName string

	flush := func() {
		c := coeff
		if !haveCoeff {
			c = 1
		}
		terms = append(terms, Term{Coeff: sign * c, Var: varName})
		sign, haveCoeff, coeff, varName = 1, false, 0, ""
	}
	pending := false // a term has been started since the last flush

	for {
		tok, ok := lex.next()
		if !ok {
			return nil, ErrBadToken
		}
		switch tok.kind {
		case tokEOF:
			if pending {
				flush()
			}
			return terms, nil
		case tokPlus, tokMinus:
			if pending {
				flush()
			}
			pending = true
			if tok.kind == tokMinus {
				sign = -1
			}
		case tokNumber:
			n, err := strconv.ParseInt(tok.text, 10, 32)
			if err != nil {
				return nil, ErrBadToken
			}
			coeff = int32(n)
			haveCoeff = true
			pending = true
		case tokStar:
			// no-op separator between coefficient and variable
			pending = true
		case tokIdent:
			varName = tok.text
			pending = true
		}
	}
}

// splitConstraint finds the top-level relation operator in a constraint
// line and returns the trimmed LHS/RHS text plus the relation. Operators
// are matched longest-first so "<=" isn't mistaken for two tokens.
func splitConstraint(line string) (lhs, rhs string, rel int, ok bool) {
	for i := 0; i < len(line); i++ {
		switch {
		case i+1 < len(line) && line[i] == '<' && line[i+1] == '=':
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+2:]), relLE, true
		case i+1 < len(line) && line[i] == '>' && line[i+1] == '=':
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+2:]), relGE, true
		case line[i] == '=':
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), relEQ, true
		}
	}

	return "", "", 0, false
}

const (
	relLE = iota
	relGE
	relEQ
)
