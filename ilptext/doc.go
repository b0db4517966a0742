// Package ilptext parses the plain-text .ilp format into a ParsedILP,
// the structure package canonical consumes to build a core.Instance.
//
// Grammar (line-oriented):
//
//	sense       ::= "maximize" | "minimize" | "max" | "min"  (case-insensitive)
//	sum         ::= term (("+" | "-") term)*
//	term        ::= [integer ["*"]] [variable] | integer
//	variable    ::= [A-Za-z][A-Za-z0-9]*
//	relation    ::= "<=" | ">=" | "="
//	constraint  ::= sum relation sum
//	file        ::= sense NEWLINE sum NEWLINE ("subject" "to" NEWLINE)?
//	                constraint (NEWLINE constraint)*
//	                (NEWLINE "notes:" .*)?
//
// A term with an omitted coefficient means 1; a leading "-" before a
// variable means -1. "notes:" and everything after it (to EOF) is lexed
// but never interpreted, so a caller can attach free-form commentary to
// an .ilp file without it ever reaching the parser's grammar.
//
// ilptext is a convenience for cmd/steinitz; canonical and solver import
// it only for the ParsedILP shape, and the packages canonical feeds
// (proximity, graphbuild, longestpath, reconstruct) never import it.
package ilptext
