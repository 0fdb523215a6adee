// Package ast defines the closed node hierarchy for the Lua source tree:
// blocks, statements, expressions, variables, arguments, table entries and
// the optional markup expression extension, plus the trivia bundle attached
// to nodes that must round-trip through the renderer.
package ast

import "fmt"

// Location identifies a position in a source file. The zero value is
// invalid and is used for hand-constructed trees that were never parsed
// from text (e.g. nodes built directly by a rule).
type Location struct {
	Line   int
	Column int
}

// IsValid reports whether the location was set by the parser.
func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
