// Package diagnostics carries rich, located parse errors out of pkg/lua/parser.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/darklua-go/darklua/pkg/lua/ast"
)

// ErrorKind categorizes a diagnostic.
type ErrorKind string

const (
	ErrorKindSyntax ErrorKind = "syntax" // unexpected token, malformed construct
	ErrorKindIO     ErrorKind = "io"     // file read/size failure
)

// Error is a single located diagnostic, optionally carrying a suggestion.
type Error struct {
	Kind       ErrorKind
	Message    string
	Location   ast.Location
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s\n", e.Kind, e.Message)
	if e.Location.IsValid() {
		fmt.Fprintf(&sb, "  --> %s\n", e.Location.String())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "  = suggestion: %s\n", e.Suggestion)
	}
	return sb.String()
}

// List accumulates diagnostics instead of failing on the first one, so a
// parser can report several syntax errors from a single pass.
type List struct {
	Errors []*Error
}

// NewList returns an empty diagnostic list.
func NewList() *List {
	return &List{}
}

// Add appends err to the list.
func (l *List) Add(err *Error) {
	l.Errors = append(l.Errors, err)
}

// AddSyntax appends a syntax error at location, with no suggestion.
func (l *List) AddSyntax(message string, location ast.Location) {
	l.Add(&Error{Kind: ErrorKindSyntax, Message: message, Location: location})
}

// AddSyntaxWithSuggestion appends a syntax error with a suggested fix.
func (l *List) AddSyntaxWithSuggestion(message string, location ast.Location, suggestion string) {
	l.Add(&Error{Kind: ErrorKindSyntax, Message: message, Location: location, Suggestion: suggestion})
}

// HasErrors reports whether the list holds any diagnostics.
func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

// Error implements the error interface, rendering every accumulated
// diagnostic.
func (l *List) Error() string {
	if !l.HasErrors() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "found %d error(s):\n\n", len(l.Errors))
	for i, err := range l.Errors {
		fmt.Fprintf(&sb, "error %d:\n", i+1)
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (l *List) ToError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}
