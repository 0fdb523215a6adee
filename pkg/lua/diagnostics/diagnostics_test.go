package diagnostics

import (
	"strings"
	"testing"

	"github.com/darklua-go/darklua/pkg/lua/ast"
)

func TestError_Error(t *testing.T) {
	err := &Error{Kind: ErrorKindSyntax, Message: "unexpected token", Location: ast.Location{Line: 2, Column: 5}}
	got := err.Error()
	if !strings.Contains(got, "unexpected token") {
		t.Errorf("Error() = %q, want it to contain message", got)
	}
	if !strings.Contains(got, "2:5") {
		t.Errorf("Error() = %q, want it to contain location", got)
	}
}

func TestError_ErrorWithSuggestion(t *testing.T) {
	err := &Error{Kind: ErrorKindSyntax, Message: "missing end", Suggestion: "add 'end'"}
	got := err.Error()
	if !strings.Contains(got, "add 'end'") {
		t.Errorf("Error() = %q, want it to contain suggestion", got)
	}
}

func TestError_InvalidLocationOmitted(t *testing.T) {
	err := &Error{Kind: ErrorKindIO, Message: "failed to read file"}
	got := err.Error()
	if strings.Contains(got, "-->") {
		t.Errorf("Error() = %q, want no location arrow for an invalid location", got)
	}
}

func TestList_HasErrors(t *testing.T) {
	l := NewList()
	if l.HasErrors() {
		t.Error("HasErrors() = true on a new list, want false")
	}
	l.AddSyntax("bad token", ast.Location{Line: 1, Column: 1})
	if !l.HasErrors() {
		t.Error("HasErrors() = false after Add, want true")
	}
}

func TestList_AddSyntaxWithSuggestion(t *testing.T) {
	l := NewList()
	l.AddSyntaxWithSuggestion("missing paren", ast.Location{Line: 1, Column: 1}, "add ')'")
	if l.Errors[0].Suggestion != "add ')'" {
		t.Errorf("Suggestion = %q, want %q", l.Errors[0].Suggestion, "add ')'")
	}
}

func TestList_ToError(t *testing.T) {
	l := NewList()
	if err := l.ToError(); err != nil {
		t.Errorf("ToError() = %v, want nil for an empty list", err)
	}
	l.AddSyntax("bad token", ast.Location{Line: 1, Column: 1})
	if err := l.ToError(); err == nil {
		t.Error("ToError() = nil, want non-nil after Add")
	}
}

func TestList_Error_FormatsAllDiagnostics(t *testing.T) {
	l := NewList()
	l.AddSyntax("first error", ast.Location{Line: 1, Column: 1})
	l.AddSyntax("second error", ast.Location{Line: 2, Column: 1})
	got := l.Error()
	if !strings.Contains(got, "found 2 error(s)") {
		t.Errorf("Error() = %q, want a count of 2", got)
	}
	if !strings.Contains(got, "first error") || !strings.Contains(got, "second error") {
		t.Errorf("Error() = %q, want both messages present", got)
	}
}
