package lexer

import (
	"testing"

	"github.com/darklua-go/darklua/pkg/lua/diagnostics"
)

func tokens(t *testing.T, source string) []Token {
	t.Helper()
	errs := diagnostics.NewList()
	l := New(source, "test.lua", errs)
	var out []Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			break
		}
	}
	if errs.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", errs.Errors)
	}
	return out
}

func TestLexer_Identifiers(t *testing.T) {
	toks := tokens(t, "foo bar_baz _private")
	want := []string{"foo", "bar_baz", "_private"}
	for i, w := range want {
		if toks[i].Kind != Identifier {
			t.Errorf("token %d kind = %v, want Identifier", i, toks[i].Kind)
		}
		if toks[i].Text != w {
			t.Errorf("token %d text = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestLexer_Keywords(t *testing.T) {
	toks := tokens(t, "local function end if then else")
	for i, tok := range toks[:6] {
		if tok.Kind != Keyword {
			t.Errorf("token %d (%q) kind = %v, want Keyword", i, tok.Text, tok.Kind)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"0xFF", "0xFF"},
		{"0x1p4", "0x1p4"},
		{".5", ".5"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := tokens(t, tt.input)
			if toks[0].Kind != Number {
				t.Fatalf("kind = %v, want Number", toks[0].Kind)
			}
			if toks[0].Text != tt.want {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.want)
			}
		})
	}
}

func TestLexer_ShortStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'world'`, "world"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\ttab"`, "tab\ttab"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := tokens(t, tt.input)
			if toks[0].Kind != String {
				t.Fatalf("kind = %v, want String", toks[0].Kind)
			}
			if toks[0].Value != tt.want {
				t.Errorf("value = %q, want %q", toks[0].Value, tt.want)
			}
		})
	}
}

func TestLexer_LongStrings(t *testing.T) {
	toks := tokens(t, "[[hello world]]")
	if toks[0].Kind != String {
		t.Fatalf("kind = %v, want String", toks[0].Kind)
	}
	if toks[0].Value != "hello world" {
		t.Errorf("value = %q, want %q", toks[0].Value, "hello world")
	}
}

func TestLexer_LongStringsWithLevel(t *testing.T) {
	toks := tokens(t, "[==[contains ]] inside]==]")
	if toks[0].Kind != String {
		t.Fatalf("kind = %v, want String", toks[0].Kind)
	}
	if toks[0].Value != "contains ]] inside" {
		t.Errorf("value = %q, want %q", toks[0].Value, "contains ]] inside")
	}
}

func TestLexer_LongStringSkipsLeadingNewline(t *testing.T) {
	toks := tokens(t, "[[\nhello]]")
	if toks[0].Value != "hello" {
		t.Errorf("value = %q, want %q", toks[0].Value, "hello")
	}
}

func TestLexer_Comments(t *testing.T) {
	toks := tokens(t, "-- a comment\nx")
	if toks[0].Kind != Identifier || toks[0].Text != "x" {
		t.Fatalf("token = %+v, want identifier x", toks[0])
	}
	if toks[0].Leading == nil || len(toks[0].Leading.LeadingComments) != 1 {
		t.Fatalf("leading trivia = %+v, want one comment", toks[0].Leading)
	}
	if toks[0].Leading.LeadingComments[0] != "-- a comment" {
		t.Errorf("comment = %q, want %q", toks[0].Leading.LeadingComments[0], "-- a comment")
	}
}

func TestLexer_LongComments(t *testing.T) {
	toks := tokens(t, "--[[ long\ncomment ]]x")
	if toks[0].Text != "x" {
		t.Fatalf("token = %+v, want identifier x", toks[0])
	}
	if toks[0].Leading == nil || len(toks[0].Leading.LeadingComments) != 1 {
		t.Fatalf("leading trivia = %+v, want one comment", toks[0].Leading)
	}
}

func TestLexer_MultiCharSymbols(t *testing.T) {
	tests := []string{"...", "..", "==", "~=", "<=", ">=", "::", "//", "<<", ">>"}
	for _, sym := range tests {
		t.Run(sym, func(t *testing.T) {
			toks := tokens(t, sym)
			if toks[0].Kind != Symbol {
				t.Fatalf("kind = %v, want Symbol", toks[0].Kind)
			}
			if toks[0].Text != sym {
				t.Errorf("text = %q, want %q", toks[0].Text, sym)
			}
		})
	}
}

func TestLexer_SingleCharSymbolsNotGreedy(t *testing.T) {
	toks := tokens(t, ". .")
	if toks[0].Text != "." {
		t.Errorf("first symbol = %q, want %q", toks[0].Text, ".")
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	errs := diagnostics.NewList()
	l := New(`"unterminated`, "test.lua", errs)
	l.Next()
	if !errs.HasErrors() {
		t.Error("expected an unterminated string error")
	}
}

func TestLexer_UnterminatedLongBracket(t *testing.T) {
	errs := diagnostics.NewList()
	l := New("[[never closed", "test.lua", errs)
	l.Next()
	if !errs.HasErrors() {
		t.Error("expected an unterminated long bracket error")
	}
}

func TestLexer_EOF(t *testing.T) {
	toks := tokens(t, "")
	if len(toks) != 1 || toks[0].Kind != EOF {
		t.Fatalf("tokens = %+v, want single EOF", toks)
	}
}

func TestLexer_LocationTracksLineAndColumn(t *testing.T) {
	toks := tokens(t, "foo\nbar")
	if toks[0].Location.Line != 1 || toks[0].Location.Column != 1 {
		t.Errorf("foo location = %+v, want line 1 col 1", toks[0].Location)
	}
	if toks[1].Location.Line != 2 || toks[1].Location.Column != 1 {
		t.Errorf("bar location = %+v, want line 2 col 1", toks[1].Location)
	}
}

func TestIsKeyword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"if", true},
		{"function", true},
		{"foo", false},
		{"IF", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := IsKeyword(tt.word); got != tt.want {
				t.Errorf("IsKeyword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
