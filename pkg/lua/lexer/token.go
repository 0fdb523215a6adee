// Package lexer tokenizes Lua source text for pkg/lua/parser.
package lexer

import "github.com/darklua-go/darklua/pkg/lua/ast"

// Kind identifies a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	Identifier
	Keyword
	Number
	String
	Symbol // operators and punctuation, identified by their exact Text
)

// Token is one lexical unit plus the trivia (comments, whitespace) that
// preceded it in the source.
type Token struct {
	Kind     Kind
	Text     string // exact source text: identifier name, raw number/string, or symbol
	Value    string // decoded value for String tokens; unused otherwise
	Location ast.Location
	Leading  *ast.TokenTrivia
}

var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// IsKeyword reports whether word is a reserved Lua keyword.
func IsKeyword(word string) bool {
	return keywords[word]
}
