package lexer

import (
	"strings"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/diagnostics"
)

// Lexer scans Lua source text into a stream of Tokens, pulled one at a
// time via Next.
type Lexer struct {
	source   []rune
	pos      int
	line     int
	column   int
	fileName string
	errors   *diagnostics.List
}

// New returns a Lexer positioned at the start of source.
func New(source, fileName string, errors *diagnostics.List) *Lexer {
	return &Lexer{source: []rune(source), line: 1, column: 1, fileName: fileName, errors: errors}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) advance() rune {
	r := l.source[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) location() ast.Location {
	return ast.Location{Line: l.line, Column: l.column}
}

// Next returns the next token, having consumed any leading whitespace and
// comments into its Leading trivia.
func (l *Lexer) Next() Token {
	leading := l.consumeTrivia()
	location := l.location()

	if l.atEnd() {
		return Token{Kind: EOF, Location: location, Leading: leading}
	}

	r := l.peek()
	switch {
	case isIdentifierStart(r):
		return l.scanIdentifier(location, leading)
	case isDigit(r) || (r == '.' && isDigit(l.peekAt(1))):
		return l.scanNumber(location, leading)
	case r == '"' || r == '\'':
		return l.scanShortString(location, leading)
	case r == '[' && (l.peekAt(1) == '[' || l.peekAt(1) == '='):
		if text, value, ok := l.tryScanLongBracket(); ok {
			return Token{Kind: String, Text: text, Value: value, Location: location, Leading: leading}
		}
	}

	return l.scanSymbol(location, leading)
}

// consumeTrivia skips whitespace and comments, returning them bundled as
// one TokenTrivia attached to the following token.
func (l *Lexer) consumeTrivia() *ast.TokenTrivia {
	trivia := &ast.TokenTrivia{}
	var whitespace strings.Builder

	for !l.atEnd() {
		r := l.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			whitespace.WriteRune(l.advance())
		case r == '-' && l.peekAt(1) == '-':
			comment := l.scanComment()
			trivia.LeadingComments = append(trivia.LeadingComments, comment)
		default:
			trivia.Whitespace = whitespace.String()
			if len(trivia.LeadingComments) == 0 && trivia.Whitespace == "" {
				return nil
			}
			return trivia
		}
	}

	trivia.Whitespace = whitespace.String()
	if len(trivia.LeadingComments) == 0 && trivia.Whitespace == "" {
		return nil
	}
	return trivia
}

func (l *Lexer) scanComment() string {
	start := l.pos
	l.advance()
	l.advance() // "--"
	if l.peek() == '[' {
		if _, _, ok := l.tryScanLongBracket(); ok {
			return string(l.source[start:l.pos])
		}
	}
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
	return string(l.source[start:l.pos])
}

func isIdentifierStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanIdentifier(location ast.Location, leading *ast.TokenTrivia) Token {
	start := l.pos
	for !l.atEnd() && isIdentifierPart(l.peek()) {
		l.advance()
	}
	text := string(l.source[start:l.pos])
	kind := Identifier
	if IsKeyword(text) {
		kind = Keyword
	}
	return Token{Kind: kind, Text: text, Location: location, Leading: leading}
}

func (l *Lexer) scanNumber(location ast.Location, leading *ast.TokenTrivia) Token {
	start := l.pos
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance()
		l.advance()
		for !l.atEnd() && (isHexDigit(l.peek()) || l.peek() == '.') {
			l.advance()
		}
		if l.peek() == 'p' || l.peek() == 'P' {
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
			for !l.atEnd() && isDigit(l.peek()) {
				l.advance()
			}
		}
		return Token{Kind: Number, Text: string(l.source[start:l.pos]), Location: location, Leading: leading}
	}

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	return Token{Kind: Number, Text: string(l.source[start:l.pos]), Location: location, Leading: leading}
}

func (l *Lexer) scanShortString(location ast.Location, leading *ast.TokenTrivia) Token {
	quote := l.advance()
	start := l.pos
	var value strings.Builder
	for !l.atEnd() && l.peek() != quote {
		r := l.advance()
		if r == '\\' && !l.atEnd() {
			escape := l.advance()
			value.WriteRune(decodeEscape(escape))
			continue
		}
		value.WriteRune(r)
	}
	raw := string(l.source[start:l.pos])
	if !l.atEnd() {
		l.advance() // closing quote
	} else {
		l.errors.AddSyntax("unterminated string literal", location)
	}
	return Token{
		Kind:     String,
		Text:     string(quote) + raw + string(quote),
		Value:    value.String(),
		Location: location,
		Leading:  leading,
	}
}

func decodeEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	default:
		return r
	}
}

// tryScanLongBracket scans a `[=*[ ... ]=*]` long bracket (string or
// comment body) starting at the current `[`. Reports ok=false and leaves
// the position unchanged if what follows `[` is not a valid opening
// long-bracket sequence.
func (l *Lexer) tryScanLongBracket() (text string, value string, ok bool) {
	mark := l.pos
	markLine, markColumn := l.line, l.column
	start := l.pos
	l.advance() // '['
	level := 0
	for l.peek() == '=' {
		l.advance()
		level++
	}
	if l.peek() != '[' {
		l.pos, l.line, l.column = mark, markLine, markColumn
		return "", "", false
	}
	l.advance()

	if l.peek() == '\n' {
		l.advance()
	}

	closing := "]" + strings.Repeat("=", level) + "]"
	bodyStart := l.pos
	for !l.atEnd() {
		if l.peek() == ']' && l.matchesAt(closing) {
			body := string(l.source[bodyStart:l.pos])
			for range closing {
				l.advance()
			}
			return string(l.source[start:l.pos]), body, true
		}
		l.advance()
	}
	l.errors.AddSyntax("unterminated long bracket", ast.Location{Line: markLine, Column: markColumn})
	return string(l.source[start:l.pos]), string(l.source[bodyStart:l.pos]), true
}

func (l *Lexer) matchesAt(text string) bool {
	runes := []rune(text)
	for i, r := range runes {
		if l.peekAt(i) != r {
			return false
		}
	}
	return true
}

var multiCharSymbols = []string{"...", "..", "==", "~=", "<=", ">=", "::", "//", "<<", ">>"}

func (l *Lexer) scanSymbol(location ast.Location, leading *ast.TokenTrivia) Token {
	for _, symbol := range multiCharSymbols {
		if l.matchesAt(symbol) {
			for range symbol {
				l.advance()
			}
			return Token{Kind: Symbol, Text: symbol, Location: location, Leading: leading}
		}
	}
	r := l.advance()
	return Token{Kind: Symbol, Text: string(r), Location: location, Leading: leading}
}
