// Package parser implements a recursive-descent parser turning Lua source
// text into a pkg/lua/ast tree. It does not parse the markup
// sub-language: MarkupExpression trees are only ever constructed by hand
// or produced by a rule, never by this parser.
package parser

import (
	"fmt"
	"os"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/diagnostics"
	"github.com/darklua-go/darklua/pkg/lua/lexer"
)

// Parser parses Lua source into an AST. The zero value is not usable;
// construct one with New.
type Parser struct {
	maxFileSize int64
}

// New returns a Parser with default limits.
func New() *Parser {
	return &Parser{maxFileSize: 10 * 1024 * 1024}
}

// WithMaxFileSize sets the maximum source size this parser accepts.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse reads and parses the file at path.
func (p *Parser) Parse(path string) (*ast.Block, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &diagnostics.Error{Kind: diagnostics.ErrorKindIO, Message: fmt.Sprintf("failed to access file: %v", err)}
	}
	if info.Size() > p.maxFileSize {
		return nil, &diagnostics.Error{Kind: diagnostics.ErrorKindIO, Message: fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize)}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &diagnostics.Error{Kind: diagnostics.ErrorKindIO, Message: fmt.Sprintf("failed to read file: %v", err)}
	}
	return p.ParseBytes(data, path)
}

// ParseBytes parses Lua source held in memory, sourceName used only for
// diagnostics.
func (p *Parser) ParseBytes(data []byte, sourceName string) (*ast.Block, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &diagnostics.Error{Kind: diagnostics.ErrorKindIO, Message: fmt.Sprintf("data size %d exceeds maximum %d bytes", len(data), p.maxFileSize)}
	}

	errs := diagnostics.NewList()
	lx := lexer.New(string(data), sourceName, errs)

	var tokens []lexer.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}

	state := &parseState{tokens: tokens, errors: errs}
	block := state.parseChunk()
	if errs.HasErrors() {
		return block, errs.ToError()
	}
	return block, nil
}
