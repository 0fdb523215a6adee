package parser

import (
	"fmt"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/diagnostics"
	"github.com/darklua-go/darklua/pkg/lua/lexer"
)

type parseState struct {
	tokens []lexer.Token
	pos    int
	errors *diagnostics.List
}

func (s *parseState) current() lexer.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

func (s *parseState) advance() lexer.Token {
	tok := s.current()
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *parseState) atEnd() bool {
	return s.current().Kind == lexer.EOF
}

func (s *parseState) isSymbol(text string) bool {
	tok := s.current()
	return tok.Kind == lexer.Symbol && tok.Text == text
}

func (s *parseState) isKeyword(text string) bool {
	tok := s.current()
	return tok.Kind == lexer.Keyword && tok.Text == text
}

func (s *parseState) consumeSymbol(text string) bool {
	if s.isSymbol(text) {
		s.advance()
		return true
	}
	return false
}

func (s *parseState) consumeKeyword(text string) bool {
	if s.isKeyword(text) {
		s.advance()
		return true
	}
	return false
}

func (s *parseState) expectSymbol(text string) {
	if !s.consumeSymbol(text) {
		s.unexpected(fmt.Sprintf("expected %q", text))
	}
}

func (s *parseState) expectKeyword(text string) {
	if !s.consumeKeyword(text) {
		s.unexpected(fmt.Sprintf("expected %q", text))
	}
}

func (s *parseState) expectIdentifier() string {
	tok := s.current()
	if tok.Kind != lexer.Identifier {
		s.unexpected("expected identifier")
		return ""
	}
	s.advance()
	return tok.Text
}

func (s *parseState) unexpected(message string) {
	tok := s.current()
	s.errors.AddSyntax(fmt.Sprintf("%s, found %q", message, tokenDescription(tok)), tok.Location)
	if tok.Kind != lexer.EOF {
		s.advance()
	}
}

func tokenDescription(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "<eof>"
	}
	return tok.Text
}

func isBlockEnd(tok lexer.Token) bool {
	if tok.Kind == lexer.EOF {
		return true
	}
	if tok.Kind != lexer.Keyword {
		return false
	}
	switch tok.Text {
	case "end", "else", "elseif", "until":
		return true
	}
	return false
}

// parseChunk parses a whole file: a block that must consume every token.
func (s *parseState) parseChunk() *ast.Block {
	block := s.parseBlock()
	if !s.atEnd() {
		s.unexpected("expected end of file")
	}
	return block
}

func (s *parseState) parseBlock() *ast.Block {
	block := ast.NewBlock()
	for !isBlockEnd(s.current()) {
		if s.isKeyword("return") {
			block.Terminal = s.parseReturnStatement()
			break
		}
		if s.isKeyword("break") {
			location := s.current().Location
			s.advance()
			block.Terminal = &ast.BreakStatement{Location: location}
			break
		}
		statement := s.parseStatement()
		if statement != nil {
			block.Statements = append(block.Statements, statement)
		}
	}
	return block
}

func (s *parseState) parseReturnStatement() *ast.ReturnStatement {
	location := s.current().Location
	s.advance() // "return"
	var expressions []ast.Expression
	if !isBlockEnd(s.current()) && !s.isSymbol(";") {
		expressions = s.parseExpressionList()
	}
	s.consumeSymbol(";")
	return &ast.ReturnStatement{Expressions: expressions, Location: location}
}

func (s *parseState) parseStatement() ast.Statement {
	tok := s.current()

	switch {
	case s.consumeSymbol(";"):
		return nil
	case s.isKeyword("do"):
		return s.parseDoStatement()
	case s.isKeyword("while"):
		return s.parseWhileStatement()
	case s.isKeyword("repeat"):
		return s.parseRepeatStatement()
	case s.isKeyword("if"):
		return s.parseIfStatement()
	case s.isKeyword("for"):
		return s.parseForStatement()
	case s.isKeyword("function"):
		return s.parseFunctionStatement()
	case s.isKeyword("local"):
		return s.parseLocalStatement()
	default:
		return s.parseExpressionStatement(tok.Location)
	}
}

func (s *parseState) parseDoStatement() *ast.DoStatement {
	location := s.current().Location
	s.advance() // "do"
	body := s.parseBlock()
	s.expectKeyword("end")
	return &ast.DoStatement{Body: body, Location: location}
}

func (s *parseState) parseWhileStatement() *ast.WhileStatement {
	location := s.current().Location
	s.advance() // "while"
	condition := s.parseExpression()
	s.expectKeyword("do")
	body := s.parseBlock()
	s.expectKeyword("end")
	return &ast.WhileStatement{Condition: condition, Body: body, Location: location}
}

func (s *parseState) parseRepeatStatement() *ast.RepeatStatement {
	location := s.current().Location
	s.advance() // "repeat"
	body := s.parseBlock()
	s.expectKeyword("until")
	condition := s.parseExpression()
	return &ast.RepeatStatement{Body: body, Condition: condition, Location: location}
}

func (s *parseState) parseIfStatement() *ast.IfStatement {
	location := s.current().Location
	s.advance() // "if"

	var branches []*ast.IfBranch
	condition := s.parseExpression()
	s.expectKeyword("then")
	body := s.parseBlock()
	branches = append(branches, &ast.IfBranch{Condition: condition, Body: body})

	for s.consumeKeyword("elseif") {
		condition := s.parseExpression()
		s.expectKeyword("then")
		body := s.parseBlock()
		branches = append(branches, &ast.IfBranch{Condition: condition, Body: body})
	}

	var elseBlock *ast.Block
	if s.consumeKeyword("else") {
		elseBlock = s.parseBlock()
	}
	s.expectKeyword("end")
	return &ast.IfStatement{Branches: branches, Else: elseBlock, Location: location}
}

func (s *parseState) parseForStatement() ast.Statement {
	location := s.current().Location
	s.advance() // "for"
	firstName := s.expectIdentifier()

	if s.isSymbol("=") {
		s.advance()
		start := s.parseExpression()
		s.expectSymbol(",")
		end := s.parseExpression()
		var step ast.Expression
		if s.consumeSymbol(",") {
			step = s.parseExpression()
		}
		s.expectKeyword("do")
		body := s.parseBlock()
		s.expectKeyword("end")
		return &ast.NumericForStatement{
			Variable: &ast.LocalVariable{Name: firstName},
			Start:    start, End: end, Step: step,
			Body: body, Location: location,
		}
	}

	identifiers := []*ast.LocalVariable{{Name: firstName}}
	for s.consumeSymbol(",") {
		identifiers = append(identifiers, &ast.LocalVariable{Name: s.expectIdentifier()})
	}
	s.expectKeyword("in")
	expressions := s.parseExpressionList()
	s.expectKeyword("do")
	body := s.parseBlock()
	s.expectKeyword("end")
	return &ast.GenericForStatement{Identifiers: identifiers, Expressions: expressions, Body: body, Location: location}
}

func (s *parseState) parseFunctionStatement() *ast.FunctionStatement {
	location := s.current().Location
	s.advance() // "function"

	name := &ast.FunctionName{Base: s.expectIdentifier()}
	for s.consumeSymbol(".") {
		name.Fields = append(name.Fields, s.expectIdentifier())
	}
	if s.consumeSymbol(":") {
		name.MethodName = s.expectIdentifier()
	}

	body := s.parseFunctionBody(location)
	return &ast.FunctionStatement{Name: name, Body: body, Location: location}
}

func (s *parseState) parseLocalStatement() ast.Statement {
	location := s.current().Location
	s.advance() // "local"

	if s.consumeKeyword("function") {
		name := s.expectIdentifier()
		body := s.parseFunctionBody(location)
		return &ast.LocalFunctionStatement{Name: name, Body: body, Location: location}
	}

	variables := []*ast.LocalVariable{s.parseLocalVariable()}
	for s.consumeSymbol(",") {
		variables = append(variables, s.parseLocalVariable())
	}
	var values []ast.Expression
	if s.consumeSymbol("=") {
		values = s.parseExpressionList()
	}
	return &ast.LocalAssignStatement{Variables: variables, Values: values, Location: location}
}

func (s *parseState) parseLocalVariable() *ast.LocalVariable {
	name := s.expectIdentifier()
	variable := &ast.LocalVariable{Name: name}
	if s.consumeSymbol("<") {
		variable.Attribute = s.expectIdentifier()
		s.expectSymbol(">")
	}
	return variable
}

// parseExpressionStatement parses either an assignment or a bare function
// call, the two statement kinds that both start with a prefix expression.
func (s *parseState) parseExpressionStatement(location ast.Location) ast.Statement {
	prefix := s.parsePrefixExpression()

	if call, ok := prefix.(*ast.FunctionCall); ok && !s.isSymbol(",") && !s.isSymbol("=") {
		return &ast.CallStatement{Call: call, Location: location}
	}

	variable, ok := prefix.(ast.Variable)
	if !ok {
		s.errors.AddSyntax("syntax error: expected statement", location)
		return nil
	}

	variables := []ast.Variable{variable}
	for s.consumeSymbol(",") {
		next := s.parsePrefixExpression()
		if asVariable, ok := next.(ast.Variable); ok {
			variables = append(variables, asVariable)
		} else {
			s.errors.AddSyntax("expected assignable expression", location)
		}
	}
	s.expectSymbol("=")
	values := s.parseExpressionList()
	return &ast.AssignStatement{Variables: variables, Values: values, Location: location}
}

func (s *parseState) parseFunctionBody(location ast.Location) *ast.FunctionBody {
	s.expectSymbol("(")
	var parameters []string
	variadic := false
	if !s.isSymbol(")") {
		for {
			if s.isSymbol("...") {
				s.advance()
				variadic = true
				break
			}
			parameters = append(parameters, s.expectIdentifier())
			if !s.consumeSymbol(",") {
				break
			}
		}
	}
	s.expectSymbol(")")
	body := s.parseBlock()
	s.expectKeyword("end")
	return &ast.FunctionBody{Parameters: parameters, IsVariadic: variadic, Block: body, Location: location}
}

func (s *parseState) parseExpressionList() []ast.Expression {
	expressions := []ast.Expression{s.parseExpression()}
	for s.consumeSymbol(",") {
		expressions = append(expressions, s.parseExpression())
	}
	return expressions
}
