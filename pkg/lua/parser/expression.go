package parser

import (
	"strconv"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/lexer"
)

type binaryPrecedence struct {
	operator ast.BinaryOperator
	left     int
	right    int
}

// binaryOperators maps a symbol or keyword's exact text to its operator
// and binding powers, following the Lua reference manual's priority
// table (lowest to highest): or, and, comparisons, |, ~, &, << >>, ..
// (right-assoc), + -, * / // %, unary, ^ (right-assoc, binds tighter
// than unary on its left operand).
var binaryOperators = map[string]binaryPrecedence{
	"or":  {ast.BinaryOpOr, 1, 2},
	"and": {ast.BinaryOpAnd, 2, 3},
	"<":   {ast.BinaryOpLessThan, 3, 4},
	">":   {ast.BinaryOpGreaterThan, 3, 4},
	"<=":  {ast.BinaryOpLessOrEqualThan, 3, 4},
	">=":  {ast.BinaryOpGreaterOrEqualThan, 3, 4},
	"~=":  {ast.BinaryOpNotEqual, 3, 4},
	"==":  {ast.BinaryOpEqual, 3, 4},
	"|":   {ast.BinaryOpPipe, 4, 5},
	"~":   {ast.BinaryOpTilde, 5, 6},
	"&":   {ast.BinaryOpAmpersand, 6, 7},
	"<<":  {ast.BinaryOpLeftShift, 7, 8},
	">>":  {ast.BinaryOpRightShift, 7, 8},
	"..":  {ast.BinaryOpConcat, 8, 8},
	"+":   {ast.BinaryOpPlus, 9, 10},
	"-":   {ast.BinaryOpMinus, 9, 10},
	"*":   {ast.BinaryOpAsterisk, 10, 11},
	"/":   {ast.BinaryOpSlash, 10, 11},
	"//":  {ast.BinaryOpDoubleSlash, 10, 11},
	"%":   {ast.BinaryOpPercent, 10, 11},
	"^":   {ast.BinaryOpCaret, 12, 12},
}

const unaryPrecedence = 11

var unaryOperators = map[string]ast.UnaryOperator{
	"not": ast.UnaryOpNot,
	"-":   ast.UnaryOpMinus,
	"#":   ast.UnaryOpLength,
	"~":   ast.UnaryOpBitwiseNot,
}

func (s *parseState) peekBinaryOperator() (binaryPrecedence, bool) {
	tok := s.current()
	if tok.Kind != lexer.Symbol && tok.Kind != lexer.Keyword {
		return binaryPrecedence{}, false
	}
	info, ok := binaryOperators[tok.Text]
	return info, ok
}

func (s *parseState) peekUnaryOperator() (ast.UnaryOperator, bool) {
	tok := s.current()
	if tok.Kind != lexer.Symbol && tok.Kind != lexer.Keyword {
		return 0, false
	}
	op, ok := unaryOperators[tok.Text]
	return op, ok
}

func (s *parseState) parseExpression() ast.Expression {
	return s.parseBinaryExpression(0)
}

func (s *parseState) parseBinaryExpression(minPrecedence int) ast.Expression {
	left := s.parseUnaryExpression()
	for {
		info, ok := s.peekBinaryOperator()
		if !ok || info.left < minPrecedence {
			break
		}
		location := s.current().Location
		s.advance()
		right := s.parseBinaryExpression(info.right)
		left = &ast.BinaryExpression{Operator: info.operator, Left: left, Right: right, Location: location}
	}
	return left
}

func (s *parseState) parseUnaryExpression() ast.Expression {
	if op, ok := s.peekUnaryOperator(); ok {
		location := s.current().Location
		s.advance()
		operand := s.parseBinaryExpression(unaryPrecedence)
		return &ast.UnaryExpression{Operator: op, Operand: operand, Location: location}
	}
	return s.parseSimpleExpression()
}

func (s *parseState) parseSimpleExpression() ast.Expression {
	tok := s.current()

	switch {
	case tok.Kind == lexer.Keyword && tok.Text == "nil":
		s.advance()
		return &ast.NilExpression{Location: tok.Location}
	case tok.Kind == lexer.Keyword && tok.Text == "true":
		s.advance()
		return &ast.TrueExpression{Location: tok.Location}
	case tok.Kind == lexer.Keyword && tok.Text == "false":
		s.advance()
		return &ast.FalseExpression{Location: tok.Location}
	case tok.Kind == lexer.Symbol && tok.Text == "...":
		s.advance()
		return &ast.VariableArgumentsExpression{Location: tok.Location}
	case tok.Kind == lexer.Number:
		s.advance()
		value, _ := strconv.ParseFloat(tok.Text, 64)
		return &ast.NumberExpression{Raw: tok.Text, Value: value, Location: tok.Location}
	case tok.Kind == lexer.String:
		s.advance()
		return &ast.StringExpression{Raw: tok.Text, Value: tok.Value, Location: tok.Location}
	case tok.Kind == lexer.Keyword && tok.Text == "function":
		s.advance()
		return &ast.FunctionExpression{Body: s.parseFunctionBody(tok.Location), Location: tok.Location}
	case tok.Kind == lexer.Symbol && tok.Text == "{":
		return s.parseTableExpression()
	default:
		return s.parsePrefixExpression().(ast.Expression)
	}
}

// parsePrefixExpression parses an identifier or parenthesized expression
// followed by zero or more field/index/call suffixes, producing the
// innermost node that still satisfies ast.Prefix.
func (s *parseState) parsePrefixExpression() ast.Prefix {
	var prefix ast.Prefix
	tok := s.current()

	switch {
	case tok.Kind == lexer.Identifier:
		s.advance()
		prefix = &ast.IdentifierExpression{Name: tok.Text, Location: tok.Location}
	case tok.Kind == lexer.Symbol && tok.Text == "(":
		s.advance()
		inner := s.parseExpression()
		s.expectSymbol(")")
		prefix = &ast.ParentheseExpression{Inner: inner, Location: tok.Location}
	default:
		s.unexpected("expected expression")
		return &ast.IdentifierExpression{Name: "", Location: tok.Location}
	}

	for {
		next := s.current()
		switch {
		case next.Kind == lexer.Symbol && next.Text == ".":
			s.advance()
			field := s.expectIdentifier()
			prefix = &ast.FieldExpression{Object: prefix, Field: field, Location: next.Location}
		case next.Kind == lexer.Symbol && next.Text == "[":
			s.advance()
			key := s.parseExpression()
			s.expectSymbol("]")
			prefix = &ast.IndexExpression{Object: prefix, Key: key, Location: next.Location}
		case next.Kind == lexer.Symbol && next.Text == ":":
			s.advance()
			method := s.expectIdentifier()
			arguments := s.parseArguments()
			prefix = &ast.FunctionCall{Prefix: prefix, MethodName: method, Arguments: arguments, Location: next.Location}
		case next.Kind == lexer.Symbol && (next.Text == "(" || next.Text == "{"):
			arguments := s.parseArguments()
			prefix = &ast.FunctionCall{Prefix: prefix, Arguments: arguments, Location: next.Location}
		case next.Kind == lexer.String:
			arguments := s.parseArguments()
			prefix = &ast.FunctionCall{Prefix: prefix, Arguments: arguments, Location: next.Location}
		default:
			return prefix
		}
	}
}

func (s *parseState) parseArguments() ast.Arguments {
	tok := s.current()
	switch {
	case tok.Kind == lexer.String:
		s.advance()
		return &ast.StringArguments{String: &ast.StringExpression{Raw: tok.Text, Value: tok.Value, Location: tok.Location}}
	case tok.Kind == lexer.Symbol && tok.Text == "{":
		table := s.parseTableExpression()
		return &ast.TableArguments{Table: table}
	default:
		s.expectSymbol("(")
		var expressions []ast.Expression
		if !s.isSymbol(")") {
			expressions = s.parseExpressionList()
		}
		s.expectSymbol(")")
		return &ast.TupleArguments{Expressions: expressions}
	}
}

func (s *parseState) parseTableExpression() *ast.TableExpression {
	location := s.current().Location
	s.expectSymbol("{")
	var entries []ast.TableEntry

	for !s.isSymbol("}") {
		entries = append(entries, s.parseTableEntry())
		if !s.consumeSymbol(",") && !s.consumeSymbol(";") {
			break
		}
	}
	s.expectSymbol("}")
	return &ast.TableExpression{Entries: entries, Location: location}
}

func (s *parseState) parseTableEntry() ast.TableEntry {
	tok := s.current()

	if tok.Kind == lexer.Symbol && tok.Text == "[" {
		s.advance()
		key := s.parseExpression()
		s.expectSymbol("]")
		s.expectSymbol("=")
		value := s.parseExpression()
		return &ast.IndexEntry{Key: key, Value: value, Location: tok.Location}
	}

	if tok.Kind == lexer.Identifier && s.peekAheadIsAssign() {
		s.advance()
		s.expectSymbol("=")
		value := s.parseExpression()
		return &ast.FieldEntry{Name: tok.Text, Value: value, Location: tok.Location}
	}

	value := s.parseExpression()
	return &ast.ValueEntry{Value: value, Location: tok.Location}
}

// peekAheadIsAssign reports whether the token after the current identifier
// is `=`, the lookahead needed to distinguish a `name = value` table
// field from a bare positional expression that happens to start with a
// name (e.g. a variable reference).
func (s *parseState) peekAheadIsAssign() bool {
	if s.pos+1 >= len(s.tokens) {
		return false
	}
	next := s.tokens[s.pos+1]
	return next.Kind == lexer.Symbol && next.Text == "="
}
