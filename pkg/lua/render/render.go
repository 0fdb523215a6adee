// Package render turns a pkg/lua/ast tree back into Lua source text. Where
// a node carries recorded trivia (comments, original whitespace) the
// renderer reproduces it; otherwise it falls back to canonical, minimal
// spacing. It does not render MarkupExpression trees: the markup
// sub-language is a closed AST surface with no concrete syntax defined.
package render

import (
	"strconv"
	"strings"

	"github.com/darklua-go/darklua/pkg/lua/ast"
)

// Block renders a whole chunk.
func Block(block *ast.Block) string {
	var sb strings.Builder
	writeBlock(&sb, block)
	return sb.String()
}

func writeBlock(sb *strings.Builder, block *ast.Block) {
	for i, statement := range block.Statements {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeStatement(sb, statement)
	}
	if block.Terminal != nil {
		if len(block.Statements) > 0 {
			sb.WriteByte('\n')
		}
		writeLastStatement(sb, block.Terminal)
	}
}

func writeTrivia(sb *strings.Builder, trivia *ast.Trivia, key string, fallback string) {
	tt := trivia.Get(key)
	if tt == nil {
		sb.WriteString(fallback)
		return
	}
	for _, comment := range tt.LeadingComments {
		sb.WriteString(comment)
		sb.WriteByte(' ')
	}
	if tt.Whitespace != "" {
		sb.WriteString(tt.Whitespace)
	} else {
		sb.WriteString(fallback)
	}
	for _, comment := range tt.TrailingComments {
		sb.WriteByte(' ')
		sb.WriteString(comment)
	}
}

func writeStatement(sb *strings.Builder, statement ast.Statement) {
	switch s := statement.(type) {
	case *ast.AssignStatement:
		writeVariableList(sb, s.Variables)
		writeTrivia(sb, s.Trivia, "=", " = ")
		writeExpressionList(sb, s.Values)
	case *ast.DoStatement:
		sb.WriteString("do\n")
		writeBlock(sb, s.Body)
		sb.WriteString("\nend")
	case *ast.CallStatement:
		writeExpression(sb, s.Call)
	case *ast.FunctionStatement:
		sb.WriteString("function ")
		writeFunctionName(sb, s.Name)
		writeFunctionBody(sb, s.Body)
	case *ast.GenericForStatement:
		sb.WriteString("for ")
		writeLocalVariableNames(sb, s.Identifiers)
		sb.WriteString(" in ")
		writeExpressionList(sb, s.Expressions)
		sb.WriteString(" do\n")
		writeBlock(sb, s.Body)
		sb.WriteString("\nend")
	case *ast.IfStatement:
		for i, branch := range s.Branches {
			if i == 0 {
				sb.WriteString("if ")
			} else {
				sb.WriteString("elseif ")
			}
			writeExpression(sb, branch.Condition)
			sb.WriteString(" then\n")
			writeBlock(sb, branch.Body)
			sb.WriteByte('\n')
		}
		if s.Else != nil {
			sb.WriteString("else\n")
			writeBlock(sb, s.Else)
			sb.WriteByte('\n')
		}
		sb.WriteString("end")
	case *ast.LocalAssignStatement:
		sb.WriteString("local ")
		writeLocalVariableNames(sb, s.Variables)
		if s.HasValues() {
			writeTrivia(sb, s.Trivia, "=", " = ")
			writeExpressionList(sb, s.Values)
		}
	case *ast.LocalFunctionStatement:
		sb.WriteString("local function ")
		sb.WriteString(s.Name)
		writeFunctionBody(sb, s.Body)
	case *ast.NumericForStatement:
		sb.WriteString("for ")
		sb.WriteString(s.Variable.Name)
		sb.WriteString(" = ")
		writeExpression(sb, s.Start)
		sb.WriteString(", ")
		writeExpression(sb, s.End)
		if s.Step != nil {
			sb.WriteString(", ")
			writeExpression(sb, s.Step)
		}
		sb.WriteString(" do\n")
		writeBlock(sb, s.Body)
		sb.WriteString("\nend")
	case *ast.RepeatStatement:
		sb.WriteString("repeat\n")
		writeBlock(sb, s.Body)
		sb.WriteString("\nuntil ")
		writeExpression(sb, s.Condition)
	case *ast.WhileStatement:
		sb.WriteString("while ")
		writeExpression(sb, s.Condition)
		sb.WriteString(" do\n")
		writeBlock(sb, s.Body)
		sb.WriteString("\nend")
	}
}

func writeLastStatement(sb *strings.Builder, last ast.LastStatement) {
	switch l := last.(type) {
	case *ast.BreakStatement:
		sb.WriteString("break")
	case *ast.ReturnStatement:
		sb.WriteString("return")
		if len(l.Expressions) > 0 {
			sb.WriteByte(' ')
			writeExpressionList(sb, l.Expressions)
		}
	}
}

func writeFunctionName(sb *strings.Builder, name *ast.FunctionName) {
	sb.WriteString(name.Base)
	for _, field := range name.Fields {
		sb.WriteByte('.')
		sb.WriteString(field)
	}
	if name.IsMethod() {
		sb.WriteByte(':')
		sb.WriteString(name.MethodName)
	}
}

func writeFunctionBody(sb *strings.Builder, body *ast.FunctionBody) {
	sb.WriteByte('(')
	for i, parameter := range body.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(parameter)
	}
	if body.IsVariadic {
		if len(body.Parameters) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(")\n")
	writeBlock(sb, body.Block)
	sb.WriteString("\nend")
}

func writeLocalVariableNames(sb *strings.Builder, variables []*ast.LocalVariable) {
	for i, variable := range variables {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(variable.Name)
		if variable.Attribute != "" {
			sb.WriteString(" <")
			sb.WriteString(variable.Attribute)
			sb.WriteByte('>')
		}
	}
}

func writeVariableList(sb *strings.Builder, variables []ast.Variable) {
	for i, variable := range variables {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeVariable(sb, variable)
	}
}

func writeVariable(sb *strings.Builder, variable ast.Variable) {
	switch v := variable.(type) {
	case *ast.IdentifierExpression:
		sb.WriteString(v.Name)
	case *ast.FieldExpression:
		writePrefix(sb, v.Object)
		sb.WriteByte('.')
		sb.WriteString(v.Field)
	case *ast.IndexExpression:
		writePrefix(sb, v.Object)
		sb.WriteByte('[')
		writeExpression(sb, v.Key)
		sb.WriteByte(']')
	}
}

func writeExpressionList(sb *strings.Builder, expressions []ast.Expression) {
	for i, expression := range expressions {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpression(sb, expression)
	}
}

var binaryOperatorText = map[ast.BinaryOperator]string{
	ast.BinaryOpAnd: "and", ast.BinaryOpOr: "or",
	ast.BinaryOpEqual: "==", ast.BinaryOpNotEqual: "~=",
	ast.BinaryOpLessThan: "<", ast.BinaryOpLessOrEqualThan: "<=",
	ast.BinaryOpGreaterThan: ">", ast.BinaryOpGreaterOrEqualThan: ">=",
	ast.BinaryOpPlus: "+", ast.BinaryOpMinus: "-",
	ast.BinaryOpAsterisk: "*", ast.BinaryOpSlash: "/",
	ast.BinaryOpDoubleSlash: "//", ast.BinaryOpPercent: "%",
	ast.BinaryOpCaret: "^", ast.BinaryOpConcat: "..",
	ast.BinaryOpAmpersand: "&", ast.BinaryOpPipe: "|", ast.BinaryOpTilde: "~",
	ast.BinaryOpLeftShift: "<<", ast.BinaryOpRightShift: ">>",
}

var unaryOperatorText = map[ast.UnaryOperator]string{
	ast.UnaryOpMinus: "-", ast.UnaryOpNot: "not ",
	ast.UnaryOpLength: "#", ast.UnaryOpBitwiseNot: "~",
}

func writeExpression(sb *strings.Builder, expression ast.Expression) {
	switch e := expression.(type) {
	case *ast.NilExpression:
		sb.WriteString("nil")
	case *ast.TrueExpression:
		sb.WriteString("true")
	case *ast.FalseExpression:
		sb.WriteString("false")
	case *ast.VariableArgumentsExpression:
		sb.WriteString("...")
	case *ast.NumberExpression:
		if e.Raw != "" {
			sb.WriteString(e.Raw)
		} else {
			sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *ast.StringExpression:
		if e.Raw != "" {
			sb.WriteString(e.Raw)
		} else {
			sb.WriteString(strconv.Quote(e.Value))
		}
	case *ast.BinaryExpression:
		writeExpression(sb, e.Left)
		writeTrivia(sb, e.Trivia, "operator-leading", " ")
		sb.WriteString(binaryOperatorText[e.Operator])
		writeTrivia(sb, e.Trivia, "operator-trailing", " ")
		writeExpression(sb, e.Right)
	case *ast.UnaryExpression:
		sb.WriteString(unaryOperatorText[e.Operator])
		writeExpression(sb, e.Operand)
	case *ast.FunctionExpression:
		sb.WriteString("function")
		writeFunctionBody(sb, e.Body)
	case *ast.IdentifierExpression:
		sb.WriteString(e.Name)
	case *ast.FieldExpression:
		writePrefix(sb, e.Object)
		sb.WriteByte('.')
		sb.WriteString(e.Field)
	case *ast.IndexExpression:
		writePrefix(sb, e.Object)
		sb.WriteByte('[')
		writeExpression(sb, e.Key)
		sb.WriteByte(']')
	case *ast.ParentheseExpression:
		sb.WriteByte('(')
		writeExpression(sb, e.Inner)
		sb.WriteByte(')')
	case *ast.FunctionCall:
		writeFunctionCall(sb, e)
	case *ast.TableExpression:
		writeTableExpression(sb, e)
	}
}

func writePrefix(sb *strings.Builder, prefix ast.Prefix) {
	switch p := prefix.(type) {
	case *ast.IdentifierExpression:
		sb.WriteString(p.Name)
	case *ast.FieldExpression:
		writePrefix(sb, p.Object)
		sb.WriteByte('.')
		sb.WriteString(p.Field)
	case *ast.IndexExpression:
		writePrefix(sb, p.Object)
		sb.WriteByte('[')
		writeExpression(sb, p.Key)
		sb.WriteByte(']')
	case *ast.ParentheseExpression:
		sb.WriteByte('(')
		writeExpression(sb, p.Inner)
		sb.WriteByte(')')
	case *ast.FunctionCall:
		writeFunctionCall(sb, p)
	}
}

func writeFunctionCall(sb *strings.Builder, call *ast.FunctionCall) {
	writePrefix(sb, call.Prefix)
	if call.IsMethodCall() {
		sb.WriteByte(':')
		sb.WriteString(call.MethodName)
	}
	writeArguments(sb, call.Arguments)
}

func writeArguments(sb *strings.Builder, arguments ast.Arguments) {
	switch a := arguments.(type) {
	case *ast.TupleArguments:
		sb.WriteByte('(')
		writeExpressionList(sb, a.Expressions)
		sb.WriteByte(')')
	case *ast.StringArguments:
		writeExpression(sb, a.String)
	case *ast.TableArguments:
		writeExpression(sb, a.Table)
	}
}

func writeTableExpression(sb *strings.Builder, table *ast.TableExpression) {
	sb.WriteByte('{')
	for i, entry := range table.Entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch e := entry.(type) {
		case *ast.FieldEntry:
			sb.WriteString(e.Name)
			sb.WriteString(" = ")
			writeExpression(sb, e.Value)
		case *ast.IndexEntry:
			sb.WriteByte('[')
			writeExpression(sb, e.Key)
			sb.WriteString("] = ")
			writeExpression(sb, e.Value)
		case *ast.ValueEntry:
			writeExpression(sb, e.Value)
		}
	}
	sb.WriteByte('}')
}
