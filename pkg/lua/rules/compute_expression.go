package rules

import (
	"math"
	"strconv"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// ComputeExpression folds side-effect-free constant expressions: binary
// arithmetic, comparison and concatenation over two literal operands, and
// unary operators over a single literal operand. This is the system's
// only form of program "execution" (per the non-goal carve-out): it never
// evaluates anything that could have an observable side effect.
type ComputeExpression struct {
	noProperties
}

// NewComputeExpression constructs a default-configured rule.
func NewComputeExpression() *ComputeExpression {
	return &ComputeExpression{}
}

func (*ComputeExpression) Name() string { return "compute_expression" }

func (r *ComputeExpression) Processor() process.MutatingProcessor {
	return &computeExpressionProcessor{}
}

func (r *ComputeExpression) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

// computeExpressionProcessor folds bottom-up from a single ProcessExpression
// hook: the hook recursively folds the subtree it is handed before
// attempting to fold the current node, so a nested expression like
// `(1 + 2) * 3` collapses fully on its first visit rather than needing a
// second pass. The walker's own subsequent recursion into an
// already-folded slot is a harmless no-op.
type computeExpressionProcessor struct {
	process.BaseMutatingProcessor
}

func (computeExpressionProcessor) ProcessExpression(slot *ast.Expression) {
	foldExpression(slot)
}

func foldExpression(slot *ast.Expression) {
	switch e := (*slot).(type) {
	case *ast.BinaryExpression:
		foldExpression(&e.Left)
		foldExpression(&e.Right)
		if folded, ok := foldBinary(e); ok {
			*slot = folded
		}
	case *ast.UnaryExpression:
		foldExpression(&e.Operand)
		if folded, ok := foldUnary(e); ok {
			*slot = folded
		}
	case *ast.ParentheseExpression:
		foldExpression(&e.Inner)
		if isLiteral(e.Inner) {
			*slot = e.Inner
		}
	}
}

func isLiteral(e ast.Expression) bool {
	switch e.(type) {
	case *ast.NumberExpression, *ast.StringExpression, *ast.NilExpression, *ast.TrueExpression, *ast.FalseExpression:
		return true
	default:
		return false
	}
}

func numberLiteral(value float64) *ast.NumberExpression {
	return &ast.NumberExpression{Raw: strconv.FormatFloat(value, 'g', -1, 64), Value: value}
}

func boolLiteral(value bool) ast.Expression {
	if value {
		return &ast.TrueExpression{}
	}
	return &ast.FalseExpression{}
}

func foldBinary(e *ast.BinaryExpression) (ast.Expression, bool) {
	left, leftIsNumber := e.Left.(*ast.NumberExpression)
	right, rightIsNumber := e.Right.(*ast.NumberExpression)

	if leftIsNumber && rightIsNumber {
		switch e.Operator {
		case ast.BinaryOpPlus:
			return numberLiteral(left.Value + right.Value), true
		case ast.BinaryOpMinus:
			return numberLiteral(left.Value - right.Value), true
		case ast.BinaryOpAsterisk:
			return numberLiteral(left.Value * right.Value), true
		case ast.BinaryOpSlash:
			return numberLiteral(left.Value / right.Value), true
		case ast.BinaryOpDoubleSlash:
			return numberLiteral(math.Floor(left.Value / right.Value)), true
		case ast.BinaryOpPercent:
			return numberLiteral(math.Mod(left.Value, right.Value)), true
		case ast.BinaryOpCaret:
			return numberLiteral(math.Pow(left.Value, right.Value)), true
		case ast.BinaryOpEqual:
			return boolLiteral(left.Value == right.Value), true
		case ast.BinaryOpNotEqual:
			return boolLiteral(left.Value != right.Value), true
		case ast.BinaryOpLessThan:
			return boolLiteral(left.Value < right.Value), true
		case ast.BinaryOpLessOrEqualThan:
			return boolLiteral(left.Value <= right.Value), true
		case ast.BinaryOpGreaterThan:
			return boolLiteral(left.Value > right.Value), true
		case ast.BinaryOpGreaterOrEqualThan:
			return boolLiteral(left.Value >= right.Value), true
		}
	}

	leftString, leftIsString := e.Left.(*ast.StringExpression)
	rightString, rightIsString := e.Right.(*ast.StringExpression)
	if e.Operator == ast.BinaryOpConcat && leftIsString && rightIsString {
		value := leftString.Value + rightString.Value
		return &ast.StringExpression{Raw: strconv.Quote(value), Value: value}, true
	}

	if e.Operator == ast.BinaryOpAnd {
		if isFalsy(e.Left) {
			return e.Left, true
		}
		if isLiteral(e.Left) {
			return e.Right, true
		}
	}
	if e.Operator == ast.BinaryOpOr {
		if isFalsy(e.Left) {
			return e.Right, true
		}
		if isLiteral(e.Left) {
			return e.Left, true
		}
	}

	return nil, false
}

func isFalsy(e ast.Expression) bool {
	switch e.(type) {
	case *ast.NilExpression, *ast.FalseExpression:
		return true
	default:
		return false
	}
}

func foldUnary(e *ast.UnaryExpression) (ast.Expression, bool) {
	switch e.Operator {
	case ast.UnaryOpMinus:
		if number, ok := e.Operand.(*ast.NumberExpression); ok {
			return numberLiteral(-number.Value), true
		}
	case ast.UnaryOpNot:
		if isLiteral(e.Operand) {
			return boolLiteral(isFalsy(e.Operand)), true
		}
	case ast.UnaryOpLength:
		if str, ok := e.Operand.(*ast.StringExpression); ok {
			return numberLiteral(float64(len(str.Value))), true
		}
	}
	return nil, false
}
