package process

import "github.com/darklua-go/darklua/pkg/lua/ast"

// MutatingProcessor is the mutating counterpart of Processor. The two
// broad catch-alls, ProcessStatement and ProcessExpression, receive a
// pointer to the slot holding the node (a block's statement slice element,
// or an expression field) so a hook may replace the current node's variant
// entirely — e.g. folding a BinaryExpression into a NumberExpression. The
// kind-specific hooks receive the concrete node pointer directly, which is
// sufficient to mutate its fields (including swapping one field's
// interface value, such as a FunctionCall's Arguments) without needing a
// slot pointer of their own.
//
// Mutation of siblings or ancestors during a callback is not supported;
// mutation of descendants of the current node is supported and the walker
// observes the updated descendants when it recurses.
type MutatingProcessor interface {
	ProcessBlock(block *ast.Block)
	ProcessStatement(statement *ast.Statement)
	ProcessLastStatement(last *ast.LastStatement)
	ProcessExpression(expression *ast.Expression)
	ProcessPrefixExpression(prefix *ast.Prefix)
	ProcessVariable(variable *ast.Variable)

	ProcessFunctionCall(call *ast.FunctionCall)
	ProcessAssignStatement(statement *ast.AssignStatement)
	ProcessDoStatement(statement *ast.DoStatement)
	ProcessFunctionStatement(statement *ast.FunctionStatement)
	ProcessGenericForStatement(statement *ast.GenericForStatement)
	ProcessIfStatement(statement *ast.IfStatement)
	ProcessLocalAssignStatement(statement *ast.LocalAssignStatement)
	ProcessLocalFunctionStatement(statement *ast.LocalFunctionStatement)
	ProcessNumericForStatement(statement *ast.NumericForStatement)
	ProcessRepeatStatement(statement *ast.RepeatStatement)
	ProcessWhileStatement(statement *ast.WhileStatement)

	ProcessBinaryExpression(expression *ast.BinaryExpression)
	ProcessFieldExpression(expression *ast.FieldExpression)
	ProcessFunctionExpression(expression *ast.FunctionExpression)
	ProcessIdentifierExpression(expression *ast.IdentifierExpression)
	ProcessIndexExpression(expression *ast.IndexExpression)
	ProcessNumberExpression(expression *ast.NumberExpression)
	ProcessParentheseExpression(expression *ast.ParentheseExpression)
	ProcessStringExpression(expression *ast.StringExpression)
	ProcessTableExpression(expression *ast.TableExpression)
	ProcessUnaryExpression(expression *ast.UnaryExpression)

	ProcessMarkupExpression(expression *ast.MarkupExpression)
	ProcessMarkupElement(element *ast.MarkupElement)
	ProcessMarkupFragment(fragment *ast.MarkupFragment)
	ProcessMarkupChild(child *ast.MarkupChild)
	ProcessMarkupAttribute(attribute *ast.MarkupAttribute)
	ProcessMarkupAttributeValue(value *ast.MarkupAttributeValue)
}

// BaseMutatingProcessor implements MutatingProcessor with every hook a
// no-op. Rules embed it and override only the hooks they need.
type BaseMutatingProcessor struct{}

func (BaseMutatingProcessor) ProcessBlock(*ast.Block)                                   {}
func (BaseMutatingProcessor) ProcessStatement(*ast.Statement)                           {}
func (BaseMutatingProcessor) ProcessLastStatement(*ast.LastStatement)                   {}
func (BaseMutatingProcessor) ProcessExpression(*ast.Expression)                         {}
func (BaseMutatingProcessor) ProcessPrefixExpression(*ast.Prefix)                       {}
func (BaseMutatingProcessor) ProcessVariable(*ast.Variable)                             {}
func (BaseMutatingProcessor) ProcessFunctionCall(*ast.FunctionCall)                     {}
func (BaseMutatingProcessor) ProcessAssignStatement(*ast.AssignStatement)               {}
func (BaseMutatingProcessor) ProcessDoStatement(*ast.DoStatement)                       {}
func (BaseMutatingProcessor) ProcessFunctionStatement(*ast.FunctionStatement)           {}
func (BaseMutatingProcessor) ProcessGenericForStatement(*ast.GenericForStatement)       {}
func (BaseMutatingProcessor) ProcessIfStatement(*ast.IfStatement)                       {}
func (BaseMutatingProcessor) ProcessLocalAssignStatement(*ast.LocalAssignStatement)     {}
func (BaseMutatingProcessor) ProcessLocalFunctionStatement(*ast.LocalFunctionStatement) {}
func (BaseMutatingProcessor) ProcessNumericForStatement(*ast.NumericForStatement)       {}
func (BaseMutatingProcessor) ProcessRepeatStatement(*ast.RepeatStatement)               {}
func (BaseMutatingProcessor) ProcessWhileStatement(*ast.WhileStatement)                 {}
func (BaseMutatingProcessor) ProcessBinaryExpression(*ast.BinaryExpression)             {}
func (BaseMutatingProcessor) ProcessFieldExpression(*ast.FieldExpression)               {}
func (BaseMutatingProcessor) ProcessFunctionExpression(*ast.FunctionExpression)         {}
func (BaseMutatingProcessor) ProcessIdentifierExpression(*ast.IdentifierExpression)     {}
func (BaseMutatingProcessor) ProcessIndexExpression(*ast.IndexExpression)               {}
func (BaseMutatingProcessor) ProcessNumberExpression(*ast.NumberExpression)             {}
func (BaseMutatingProcessor) ProcessParentheseExpression(*ast.ParentheseExpression)     {}
func (BaseMutatingProcessor) ProcessStringExpression(*ast.StringExpression)             {}
func (BaseMutatingProcessor) ProcessTableExpression(*ast.TableExpression)               {}
func (BaseMutatingProcessor) ProcessUnaryExpression(*ast.UnaryExpression)               {}
func (BaseMutatingProcessor) ProcessMarkupExpression(*ast.MarkupExpression)             {}
func (BaseMutatingProcessor) ProcessMarkupElement(*ast.MarkupElement)                   {}
func (BaseMutatingProcessor) ProcessMarkupFragment(*ast.MarkupFragment)                 {}
func (BaseMutatingProcessor) ProcessMarkupChild(*ast.MarkupChild)                       {}
func (BaseMutatingProcessor) ProcessMarkupAttribute(*ast.MarkupAttribute)               {}
func (BaseMutatingProcessor) ProcessMarkupAttributeValue(*ast.MarkupAttributeValue)     {}

var _ MutatingProcessor = BaseMutatingProcessor{}
