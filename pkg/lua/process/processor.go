// Package process implements the traversal engine: a deterministic,
// pre-order walk over a Block that invokes typed callbacks on every node
// through a Processor capability bag. Two flavors share the same walk
// order — Processor for read-only inspection, MutatingProcessor for
// in-place rewriting — so that a rule's traversal is never hand-rolled.
package process

import "github.com/darklua-go/darklua/pkg/lua/ast"

// Processor is a capability bag of per-node-kind hooks with no-op
// defaults, consulted during a read-only walk. Implementations embed
// BaseProcessor and override only the hooks they need; the walker never
// consults a processor for tree shape, only for callbacks.
type Processor interface {
	ProcessBlock(block *ast.Block)
	ProcessStatement(statement ast.Statement)
	ProcessLastStatement(last ast.LastStatement)
	ProcessExpression(expression ast.Expression)
	ProcessPrefixExpression(prefix ast.Prefix)
	ProcessVariable(variable ast.Variable)

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
	ProcessMarkupElement(element ast.MarkupElement)
	ProcessMarkupFragment(fragment *ast.MarkupFragment)
	ProcessMarkupChild(child ast.MarkupChild)
	ProcessMarkupAttribute(attribute ast.MarkupAttribute)
	ProcessMarkupAttributeValue(value ast.MarkupAttributeValue)
}

// BaseProcessor implements Processor with every hook a no-op. Rules embed
// it and override only the hooks they care about.
type BaseProcessor struct{}

func (BaseProcessor) ProcessBlock(*ast.Block)                                    {}
func (BaseProcessor) ProcessStatement(ast.Statement)                             {}
func (BaseProcessor) ProcessLastStatement(ast.LastStatement)                     {}
func (BaseProcessor) ProcessExpression(ast.Expression)                           {}
func (BaseProcessor) ProcessPrefixExpression(ast.Prefix)                        {}
func (BaseProcessor) ProcessVariable(ast.Variable)                              {}
func (BaseProcessor) ProcessFunctionCall(*ast.FunctionCall)                      {}
func (BaseProcessor) ProcessAssignStatement(*ast.AssignStatement)                {}
func (BaseProcessor) ProcessDoStatement(*ast.DoStatement)                        {}
func (BaseProcessor) ProcessFunctionStatement(*ast.FunctionStatement)            {}
func (BaseProcessor) ProcessGenericForStatement(*ast.GenericForStatement)        {}
func (BaseProcessor) ProcessIfStatement(*ast.IfStatement)                        {}
func (BaseProcessor) ProcessLocalAssignStatement(*ast.LocalAssignStatement)      {}
func (BaseProcessor) ProcessLocalFunctionStatement(*ast.LocalFunctionStatement)  {}
func (BaseProcessor) ProcessNumericForStatement(*ast.NumericForStatement)        {}
func (BaseProcessor) ProcessRepeatStatement(*ast.RepeatStatement)                {}
func (BaseProcessor) ProcessWhileStatement(*ast.WhileStatement)                  {}
func (BaseProcessor) ProcessBinaryExpression(*ast.BinaryExpression)              {}
func (BaseProcessor) ProcessFieldExpression(*ast.FieldExpression)                {}
func (BaseProcessor) ProcessFunctionExpression(*ast.FunctionExpression)          {}
func (BaseProcessor) ProcessIdentifierExpression(*ast.IdentifierExpression)      {}
func (BaseProcessor) ProcessIndexExpression(*ast.IndexExpression)                {}
func (BaseProcessor) ProcessNumberExpression(*ast.NumberExpression)              {}
func (BaseProcessor) ProcessParentheseExpression(*ast.ParentheseExpression)      {}
func (BaseProcessor) ProcessStringExpression(*ast.StringExpression)              {}
func (BaseProcessor) ProcessTableExpression(*ast.TableExpression)                {}
func (BaseProcessor) ProcessUnaryExpression(*ast.UnaryExpression)                {}
func (BaseProcessor) ProcessMarkupExpression(*ast.MarkupExpression)              {}
func (BaseProcessor) ProcessMarkupElement(ast.MarkupElement)                     {}
func (BaseProcessor) ProcessMarkupFragment(*ast.MarkupFragment)                  {}
func (BaseProcessor) ProcessMarkupChild(ast.MarkupChild)                         {}
func (BaseProcessor) ProcessMarkupAttribute(ast.MarkupAttribute)                 {}
func (BaseProcessor) ProcessMarkupAttributeValue(ast.MarkupAttributeValue)       {}

var _ Processor = BaseProcessor{}
