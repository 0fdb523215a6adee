package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveFunctionCallParens replaces `f(("literal"))`/`f({...})`-shaped
// calls — a single-element Tuple holding a String or Table — with the
// bare String or Table argument, since Lua allows calling with a single
// string or table literal directly. Any other argument shape is left
// untouched.
type RemoveFunctionCallParens struct {
	noProperties
}

// NewRemoveFunctionCallParens constructs a default-configured rule.
func NewRemoveFunctionCallParens() *RemoveFunctionCallParens {
	return &RemoveFunctionCallParens{}
}

func (*RemoveFunctionCallParens) Name() string { return "remove_function_call_parens" }

func (r *RemoveFunctionCallParens) Processor() process.MutatingProcessor {
	return &removeFunctionCallParensProcessor{}
}

func (r *RemoveFunctionCallParens) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type removeFunctionCallParensProcessor struct {
	process.BaseMutatingProcessor
}

func (removeFunctionCallParensProcessor) ProcessFunctionCall(call *ast.FunctionCall) {
	tuple, ok := call.Arguments.(*ast.TupleArguments)
	if !ok || len(tuple.Expressions) != 1 {
		return
	}
	switch single := tuple.Expressions[0].(type) {
	case *ast.StringExpression:
		call.Arguments = &ast.StringArguments{String: single}
	case *ast.TableExpression:
		call.Arguments = &ast.TableArguments{Table: single}
	}
}
