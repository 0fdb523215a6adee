package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// ConvertLocalFunctionToAssign rewrites `local function f() end` into
// `local f = function() end`. This drops the name's implicit self-binding
// inside the body, so it is only safe for functions that do not recurse by
// name; callers that need recursion should not enable this rule on code
// that relies on it.
type ConvertLocalFunctionToAssign struct {
	noProperties
}

// NewConvertLocalFunctionToAssign constructs a default-configured rule.
func NewConvertLocalFunctionToAssign() *ConvertLocalFunctionToAssign {
	return &ConvertLocalFunctionToAssign{}
}

func (*ConvertLocalFunctionToAssign) Name() string { return "convert_local_function_to_assign" }

func (r *ConvertLocalFunctionToAssign) Processor() process.MutatingProcessor {
	return &convertLocalFunctionToAssignProcessor{}
}

func (r *ConvertLocalFunctionToAssign) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type convertLocalFunctionToAssignProcessor struct {
	process.BaseMutatingProcessor
}

func (convertLocalFunctionToAssignProcessor) ProcessStatement(slot *ast.Statement) {
	localFunction, ok := (*slot).(*ast.LocalFunctionStatement)
	if !ok {
		return
	}
	*slot = &ast.LocalAssignStatement{
		Variables: []*ast.LocalVariable{{Name: localFunction.Name}},
		Values:    []ast.Expression{&ast.FunctionExpression{Body: localFunction.Body, Location: localFunction.Location}},
		Location:  localFunction.Location,
	}
}
