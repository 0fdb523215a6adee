package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveMethodDefinition rewrites `function obj:method() end` into
// `function obj.method(self, ...) end`: the method segment becomes a
// trailing dotted field and the implicit receiver becomes an explicit
// first parameter. Targets older runtimes that lack the colon-method
// definition shorthand.
type RemoveMethodDefinition struct {
	noProperties
}

// NewRemoveMethodDefinition constructs a default-configured rule.
func NewRemoveMethodDefinition() *RemoveMethodDefinition {
	return &RemoveMethodDefinition{}
}

func (*RemoveMethodDefinition) Name() string { return "remove_method_definition" }

func (r *RemoveMethodDefinition) Processor() process.MutatingProcessor {
	return &removeMethodDefinitionProcessor{}
}

func (r *RemoveMethodDefinition) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type removeMethodDefinitionProcessor struct {
	process.BaseMutatingProcessor
}

func (removeMethodDefinitionProcessor) ProcessFunctionStatement(statement *ast.FunctionStatement) {
	name := statement.Name
	if !name.IsMethod() {
		return
	}
	name.Fields = append(name.Fields, name.MethodName)
	name.MethodName = ""
	statement.Body.Parameters = append([]string{"self"}, statement.Body.Parameters...)
}
