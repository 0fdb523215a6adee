package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveEmptyDo deletes every DoStatement whose body is empty from every
// block it appears in.
type RemoveEmptyDo struct {
	noProperties
}

// NewRemoveEmptyDo constructs a default-configured rule.
func NewRemoveEmptyDo() *RemoveEmptyDo {
	return &RemoveEmptyDo{}
}

func (*RemoveEmptyDo) Name() string { return "remove_empty_do" }

func (r *RemoveEmptyDo) Processor() process.MutatingProcessor {
	return &removeEmptyDoProcessor{}
}

func (r *RemoveEmptyDo) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type removeEmptyDoProcessor struct {
	process.BaseMutatingProcessor
}

func (removeEmptyDoProcessor) ProcessBlock(block *ast.Block) {
	block.FilterStatements(func(statement ast.Statement) bool {
		do, ok := statement.(*ast.DoStatement)
		return !ok || !do.Body.IsEmpty()
	})
}
