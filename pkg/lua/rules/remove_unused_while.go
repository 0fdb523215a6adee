package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveUnusedWhile replaces a `while false do ... end` loop, which can
// never execute its body, with an empty DoStatement. remove_empty_do runs
// immediately after this rule in the default stack and deletes the
// resulting empty do entirely.
type RemoveUnusedWhile struct {
	noProperties
}

// NewRemoveUnusedWhile constructs a default-configured rule.
func NewRemoveUnusedWhile() *RemoveUnusedWhile {
	return &RemoveUnusedWhile{}
}

func (*RemoveUnusedWhile) Name() string { return "remove_unused_while" }

func (r *RemoveUnusedWhile) Processor() process.MutatingProcessor {
	return &removeUnusedWhileProcessor{}
}

func (r *RemoveUnusedWhile) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type removeUnusedWhileProcessor struct {
	process.BaseMutatingProcessor
}

func (removeUnusedWhileProcessor) ProcessStatement(slot *ast.Statement) {
	whileStatement, ok := (*slot).(*ast.WhileStatement)
	if !ok {
		return
	}
	if _, isFalse := whileStatement.Condition.(*ast.FalseExpression); isFalse {
		*slot = &ast.DoStatement{Body: ast.NewBlock(), Location: whileStatement.Location}
	}
}
