package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// GroupLocalAssignment merges consecutive LocalAssignStatements in a block
// into a single statement: `local a = 1 local b = 2` becomes
// `local a, b = 1, 2`. Trivia on the merged-away statements is dropped,
// since there is no single position left to attach it to.
type GroupLocalAssignment struct {
	noProperties
}

// NewGroupLocalAssignment constructs a default-configured rule.
func NewGroupLocalAssignment() *GroupLocalAssignment {
	return &GroupLocalAssignment{}
}

func (*GroupLocalAssignment) Name() string { return "group_local_assignment" }

func (r *GroupLocalAssignment) Processor() process.MutatingProcessor {
	return &groupLocalAssignmentProcessor{}
}

func (r *GroupLocalAssignment) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type groupLocalAssignmentProcessor struct {
	process.BaseMutatingProcessor
}

func (groupLocalAssignmentProcessor) ProcessBlock(block *ast.Block) {
	var grouped []ast.Statement
	for _, statement := range block.Statements {
		current, ok := statement.(*ast.LocalAssignStatement)
		if !ok {
			grouped = append(grouped, statement)
			continue
		}
		if len(grouped) > 0 {
			if previous, ok := grouped[len(grouped)-1].(*ast.LocalAssignStatement); ok {
				for len(previous.Values) < len(previous.Variables) {
					previous.Values = append(previous.Values, &ast.NilExpression{})
				}
				previous.Variables = append(previous.Variables, current.Variables...)
				previous.Values = append(previous.Values, current.Values...)
				continue
			}
		}
		grouped = append(grouped, current)
	}
	block.Statements = grouped
}
