package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveUnusedIfBranch collapses an IfStatement whose condition is a
// literal boolean. A literal `false` branch is dropped and evaluation
// continues with the remaining branches/else. The first literal `true`
// branch ends the statement: if no branch survives before it, its body's
// statements replace the whole statement, spliced directly into the
// enclosing block; otherwise its body becomes the else, and the branches
// after it and the original else are dropped. This requires full statement-list access, so the rule
// hooks ProcessBlock rather than the single-slot ProcessStatement.
type RemoveUnusedIfBranch struct {
	noProperties
}

// NewRemoveUnusedIfBranch constructs a default-configured rule.
func NewRemoveUnusedIfBranch() *RemoveUnusedIfBranch {
	return &RemoveUnusedIfBranch{}
}

func (*RemoveUnusedIfBranch) Name() string { return "remove_unused_if_branch" }

func (r *RemoveUnusedIfBranch) Processor() process.MutatingProcessor {
	return &removeUnusedIfBranchProcessor{}
}

func (r *RemoveUnusedIfBranch) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type removeUnusedIfBranchProcessor struct {
	process.BaseMutatingProcessor
}

func (removeUnusedIfBranchProcessor) ProcessBlock(block *ast.Block) {
	var statements []ast.Statement
	for _, statement := range block.Statements {
		ifStatement, ok := statement.(*ast.IfStatement)
		if !ok {
			statements = append(statements, statement)
			continue
		}

		body, collapsed := collapseIfStatement(ifStatement)
		if !collapsed {
			statements = append(statements, ifStatement)
			continue
		}
		statements = append(statements, body.Statements...)
		if body.Terminal != nil {
			block.Terminal = body.Terminal
		}
	}
	block.Statements = statements
}

// collapseIfStatement drops every literal-false branch from ifStatement.
// If a literal-true branch survives, the whole statement collapses to
// that branch's body (every later branch and the original else are
// unreachable); if no branch survives at all, it collapses to the else
// body, or an empty block if there is no else. Otherwise ifStatement is
// only narrowed in place (branches/else updated) and collapsed is false.
func collapseIfStatement(ifStatement *ast.IfStatement) (body *ast.Block, collapsed bool) {
	var kept []*ast.IfBranch
	for _, branch := range ifStatement.Branches {
		switch branch.Condition.(type) {
		case *ast.TrueExpression:
			if len(kept) == 0 {
				return branch.Body, true
			}
			ifStatement.Branches = kept
			ifStatement.Else = branch.Body
			return nil, false
		case *ast.FalseExpression:
			continue
		default:
			kept = append(kept, branch)
		}
	}

	if len(kept) == 0 {
		if ifStatement.Else != nil {
			return ifStatement.Else, true
		}
		return ast.NewBlock(), true
	}

	ifStatement.Branches = kept
	return nil, false
}
