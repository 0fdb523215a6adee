package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveSpaces drops every recorded whitespace run from every trivia
// bundle in the tree, so the renderer falls back to canonical (minimal)
// spacing everywhere. It never touches comments.
type RemoveSpaces struct {
	noProperties
}

// NewRemoveSpaces constructs a default-configured rule.
func NewRemoveSpaces() *RemoveSpaces {
	return &RemoveSpaces{}
}

func (*RemoveSpaces) Name() string { return "remove_spaces" }

func (r *RemoveSpaces) Processor() process.MutatingProcessor {
	return &clearTriviaProcessor{clear: (*ast.Trivia).ClearWhitespaces}
}

func (r *RemoveSpaces) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

// clearTriviaProcessor clears one trivia aspect (whitespace or comments,
// selected by clear) on every node kind that carries a trivia bundle.
// remove_spaces and remove_comments share this shape and differ only in
// which Trivia method they call.
type clearTriviaProcessor struct {
	process.BaseMutatingProcessor
	clear func(*ast.Trivia)
}

func (p *clearTriviaProcessor) ProcessBlock(block *ast.Block) {
	p.clear(block.Trivia)
}

func (p *clearTriviaProcessor) ProcessFunctionCall(call *ast.FunctionCall) {
	p.clear(call.Trivia)
}

func (p *clearTriviaProcessor) ProcessAssignStatement(statement *ast.AssignStatement) {
	p.clear(statement.Trivia)
}

func (p *clearTriviaProcessor) ProcessGenericForStatement(statement *ast.GenericForStatement) {
	p.clear(statement.Trivia)
	p.clearVariables(statement.Identifiers)
}

func (p *clearTriviaProcessor) ProcessIfStatement(statement *ast.IfStatement) {
	p.clear(statement.Trivia)
}

func (p *clearTriviaProcessor) ProcessLocalAssignStatement(statement *ast.LocalAssignStatement) {
	p.clear(statement.Trivia)
	p.clearVariables(statement.Variables)
}

func (p *clearTriviaProcessor) ProcessNumericForStatement(statement *ast.NumericForStatement) {
	p.clear(statement.Trivia)
	p.clearVariables([]*ast.LocalVariable{statement.Variable})
}

func (p *clearTriviaProcessor) ProcessLastStatement(last *ast.LastStatement) {
	if r, ok := (*last).(*ast.ReturnStatement); ok {
		p.clear(r.Trivia)
	}
}

func (p *clearTriviaProcessor) ProcessBinaryExpression(expression *ast.BinaryExpression) {
	p.clear(expression.Trivia)
}

func (p *clearTriviaProcessor) ProcessUnaryExpression(expression *ast.UnaryExpression) {
	p.clear(expression.Trivia)
}

func (p *clearTriviaProcessor) ProcessParentheseExpression(expression *ast.ParentheseExpression) {
	p.clear(expression.Trivia)
}

func (p *clearTriviaProcessor) ProcessFieldExpression(expression *ast.FieldExpression) {
	p.clear(expression.Trivia)
}

func (p *clearTriviaProcessor) ProcessIndexExpression(expression *ast.IndexExpression) {
	p.clear(expression.Trivia)
}

func (p *clearTriviaProcessor) ProcessTableExpression(expression *ast.TableExpression) {
	p.clear(expression.Trivia)
	for _, entry := range expression.Entries {
		switch e := entry.(type) {
		case *ast.FieldEntry:
			p.clear(e.Trivia)
		case *ast.IndexEntry:
			p.clear(e.Trivia)
		}
	}
}

func (p *clearTriviaProcessor) clearVariables(variables []*ast.LocalVariable) {
	for _, variable := range variables {
		p.clear(variable.Trivia)
	}
}
