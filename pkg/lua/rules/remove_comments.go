package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// RemoveComments drops every comment from every trivia bundle in the
// tree. It never touches recorded whitespace.
type RemoveComments struct {
	noProperties
}

// NewRemoveComments constructs a default-configured rule.
func NewRemoveComments() *RemoveComments {
	return &RemoveComments{}
}

func (*RemoveComments) Name() string { return "remove_comments" }

func (r *RemoveComments) Processor() process.MutatingProcessor {
	return &clearTriviaProcessor{clear: (*ast.Trivia).ClearComments}
}

func (r *RemoveComments) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}
