package rules

import (
	"regexp"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

func isValidFieldName(name string) bool {
	return identifierPattern.MatchString(name) && !luaKeywords[name]
}

// ConvertIndexToField rewrites `obj["field"]` into `obj.field` whenever the
// key is a string literal that is also a valid bare identifier. The
// IndexExpression shape appears as an Expression, a Prefix and a Variable
// depending on where it sits in the tree, so this rule hooks all three
// slot-bearing entry points.
type ConvertIndexToField struct {
	noProperties
}

// NewConvertIndexToField constructs a default-configured rule.
func NewConvertIndexToField() *ConvertIndexToField {
	return &ConvertIndexToField{}
}

func (*ConvertIndexToField) Name() string { return "convert_index_to_field" }

func (r *ConvertIndexToField) Processor() process.MutatingProcessor {
	return &convertIndexToFieldProcessor{}
}

func (r *ConvertIndexToField) Process(block *ast.Block, context *Context) error {
	return ProcessFlawless(r, block)
}

type convertIndexToFieldProcessor struct {
	process.BaseMutatingProcessor
}

func convertIndex(index *ast.IndexExpression) (*ast.FieldExpression, bool) {
	key, ok := index.Key.(*ast.StringExpression)
	if !ok || !isValidFieldName(key.Value) {
		return nil, false
	}
	return &ast.FieldExpression{
		Object:   index.Object,
		Field:    key.Value,
		Trivia:   index.Trivia,
		Location: index.Location,
	}, true
}

func (convertIndexToFieldProcessor) ProcessExpression(slot *ast.Expression) {
	if index, ok := (*slot).(*ast.IndexExpression); ok {
		if field, converted := convertIndex(index); converted {
			*slot = field
		}
	}
}

func (convertIndexToFieldProcessor) ProcessPrefixExpression(slot *ast.Prefix) {
	if index, ok := (*slot).(*ast.IndexExpression); ok {
		if field, converted := convertIndex(index); converted {
			*slot = field
		}
	}
}

func (convertIndexToFieldProcessor) ProcessVariable(slot *ast.Variable) {
	if index, ok := (*slot).(*ast.IndexExpression); ok {
		if field, converted := convertIndex(index); converted {
			*slot = field
		}
	}
}
