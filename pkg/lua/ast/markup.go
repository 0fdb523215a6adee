package ast

// MarkupElement is an embedded markup element: an open/close pair with
// children, or a self-closing element.
type MarkupElement interface {
	isMarkupElement()
}

// MarkupOpenElement is `<name attr...>children</name>`.
type MarkupOpenElement struct {
	Name       string
	Attributes []MarkupAttribute
	Children   []MarkupChild
	Location   Location
}

func (*MarkupOpenElement) isMarkupElement() {}

// MarkupSelfClosingElement is `<name attr... />`.
type MarkupSelfClosingElement struct {
	Name       string
	Attributes []MarkupAttribute
	Location   Location
}

func (*MarkupSelfClosingElement) isMarkupElement() {}

// MarkupFragment is `<>children</>`, a nameless grouping of children.
type MarkupFragment struct {
	Children []MarkupChild
	Location Location
}

func (*MarkupFragment) isMarkupElement() {}

// MarkupChild is one child of an element or fragment: a nested element, a
// nested fragment, an embedded expression, an embedded expression with
// list-spread semantics, or an empty `{}` placeholder.
type MarkupChild interface {
	isMarkupChild()
}

// MarkupChildElement wraps a nested element as a child.
type MarkupChildElement struct {
	Element MarkupElement
}

func (*MarkupChildElement) isMarkupChild() {}

// MarkupChildFragment wraps a nested fragment as a child.
type MarkupChildFragment struct {
	Fragment *MarkupFragment
}

func (*MarkupChildFragment) isMarkupChild() {}

// MarkupChildExpression is `{expression}` embedded among children.
type MarkupChildExpression struct {
	Expression Expression
}

func (*MarkupChildExpression) isMarkupChild() {}

// MarkupChildExpandedExpression is `{...expression}`, splicing a list of
// children produced by the expression.
type MarkupChildExpandedExpression struct {
	Expression Expression
}

func (*MarkupChildExpandedExpression) isMarkupChild() {}

// MarkupChildEmptyExpression is the bare `{}` placeholder child.
type MarkupChildEmptyExpression struct {
	Location Location
}

func (*MarkupChildEmptyExpression) isMarkupChild() {}

// MarkupAttribute is either a named attribute (with an optional value) or
// a spread expression `{...expression}` among an element's attributes.
type MarkupAttribute interface {
	isMarkupAttribute()
}

// MarkupNamedAttribute is `name` or `name=value`. Value is nil for a
// bare boolean-style attribute.
type MarkupNamedAttribute struct {
	Name     string
	Value    MarkupAttributeValue // nil if the attribute carries no value
	Location Location
}

func (*MarkupNamedAttribute) isMarkupAttribute() {}

// MarkupSpreadAttribute is `{...expression}` among an element's
// attributes.
type MarkupSpreadAttribute struct {
	Expression Expression
}

func (*MarkupSpreadAttribute) isMarkupAttribute() {}

// MarkupAttributeValue is the value bound to a named attribute: a quoted
// string, an embedded Lua expression, or a nested element.
type MarkupAttributeValue interface {
	isMarkupAttributeValue()
}

// MarkupDoubleQuoteString is `"..."` as an attribute value.
type MarkupDoubleQuoteString struct {
	Value string
}

func (*MarkupDoubleQuoteString) isMarkupAttributeValue() {}

// MarkupSingleQuoteString is `'...'` as an attribute value.
type MarkupSingleQuoteString struct {
	Value string
}

func (*MarkupSingleQuoteString) isMarkupAttributeValue() {}

// MarkupLuaExpressionValue is `{expression}` as an attribute value.
type MarkupLuaExpressionValue struct {
	Expression Expression
}

func (*MarkupLuaExpressionValue) isMarkupAttributeValue() {}

// MarkupElementValue is a nested element used directly as an attribute
// value.
type MarkupElementValue struct {
	Element MarkupElement
}

func (*MarkupElementValue) isMarkupAttributeValue() {}

// MarkupFragmentValue is a nested fragment used directly as an attribute
// value.
type MarkupFragmentValue struct {
	Fragment *MarkupFragment
}

func (*MarkupFragmentValue) isMarkupAttributeValue() {}

// MarkupExpression adapts a markup element into an Expression, the form it
// takes wherever markup appears in value position.
type MarkupExpression struct {
	Element  MarkupElement
	Location Location
}

func (*MarkupExpression) isExpression() {}
