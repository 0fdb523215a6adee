package process

import "github.com/darklua-go/darklua/pkg/lua/ast"

// VisitBlock is the canonical read-only walk. The order is pre-order on
// the current node, then left-to-right on children: ProcessBlock first,
// then each statement in order, then — if present — the terminal
// statement and its sub-expressions.
func VisitBlock(block *ast.Block, p Processor) {
	if block == nil {
		return
	}
	p.ProcessBlock(block)
	for _, statement := range block.Statements {
		VisitStatement(statement, p)
	}
	if block.Terminal != nil {
		VisitLastStatement(block.Terminal, p)
	}
}

// VisitStatement processes the generic statement hook, then dispatches to
// the kind-specific hook and recurses into children in declaration order.
func VisitStatement(statement ast.Statement, p Processor) {
	if statement == nil {
		return
	}
	p.ProcessStatement(statement)
	switch s := statement.(type) {
	case *ast.AssignStatement:
		p.ProcessAssignStatement(s)
		for _, variable := range s.Variables {
			VisitVariable(variable, p)
		}
		for _, value := range s.Values {
			VisitExpression(value, p)
		}
	case *ast.DoStatement:
		p.ProcessDoStatement(s)
		VisitBlock(s.Body, p)
	case *ast.CallStatement:
		p.ProcessFunctionCall(s.Call)
		visitFunctionCallChildren(s.Call, p)
	case *ast.FunctionStatement:
		p.ProcessFunctionStatement(s)
		VisitFunctionBody(s.Body, p)
	case *ast.GenericForStatement:
		p.ProcessGenericForStatement(s)
		for _, expression := range s.Expressions {
			VisitExpression(expression, p)
		}
		VisitBlock(s.Body, p)
	case *ast.IfStatement:
		p.ProcessIfStatement(s)
		for _, branch := range s.Branches {
			VisitExpression(branch.Condition, p)
			VisitBlock(branch.Body, p)
		}
		if s.Else != nil {
			VisitBlock(s.Else, p)
		}
	case *ast.LocalAssignStatement:
		p.ProcessLocalAssignStatement(s)
		for _, value := range s.Values {
			VisitExpression(value, p)
		}
	case *ast.LocalFunctionStatement:
		p.ProcessLocalFunctionStatement(s)
		VisitFunctionBody(s.Body, p)
	case *ast.NumericForStatement:
		p.ProcessNumericForStatement(s)
		VisitExpression(s.Start, p)
		VisitExpression(s.End, p)
		if s.Step != nil {
			VisitExpression(s.Step, p)
		}
		VisitBlock(s.Body, p)
	case *ast.RepeatStatement:
		p.ProcessRepeatStatement(s)
		VisitBlock(s.Body, p)
		VisitExpression(s.Condition, p)
	case *ast.WhileStatement:
		p.ProcessWhileStatement(s)
		VisitExpression(s.Condition, p)
		VisitBlock(s.Body, p)
	default:
		panic("process: unhandled statement kind")
	}
}

// VisitLastStatement processes the terminal-statement hook and, for
// Return, recurses into its expressions. Break has no sub-expressions.
func VisitLastStatement(last ast.LastStatement, p Processor) {
	if last == nil {
		return
	}
	p.ProcessLastStatement(last)
	if r, ok := last.(*ast.ReturnStatement); ok {
		for _, expression := range r.Expressions {
			VisitExpression(expression, p)
		}
	}
}

// VisitExpression processes the generic expression hook, then dispatches.
// Leaf expressions (Nil, True, False, VariableArguments, Number, String,
// bare Identifier) invoke only their specific hook; composites invoke
// their hook before recursing into children.
func VisitExpression(expression ast.Expression, p Processor) {
	if expression == nil {
		return
	}
	p.ProcessExpression(expression)
	switch e := expression.(type) {
	case *ast.NilExpression, *ast.TrueExpression, *ast.FalseExpression, *ast.VariableArgumentsExpression:
		// leaf, no specific hook defined
	case *ast.NumberExpression:
		p.ProcessNumberExpression(e)
	case *ast.StringExpression:
		p.ProcessStringExpression(e)
	case *ast.IdentifierExpression:
		p.ProcessIdentifierExpression(e)
	case *ast.BinaryExpression:
		p.ProcessBinaryExpression(e)
		VisitExpression(e.Left, p)
		VisitExpression(e.Right, p)
	case *ast.UnaryExpression:
		p.ProcessUnaryExpression(e)
		VisitExpression(e.Operand, p)
	case *ast.ParentheseExpression:
		p.ProcessParentheseExpression(e)
		VisitExpression(e.Inner, p)
	case *ast.FunctionExpression:
		p.ProcessFunctionExpression(e)
		VisitFunctionBody(e.Body, p)
	case *ast.FunctionCall:
		p.ProcessFunctionCall(e)
		visitFunctionCallChildren(e, p)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(e)
		VisitPrefix(e.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(e)
		VisitPrefix(e.Object, p)
		VisitExpression(e.Key, p)
	case *ast.TableExpression:
		p.ProcessTableExpression(e)
		for _, entry := range e.Entries {
			visitTableEntry(entry, p)
		}
	case *ast.MarkupExpression:
		p.ProcessMarkupExpression(e)
		VisitMarkupElement(e.Element, p)
	default:
		panic("process: unhandled expression kind")
	}
}

// VisitPrefix visits a node occupying a Prefix-typed slot: the receiver of
// a field access, index access, or call. It calls ProcessPrefixExpression
// in addition to the node's own kind-specific hook, matching the chain
// position's distinct callback from a top-level expression visit.
func VisitPrefix(prefix ast.Prefix, p Processor) {
	if prefix == nil {
		return
	}
	p.ProcessPrefixExpression(prefix)
	switch v := prefix.(type) {
	case *ast.IdentifierExpression:
		p.ProcessIdentifierExpression(v)
	case *ast.FunctionCall:
		p.ProcessFunctionCall(v)
		visitFunctionCallChildren(v, p)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(v)
		VisitPrefix(v.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(v)
		VisitPrefix(v.Object, p)
		VisitExpression(v.Key, p)
	case *ast.ParentheseExpression:
		p.ProcessParentheseExpression(v)
		VisitExpression(v.Inner, p)
	default:
		panic("process: unhandled prefix kind")
	}
}

// VisitVariable visits an assignment target: each variable of an
// AssignStatement is visited this way ("each as an l-value visit").
func VisitVariable(variable ast.Variable, p Processor) {
	if variable == nil {
		return
	}
	p.ProcessVariable(variable)
	switch v := variable.(type) {
	case *ast.IdentifierExpression:
		p.ProcessIdentifierExpression(v)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(v)
		VisitPrefix(v.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(v)
		VisitPrefix(v.Object, p)
		VisitExpression(v.Key, p)
	default:
		panic("process: unhandled variable kind")
	}
}

// VisitFunctionBody recurses into a function's block. Parameters carry no
// per-parameter hook (they are bare names, not Variable nodes).
func VisitFunctionBody(body *ast.FunctionBody, p Processor) {
	if body == nil {
		return
	}
	VisitBlock(body.Block, p)
}

func visitFunctionCallChildren(call *ast.FunctionCall, p Processor) {
	VisitPrefix(call.Prefix, p)
	visitArguments(call.Arguments, p)
}

func visitArguments(arguments ast.Arguments, p Processor) {
	switch a := arguments.(type) {
	case *ast.TupleArguments:
		for _, expression := range a.Expressions {
			VisitExpression(expression, p)
		}
	case *ast.StringArguments:
		p.ProcessStringExpression(a.String)
	case *ast.TableArguments:
		p.ProcessTableExpression(a.Table)
		for _, entry := range a.Table.Entries {
			visitTableEntry(entry, p)
		}
	default:
		panic("process: unhandled arguments kind")
	}
}

func visitTableEntry(entry ast.TableEntry, p Processor) {
	switch e := entry.(type) {
	case *ast.FieldEntry:
		VisitExpression(e.Value, p)
	case *ast.IndexEntry:
		VisitExpression(e.Key, p)
		VisitExpression(e.Value, p)
	case *ast.ValueEntry:
		VisitExpression(e.Value, p)
	default:
		panic("process: unhandled table entry kind")
	}
}

// VisitMarkupElement visits an element: attributes in order, then
// children in order.
func VisitMarkupElement(element ast.MarkupElement, p Processor) {
	if element == nil {
		return
	}
	p.ProcessMarkupElement(element)
	switch e := element.(type) {
	case *ast.MarkupOpenElement:
		for _, attribute := range e.Attributes {
			VisitMarkupAttribute(attribute, p)
		}
		for _, child := range e.Children {
			VisitMarkupChild(child, p)
		}
	case *ast.MarkupSelfClosingElement:
		for _, attribute := range e.Attributes {
			VisitMarkupAttribute(attribute, p)
		}
	default:
		panic("process: unhandled markup element kind")
	}
}

// VisitMarkupFragment visits a fragment's children in order.
func VisitMarkupFragment(fragment *ast.MarkupFragment, p Processor) {
	if fragment == nil {
		return
	}
	p.ProcessMarkupFragment(fragment)
	for _, child := range fragment.Children {
		VisitMarkupChild(child, p)
	}
}

// VisitMarkupChild dispatches per child variant.
func VisitMarkupChild(child ast.MarkupChild, p Processor) {
	if child == nil {
		return
	}
	p.ProcessMarkupChild(child)
	switch c := child.(type) {
	case *ast.MarkupChildElement:
		VisitMarkupElement(c.Element, p)
	case *ast.MarkupChildFragment:
		VisitMarkupFragment(c.Fragment, p)
	case *ast.MarkupChildExpression:
		VisitExpression(c.Expression, p)
	case *ast.MarkupChildExpandedExpression:
		VisitExpression(c.Expression, p)
	case *ast.MarkupChildEmptyExpression:
		// no sub-expression
	default:
		panic("process: unhandled markup child kind")
	}
}

// VisitMarkupAttribute visits an attribute's value if any, or the spread
// expression if it is a spread attribute.
func VisitMarkupAttribute(attribute ast.MarkupAttribute, p Processor) {
	if attribute == nil {
		return
	}
	p.ProcessMarkupAttribute(attribute)
	switch a := attribute.(type) {
	case *ast.MarkupNamedAttribute:
		if a.Value != nil {
			VisitMarkupAttributeValue(a.Value, p)
		}
	case *ast.MarkupSpreadAttribute:
		VisitExpression(a.Expression, p)
	default:
		panic("process: unhandled markup attribute kind")
	}
}

// VisitMarkupAttributeValue dispatches per attribute-value variant.
func VisitMarkupAttributeValue(value ast.MarkupAttributeValue, p Processor) {
	if value == nil {
		return
	}
	p.ProcessMarkupAttributeValue(value)
	switch v := value.(type) {
	case *ast.MarkupDoubleQuoteString, *ast.MarkupSingleQuoteString:
		// leaf, no sub-expression
	case *ast.MarkupLuaExpressionValue:
		VisitExpression(v.Expression, p)
	case *ast.MarkupElementValue:
		VisitMarkupElement(v.Element, p)
	case *ast.MarkupFragmentValue:
		VisitMarkupFragment(v.Fragment, p)
	default:
		panic("process: unhandled markup attribute value kind")
	}
}
