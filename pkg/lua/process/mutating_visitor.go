package process

import "github.com/darklua-go/darklua/pkg/lua/ast"

// VisitBlockMut is the mutating counterpart of VisitBlock. It shares the
// exact same structural algorithm; the only difference is that slots
// holding an interface-typed node (a statement, an expression, ...) are
// passed by address so a hook may swap the node's variant in place before
// the walker recurses into whatever the slot now holds.
func VisitBlockMut(block *ast.Block, p MutatingProcessor) {
	if block == nil {
		return
	}
	p.ProcessBlock(block)
	for i := range block.Statements {
		VisitStatementMut(&block.Statements[i], p)
	}
	if block.Terminal != nil {
		VisitLastStatementMut(&block.Terminal, p)
	}
}

// VisitStatementMut processes the statement slot, re-reads it (the hook
// may have replaced it), then dispatches and recurses.
func VisitStatementMut(slot *ast.Statement, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessStatement(slot)
	switch s := (*slot).(type) {
	case *ast.AssignStatement:
		p.ProcessAssignStatement(s)
		for i := range s.Variables {
			VisitVariableMut(&s.Variables[i], p)
		}
		for i := range s.Values {
			VisitExpressionMut(&s.Values[i], p)
		}
	case *ast.DoStatement:
		p.ProcessDoStatement(s)
		VisitBlockMut(s.Body, p)
	case *ast.CallStatement:
		p.ProcessFunctionCall(s.Call)
		visitFunctionCallChildrenMut(s.Call, p)
	case *ast.FunctionStatement:
		p.ProcessFunctionStatement(s)
		VisitFunctionBodyMut(s.Body, p)
	case *ast.GenericForStatement:
		p.ProcessGenericForStatement(s)
		for i := range s.Expressions {
			VisitExpressionMut(&s.Expressions[i], p)
		}
		VisitBlockMut(s.Body, p)
	case *ast.IfStatement:
		p.ProcessIfStatement(s)
		for _, branch := range s.Branches {
			VisitExpressionMut(&branch.Condition, p)
			VisitBlockMut(branch.Body, p)
		}
		if s.Else != nil {
			VisitBlockMut(s.Else, p)
		}
	case *ast.LocalAssignStatement:
		p.ProcessLocalAssignStatement(s)
		for i := range s.Values {
			VisitExpressionMut(&s.Values[i], p)
		}
	case *ast.LocalFunctionStatement:
		p.ProcessLocalFunctionStatement(s)
		VisitFunctionBodyMut(s.Body, p)
	case *ast.NumericForStatement:
		p.ProcessNumericForStatement(s)
		VisitExpressionMut(&s.Start, p)
		VisitExpressionMut(&s.End, p)
		if s.Step != nil {
			VisitExpressionMut(&s.Step, p)
		}
		VisitBlockMut(s.Body, p)
	case *ast.RepeatStatement:
		p.ProcessRepeatStatement(s)
		VisitBlockMut(s.Body, p)
		VisitExpressionMut(&s.Condition, p)
	case *ast.WhileStatement:
		p.ProcessWhileStatement(s)
		VisitExpressionMut(&s.Condition, p)
		VisitBlockMut(s.Body, p)
	default:
		panic("process: unhandled statement kind")
	}
}

// VisitLastStatementMut processes the terminal-statement slot and, for
// Return, recurses into its expressions.
func VisitLastStatementMut(slot *ast.LastStatement, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessLastStatement(slot)
	if r, ok := (*slot).(*ast.ReturnStatement); ok {
		for i := range r.Expressions {
			VisitExpressionMut(&r.Expressions[i], p)
		}
	}
}

// VisitExpressionMut processes the expression slot, re-reads it, then
// dispatches and recurses.
func VisitExpressionMut(slot *ast.Expression, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessExpression(slot)
	switch e := (*slot).(type) {
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
		VisitExpressionMut(&e.Left, p)
		VisitExpressionMut(&e.Right, p)
	case *ast.UnaryExpression:
		p.ProcessUnaryExpression(e)
		VisitExpressionMut(&e.Operand, p)
	case *ast.ParentheseExpression:
		p.ProcessParentheseExpression(e)
		VisitExpressionMut(&e.Inner, p)
	case *ast.FunctionExpression:
		p.ProcessFunctionExpression(e)
		VisitFunctionBodyMut(e.Body, p)
	case *ast.FunctionCall:
		p.ProcessFunctionCall(e)
		visitFunctionCallChildrenMut(e, p)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(e)
		VisitPrefixMut(&e.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(e)
		VisitPrefixMut(&e.Object, p)
		VisitExpressionMut(&e.Key, p)
	case *ast.TableExpression:
		p.ProcessTableExpression(e)
		for i := range e.Entries {
			visitTableEntryMut(&e.Entries[i], p)
		}
	case *ast.MarkupExpression:
		p.ProcessMarkupExpression(e)
		VisitMarkupElementMut(&e.Element, p)
	default:
		panic("process: unhandled expression kind")
	}
}

// VisitPrefixMut is the mutating counterpart of VisitPrefix.
func VisitPrefixMut(slot *ast.Prefix, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessPrefixExpression(slot)
	switch v := (*slot).(type) {
	case *ast.IdentifierExpression:
		p.ProcessIdentifierExpression(v)
	case *ast.FunctionCall:
		p.ProcessFunctionCall(v)
		visitFunctionCallChildrenMut(v, p)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(v)
		VisitPrefixMut(&v.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(v)
		VisitPrefixMut(&v.Object, p)
		VisitExpressionMut(&v.Key, p)
	case *ast.ParentheseExpression:
		p.ProcessParentheseExpression(v)
		VisitExpressionMut(&v.Inner, p)
	default:
		panic("process: unhandled prefix kind")
	}
}

// VisitVariableMut is the mutating counterpart of VisitVariable.
func VisitVariableMut(slot *ast.Variable, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessVariable(slot)
	switch v := (*slot).(type) {
	case *ast.IdentifierExpression:
		p.ProcessIdentifierExpression(v)
	case *ast.FieldExpression:
		p.ProcessFieldExpression(v)
		VisitPrefixMut(&v.Object, p)
	case *ast.IndexExpression:
		p.ProcessIndexExpression(v)
		VisitPrefixMut(&v.Object, p)
		VisitExpressionMut(&v.Key, p)
	default:
		panic("process: unhandled variable kind")
	}
}

// VisitFunctionBodyMut recurses into a function's block.
func VisitFunctionBodyMut(body *ast.FunctionBody, p MutatingProcessor) {
	if body == nil {
		return
	}
	VisitBlockMut(body.Block, p)
}

func visitFunctionCallChildrenMut(call *ast.FunctionCall, p MutatingProcessor) {
	VisitPrefixMut(&call.Prefix, p)
	visitArgumentsMut(call.Arguments, p)
}

// visitArgumentsMut recurses into an arguments node. Rules that replace
// the arguments slot wholesale (remove_function_call_parens) do so inside
// ProcessFunctionCall, which already holds *ast.FunctionCall and can
// assign call.Arguments directly — no slot pointer is needed here.
func visitArgumentsMut(arguments ast.Arguments, p MutatingProcessor) {
	switch a := arguments.(type) {
	case *ast.TupleArguments:
		for i := range a.Expressions {
			VisitExpressionMut(&a.Expressions[i], p)
		}
	case *ast.StringArguments:
		p.ProcessStringExpression(a.String)
	case *ast.TableArguments:
		p.ProcessTableExpression(a.Table)
		for i := range a.Table.Entries {
			visitTableEntryMut(&a.Table.Entries[i], p)
		}
	default:
		panic("process: unhandled arguments kind")
	}
}

func visitTableEntryMut(slot *ast.TableEntry, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	switch e := (*slot).(type) {
	case *ast.FieldEntry:
		VisitExpressionMut(&e.Value, p)
	case *ast.IndexEntry:
		VisitExpressionMut(&e.Key, p)
		VisitExpressionMut(&e.Value, p)
	case *ast.ValueEntry:
		VisitExpressionMut(&e.Value, p)
	default:
		panic("process: unhandled table entry kind")
	}
}

// VisitMarkupElementMut is the mutating counterpart of VisitMarkupElement.
func VisitMarkupElementMut(slot *ast.MarkupElement, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessMarkupElement(slot)
	switch e := (*slot).(type) {
	case *ast.MarkupOpenElement:
		for i := range e.Attributes {
			VisitMarkupAttributeMut(&e.Attributes[i], p)
		}
		for i := range e.Children {
			VisitMarkupChildMut(&e.Children[i], p)
		}
	case *ast.MarkupSelfClosingElement:
		for i := range e.Attributes {
			VisitMarkupAttributeMut(&e.Attributes[i], p)
		}
	default:
		panic("process: unhandled markup element kind")
	}
}

// VisitMarkupFragmentMut is the mutating counterpart of VisitMarkupFragment.
func VisitMarkupFragmentMut(fragment *ast.MarkupFragment, p MutatingProcessor) {
	if fragment == nil {
		return
	}
	p.ProcessMarkupFragment(fragment)
	for i := range fragment.Children {
		VisitMarkupChildMut(&fragment.Children[i], p)
	}
}

// VisitMarkupChildMut is the mutating counterpart of VisitMarkupChild.
func VisitMarkupChildMut(slot *ast.MarkupChild, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessMarkupChild(slot)
	switch c := (*slot).(type) {
	case *ast.MarkupChildElement:
		VisitMarkupElementMut(&c.Element, p)
	case *ast.MarkupChildFragment:
		VisitMarkupFragmentMut(c.Fragment, p)
	case *ast.MarkupChildExpression:
		VisitExpressionMut(&c.Expression, p)
	case *ast.MarkupChildExpandedExpression:
		VisitExpressionMut(&c.Expression, p)
	case *ast.MarkupChildEmptyExpression:
		// no sub-expression
	default:
		panic("process: unhandled markup child kind")
	}
}

// VisitMarkupAttributeMut is the mutating counterpart of
// VisitMarkupAttribute.
func VisitMarkupAttributeMut(slot *ast.MarkupAttribute, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessMarkupAttribute(slot)
	switch a := (*slot).(type) {
	case *ast.MarkupNamedAttribute:
		if a.Value != nil {
			VisitMarkupAttributeValueMut(&a.Value, p)
		}
	case *ast.MarkupSpreadAttribute:
		VisitExpressionMut(&a.Expression, p)
	default:
		panic("process: unhandled markup attribute kind")
	}
}

// VisitMarkupAttributeValueMut is the mutating counterpart of
// VisitMarkupAttributeValue.
func VisitMarkupAttributeValueMut(slot *ast.MarkupAttributeValue, p MutatingProcessor) {
	if slot == nil || *slot == nil {
		return
	}
	p.ProcessMarkupAttributeValue(slot)
	switch v := (*slot).(type) {
	case *ast.MarkupDoubleQuoteString, *ast.MarkupSingleQuoteString:
		// leaf, no sub-expression
	case *ast.MarkupLuaExpressionValue:
		VisitExpressionMut(&v.Expression, p)
	case *ast.MarkupElementValue:
		VisitMarkupElementMut(&v.Element, p)
	case *ast.MarkupFragmentValue:
		VisitMarkupFragmentMut(v.Fragment, p)
	default:
		panic("process: unhandled markup attribute value kind")
	}
}
