package rules

import "fmt"

// registry is the closed name-to-constructor dispatch table. Adding a rule
// is a source-level edit here, not a plugin operation.
var registry = map[string]func() Rule{
	"remove_spaces":                    func() Rule { return NewRemoveSpaces() },
	"remove_comments":                  func() Rule { return NewRemoveComments() },
	"compute_expression":               func() Rule { return NewComputeExpression() },
	"remove_unused_if_branch":          func() Rule { return NewRemoveUnusedIfBranch() },
	"remove_unused_while":              func() Rule { return NewRemoveUnusedWhile() },
	"remove_empty_do":                  func() Rule { return NewRemoveEmptyDo() },
	"remove_method_definition":         func() Rule { return NewRemoveMethodDefinition() },
	"convert_index_to_field":           func() Rule { return NewConvertIndexToField() },
	"convert_local_function_to_assign": func() Rule { return NewConvertLocalFunctionToAssign() },
	"group_local_assignment":           func() Rule { return NewGroupLocalAssignment() },
	"rename_variables":                 func() Rule { return NewRenameVariables() },
	"remove_function_call_parens":      func() Rule { return NewRemoveFunctionCallParens() },
}

// defaultStackOrder is the canonical, observable order of the default
// rule stack.
var defaultStackOrder = []string{
	"remove_spaces",
	"remove_comments",
	"compute_expression",
	"remove_unused_if_branch",
	"remove_unused_while",
	"remove_empty_do",
	"remove_method_definition",
	"convert_index_to_field",
	"convert_local_function_to_assign",
	"group_local_assignment",
	"rename_variables",
	"remove_function_call_parens",
}

// NewRuleByName constructs a fresh, default-configured rule for name.
// An unknown name yields an error naming it.
func NewRuleByName(name string) (Rule, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("invalid rule name: %s", name)
	}
	return constructor(), nil
}

// IsKnownRuleName reports whether name is in the closed rule registry.
func IsKnownRuleName(name string) bool {
	_, ok := registry[name]
	return ok
}

// RuleNames returns every registered rule name, in registry iteration
// order (unspecified) — callers needing a stable order should sort the
// result or use DefaultStack's order.
func RuleNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// DefaultStack returns the fixed, ordered default rule stack: a fresh
// default-configured instance of each of the twelve rules in the exact
// order specified (this sequence is observable and snapshot-tested).
func DefaultStack() []Rule {
	stack := make([]Rule, 0, len(defaultStackOrder))
	for _, name := range defaultStackOrder {
		rule, err := NewRuleByName(name)
		if err != nil {
			// the default stack names only registry entries; a failure
			// here means the registry and defaultStackOrder have drifted,
			// a programmer bug rather than a runtime condition.
			panic(err)
		}
		stack = append(stack, rule)
	}
	return stack
}
