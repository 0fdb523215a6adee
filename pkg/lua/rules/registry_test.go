package rules

import "testing"

func TestDefaultStack_Order(t *testing.T) {
	want := []string{
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
	stack := DefaultStack()
	if len(stack) != len(want) {
		t.Fatalf("DefaultStack() has %d rules, want %d", len(stack), len(want))
	}
	for i, rule := range stack {
		if rule.Name() != want[i] {
			t.Errorf("stack[%d].Name() = %q, want %q", i, rule.Name(), want[i])
		}
	}
}

func TestDefaultStack_FreshInstancesEachCall(t *testing.T) {
	a := DefaultStack()
	b := DefaultStack()
	renamerA, ok := a[10].(*RenameVariables)
	if !ok {
		t.Fatalf("stack[10] = %T, want *RenameVariables", a[10])
	}
	renamerB := b[10].(*RenameVariables)
	if renamerA == renamerB {
		t.Error("DefaultStack() returned the same rule instance across calls")
	}
}

func TestNewRuleByName_Known(t *testing.T) {
	rule, err := NewRuleByName("compute_expression")
	if err != nil {
		t.Fatalf("NewRuleByName() failed: %v", err)
	}
	if rule.Name() != "compute_expression" {
		t.Errorf("Name() = %q, want %q", rule.Name(), "compute_expression")
	}
}

func TestNewRuleByName_Unknown(t *testing.T) {
	_, err := NewRuleByName("does_not_exist")
	if err == nil {
		t.Fatal("NewRuleByName() = nil error, want an error for an unknown name")
	}
}

func TestIsKnownRuleName(t *testing.T) {
	if !IsKnownRuleName("remove_spaces") {
		t.Error("IsKnownRuleName(\"remove_spaces\") = false, want true")
	}
	if IsKnownRuleName("not_a_rule") {
		t.Error("IsKnownRuleName(\"not_a_rule\") = true, want false")
	}
}

func TestRuleNames_CoversRegistry(t *testing.T) {
	names := RuleNames()
	if len(names) != 12 {
		t.Fatalf("RuleNames() has %d entries, want 12", len(names))
	}
	seen := map[string]bool{}
	for _, name := range names {
		if !IsKnownRuleName(name) {
			t.Errorf("RuleNames() returned unknown name %q", name)
		}
		seen[name] = true
	}
	if len(seen) != 12 {
		t.Errorf("RuleNames() has duplicates: %v", names)
	}
}
