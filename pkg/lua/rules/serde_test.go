package rules

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEntry_MarshalYAML_BareName(t *testing.T) {
	entry := Entry{Rule: NewRemoveSpaces()}
	out, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := "remove_spaces\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}

func TestEntry_MarshalYAML_WithProperties(t *testing.T) {
	rule := NewRenameVariables()
	if err := rule.Configure(RuleProperties{"globals": StringListValue{"a", "b"}}); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	entry := Entry{Rule: rule}
	out, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := "rule: rename_variables\nglobals:\n    - a\n    - b\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}

func TestEntry_UnmarshalYAML_BareName(t *testing.T) {
	var entry Entry
	if err := yaml.Unmarshal([]byte("remove_comments"), &entry); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if entry.Rule.Name() != "remove_comments" {
		t.Errorf("Name() = %q, want %q", entry.Rule.Name(), "remove_comments")
	}
}

func TestEntry_UnmarshalYAML_WithProperties(t *testing.T) {
	var entry Entry
	src := "rule: rename_variables\nglobals:\n  - a\n  - b\n"
	if err := yaml.Unmarshal([]byte(src), &entry); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if entry.Rule.Name() != "rename_variables" {
		t.Errorf("Name() = %q, want %q", entry.Rule.Name(), "rename_variables")
	}
	props := entry.Rule.SerializeToProperties()
	list, ok, err := props.StringListProperty("globals")
	if err != nil || !ok {
		t.Fatalf("StringListProperty() = (_, %v, %v)", ok, err)
	}
	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Errorf("globals = %v, want [a b]", list)
	}
}

func TestEntry_UnmarshalYAML_UnknownRuleName(t *testing.T) {
	var entry Entry
	if err := yaml.Unmarshal([]byte("not_a_real_rule"), &entry); err == nil {
		t.Fatal("Unmarshal() = nil error, want an error for an unknown rule name")
	}
}

func TestEntry_UnmarshalYAML_MissingRuleField(t *testing.T) {
	var entry Entry
	src := "globals:\n  - a\n"
	if err := yaml.Unmarshal([]byte(src), &entry); err == nil {
		t.Fatal("Unmarshal() = nil error, want an error for a missing \"rule\" field")
	}
}

func TestEntry_UnmarshalYAML_DuplicateField(t *testing.T) {
	var entry Entry
	src := "rule: rename_variables\nglobals:\n  - a\nglobals:\n  - b\n"
	if err := yaml.Unmarshal([]byte(src), &entry); err == nil {
		t.Fatal("Unmarshal() = nil error, want an error for a duplicate field")
	}
}

func TestEntry_UnmarshalYAML_UnexpectedProperty(t *testing.T) {
	var entry Entry
	src := "rule: remove_spaces\nbogus: true\n"
	if err := yaml.Unmarshal([]byte(src), &entry); err == nil {
		t.Fatal("Unmarshal() = nil error, want an error for an unrecognized property")
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := NewDocument(DefaultStack())
	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded Document
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if len(decoded) != len(doc) {
		t.Fatalf("decoded has %d entries, want %d", len(decoded), len(doc))
	}
	rules := decoded.ToRules()
	for i, rule := range rules {
		if rule.Name() != doc[i].Rule.Name() {
			t.Errorf("entry %d name = %q, want %q", i, rule.Name(), doc[i].Rule.Name())
		}
	}
}

func TestEntry_MarshalYAML_NilRule(t *testing.T) {
	entry := Entry{}
	if _, err := yaml.Marshal(entry); err == nil {
		t.Fatal("Marshal() = nil error, want an error for a nil rule")
	}
}
