package rules

import (
	"reflect"
	"testing"
)

func TestRuleProperties_SortedKeys(t *testing.T) {
	props := RuleProperties{
		"zebra": StringValue("z"),
		"alpha": StringValue("a"),
		"mid":   StringValue("m"),
	}
	got := props.SortedKeys()
	want := []string{"alpha", "mid", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestRuleProperties_StringProperty(t *testing.T) {
	props := RuleProperties{"name": StringValue("foo")}
	value, ok, err := props.StringProperty("name")
	if err != nil || !ok || value != "foo" {
		t.Errorf("StringProperty() = (%q, %v, %v), want (\"foo\", true, nil)", value, ok, err)
	}

	_, ok, err = props.StringProperty("missing")
	if ok || err != nil {
		t.Errorf("StringProperty(missing) = (_, %v, %v), want (false, nil)", ok, err)
	}

	props = RuleProperties{"name": UsizeValue(1)}
	_, ok, err = props.StringProperty("name")
	if !ok || err == nil {
		t.Errorf("StringProperty(wrong type) = (_, %v, %v), want (true, error)", ok, err)
	}
}

func TestRuleProperties_UsizeProperty(t *testing.T) {
	props := RuleProperties{"count": UsizeValue(5)}
	value, ok, err := props.UsizeProperty("count")
	if err != nil || !ok || value != 5 {
		t.Errorf("UsizeProperty() = (%d, %v, %v), want (5, true, nil)", value, ok, err)
	}

	props = RuleProperties{"count": StringValue("five")}
	_, ok, err = props.UsizeProperty("count")
	if !ok || err == nil {
		t.Errorf("UsizeProperty(wrong type) = (_, %v, %v), want (true, error)", ok, err)
	}
}

func TestRuleProperties_BoolProperty(t *testing.T) {
	props := RuleProperties{"flag": BoolValue(true)}
	value, ok, err := props.BoolProperty("flag")
	if err != nil || !ok || !value {
		t.Errorf("BoolProperty() = (%v, %v, %v), want (true, true, nil)", value, ok, err)
	}
}

func TestRuleProperties_StringListProperty(t *testing.T) {
	props := RuleProperties{"globals": StringListValue{"a", "b"}}
	value, ok, err := props.StringListProperty("globals")
	if err != nil || !ok || !reflect.DeepEqual(value, []string{"a", "b"}) {
		t.Errorf("StringListProperty() = (%v, %v, %v), want ([a b], true, nil)", value, ok, err)
	}

	props = RuleProperties{"globals": StringValue("a")}
	_, ok, err = props.StringListProperty("globals")
	if !ok || err == nil {
		t.Errorf("StringListProperty(wrong type) = (_, %v, %v), want (true, error)", ok, err)
	}
}

func TestHasProperties(t *testing.T) {
	rule := NewRenameVariables()
	if HasProperties(rule) {
		t.Error("HasProperties() = true on a default-configured rule, want false")
	}
	if err := rule.Configure(RuleProperties{"globals": StringListValue{"x"}}); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if !HasProperties(rule) {
		t.Error("HasProperties() = false after configuring a non-default property, want true")
	}
}

func TestRuleConfigurationError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *RuleConfigurationError
	}{
		{"unexpected property", UnexpectedProperty("foo")},
		{"missing property", MissingProperty("foo")},
		{"string expected", StringExpected("foo")},
		{"usize expected", UsizeExpected("foo")},
		{"string list expected", StringListExpected("foo")},
		{"unexpected value type", UnexpectedValueType("foo")},
		{"unexpected value", UnexpectedValue("foo", "bar", "baz")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() == "" {
				t.Error("Error() returned an empty string")
			}
			if tt.err.Property() != "foo" {
				t.Errorf("Property() = %q, want %q", tt.err.Property(), "foo")
			}
		})
	}
}
