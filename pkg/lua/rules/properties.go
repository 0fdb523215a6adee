package rules

import "sort"

// PropertyValue is one rule-configuration property value: boolean,
// string, unsigned integer, floating-point, list of strings, a nested
// resolver record, or none. The serialization format is untagged
// (boolean vs. number vs. string vs. list vs. record); deserialization
// attempts these in a fixed order (see decodePropertyValue in serde.go).
type PropertyValue interface {
	isPropertyValue()
}

// BoolValue is a boolean property value.
type BoolValue bool

func (BoolValue) isPropertyValue() {}

// StringValue is a string property value.
type StringValue string

func (StringValue) isPropertyValue() {}

// UsizeValue is a non-negative integer property value.
type UsizeValue uint64

func (UsizeValue) isPropertyValue() {}

// FloatValue is a floating-point property value.
type FloatValue float64

func (FloatValue) isPropertyValue() {}

// StringListValue is a list-of-strings property value.
type StringListValue []string

func (StringListValue) isPropertyValue() {}

// ResolverValue is a nested record property value, tagged by its own
// "type" entry (e.g. a module-resolution strategy). The rule that owns
// this property interprets the record's shape; the framework only
// transports it.
type ResolverValue map[string]PropertyValue

func (ResolverValue) isPropertyValue() {}

// NoneValue marks a property explicitly present with no value.
type NoneValue struct{}

func (NoneValue) isPropertyValue() {}

// RuleProperties is the property map passed to Configure and produced by
// SerializeToProperties.
type RuleProperties map[string]PropertyValue

// SortedKeys returns the map's keys in ascending lexicographic order, the
// order in which a serialized rule's properties must be emitted.
func (p RuleProperties) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StringProperty fetches a required string-typed property. ok reports
// whether the key was present at all; err is StringExpected if present
// with the wrong type.
func (p RuleProperties) StringProperty(key string) (value string, ok bool, err error) {
	raw, present := p[key]
	if !present {
		return "", false, nil
	}
	s, isString := raw.(StringValue)
	if !isString {
		return "", true, StringExpected(key)
	}
	return string(s), true, nil
}

// UsizeProperty fetches a required unsigned-integer-typed property.
func (p RuleProperties) UsizeProperty(key string) (value uint64, ok bool, err error) {
	raw, present := p[key]
	if !present {
		return 0, false, nil
	}
	u, isUsize := raw.(UsizeValue)
	if !isUsize {
		return 0, true, UsizeExpected(key)
	}
	return uint64(u), true, nil
}

// BoolProperty fetches a required boolean-typed property.
func (p RuleProperties) BoolProperty(key string) (value bool, ok bool, err error) {
	raw, present := p[key]
	if !present {
		return false, false, nil
	}
	b, isBool := raw.(BoolValue)
	if !isBool {
		return false, true, UnexpectedValueType(key)
	}
	return bool(b), true, nil
}

// StringListProperty fetches a required list-of-strings-typed property.
func (p RuleProperties) StringListProperty(key string) (value []string, ok bool, err error) {
	raw, present := p[key]
	if !present {
		return nil, false, nil
	}
	list, isList := raw.(StringListValue)
	if !isList {
		return nil, true, StringListExpected(key)
	}
	return []string(list), true, nil
}
