package rules

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Entry is one rule in a configuration document. It serializes as the
// bare rule name when the rule has no non-default properties, or as a
// map carrying a "rule" key plus each non-default property as its own
// entry, properties emitted in ascending lexicographic order.
//
// Deserialization mirrors the teacher's two-pass yaml.Node decoding
// (pkg/mpl/parser/yaml.go): the raw node is inspected before structured
// decoding so a scalar node and a mapping node can be told apart and
// duplicate keys rejected, which yaml.v3's ordinary struct decoding
// cannot do on its own.
type Entry struct {
	Rule Rule
}

var _ yaml.Marshaler = Entry{}
var _ yaml.Unmarshaler = (*Entry)(nil)

// MarshalYAML implements yaml.Marshaler.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.Rule == nil {
		return nil, fmt.Errorf("rules: cannot serialize a nil rule entry")
	}
	props := e.Rule.SerializeToProperties()
	if len(props) == 0 {
		return e.Rule.Name(), nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	appendScalarPair(node, "rule", e.Rule.Name())
	for _, key := range props.SortedKeys() {
		valueNode, err := propertyValueToNode(props[key])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalarNode(key), valueNode)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		rule, err := NewRuleByName(name)
		if err != nil {
			return err
		}
		if err := rule.Configure(RuleProperties{}); err != nil {
			return err
		}
		e.Rule = rule
		return nil

	case yaml.MappingNode:
		var (
			ruleName     string
			sawRuleField bool
		)
		props := RuleProperties{}
		seen := map[string]bool{}

		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			valueNode := value.Content[i+1]

			if key == "rule" {
				if sawRuleField {
					return fmt.Errorf("rules: duplicate field %q", "rule")
				}
				sawRuleField = true
				if err := valueNode.Decode(&ruleName); err != nil {
					return err
				}
				continue
			}
			if seen[key] {
				return fmt.Errorf("rules: duplicate field %q", key)
			}
			seen[key] = true

			propertyValue, err := decodePropertyValue(valueNode)
			if err != nil {
				return err
			}
			props[key] = propertyValue
		}

		if !sawRuleField {
			return fmt.Errorf("rules: missing field %q", "rule")
		}
		rule, err := NewRuleByName(ruleName)
		if err != nil {
			return err
		}
		if err := rule.Configure(props); err != nil {
			return err
		}
		e.Rule = rule
		return nil

	default:
		return fmt.Errorf("rules: a rule entry must be a string or a mapping")
	}
}

// Document is a rule configuration document: an ordered list of rule
// entries, each either a bare name or a configured rule map.
type Document []Entry

// ToRules extracts the configured rules in document order.
func (d Document) ToRules() []Rule {
	rules := make([]Rule, 0, len(d))
	for _, entry := range d {
		rules = append(rules, entry.Rule)
	}
	return rules
}

// NewDocument builds a document from an already-configured rule list.
func NewDocument(rules []Rule) Document {
	doc := make(Document, 0, len(rules))
	for _, rule := range rules {
		doc = append(doc, Entry{Rule: rule})
	}
	return doc
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendScalarPair(node *yaml.Node, key, value string) {
	node.Content = append(node.Content, scalarNode(key), scalarNode(value))
}

func propertyValueToNode(value PropertyValue) (*yaml.Node, error) {
	switch v := value.(type) {
	case BoolValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}, nil
	case StringValue:
		return scalarNode(string(v)), nil
	case UsizeValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(v), 10)}, nil
	case FloatValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(float64(v), 'g', -1, 64)}, nil
	case StringListValue:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			seq.Content = append(seq.Content, scalarNode(item))
		}
		return seq, nil
	case ResolverValue:
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			valueNode, err := propertyValueToNode(v[k])
			if err != nil {
				return nil, err
			}
			mapping.Content = append(mapping.Content, scalarNode(k), valueNode)
		}
		return mapping, nil
	case NoneValue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return nil, fmt.Errorf("rules: unsupported property value type %T", value)
	}
}

// decodePropertyValue coerces an untagged YAML node into a PropertyValue,
// attempting bool, int, float, string, list-of-strings and nested-record
// shapes in that fixed order, per the heterogeneous-property-values design
// note.
func decodePropertyValue(node *yaml.Node) (PropertyValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return NoneValue{}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return BoolValue(b), nil
		case "!!int":
			var u uint64
			if err := node.Decode(&u); err != nil {
				return nil, err
			}
			return UsizeValue(u), nil
		case "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, err
			}
			return FloatValue(f), nil
		default:
			var s string
			if err := node.Decode(&s); err != nil {
				return nil, fmt.Errorf("rules: unrecognized scalar property value %q", node.Value)
			}
			return StringValue(s), nil
		}

	case yaml.SequenceNode:
		list := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			var s string
			if err := item.Decode(&s); err != nil {
				return nil, fmt.Errorf("rules: expected a list of strings")
			}
			list = append(list, s)
		}
		return StringListValue(list), nil

	case yaml.MappingNode:
		record := ResolverValue{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			nested, err := decodePropertyValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			record[key] = nested
		}
		return record, nil

	default:
		return nil, fmt.Errorf("rules: unsupported property value node kind")
	}
}
