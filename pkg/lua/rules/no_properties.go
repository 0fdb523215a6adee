package rules

// noProperties is embedded by rules that accept no configuration at all:
// Configure rejects any key as unexpected, and the rule never has
// non-default properties to serialize.
type noProperties struct{}

func (noProperties) Configure(properties RuleProperties) error {
	for key := range properties {
		return UnexpectedProperty(key)
	}
	return nil
}

func (noProperties) SerializeToProperties() RuleProperties {
	return RuleProperties{}
}
