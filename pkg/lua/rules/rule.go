package rules

import (
	"strings"

	"github.com/darklua-go/darklua/pkg/lua/ast"
	"github.com/darklua-go/darklua/pkg/lua/process"
)

// ProcessError is the error kind returned from Rule.Process: zero or more
// human-readable messages. A nil ProcessError (or a Process return of
// nil) means success.
type ProcessError []string

func (e ProcessError) Error() string {
	return strings.Join([]string(e), "; ")
}

// RuleConfiguration is the configuration surface every rule implements:
// a stable name, a typed property map accepted by Configure, and the
// non-default property values the rule currently holds.
type RuleConfiguration interface {
	// Configure receives the rule's property map. Unknown keys must be
	// reported as UnexpectedProperty, missing required keys as
	// MissingProperty, and wrong-typed or out-of-domain values with the
	// matching error constructor.
	Configure(properties RuleProperties) error

	// Name reports the rule's stable registry name.
	Name() string

	// SerializeToProperties returns the rule's non-default property
	// values, ready for (de)serialization.
	SerializeToProperties() RuleProperties
}

// HasProperties reports whether r currently holds any non-default
// property values, derived from its serialized property set.
func HasProperties(r RuleConfiguration) bool {
	return len(r.SerializeToProperties()) > 0
}

// Rule is a named, configurable, serializable transformation unit that
// owns a processor and drives the mutating walker over a block.
type Rule interface {
	RuleConfiguration

	// Process runs the rule against block, using context for any
	// per-file data it needs (e.g. the current file path). It returns
	// nil on success or a ProcessError listing human-readable failures.
	Process(block *ast.Block, context *Context) error
}

// FlawlessRule is a rule that can never fail: it only ever supplies a
// mutating processor to run over the block. ProcessFlawless adapts it
// into the Process contract, always returning nil.
type FlawlessRule interface {
	RuleConfiguration

	// Processor returns a freshly constructed processor for one run.
	// A fresh instance per call keeps any per-run state (e.g. a
	// renamer's counters) isolated between files.
	Processor() process.MutatingProcessor
}

// ProcessFlawless runs rule's processor over block via the mutating
// walker and always returns nil, implementing Rule.Process for a
// FlawlessRule.
func ProcessFlawless(rule FlawlessRule, block *ast.Block) error {
	process.VisitBlockMut(block, rule.Processor())
	return nil
}
