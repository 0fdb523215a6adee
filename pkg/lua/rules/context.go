// Package rules implements the transformation-rule framework: named,
// configurable, serializable units that each own a processor and drive
// the mutating walker over a block. It also carries the fixed default
// rule stack, the name registry, and the rule-configuration-document
// (de)serialization.
package rules

// Context is per-file shared state threaded through every rule invocation
// in the pipeline. It is constructed once per input file and discarded
// once all configured rules have run against that file.
type Context struct {
	currentFilePath string
}

// NewContext constructs a context for the file at path.
func NewContext(path string) *Context {
	return &Context{currentFilePath: path}
}

// MockContext returns a context with an empty path, for use in tests that
// do not exercise file-path-dependent rule behavior.
func MockContext() *Context {
	return &Context{}
}

// CurrentFilePath returns the path of the file under transformation.
func (c *Context) CurrentFilePath() string {
	return c.currentFilePath
}
