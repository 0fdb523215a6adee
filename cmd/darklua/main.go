// darklua is a source-to-source transformer for Lua: it parses a file or
// tree of .lua files, runs a configurable stack of rewrite rules over the
// resulting AST, and renders the result back to Lua source.
//
// Usage:
//
//	# Process a file or directory with the default rule stack
//	darklua process src/ -o dist/
//
//	# Process using a rule configuration file
//	darklua process src/ -o dist/ --config rules.yaml
//
//	# List the available rules
//	darklua rules list
//
//	# Re-run the pipeline whenever a watched file changes
//	darklua watch src/ -o dist/
//
//	# Serve an HTTP transform endpoint
//	darklua serve --addr :8080
//
//	# Show version information
//	darklua version
package main

func main() {
	Execute()
}
