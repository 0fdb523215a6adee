package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "darklua",
	Short: "darklua - a source-to-source transformer for Lua",
	Long: `darklua parses Lua source into an AST, runs a configurable stack of
rewrite rules over it, and renders the result back to Lua source.

It can minify, obfuscate, or otherwise rewrite Lua code for shipping:
  - Strip comments and insignificant whitespace
  - Fold constant expressions
  - Rename local variables to short, scope-safe names
  - Apply a fixed set of other structural simplifications

For more information, see the rule registry ("darklua rules list").`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "rule configuration file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = false
}
