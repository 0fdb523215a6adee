package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/darklua-go/darklua/pkg/cli"
	"github.com/darklua-go/darklua/pkg/lua/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule registry",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known rule name",
	Long:  "List every rule name the registry knows, marking which ones run by default.",
	RunE:  runRulesList,
}

var rulesDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Describe one rule's default configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesDescribe,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesDescribeCmd)
}

func runRulesList(cmd *cobra.Command, args []string) error {
	defaultNames := map[string]bool{}
	for _, rule := range rules.DefaultStack() {
		defaultNames[rule.Name()] = true
	}

	names := rules.RuleNames()
	sort.Strings(names)
	for _, name := range names {
		marker := " "
		if defaultNames[name] {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\n* = runs in the default stack (listed here alphabetically, not in stack order)")
	return nil
}

func runRulesDescribe(cmd *cobra.Command, args []string) error {
	name := args[0]
	rule, err := rules.NewRuleByName(name)
	if err != nil {
		return cli.NewCommandError("rules describe", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", rule.Name())
	props := rule.SerializeToProperties()
	if len(props) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "properties: (none, uses defaults)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "properties:")
	for _, key := range props.SortedKeys() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", key, props[key])
	}
	return nil
}
