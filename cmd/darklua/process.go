package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/darklua-go/darklua/pkg/cli"
	"github.com/darklua-go/darklua/pkg/config"
	"github.com/darklua-go/darklua/pkg/evidence/recorder"
	"github.com/darklua-go/darklua/pkg/evidence/storage"
	"github.com/darklua-go/darklua/pkg/gitdiff"
	"github.com/darklua-go/darklua/pkg/lua/rules"
	"github.com/darklua-go/darklua/pkg/pipeline"
	"github.com/darklua-go/darklua/pkg/walker"
)

var processFlags struct {
	output  string
	workers int
	since   string
}

var processCmd = &cobra.Command{
	Use:   "process <input>",
	Short: "Transform Lua source files",
	Long: `Parse one file or a directory tree of .lua files, run the configured
rule stack over each, and write the transformed result back out.

Examples:
  # Transform a single file in place
  darklua process main.lua

  # Transform a directory tree into dist/
  darklua process src/ -o dist/

  # Use a rule configuration file instead of the default stack
  darklua process src/ -o dist/ --config rules.yaml

  # Only reprocess files that changed since a revision (for CI)
  darklua process . --since HEAD~1`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processFlags.output, "output", "o", "", "output path (defaults to the input path, i.e. in place)")
	processCmd.Flags().IntVarP(&processFlags.workers, "workers", "w", 0, "number of files to process concurrently (0 = unbounded)")
	processCmd.Flags().StringVar(&processFlags.since, "since", "", "only process .lua files changed since this Git revision")
}

func runProcess(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := processFlags.output
	if output == "" {
		output = input
	}

	ruleStack, err := loadRuleStack()
	if err != nil {
		return cli.NewCommandError("process", err)
	}

	tasks, err := walker.Find(input, output)
	if err != nil {
		return cli.NewCommandError("process", err)
	}

	if processFlags.since != "" {
		tasks, err = filterSinceRevision(input, tasks, processFlags.since)
		if err != nil {
			return cli.NewCommandError("process", err)
		}
	}

	if len(tasks) == 0 {
		return cli.NewCommandError("process", fmt.Errorf("no .lua files found under %s", input))
	}

	progress := cli.NewProgressReporter(cmd.OutOrStdout())
	progress.Start(int64(len(tasks)))

	rec, closeEvidence, err := openEvidenceRecorder()
	if err != nil {
		return cli.NewCommandError("process", err)
	}
	defer closeEvidence()

	p := pipeline.New(ruleStack, processFlags.workers)
	run := beginRun(rec, p, input, output, ruleStack)

	start := time.Now()
	results := p.Run(tasks)

	if run != nil {
		run.Finish()
	}

	var failed int
	for i, result := range results {
		progress.Update(int64(i + 1))
		if result.Err != nil {
			failed++
			progress.Error(result.Err)
		}
	}
	progress.Finish()

	fmt.Fprintf(cmd.OutOrStdout(), "processed %d file(s) in %s, %d failed\n", len(tasks), time.Since(start).Round(time.Millisecond), failed)

	if failed > 0 {
		return cli.NewCommandError("process", fmt.Errorf("%d of %d file(s) failed to process", failed, len(tasks)))
	}
	return nil
}

// filterSinceRevision narrows tasks down to files that changed since the
// given Git revision, so CI can reprocess only what actually changed.
func filterSinceRevision(input string, tasks []walker.FileTask, since string) ([]walker.FileTask, error) {
	repo, err := gitdiff.Open(input)
	if err != nil {
		return nil, err
	}

	changed, err := repo.ChangedLuaFiles(since)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(changed))
	for _, rel := range changed {
		abs, err := filepath.Abs(repo.AbsPath(rel))
		if err != nil {
			return nil, err
		}
		wanted[abs] = true
	}

	var filtered []walker.FileTask
	for _, task := range tasks {
		abs, err := filepath.Abs(task.Source)
		if err != nil {
			return nil, err
		}
		if wanted[abs] {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// openEvidenceRecorder opens the evidence storage backend and recorder
// named in the loaded config, once per command invocation. It returns a
// nil Recorder and no-op cleanup when recording is disabled or no
// --config was given, so callers can call closeEvidence() unconditionally.
func openEvidenceRecorder() (*recorder.Recorder, func(), error) {
	noop := func() {}

	if cfgFile == "" {
		return nil, noop, nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to load config %s: %w", cfgFile, err)
	}
	if !cfg.Evidence.Enabled {
		return nil, noop, nil
	}

	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{Path: cfg.Evidence.StoragePath})
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open evidence storage: %w", err)
	}

	rec := recorder.NewRecorder(store, recorder.DefaultConfig())
	cleanup := func() {
		rec.Close()
		store.Close()
	}
	return rec, cleanup, nil
}

// beginRun starts a new Run against rec and attaches it to p as an
// observer. rec may be nil (recording disabled), in which case beginRun
// is a no-op and returns nil.
func beginRun(rec *recorder.Recorder, p *pipeline.Pipeline, input, output string, ruleStack []rules.Rule) *recorder.Run {
	if rec == nil {
		return nil
	}
	run := rec.Begin(input, output, ruleNames(ruleStack))
	p.Observer = run
	return run
}

func ruleNames(ruleStack []rules.Rule) []string {
	names := make([]string, len(ruleStack))
	for i, rule := range ruleStack {
		names[i] = rule.Name()
	}
	return names
}

// loadRuleStack resolves the rule stack to run: the rules named in
// --config, or the built-in default stack when no config was given.
func loadRuleStack() ([]rules.Rule, error) {
	if cfgFile == "" {
		return rules.DefaultStack(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", cfgFile, err)
	}
	if len(cfg.Pipeline.Rules) == 0 {
		return rules.DefaultStack(), nil
	}
	return cfg.Pipeline.Rules.ToRules(), nil
}
