package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/darklua-go/darklua/pkg/cli"
	"github.com/darklua-go/darklua/pkg/pipeline"
	"github.com/darklua-go/darklua/pkg/walker"
	"github.com/darklua-go/darklua/pkg/watch"
)

var watchFlags struct {
	output     string
	workers    int
	debounceMS int
}

var watchCmd = &cobra.Command{
	Use:   "watch <input>",
	Short: "Watch Lua source files and reprocess them on change",
	Long: `Watch a file or directory tree for .lua changes and rerun the
configured rule stack whenever one is modified. Runs until interrupted.

Examples:
  darklua watch src/ -o dist/
  darklua watch main.lua --config rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.output, "output", "o", "", "output path (defaults to the input path, i.e. in place)")
	watchCmd.Flags().IntVarP(&watchFlags.workers, "workers", "w", 0, "number of files to process concurrently (0 = unbounded)")
	watchCmd.Flags().IntVar(&watchFlags.debounceMS, "debounce", 300, "debounce interval in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := watchFlags.output
	if output == "" {
		output = input
	}

	ruleStack, err := loadRuleStack()
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	cfg := watch.DefaultConfig(input)
	cfg.DebounceInterval = time.Duration(watchFlags.debounceMS) * time.Millisecond

	w, err := watch.New(cfg, nil)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	rec, closeEvidence, err := openEvidenceRecorder()
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer closeEvidence()

	rerun := func() error {
		tasks, err := walker.Find(input, output)
		if err != nil {
			return err
		}
		p := pipeline.New(ruleStack, watchFlags.workers)
		run := beginRun(rec, p, input, output, ruleStack)

		var failed int
		for _, result := range p.Run(tasks) {
			if result.Err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", result.Err)
			}
		}
		if run != nil {
			run.Finish()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reprocessed %d file(s), %d failed\n", len(tasks), failed)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s (debounce %s), press Ctrl+C to stop\n", input, cfg.DebounceInterval)

	if err := rerun(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "initial run failed: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Watch(ctx, rerun)
}
