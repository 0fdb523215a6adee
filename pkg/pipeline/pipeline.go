// Package pipeline drives the end-to-end transformation of Lua source
// files: parse, run the configured rule stack, render, write out. A
// single Pipeline instance fans a batch of files out across goroutines;
// each file gets its own rules.Context and *ast.Block, so no mutable
// state is shared across files.
package pipeline

import (
	"fmt"
	"sync"
	"time"

	"github.com/darklua-go/darklua/pkg/lua/parser"
	"github.com/darklua-go/darklua/pkg/lua/render"
	"github.com/darklua-go/darklua/pkg/lua/rules"
	"github.com/darklua-go/darklua/pkg/walker"
)

// Result is the outcome of processing one file.
type Result struct {
	Task     walker.FileTask
	Duration time.Duration
	Err      error
}

// Observer receives notifications as files and rules are processed, for
// metrics and logging to hook into without the pipeline depending on
// either package directly.
type Observer interface {
	FileStarted(task walker.FileTask)
	FileFinished(result Result)
	RuleApplied(task walker.FileTask, ruleName string, err error)
}

// NoopObserver implements Observer with no-op methods. Embed it to avoid
// implementing every method.
type NoopObserver struct{}

func (NoopObserver) FileStarted(walker.FileTask)               {}
func (NoopObserver) FileFinished(Result)                       {}
func (NoopObserver) RuleApplied(walker.FileTask, string, error) {}

// Pipeline runs a configured rule stack over a batch of files.
type Pipeline struct {
	// Rules is the ordered rule stack to run against every file. A fresh
	// copy of this stack is NOT made per file: each rules.Rule
	// implementation builds a fresh processor per Process call, so a
	// single configured Rule slice is safe to share read-only across
	// concurrently processed files.
	Rules []rules.Rule

	// Workers caps how many files are processed concurrently. Zero or
	// negative means unbounded (one goroutine per file).
	Workers int

	// Parser parses each file's source. A zero value uses parser.New().
	Parser *parser.Parser

	// Observer receives per-file and per-rule notifications. May be nil.
	Observer Observer
}

// New returns a Pipeline configured with ruleStack (or rules.DefaultStack
// if ruleStack is empty) and the given worker count.
func New(ruleStack []rules.Rule, workers int) *Pipeline {
	if len(ruleStack) == 0 {
		ruleStack = rules.DefaultStack()
	}
	return &Pipeline{Rules: ruleStack, Workers: workers, Parser: parser.New()}
}

// Run processes every task, writing transformed output to each task's
// Output path. It returns one Result per task, in task order, after all
// processing has completed.
func (p *Pipeline) Run(tasks []walker.FileTask) []Result {
	results := make([]Result, len(tasks))

	workers := p.Workers
	if workers <= 0 {
		workers = len(tasks)
	}
	if workers == 0 {
		return results
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, task walker.FileTask) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = p.runOne(task)
		}(i, task)
	}

	wg.Wait()
	return results
}

// runOne parses, transforms, renders, and writes a single file.
func (p *Pipeline) runOne(task walker.FileTask) Result {
	if p.Observer != nil {
		p.Observer.FileStarted(task)
	}
	start := time.Now()

	prs := p.Parser
	if prs == nil {
		prs = parser.New()
	}
	block, err := prs.Parse(task.Source)
	if err != nil {
		result := Result{Task: task, Duration: time.Since(start), Err: fmt.Errorf("pipeline: parse failed: %w", err)}
		if p.Observer != nil {
			p.Observer.FileFinished(result)
		}
		return result
	}

	context := rules.NewContext(task.Source)
	for _, rule := range p.Rules {
		ruleErr := rule.Process(block, context)
		if p.Observer != nil {
			p.Observer.RuleApplied(task, rule.Name(), ruleErr)
		}
		if ruleErr != nil {
			result := Result{Task: task, Duration: time.Since(start), Err: fmt.Errorf("pipeline: rule %q failed: %w", rule.Name(), ruleErr)}
			if p.Observer != nil {
				p.Observer.FileFinished(result)
			}
			return result
		}
	}

	output := render.Block(block)
	if err := walker.WriteFile(task.Output, output); err != nil {
		result := Result{Task: task, Duration: time.Since(start), Err: fmt.Errorf("pipeline: write failed: %w", err)}
		if p.Observer != nil {
			p.Observer.FileFinished(result)
		}
		return result
	}

	result := Result{Task: task, Duration: time.Since(start)}
	if p.Observer != nil {
		p.Observer.FileFinished(result)
	}
	return result
}
