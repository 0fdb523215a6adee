package recorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darklua-go/darklua/pkg/evidence/storage"
	"github.com/darklua-go/darklua/pkg/pipeline"
	"github.com/darklua-go/darklua/pkg/walker"
)

func contextBackground() context.Context { return context.Background() }

func TestRun_RecordsFileOutcomes(t *testing.T) {
	store := storage.NewMemoryStorage()
	cfg := DefaultConfig()
	cfg.AsyncBuffer = 10

	rec := NewRecorder(store, cfg)
	defer rec.Close()

	run := rec.Begin("src/", "dist/", []string{"remove_comments", "compute_expression"})

	okTask := walker.FileTask{Source: "src/a.lua", Output: "dist/a.lua"}
	failTask := walker.FileTask{Source: "src/b.lua", Output: "dist/b.lua"}

	run.FileStarted(okTask)
	run.RuleApplied(okTask, "remove_comments", nil)
	run.RuleApplied(okTask, "compute_expression", nil)
	run.FileFinished(pipeline.Result{Task: okTask, Duration: 2 * time.Millisecond})

	run.FileStarted(failTask)
	run.RuleApplied(failTask, "remove_comments", errors.New("boom"))
	run.FileFinished(pipeline.Result{Task: failTask, Duration: time.Millisecond, Err: errors.New("rule failed")})

	run.Finish()

	deadline := time.After(time.Second)
	for {
		count, err := store.Count(contextBackground(), nil)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for async write")
		case <-time.After(5 * time.Millisecond):
		}
	}

	records, err := store.Query(contextBackground(), nil)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.FilesTotal != 2 || record.FilesSucceeded != 1 || record.FilesFailed != 1 {
		t.Fatalf("unexpected file counts: %+v", record)
	}
	if len(record.RuleStack) != 2 {
		t.Fatalf("expected 2 rules in stack, got %v", record.RuleStack)
	}
}

func TestRecorder_Disabled(t *testing.T) {
	store := storage.NewMemoryStorage()
	cfg := DefaultConfig()
	cfg.Enabled = false

	rec := NewRecorder(store, cfg)
	defer rec.Close()

	run := rec.Begin("a.lua", "a.lua", nil)
	run.FileStarted(walker.FileTask{Source: "a.lua", Output: "a.lua"})
	run.FileFinished(pipeline.Result{Task: walker.FileTask{Source: "a.lua", Output: "a.lua"}})
	run.Finish()

	count, err := store.Count(contextBackground(), nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no records stored when disabled, got %d", count)
	}
}
