package storage

import (
	"context"
	"testing"
	"time"

	"github.com/darklua-go/darklua/pkg/evidence"
)

func makeRun(id string, startedAt time.Time, input string, ruleStack []string, failed int) *evidence.RunRecord {
	return &evidence.RunRecord{
		ID:             id,
		StartedAt:      startedAt,
		EndedAt:        startedAt.Add(time.Second),
		Input:          input,
		Output:         input + ".out",
		RuleStack:      ruleStack,
		FilesTotal:     failed + 1,
		FilesSucceeded: 1,
		FilesFailed:    failed,
		Files: []evidence.FileRecord{
			{RunID: id, Path: input + "/a.lua", Success: failed == 0, Duration: time.Millisecond},
		},
	}
}

func TestMemoryStorage_StoreAndQuery(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	record := makeRun("run-1", time.Now(), "src/", []string{"remove_comments"}, 0)
	if err := store.Store(ctx, record); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	results, err := store.Query(ctx, &evidence.Query{})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 record, got %d", len(results))
	}
	if results[0].ID != "run-1" {
		t.Errorf("expected ID 'run-1', got %q", results[0].ID)
	}
}

func TestMemoryStorage_QueryWithTimeRange(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	now := time.Now()
	records := []*evidence.RunRecord{
		makeRun("old", now.Add(-2*time.Hour), "src/", nil, 0),
		makeRun("recent", now.Add(-30*time.Minute), "src/", nil, 0),
		makeRun("new", now, "src/", nil, 0),
	}
	for _, record := range records {
		if err := store.Store(ctx, record); err != nil {
			t.Fatalf("Store() failed: %v", err)
		}
	}

	start := now.Add(-1 * time.Hour)
	results, err := store.Query(ctx, &evidence.Query{StartTime: &start})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 records since %v, got %d", start, len(results))
	}
	for _, r := range results {
		if r.ID == "old" {
			t.Errorf("did not expect 'old' record in results")
		}
	}
}

func TestMemoryStorage_QueryByInputPrefix(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("a", time.Now(), "src/lib/", nil, 0))
	_ = store.Store(ctx, makeRun("b", time.Now(), "vendor/", nil, 0))

	results, err := store.Query(ctx, &evidence.Query{Input: "src/"})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("expected only 'a', got %+v", results)
	}
}

func TestMemoryStorage_QueryByRule(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("a", time.Now(), "src/", []string{"remove_comments", "compute_expression"}, 0))
	_ = store.Store(ctx, makeRun("b", time.Now(), "src/", []string{"remove_spaces"}, 0))

	results, err := store.Query(ctx, &evidence.Query{Rule: "compute_expression"})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("expected only 'a', got %+v", results)
	}
}

func TestMemoryStorage_QueryOnlyFailed(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("ok", time.Now(), "src/", nil, 0))
	_ = store.Store(ctx, makeRun("bad", time.Now(), "src/", nil, 1))

	results, err := store.Query(ctx, &evidence.Query{OnlyFailed: true})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "bad" {
		t.Fatalf("expected only 'bad', got %+v", results)
	}
}

func TestMemoryStorage_QuerySortOrder(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	now := time.Now()
	_ = store.Store(ctx, makeRun("first", now.Add(-time.Hour), "src/", nil, 0))
	_ = store.Store(ctx, makeRun("second", now, "src/", nil, 0))

	descending, err := store.Query(ctx, &evidence.Query{})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if descending[0].ID != "second" {
		t.Fatalf("expected descending order by default, got %+v", descending)
	}

	ascending, err := store.Query(ctx, &evidence.Query{SortOrder: "asc"})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if ascending[0].ID != "first" {
		t.Fatalf("expected ascending order, got %+v", ascending)
	}
}

func TestMemoryStorage_QueryPagination(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		_ = store.Store(ctx, makeRun(id, now.Add(time.Duration(i)*time.Minute), "src/", nil, 0))
	}

	results, err := store.Query(ctx, &evidence.Query{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 records, got %d", len(results))
	}
}

func TestMemoryStorage_Count(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("a", time.Now(), "src/", nil, 0))
	_ = store.Store(ctx, makeRun("b", time.Now(), "src/", nil, 1))

	count, err := store.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	failedCount, err := store.Count(ctx, &evidence.Query{OnlyFailed: true})
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if failedCount != 1 {
		t.Fatalf("expected failed count 1, got %d", failedCount)
	}
}

func TestMemoryStorage_Delete(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("a", time.Now(), "src/", nil, 0))
	_ = store.Store(ctx, makeRun("b", time.Now(), "src/", nil, 1))

	deleted, err := store.Delete(ctx, &evidence.Query{OnlyFailed: true})
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}
	if store.Size() != 1 {
		t.Fatalf("expected 1 record remaining, got %d", store.Size())
	}
}

func TestMemoryStorage_QueryStream(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		_ = store.Store(ctx, makeRun(id, time.Now(), "src/", nil, 0))
	}

	recordsCh, errCh, err := store.QueryStream(ctx, &evidence.Query{})
	if err != nil {
		t.Fatalf("QueryStream() failed: %v", err)
	}

	count := 0
	for range recordsCh {
		count++
	}
	if err := <-errCh; err != nil {
		t.Fatalf("QueryStream() returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 streamed records, got %d", count)
	}
}

func TestMemoryStorage_Close(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	_ = store.Store(ctx, makeRun("a", time.Now(), "src/", nil, 0))
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if store.Size() != 0 {
		t.Fatalf("expected storage to be empty after Close(), got %d", store.Size())
	}
}
