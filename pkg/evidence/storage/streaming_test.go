package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/darklua-go/darklua/pkg/evidence"
)

func TestSQLiteStorage_QueryStream(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	const total = 10
	base := time.Now().UTC()
	for i := 0; i < total; i++ {
		id := fmt.Sprintf("run-%d", i)
		_ = store.Store(ctx, makeRun(id, base.Add(time.Duration(i)*time.Second), "src/", nil, 0))
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
	if count != total {
		t.Fatalf("expected %d streamed records, got %d", total, count)
	}
}

func TestSQLiteStorage_QueryStream_CancelledContext(t *testing.T) {
	store := newTestSQLiteStorage(t)

	_ = store.Store(context.Background(), makeRun("a", time.Now().UTC(), "src/", nil, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recordsCh, errCh, err := store.QueryStream(ctx, &evidence.Query{})
	if err != nil {
		t.Fatalf("QueryStream() failed: %v", err)
	}

	for range recordsCh {
	}
	if err := <-errCh; err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
