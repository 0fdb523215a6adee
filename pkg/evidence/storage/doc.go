// Package storage provides storage backends for the transform run ledger.
//
// # Storage Backends
//
//   - SQLite (modernc.org/sqlite, pure Go): durable storage for a single
//     node, one row per run with file/rule detail as a JSON blob.
//   - Memory: in-memory map, intended for tests and short-lived runs.
//
// # SQLite Backend
//
// The SQLite backend provides durable storage with:
//
//   - WAL mode for concurrent reads/writes
//   - Indexes on frequently queried fields (started_at, input, files_failed)
//   - A busy timeout for handling lock contention
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{
//	    Path:         "data/runs.db",
//	    MaxOpenConns: 10,
//	    BusyTimeout:  5 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Store(ctx, record)
//
//	records, err := store.Query(ctx, &evidence.Query{
//	    StartTime: &startTime,
//	    EndTime:   &endTime,
//	    OnlyFailed: true,
//	    Limit:     100,
//	})
//
// # Thread Safety
//
// All storage backends are safe for concurrent use: Store can be called
// concurrently from multiple goroutines, and Query can run concurrently
// with Store. WAL mode lets SQLite serve concurrent readers and writers.
//
// # Schema Migration
//
// The SQLite storage initializes its schema on first use and tracks the
// applied version in the schema_version table for future migrations.
package storage
