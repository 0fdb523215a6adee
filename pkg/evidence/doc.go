// Package evidence provides a durable run ledger for transform pipeline
// executions: which files were processed, which rules fired on each, and
// how long each step took.
//
// # Architecture
//
// The evidence system consists of three layers:
//
//  1. Recorder - turns a pipeline run into a RunRecord
//  2. Storage backend - persists run records (SQLite, memory)
//  3. Query validation - sanitizes filters before they reach storage
//
// # Run Records
//
// Each RunRecord captures:
//   - Input/output paths and the rule stack applied
//   - Per-file outcomes (success, error, duration; a source hash field
//     that the recorder leaves empty)
//   - Per-rule applications within each file (applied, meaning the rule
//     returned no error, and the error text; a duration field that the
//     recorder leaves zero)
//   - Aggregate counts (files total/succeeded/failed)
//
// # Recording Flow
//
// A Run accumulates outcomes as a pipeline.Observer and is written to
// storage asynchronously so Finish never blocks on disk I/O:
//
//	Begin(input, output, ruleStack) → Run
//	     ↓ (attached as pipeline.Observer)
//	FileStarted / RuleApplied / FileFinished (per file, concurrently)
//	     ↓
//	Finish() assembles a RunRecord
//	     ↓
//	Storage backend (SQLite, WAL mode)
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{Path: "data/runs.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	rec := recorder.NewRecorder(store, recorder.DefaultConfig())
//	defer rec.Close()
//
//	run := rec.Begin(input, output, ruleNames)
//	p.Observer = run
//	p.Run(tasks)
//	run.Finish()
//
// # Querying the Run Ledger
//
//	q := &evidence.Query{
//	    StartTime:  &startTime,
//	    EndTime:    &endTime,
//	    OnlyFailed: true,
//	    Limit:      100,
//	}
//	if err := query.Validate(q); err != nil {
//	    log.Fatal(err)
//	}
//	records, err := store.Query(ctx, q)
//
//	exporter := export.NewJSONExporter(true)
//	exporter.Export(ctx, records, os.Stdout)
//
// # Retention Policies
//
// Run records can be pruned automatically based on age or count:
//
//	pruner := retention.NewPruner(store, &retention.Config{
//	    RetentionDays:       90,
//	    PruneSchedule:       "0 3 * * *",
//	    ArchiveBeforeDelete: true,
//	})
//	pruner.Start(ctx)
//	defer pruner.Stop()
//
// # Thread Safety
//
// All evidence types are safe for concurrent use: Recorder uses a
// thread-safe async channel, Run's observer methods are mutex-guarded for
// the pipeline's concurrent file-processing goroutines, and Storage
// backends support concurrent Store/Query.
//
// # Storage Backends
//
// The evidence system supports multiple storage backends via the Storage
// interface: SQLite (modernc.org/sqlite, pure Go) for durable single-node
// use, and an in-memory backend for tests. Custom backends can be added by
// satisfying the Storage interface.
package evidence
