// Package recorder turns a pipeline run into a durable RunRecord:
// which files were processed, which rules ran on each and whether they
// returned an error, and how long each file took.
//
// # Recording Flow
//
//  1. Begin(input, output, ruleNames) starts a Run accumulator.
//  2. Attach the Run as the pipeline's Observer.
//  3. Run p.Run(tasks) as usual; the Run collects file/rule outcomes.
//  4. Call Finish() to assemble and enqueue the RunRecord.
//
// Storage writes happen on a background goroutine so Finish never blocks
// the caller on disk or network I/O.
//
// # Basic Usage
//
//	rec := recorder.NewRecorder(store, recorder.DefaultConfig())
//	defer rec.Close()
//
//	run := rec.Begin(input, output, ruleNames)
//	p.Observer = run
//	p.Run(tasks)
//	run.Finish()
//
// # Thread Safety
//
// Run's observer methods and Finish are safe for concurrent use, since
// the pipeline invokes them from multiple file-processing goroutines.
package recorder
