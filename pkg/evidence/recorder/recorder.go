package recorder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/darklua-go/darklua/pkg/evidence"
	"github.com/darklua-go/darklua/pkg/pipeline"
	"github.com/darklua-go/darklua/pkg/walker"
)

// Config controls how a Recorder buffers and writes run records.
type Config struct {
	// Enabled enables recording. When false, Begin returns a Run that
	// discards everything (the cost of instrumenting is still paid by
	// the caller, but nothing reaches storage).
	Enabled bool

	// AsyncBuffer is the size of the async write channel buffer.
	AsyncBuffer int

	// WriteTimeout bounds how long Finish waits to enqueue a record
	// before giving up and logging a drop.
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{Enabled: true, AsyncBuffer: 256, WriteTimeout: 5 * time.Second}
}

// Recorder writes completed run records to storage asynchronously, so
// recording never blocks the transform pipeline it instruments.
type Recorder struct {
	storage    evidence.Storage
	config     *Config
	recordChan chan *evidence.RunRecord
	wg         sync.WaitGroup
	done       chan struct{}
	logger     *slog.Logger
}

// NewRecorder creates a Recorder backed by storage.
func NewRecorder(storage evidence.Storage, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}

	r := &Recorder{
		storage:    storage,
		config:     config,
		recordChan: make(chan *evidence.RunRecord, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "evidence.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	return r
}

// Begin starts a new Run accumulator. Attach it as a pipeline.Observer,
// call Run(tasks), then call Finish to enqueue the assembled record.
func (r *Recorder) Begin(input, output string, ruleStack []string) *Run {
	return &Run{
		recorder: r,
		record: &evidence.RunRecord{
			ID:        uuid.NewString(),
			StartedAt: time.Now(),
			Input:     input,
			Output:    output,
			RuleStack: ruleStack,
		},
		files: make(map[string]*evidence.FileRecord),
	}
}

// Close drains the async channel and waits for all pending writes.
func (r *Recorder) Close() error {
	close(r.done)
	r.wg.Wait()
	return nil
}

func (r *Recorder) worker() {
	defer r.wg.Done()
	for {
		select {
		case record := <-r.recordChan:
			r.write(record)
		case <-r.done:
			for {
				select {
				case record := <-r.recordChan:
					r.write(record)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) write(record *evidence.RunRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, record); err != nil {
		r.logger.Error("failed to store run record", "run_id", record.ID, "error", err)
		return
	}
	r.logger.Info("run recorded", "run_id", record.ID, "files_total", record.FilesTotal, "files_failed", record.FilesFailed)
}

func (r *Recorder) enqueue(record *evidence.RunRecord) {
	select {
	case r.recordChan <- record:
	case <-time.After(r.config.WriteTimeout):
		r.logger.Error("run record channel full, dropping record", "run_id", record.ID)
	case <-r.done:
		r.logger.Warn("recorder shutting down, dropping record", "run_id", record.ID)
	}
}

// Run accumulates per-file and per-rule outcomes for a single pipeline
// invocation. It implements pipeline.Observer.
type Run struct {
	recorder *Recorder
	mu       sync.Mutex
	record   *evidence.RunRecord
	files    map[string]*evidence.FileRecord
}

var _ pipeline.Observer = (*Run)(nil)

// FileStarted implements pipeline.Observer.
func (run *Run) FileStarted(task walker.FileTask) {
	run.mu.Lock()
	defer run.mu.Unlock()
	run.files[task.Source] = &evidence.FileRecord{Path: task.Source}
}

// RuleApplied implements pipeline.Observer.
func (run *Run) RuleApplied(task walker.FileTask, ruleName string, err error) {
	run.mu.Lock()
	defer run.mu.Unlock()
	file, ok := run.files[task.Source]
	if !ok {
		return
	}
	application := evidence.RuleApplication{Rule: ruleName, Applied: err == nil}
	if err != nil {
		application.Error = err.Error()
	}
	file.Rules = append(file.Rules, application)
}

// FileFinished implements pipeline.Observer.
func (run *Run) FileFinished(result pipeline.Result) {
	run.mu.Lock()
	defer run.mu.Unlock()
	file, ok := run.files[result.Task.Source]
	if !ok {
		file = &evidence.FileRecord{Path: result.Task.Source}
		run.files[result.Task.Source] = file
	}
	file.Duration = result.Duration
	file.Success = result.Err == nil
	if result.Err != nil {
		file.Error = result.Err.Error()
	}
}

// Finish assembles the accumulated file records into a RunRecord and
// enqueues it for asynchronous storage. Safe to call once per Run.
func (run *Run) Finish() {
	if !run.recorder.config.Enabled {
		return
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	run.record.EndedAt = time.Now()
	for _, file := range run.files {
		run.record.Files = append(run.record.Files, *file)
		run.record.FilesTotal++
		if file.Success {
			run.record.FilesSucceeded++
		} else {
			run.record.FilesFailed++
		}
	}

	run.recorder.enqueue(run.record)
}
