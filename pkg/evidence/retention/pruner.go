package retention

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/darklua-go/darklua/pkg/evidence"
	"github.com/darklua-go/darklua/pkg/evidence/export"
)

// Config contains configuration for the retention pruner.
type Config struct {
	// RetentionDays is the number of days to retain run records.
	// 0 means keep records forever (no age-based pruning).
	RetentionDays int

	// PruneSchedule is a cron expression for scheduling pruning.
	// Example: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string

	// ArchiveBeforeDelete enables archiving run records before deletion.
	ArchiveBeforeDelete bool

	// ArchivePath is the directory to store archived run records.
	ArchivePath string

	// MaxRecords is the maximum number of run records to keep.
	// 0 means unlimited.
	MaxRecords int64
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays:       90,
		PruneSchedule:       "0 3 * * *",
		ArchiveBeforeDelete: false,
		ArchivePath:         "data/archives/",
		MaxRecords:          0,
	}
}

// Pruner enforces retention policies on the run ledger.
type Pruner struct {
	storage   evidence.Storage
	config    *Config
	logger    *slog.Logger
	scheduler *Scheduler
}

// NewPruner creates a new retention pruner.
func NewPruner(storage evidence.Storage, config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}

	pruner := &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "evidence.retention"),
	}
	pruner.scheduler = NewScheduler(pruner)
	return pruner
}

// Prune deletes run records older than the retention period or exceeding
// the max record count.
//
// Pruning happens in two phases:
//  1. Age-based: delete records older than RetentionDays
//  2. Count-based: if total records > MaxRecords, delete the oldest
//
// Both can run together. Returns the total number of records deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		deleted, err := p.pruneByAge(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by age failed: %w", err)
		}
		totalDeleted += deleted
		p.logger.Info("pruned runs by age", "deleted_count", deleted, "retention_days", p.config.RetentionDays)
	}

	if p.config.MaxRecords > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by count failed: %w", err)
		}
		totalDeleted += deleted
		p.logger.Info("pruned runs by count", "deleted_count", deleted, "max_records", p.config.MaxRecords)
	}

	if totalDeleted == 0 {
		p.logger.Debug("no runs pruned", "retention_days", p.config.RetentionDays, "max_records", p.config.MaxRecords)
	} else {
		p.logger.Info("run ledger pruning completed",
			"total_deleted", totalDeleted,
			"retention_days", p.config.RetentionDays,
			"max_records", p.config.MaxRecords,
		)
	}

	return totalDeleted, nil
}

// pruneByAge deletes runs started before the retention cutoff.
func (p *Pruner) pruneByAge(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)

	p.logger.Debug("pruning by age", "cutoff_time", cutoff, "retention_days", p.config.RetentionDays)

	query := &evidence.Query{EndTime: &cutoff}

	if p.config.ArchiveBeforeDelete {
		if err := p.archive(ctx, query); err != nil {
			return 0, evidence.NewRetentionError(p.config.RetentionDays, err)
		}
	}

	deleted, err := p.storage.Delete(ctx, query)
	if err != nil {
		return 0, evidence.NewRetentionError(p.config.RetentionDays, err)
	}
	return deleted, nil
}

// pruneByCount deletes the oldest runs if the total count exceeds MaxRecords.
func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	count, err := p.storage.Count(ctx, &evidence.Query{})
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}

	if count <= p.config.MaxRecords {
		p.logger.Debug("run count within limit", "current", count, "max", p.config.MaxRecords)
		return 0, nil
	}

	p.logger.Info("run count exceeds limit, pruning oldest",
		"current_count", count, "max_records", p.config.MaxRecords, "to_delete", count-p.config.MaxRecords,
	)

	allRecords, err := p.storage.Query(ctx, &evidence.Query{Limit: int(count)})
	if err != nil {
		return 0, fmt.Errorf("failed to query runs: %w", err)
	}
	if len(allRecords) == 0 {
		p.logger.Debug("no runs found to delete")
		return 0, nil
	}

	sortRecordsByTime(allRecords)

	actualToDelete := len(allRecords) - int(p.config.MaxRecords)
	if actualToDelete <= 0 {
		p.logger.Debug("run count within limit after query")
		return 0, nil
	}
	if actualToDelete > len(allRecords) {
		actualToDelete = len(allRecords)
	}

	cutoffTime := allRecords[actualToDelete-1].StartedAt
	p.logger.Debug("calculated cutoff time for count-based pruning", "cutoff_time", cutoffTime, "runs_to_delete", actualToDelete)

	deleteQuery := &evidence.Query{EndTime: &cutoffTime}

	if p.config.ArchiveBeforeDelete {
		if err := p.archiveRecords(ctx, allRecords[:actualToDelete]); err != nil {
			return 0, fmt.Errorf("archive failed: %w", err)
		}
	}

	deleted, err := p.storage.Delete(ctx, deleteQuery)
	if err != nil {
		return 0, fmt.Errorf("delete failed: %w", err)
	}
	return deleted, nil
}

// sortRecordsByTime sorts run records by StartedAt ascending (oldest first).
func sortRecordsByTime(records []*evidence.RunRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.Before(records[j].StartedAt)
	})
}

// archiveRecords exports a list of run records to JSON before deletion.
func (p *Pruner) archiveRecords(ctx context.Context, records []*evidence.RunRecord) error {
	if len(records) == 0 {
		return nil
	}

	p.logger.Info("archiving runs before deletion", "record_count", len(records))

	if err := os.MkdirAll(p.config.ArchivePath, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	archiveFile := filepath.Join(p.config.ArchivePath, fmt.Sprintf("runs-count-%s.json", time.Now().Format("2006-01-02-150405")))
	f, err := os.Create(archiveFile)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	exporter := export.NewJSONExporter(true)
	if err := exporter.Export(ctx, records, f); err != nil {
		return fmt.Errorf("failed to export runs to archive: %w", err)
	}

	p.logger.Info("runs archived", "archive_file", archiveFile, "record_count", len(records))
	return nil
}

// archive exports runs matching query to JSON before deletion.
func (p *Pruner) archive(ctx context.Context, query *evidence.Query) error {
	p.logger.Info("archiving runs before deletion")

	records, err := p.storage.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query runs for archiving: %w", err)
	}
	if len(records) == 0 {
		p.logger.Debug("no runs to archive")
		return nil
	}

	if err := os.MkdirAll(p.config.ArchivePath, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	archiveFile := filepath.Join(p.config.ArchivePath, fmt.Sprintf("runs-%s.json", time.Now().Format("2006-01-02")))
	f, err := os.Create(archiveFile)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	exporter := export.NewJSONExporter(true)
	if err := exporter.Export(ctx, records, f); err != nil {
		return fmt.Errorf("failed to export runs to archive: %w", err)
	}

	p.logger.Info("runs archived", "archive_file", archiveFile, "record_count", len(records))
	return nil
}

// Start starts the automatic pruning scheduler. Call this when starting the application.
func (p *Pruner) Start(ctx context.Context) error {
	return p.scheduler.Start(ctx)
}

// Stop stops the automatic pruning scheduler. Call this during graceful shutdown.
func (p *Pruner) Stop() {
	p.scheduler.Stop()
}

// NextPruning returns the time of the next scheduled pruning.
func (p *Pruner) NextPruning() *time.Time {
	return p.scheduler.NextRun()
}
