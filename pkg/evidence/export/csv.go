package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/darklua-go/darklua/pkg/evidence"
)

// CSVExporter exports run records to CSV format.
type CSVExporter struct {
	// IncludeHeader includes a header row with column names.
	IncludeHeader bool
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(includeHeader bool) *CSVExporter {
	return &CSVExporter{IncludeHeader: includeHeader}
}

// Export writes run records to the provided writer in CSV format. Per-file
// and per-rule detail is flattened to a semicolon-joined rule list; the full
// detail is available via the JSON exporter.
func (e *CSVExporter) Export(ctx context.Context, records []*evidence.RunRecord, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		if err := writer.Write(e.getHeaderRow()); err != nil {
			return evidence.NewExportError("csv", len(records), err)
		}
	}

	for _, record := range records {
		if err := writer.Write(e.recordToRow(record)); err != nil {
			return evidence.NewExportError("csv", len(records), err)
		}
	}
	return nil
}

// ExportStream exports run records from a channel to CSV format, flushing
// periodically so long-running exports give progress feedback.
func (e *CSVExporter) ExportStream(ctx context.Context, recordsCh <-chan *evidence.RunRecord, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		if err := writer.Write(e.getHeaderRow()); err != nil {
			return evidence.NewExportError("csv", 0, err)
		}
	}

	recordCount := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case record, ok := <-recordsCh:
			if !ok {
				writer.Flush()
				if err := writer.Error(); err != nil {
					return evidence.NewExportError("csv", recordCount, err)
				}
				return nil
			}

			if err := writer.Write(e.recordToRow(record)); err != nil {
				return evidence.NewExportError("csv", recordCount, err)
			}
			recordCount++

			if recordCount%100 == 0 {
				writer.Flush()
				if err := writer.Error(); err != nil {
					return evidence.NewExportError("csv", recordCount, err)
				}
			}
		}
	}
}

func (e *CSVExporter) getHeaderRow() []string {
	return []string{
		"id", "started_at", "ended_at", "input", "output", "rule_stack",
		"files_total", "files_succeeded", "files_failed",
	}
}

func (e *CSVExporter) recordToRow(record *evidence.RunRecord) []string {
	formatTime := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}

	return []string{
		record.ID,
		formatTime(record.StartedAt),
		formatTime(record.EndedAt),
		record.Input,
		record.Output,
		strings.Join(record.RuleStack, ";"),
		fmt.Sprintf("%d", record.FilesTotal),
		fmt.Sprintf("%d", record.FilesSucceeded),
		fmt.Sprintf("%d", record.FilesFailed),
	}
}
