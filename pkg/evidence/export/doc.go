// Package export provides run-record exporters for various formats.
//
// # Export Formats
//
//   - JSON: single record or array, with optional pretty-printing
//   - CSV: one row per run, rule stack flattened to a semicolon-joined list
//
// # JSON Export
//
//	exporter := export.NewJSONExporter(true)
//	err := exporter.Export(ctx, records, os.Stdout)
//
// # CSV Export
//
//	exporter := export.NewCSVExporter(true)
//	f, _ := os.Create("runs.csv")
//	defer f.Close()
//	err := exporter.Export(ctx, records, f)
//
// # Streaming
//
// Both exporters support ExportStream, which writes records as they arrive
// on a channel instead of holding the full result set in memory.
//
// # Error Handling
//
// Exporters return an ExportError on encoding or writer failures.
package export
