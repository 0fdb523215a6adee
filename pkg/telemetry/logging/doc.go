// Package logging provides structured logging for the transform pipeline.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with run IDs, file paths, and rule names
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log structured data
//	logger.Info("file processed",
//	    "file", "src/main.lua",
//	    "duration_ms", 1234,
//	)
//
//	// Create context-aware logger
//	ctx := logging.WithRunID(ctx, "run-123")
//	ctxLogger := logger.WithContext(ctx)
//	ctxLogger.Info("processing")  // Includes run_id automatically
//
// # Writes
//
// A record below the configured level is discarded before formatting.
// Every other record is written to the configured writer synchronously
// by the slog handler; nothing is buffered, so no record is dropped.
package logging
