package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the run-ledger database.
// Per-file and per-rule detail is stored as a JSON blob on the run row
// rather than normalized into child tables: queries filter on run-level
// fields (time, input, rule stack, failure), and detail is only ever
// read back whole together with its run row.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP NOT NULL,

    input TEXT NOT NULL,
    output TEXT NOT NULL,
    rule_stack TEXT NOT NULL,

    files_total INTEGER NOT NULL,
    files_succeeded INTEGER NOT NULL,
    files_failed INTEGER NOT NULL,

    files TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input);
CREATE INDEX IF NOT EXISTS idx_runs_files_failed ON runs(files_failed);
`

// InsertSchemaVersion records a schema version as applied.
const InsertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// GetSchemaVersion retrieves the current schema version from the database.
const GetSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
