// Package config loads and validates process-level configuration for the
// darklua CLI, server, and watch mode: which rules to run, how to log,
// where to expose metrics, and how evidence of each run is recorded.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/darklua-go/darklua/pkg/lua/rules"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for a darklua run.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Evidence  EvidenceConfig  `yaml:"evidence"`
	Watch     WatchConfig     `yaml:"watch"`
	Git       GitConfig       `yaml:"git"`
}

// PipelineConfig controls which rules run and how work is parallelized.
type PipelineConfig struct {
	// Rules is the ordered rule stack to run. Empty means the built-in
	// default stack (rules.DefaultStack).
	Rules rules.Document `yaml:"rules"`

	// Workers is the number of files processed concurrently. Zero means
	// unbounded (one goroutine per file), as in pipeline.Pipeline.
	Workers int `yaml:"workers"`

	// Output is the directory transformed files are written to. Empty
	// means in place.
	Output string `yaml:"output"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// MetricsConfig controls the Prometheus metrics collector.
type MetricsConfig struct {
	Enabled                bool      `yaml:"enabled"`
	Namespace              string    `yaml:"namespace"`
	Subsystem              string    `yaml:"subsystem"`
	Path                   string    `yaml:"path"`
	ProcessDurationBuckets []float64 `yaml:"process_duration_buckets"`
}

// EvidenceConfig controls recording and retention of a per-run ledger.
type EvidenceConfig struct {
	Enabled         bool   `yaml:"enabled"`
	StoragePath     string `yaml:"storage_path"`
	RetentionDays   int    `yaml:"retention_days"`
	PruneSchedule   string `yaml:"prune_schedule"`
}

// WatchConfig controls fsnotify-based watch mode.
type WatchConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DebounceMS   int    `yaml:"debounce_ms"`
	Paths        []string `yaml:"paths"`
}

// GitConfig controls diff-since-ref discovery.
type GitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Repo    string `yaml:"repo"`
	SinceRef string `yaml:"since_ref"`
}

// Load reads and parses a YAML config file at path, then applies defaults
// and DARKLUA_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses YAML config held in memory, then applies defaults and
// environment overrides.
func LoadBytes(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ApplyDefaults()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "darklua"
	}
	if c.Metrics.Subsystem == "" {
		c.Metrics.Subsystem = "pipeline"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Evidence.RetentionDays == 0 {
		c.Evidence.RetentionDays = 30
	}
	if c.Watch.DebounceMS == 0 {
		c.Watch.DebounceMS = 300
	}
}

// applyEnvOverrides applies DARKLUA_-prefixed environment variables on top
// of whatever was loaded from YAML, letting deployments override a handful
// of common knobs without editing the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DARKLUA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DARKLUA_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("DARKLUA_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("DARKLUA_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Pipeline.Workers = n
		}
	}
	if v := os.Getenv("DARKLUA_OUTPUT"); v != "" {
		c.Pipeline.Output = v
	}
	if v := os.Getenv("DARKLUA_EVIDENCE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Evidence.Enabled = b
		}
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must not be negative, got %d", c.Pipeline.Workers)
	}

	if c.Evidence.RetentionDays < 0 {
		return fmt.Errorf("evidence.retention_days must not be negative, got %d", c.Evidence.RetentionDays)
	}

	return nil
}
