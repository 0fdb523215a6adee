package config

import "testing"

func TestLoadBytes_Defaults(t *testing.T) {
	cfg, err := LoadBytes([]byte(``))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if cfg.Metrics.Namespace != "darklua" {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, "darklua")
	}
	if cfg.Evidence.RetentionDays != 30 {
		t.Errorf("Evidence.RetentionDays = %d, want %d", cfg.Evidence.RetentionDays, 30)
	}
}

func TestLoadBytes_ParsesFields(t *testing.T) {
	data := []byte(`
logging:
  level: debug
  format: text
pipeline:
  workers: 4
  rules:
    - remove_comments
    - rule: rename_variables
      globals: [print, pairs]
`)
	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("Pipeline.Workers = %d, want %d", cfg.Pipeline.Workers, 4)
	}
	if len(cfg.Pipeline.Rules) != 2 {
		t.Fatalf("Pipeline.Rules has %d entries, want %d", len(cfg.Pipeline.Rules), 2)
	}
	if cfg.Pipeline.Rules[0].Rule.Name() != "remove_comments" {
		t.Errorf("Rules[0].Name() = %q, want %q", cfg.Pipeline.Rules[0].Rule.Name(), "remove_comments")
	}
	if cfg.Pipeline.Rules[1].Rule.Name() != "rename_variables" {
		t.Errorf("Rules[1].Name() = %q, want %q", cfg.Pipeline.Rules[1].Rule.Name(), "rename_variables")
	}
}

func TestValidate_RejectsBadLevel(t *testing.T) {
	_, err := LoadBytes([]byte(`logging: {level: noisy}`))
	if err == nil {
		t.Fatal("expected an error for an invalid logging level")
	}
}

func TestValidate_RejectsNegativeWorkers(t *testing.T) {
	_, err := LoadBytes([]byte(`pipeline: {workers: -1}`))
	if err == nil {
		t.Fatal("expected an error for negative workers")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DARKLUA_LOG_LEVEL", "warn")
	t.Setenv("DARKLUA_WORKERS", "8")

	cfg, err := LoadBytes([]byte(``))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Pipeline.Workers = %d, want %d", cfg.Pipeline.Workers, 8)
	}
}
