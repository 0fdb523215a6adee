package metrics

import (
	"time"

	"github.com/darklua-go/darklua/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the main orchestrator for all Prometheus metrics produced by
// the transform pipeline. It manages metric registration and provides a
// unified interface for recording metrics across the walker, pipeline, and
// rule stack.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	filesProcessed  *prometheus.CounterVec
	ruleInvocations *prometheus.CounterVec
	processDuration *prometheus.HistogramVec
	parseErrors     prometheus.Counter
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "darklua"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "pipeline"
	}
	if len(cfg.ProcessDurationBuckets) == 0 {
		cfg.ProcessDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0}
	}

	c := &Collector{config: cfg, registry: registry}

	c.filesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "files_processed_total",
		Help:      "Total number of Lua files processed, by outcome.",
	}, []string{"outcome"})

	c.ruleInvocations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "rule_invocations_total",
		Help:      "Total number of rule invocations, by rule name and outcome.",
	}, []string{"rule", "outcome"})

	c.processDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "file_process_duration_seconds",
		Help:      "Time to fully process one file through the rule stack.",
		Buckets:   cfg.ProcessDurationBuckets,
	}, []string{})

	c.parseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "parse_errors_total",
		Help:      "Total number of files that failed to parse.",
	})

	registry.MustRegister(c.filesProcessed, c.ruleInvocations, c.processDuration, c.parseErrors)

	return c
}

// RecordFileProcessed records the outcome of processing one file
// ("success", "error", "skipped").
func (c *Collector) RecordFileProcessed(outcome string) {
	if !c.config.Enabled {
		return
	}
	c.filesProcessed.WithLabelValues(outcome).Inc()
}

// RecordRuleInvocation records a single rule application and its outcome
// ("applied", "no-op", "error").
func (c *Collector) RecordRuleInvocation(rule, outcome string) {
	if !c.config.Enabled {
		return
	}
	c.ruleInvocations.WithLabelValues(rule, outcome).Inc()
}

// RecordProcessDuration records how long it took to run one file through
// the full rule stack.
func (c *Collector) RecordProcessDuration(duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.processDuration.WithLabelValues().Observe(duration.Seconds())
}

// RecordParseError increments the parse error counter.
func (c *Collector) RecordParseError() {
	if !c.config.Enabled {
		return
	}
	c.parseErrors.Inc()
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
