// Package metrics provides Prometheus metrics collection for the transform
// pipeline.
//
// # Overview
//
// The metrics package implements Prometheus metrics for monitoring file
// processing: how many files succeeded or failed, which rules fired and
// how often, and how long each file took to run through the rule stack.
//
// # Usage
//
//	collector := metrics.NewCollector(cfg, registry)
//
//	collector.RecordFileProcessed("success")
//	collector.RecordRuleInvocation("remove_comments", "applied")
//	collector.RecordProcessDuration(elapsed)
//	collector.RecordParseError()
//
// # Prometheus Endpoint
//
// All metrics are exposed on the /metrics endpoint in standard Prometheus
// format:
//
//	# HELP darklua_pipeline_files_processed_total Total number of Lua files processed, by outcome.
//	# TYPE darklua_pipeline_files_processed_total counter
//	darklua_pipeline_files_processed_total{outcome="success"} 1234
package metrics
