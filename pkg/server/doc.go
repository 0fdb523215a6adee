// Package server exposes the transform pipeline over HTTP, for callers
// that would rather POST source than invoke the CLI.
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "github.com/darklua-go/darklua/pkg/config"
//	    "github.com/darklua-go/darklua/pkg/server"
//	    "github.com/darklua-go/darklua/pkg/telemetry/metrics"
//	)
//
//	cfg, err := config.Load("darklua.yaml")
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	srv := server.New(cfg, collector)
//	if err := srv.Start(context.Background(), ":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//   - GET /healthz  - liveness probe, always 200
//   - GET /metrics  - Prometheus exposition, when a collector is set
//   - POST /transform - {source, rules} in, {output, errors} out
//
// The transform endpoint accepts its request body as YAML, reusing the
// same rule document shape as the CLI's --config flag: a bare rule name
// or a {rule: name, ...properties} mapping. An empty or absent rules
// list runs the default stack.
//
// # Middleware Chain
//
// Requests pass through, outermost to innermost:
//  1. RequestID: assigns or propagates X-Request-ID
//  2. Logging: logs method, path, status, duration
//  3. Recovery: recovers panics and returns a 500
//
// # Graceful Shutdown
//
// Shutdown stops accepting new connections and waits up to 10 seconds
// for in-flight requests to finish before forcing closure.
package server
