package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/darklua-go/darklua/pkg/cli"
	"github.com/darklua-go/darklua/pkg/config"
	"github.com/darklua-go/darklua/pkg/server"
	"github.com/darklua-go/darklua/pkg/telemetry/metrics"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP transform server",
	Long: `Run an HTTP server exposing /healthz, /metrics, and POST /transform,
for callers that would rather POST source than invoke the CLI directly.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	collector := metrics.NewCollector(&cfg.Metrics, prometheus.NewRegistry())
	srv := server.New(cfg, collector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "serving on %s\n", serveFlags.addr)
	return srv.Start(ctx, serveFlags.addr)
}
