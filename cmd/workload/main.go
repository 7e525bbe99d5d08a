package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mughalk/csc301-a2/workload"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	if len(os.Args) != 2 {
		level.Error(logger).Log("msg", "Usage: workload <workload-file>")
		os.Exit(1)
	}
	workloadPath := os.Args[1]

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"order_base_url", config.OrderBaseURL,
		"workload", workloadPath,
	)

	file, err := os.Open(workloadPath)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to open workload file", "err", err)
		os.Exit(1)
	}
	defer file.Close()

	// Stop replaying on SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := workload.NewRunner(config.OrderBaseURL, &http.Client{Timeout: 15 * time.Second}, logger)
	sent, err := runner.Run(ctx, file)
	if err != nil {
		level.Error(logger).Log("msg", "Workload run aborted", "sent", sent, "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Workload complete", "sent", sent)
}
