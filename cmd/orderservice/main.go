package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mughalk/csc301-a2/adapters"
	"github.com/mughalk/csc301-a2/adapters/redisledger"
	"github.com/mughalk/csc301-a2/adapters/sqlitestore"
	"github.com/mughalk/csc301-a2/handlers"
	"github.com/mughalk/csc301-a2/interfaces"
	"github.com/mughalk/csc301-a2/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting order service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"iscs_addr", config.ISCSAddr,
		"ledger_backend", config.LedgerBackend,
	)

	// Create purchase ledger
	var ledger interfaces.PurchaseLedger
	switch config.LedgerBackend {
	case LedgerRedis:
		redisURL := config.RedisAddr
		if !strings.Contains(redisURL, "://") {
			redisURL = "redis://" + redisURL
		}
		redisClient, err := redisledger.NewRedisUniversalClient(redisURL)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		cancel()
		level.Info(logger).Log("msg", "Connected to Redis")
		ledger = redisledger.NewLedger(redisClient)
	default:
		sqliteLedger, err := sqlitestore.NewLedger(config.DataDir)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open purchase ledger", "err", err)
			os.Exit(1)
		}
		ledger = sqliteLedger
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			level.Error(logger).Log("msg", "Error closing purchase ledger", "err", err)
		}
	}()

	// Create order workflow
	client := &http.Client{Timeout: 10 * time.Second}
	fleet := adapters.RouterFleet("http://"+config.ISCSAddr, client)
	orders := service.NewOrderStore()
	placer := service.NewOrderPlacer(fleet, ledger, orders, logger)
	forwarder := adapters.ForwarderHTTP(client)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.NewOrderHTTP(placer, orders, forwarder, config.ISCSAddr, logger).Register(e)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
