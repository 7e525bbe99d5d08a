package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mughalk/csc301-a2/adapters"
	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/handlers"
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

	level.Info(logger).Log("msg", "Starting inter-service communication router")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"services", len(config.Fleet.Registrations),
	)

	// Create registry + router
	registry, err := service.NewRegistry(config.Fleet)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build registry", "err", err)
		os.Exit(1)
	}
	forwarder := adapters.ForwarderHTTP(&http.Client{Timeout: 10 * time.Second})
	router, err := service.NewRouter(domain.DefaultRouteTable(), registry, forwarder, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build router", "err", err)
		os.Exit(1)
	}

	// Setup graceful shutdown; POST /shutdown triggers the same path as SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	stop := func() { quit <- syscall.SIGTERM }

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.NewRouterHTTP(router, stop, logger).Register(e)
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal or shutdown request
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
