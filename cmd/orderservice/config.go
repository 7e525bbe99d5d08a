package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Env variable names.
const (
	envHTTPPort      = "SERVICE_PORT_HTTP"
	envISCSAddr      = "ISCS_ADDR"
	envDataDir       = "DATA_DIR"
	envLedgerBackend = "LEDGER_BACKEND"
	envRedisAddr     = "REDIS_ADDR"
)

// Ledger backend selectors.
const (
	LedgerSQLite = "sqlite"
	LedgerRedis  = "redis"
)

// Config holds the order service configuration: listening port, the router
// address all downstream calls go through, and the purchase ledger backend.
type Config struct {
	HTTPPort      int
	ISCSAddr      string
	DataDir       string
	LedgerBackend string
	RedisAddr     string
}

// LoadConfig builds the order service config from environment variables.
// SERVICE_PORT_HTTP (required, 1-65535) and ISCS_ADDR (required, host:port of
// the router) are always read. LEDGER_BACKEND defaults to sqlite; sqlite needs
// DATA_DIR (made absolute), redis needs REDIS_ADDR.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := strings.TrimSpace(os.Getenv(envHTTPPort))
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	iscsAddr := strings.TrimSpace(os.Getenv(envISCSAddr))
	if iscsAddr == "" {
		return nil, fmt.Errorf("%s is required", envISCSAddr)
	}

	backend := strings.TrimSpace(os.Getenv(envLedgerBackend))
	if backend == "" {
		backend = LedgerSQLite
	}

	cfg := &Config{
		HTTPPort:      httpPort,
		ISCSAddr:      iscsAddr,
		LedgerBackend: backend,
	}

	switch backend {
	case LedgerSQLite:
		dataDir := strings.TrimSpace(os.Getenv(envDataDir))
		if dataDir == "" {
			return nil, fmt.Errorf("%s is required with %s=%s", envDataDir, envLedgerBackend, LedgerSQLite)
		}
		if !filepath.IsAbs(dataDir) {
			abs, absErr := filepath.Abs(dataDir)
			if absErr != nil {
				return nil, absErr
			}
			dataDir = abs
		}
		cfg.DataDir = dataDir
	case LedgerRedis:
		redisAddr := strings.TrimSpace(os.Getenv(envRedisAddr))
		if redisAddr == "" {
			return nil, fmt.Errorf("%s is required with %s=%s", envRedisAddr, envLedgerBackend, LedgerRedis)
		}
		cfg.RedisAddr = redisAddr
	default:
		return nil, fmt.Errorf("%s must be %s|%s, got %q", envLedgerBackend, LedgerSQLite, LedgerRedis, backend)
	}

	return cfg, nil
}
