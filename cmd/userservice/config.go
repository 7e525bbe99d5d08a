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
	envHTTPPort = "SERVICE_PORT_HTTP"
	envDataDir  = "DATA_DIR"
)

// Config holds the user service configuration.
type Config struct {
	HTTPPort int
	DataDir  string
}

// LoadConfig builds the user service config from environment variables.
// SERVICE_PORT_HTTP (required, 1-65535) and DATA_DIR (required, made absolute)
// are read.
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

	dataDir := strings.TrimSpace(os.Getenv(envDataDir))
	if dataDir == "" {
		return nil, fmt.Errorf("%s is required", envDataDir)
	}
	if !filepath.IsAbs(dataDir) {
		abs, absErr := filepath.Abs(dataDir)
		if absErr != nil {
			return nil, absErr
		}
		dataDir = abs
	}

	return &Config{
		HTTPPort: httpPort,
		DataDir:  dataDir,
	}, nil
}
