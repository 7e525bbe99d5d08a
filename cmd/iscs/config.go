package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mughalk/csc301-a2/adapters/fleetfile"
	"github.com/mughalk/csc301-a2/domain"
)

// Env variable names.
const (
	envHTTPPort        = "SERVICE_PORT_HTTP"
	envFleetConfigPath = "FLEET_CONFIG_PATH"
)

// Config holds the router configuration: listening port and the fleet
// registrations to build the registry from.
type Config struct {
	HTTPPort int
	Fleet    domain.FleetConfig
}

// LoadConfig builds the router config from environment variables.
// SERVICE_PORT_HTTP (required, 1-65535) and FLEET_CONFIG_PATH (required,
// loaded and validated via fleetfile.Load) are read.
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

	fleetPath := strings.TrimSpace(os.Getenv(envFleetConfigPath))
	if fleetPath == "" {
		return nil, fmt.Errorf("%s is required", envFleetConfigPath)
	}
	fleet, err := fleetfile.Load(fleetPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort: httpPort,
		Fleet:    fleet,
	}, nil
}
