package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mughalk/csc301-a2/adapters/fleetfile"
	"github.com/mughalk/csc301-a2/domain"
)

// Env variable names.
const (
	envOrderBaseURL    = "ORDER_BASE_URL"
	envFleetConfigPath = "FLEET_CONFIG_PATH"
)

// Config holds the replayer configuration: the order service base URL all
// workload traffic is sent to.
type Config struct {
	OrderBaseURL string
}

// LoadConfig resolves the order service base URL. ORDER_BASE_URL wins when set;
// otherwise FLEET_CONFIG_PATH is loaded and the first OrderService address is
// used. One of the two is required.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	if base := strings.TrimSpace(os.Getenv(envOrderBaseURL)); base != "" {
		return &Config{OrderBaseURL: base}, nil
	}

	fleetPath := strings.TrimSpace(os.Getenv(envFleetConfigPath))
	if fleetPath == "" {
		return nil, fmt.Errorf("%s or %s is required", envOrderBaseURL, envFleetConfigPath)
	}
	fleet, err := fleetfile.Load(fleetPath)
	if err != nil {
		return nil, err
	}
	addrs := fleet.Addresses(domain.ServiceOrder)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("fleet config %s has no %s addresses", fleetPath, domain.ServiceOrder)
	}
	return &Config{OrderBaseURL: "http://" + addrs[0]}, nil
}
