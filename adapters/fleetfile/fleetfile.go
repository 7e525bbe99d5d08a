// Package fleetfile loads the shared fleet YAML describing which host:port
// addresses each logical service runs on.
//
// Format:
//
//	services:
//	  - name: UserService
//	    addresses: ["127.0.0.1:14001"]
//	  - name: ProductService
//	    addresses: ["127.0.0.1:15001", "127.0.0.1:15002"]
package fleetfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mughalk/csc301-a2/domain"

	"gopkg.in/yaml.v3"
)

// yamlFleet is the root struct for YAML unmarshalling.
type yamlFleet struct {
	Services []yamlService `yaml:"services"`
}

// yamlService is one service entry: logical name and its backend address list.
type yamlService struct {
	Name      string   `yaml:"name"`
	Addresses []string `yaml:"addresses"`
}

// Load reads and validates the fleet YAML at path. A relative path is made
// absolute first. Registration order follows file order; duplicate addresses
// are kept (they weight selection).
//
// Returns: the validated config, or an error on read, unmarshal or
// domain.ValidateFleetConfig failure.
//
// Called from the cmd LoadConfig functions.
func Load(path string) (domain.FleetConfig, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return domain.FleetConfig{}, err
		}
		path = abs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FleetConfig{}, err
	}
	var raw yamlFleet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.FleetConfig{}, fmt.Errorf("parse fleet config %s: %w", path, err)
	}

	cfg := domain.FleetConfig{Registrations: make([]domain.Registration, 0, len(raw.Services))}
	for _, svc := range raw.Services {
		cfg.Registrations = append(cfg.Registrations, domain.Registration{
			Name:      domain.ServiceName(svc.Name),
			Addresses: svc.Addresses,
		})
	}
	if err := domain.ValidateFleetConfig(cfg); err != nil {
		return domain.FleetConfig{}, fmt.Errorf("fleet config %s: %w", path, err)
	}
	return cfg, nil
}
