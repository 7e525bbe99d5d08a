package domain

import (
	"strconv"
	"strings"
)

// ServiceName identifies a logical fleet service (e.g. "UserService") under which one or
// more physical host:port addresses are registered.
type ServiceName string

const (
	ServiceUser    ServiceName = "UserService"
	ServiceProduct ServiceName = "ProductService"
	ServiceOrder   ServiceName = "OrderService"
	// ServiceISCS is the router itself; registered so processes can look up where it listens.
	ServiceISCS ServiceName = "InterServiceCommunication"
)

// Registration is one logical service with its ordered backend address list.
// Addresses are host:port strings; insertion order is registration order and duplicates
// are kept (a duplicate doubles that backend's selection weight).
type Registration struct {
	Name      ServiceName
	Addresses []string
}

// FleetConfig is the ordered set of service registrations loaded from the fleet YAML.
type FleetConfig struct {
	Registrations []Registration
}

// Addresses returns the address list registered for name, or nil when absent.
func (c FleetConfig) Addresses(name ServiceName) []string {
	for _, reg := range c.Registrations {
		if reg.Name == name {
			return reg.Addresses
		}
	}
	return nil
}

// ValidateFleetConfig validates the loaded fleet registrations: every entry has a
// non-empty name and at least one non-empty host:port address.
//
// Parameter cfg — fleet config (usually from YAML via cmd LoadConfig).
//
// Returns: nil when valid; *FleetConfigError with Index (0-based registration index)
// and Reason on the first problem found.
//
// Called from service.NewRegistry and the cmd LoadConfig functions before use.
func ValidateFleetConfig(cfg FleetConfig) error {
	for i, reg := range cfg.Registrations {
		if strings.TrimSpace(string(reg.Name)) == "" {
			return &FleetConfigError{Index: i, Reason: "service name must be non-empty"}
		}
		if len(reg.Addresses) == 0 {
			return &FleetConfigError{Index: i, Reason: "at least one address is required"}
		}
		for _, addr := range reg.Addresses {
			host, port, ok := splitHostPort(addr)
			if !ok || host == "" || port == "" {
				return &FleetConfigError{Index: i, Reason: "address must be host:port, got " + strconv.Quote(addr)}
			}
		}
	}
	return nil
}

// splitHostPort splits "host:port" on the last colon. Returns ok=false when there is no colon.
func splitHostPort(addr string) (host, port string, ok bool) {
	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return "", "", false
	}
	return addr[:i], addr[i+1:], true
}

// FleetConfigError is returned by ValidateFleetConfig when a registration is invalid.
// Index is the registration index (0-based); Reason is a human-readable message.
type FleetConfigError struct {
	Index  int
	Reason string
}

// Error implements error; returns a string like "registration[0]: at least one address is required".
func (e *FleetConfigError) Error() string {
	return "registration[" + strconv.Itoa(e.Index) + "]: " + e.Reason
}
