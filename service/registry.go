package service

import (
	"sync/atomic"

	"github.com/mughalk/csc301-a2/domain"
)

// registryEntry holds the ordered backend addresses of one logical service and the
// monotonic selection cursor shared by all concurrent selectors of that service.
type registryEntry struct {
	addrs  []string
	cursor atomic.Uint64
}

// Registry implements interfaces.Selector. It maps each logical service name to an
// ordered address list (insertion order, duplicates kept — a duplicate doubles that
// backend's weight) and a per-service round-robin cursor. Registration happens once at
// startup from the fleet config; from then on the registry is read-only except for the
// atomic cursors, so Select takes no lock.
type Registry struct {
	services map[domain.ServiceName]*registryEntry
}

// NewRegistry builds a registry from the fleet config: every registration is validated
// (domain.ValidateFleetConfig) and its addresses registered in order.
//
// Parameter cfg — registrations loaded from the fleet YAML.
//
// Returns: (*Registry, nil) on success; (nil, *domain.FleetConfigError) on invalid config.
//
// Called from cmd/iscs at startup.
func NewRegistry(cfg domain.FleetConfig) (*Registry, error) {
	if err := domain.ValidateFleetConfig(cfg); err != nil {
		return nil, err
	}
	r := &Registry{services: make(map[domain.ServiceName]*registryEntry, len(cfg.Registrations))}
	for _, reg := range cfg.Registrations {
		r.Register(reg.Name, reg.Addresses...)
	}
	return r, nil
}

// Register appends addrs to the list for name, creating the entry (with its cursor at
// zero) when absent. Idempotency is not enforced: registering the same address twice
// yields two entries and doubles its selection weight — accepted behavior. There is no
// deregistration.
//
// Not safe for use concurrently with Select; all registration happens before serving.
func (r *Registry) Register(name domain.ServiceName, addrs ...string) {
	entry, ok := r.services[name]
	if !ok {
		entry = &registryEntry{}
		r.services[name] = entry
	}
	entry.addrs = append(entry.addrs, addrs...)
}

// Select returns the next address for name in round-robin rotation.
//
// Parameter name — logical service name.
//
// Returns: (address, true) with address = addrs[cursor mod len] where the cursor is
// atomically read-and-incremented; ("", false) when name is unregistered or has an
// empty address list. The cursor is unsigned, so overflow wraps harmlessly before the
// modulo — selection never crashes.
//
// Called concurrently from service.Router.Route for every routed request.
func (r *Registry) Select(name domain.ServiceName) (string, bool) {
	entry, ok := r.services[name]
	if !ok || len(entry.addrs) == 0 {
		return "", false
	}
	idx := entry.cursor.Add(1) - 1
	return entry.addrs[idx%uint64(len(entry.addrs))], true
}
