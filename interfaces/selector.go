package interfaces

import "github.com/mughalk/csc301-a2/domain"

// Selector picks the next backend address for a logical service using round-robin
// rotation over the registered address list.
//
// Implemented by service.Registry. Called from service.Router.Route after path
// classification.
//
//go:generate moq -stub -out mock/selector.go -pkg mock . Selector
type Selector interface {
	// Select returns the next address for name in round-robin order.
	// Parameter name — logical service name (e.g. domain.ServiceUser).
	// Returns: (address, true) when the service is registered with at least one
	// address; ("", false) when unregistered or empty — the caller surfaces 503.
	// Safe for concurrent use; each call advances the service's cursor exactly once.
	Select(name domain.ServiceName) (string, bool)
}
