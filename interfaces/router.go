package interfaces

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
)

// Router is the inter-service router's call surface: classify the path, pick a backend
// and forward.
//
// Implemented by service.Router. Called from handlers.RouterHTTP for every inbound
// request that is not the administrative shutdown.
//
//go:generate moq -stub -out mock/router.go -pkg mock . Router
type Router interface {
	// Route classifies req.Path by prefix, selects a backend address and forwards.
	// Returns the backend's result verbatim; 404 with a JSON error for an unknown
	// route (no outbound call is made); 503 when the classified service has no
	// registered address.
	// Called from handlers.RouterHTTP.Handle.
	Route(ctx context.Context, req domain.ProxyRequest) domain.ProxyResult
}
