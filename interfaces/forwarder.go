package interfaces

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
)

// Forwarder performs the outbound leg of a proxied request: one HTTP call to a resolved
// backend address with the original method, path, query, headers (minus Host and
// Content-Length) and body.
//
// Implemented by adapters.ForwarderHTTP. Called from service.Router.Route after
// address selection, and from the order service's transparent proxy handler.
//
//go:generate moq -stub -out mock/forwarder.go -pkg mock . Forwarder
type Forwarder interface {
	// Forward calls http://<addr><path>[?<query>] and returns the backend's status and
	// body. Redirects are not followed; error-status bodies are read like success
	// bodies. Any transport failure (refused connection, timeout, DNS) is folded into
	// a synthetic ProxyResult with status 500 and a JSON error body — Forward never
	// lets a transport error escape.
	// Parameters: ctx — bounds the outbound call; addr — backend host:port;
	// req — method/path/query/headers/body of the inbound request.
	// Called from service.Router.Route and handlers.OrderHTTP.Proxy.
	Forward(ctx context.Context, addr string, req domain.ProxyRequest) domain.ProxyResult
}
