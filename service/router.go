package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Router implements interfaces.Router: the top of the inter-service routing chain.
// It classifies the inbound path against an ordered prefix table, asks the selector
// for the next backend address of the classified service and delegates to the
// forwarder. The backend's result is returned verbatim; the router never rewrites
// path segments.
type Router struct {
	table     domain.RouteTable
	selector  interfaces.Selector
	forwarder interfaces.Forwarder
	logger    log.Logger
}

// NewRouter creates a Router over table, selector and forwarder. Panics on nil
// selector, forwarder or logger and returns an error on an invalid route table.
//
// Parameters: table — ordered prefix table (domain.DefaultRouteTable for the fleet);
// selector — round-robin address selector (service.Registry); forwarder — outbound
// HTTP leg (adapters.ForwarderHTTP); logger — routing decisions are logged at info.
//
// Returns: (*Router, nil) or (nil, *domain.RouteTableError).
//
// Called from cmd/iscs at startup.
func NewRouter(table domain.RouteTable, selector interfaces.Selector, forwarder interfaces.Forwarder, logger log.Logger) (*Router, error) {
	if err := domain.ValidateRouteTable(table); err != nil {
		return nil, err
	}
	return &Router{
		table:     table,
		selector:  helpers.NilPanic(selector, "service.router.go: selector is required"),
		forwarder: helpers.NilPanic(forwarder, "service.router.go: forwarder is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.router.go: logger is required"), "component", "router"),
	}, nil
}

// Route classifies req.Path, selects a backend and forwards.
//
// Parameters: ctx — bounds the outbound call; req — inbound method/path/query/headers/body.
//
// Returns: the backend's ProxyResult verbatim on a routed call; 404 with
// {"error":"Unknown Route: <path>"} when no prefix matches (no outbound call is made);
// 503 with {"error":"Service Not Available: <name>"} when the service has no address.
//
// Called from handlers.RouterHTTP.Handle for every non-administrative request.
func (r *Router) Route(ctx context.Context, req domain.ProxyRequest) domain.ProxyResult {
	name, ok := r.table.Match(req.Path)
	if !ok {
		return errorResult(http.StatusNotFound, "Unknown Route: "+req.Path)
	}
	addr, ok := r.selector.Select(name)
	if !ok {
		return errorResult(http.StatusServiceUnavailable, "Service Not Available: "+string(name))
	}
	level.Info(r.logger).Log(
		"msg", "routing",
		"method", req.Method,
		"path", req.Path,
		"service", name,
		"target", addr,
	)
	return r.forwarder.Forward(ctx, addr, req)
}

// errorResult builds a ProxyResult carrying a flat {"error": message} JSON body.
func errorResult(status int, message string) domain.ProxyResult {
	body, _ := json.Marshal(ErrResponse{Error: message})
	return domain.ProxyResult{Status: status, Body: body}
}
