package domain

import (
	"strconv"
	"strings"
)

// Route maps a path prefix to a logical service.
// Prefix must start with "/" and is matched with strings.HasPrefix(path, Prefix).
type Route struct {
	Prefix  string
	Service ServiceName
}

// RouteTable is an ordered list of routes; classification takes the first match,
// so more specific prefixes should be ordered first.
type RouteTable []Route

// DefaultRouteTable is the fixed classification table of the fleet router:
// /user → UserService, /product → ProductService, /order → OrderService.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		{Prefix: "/user", Service: ServiceUser},
		{Prefix: "/product", Service: ServiceProduct},
		{Prefix: "/order", Service: ServiceOrder},
	}
}

// Match classifies path by prefix, first match wins.
//
// Parameter path — request path starting with "/"; empty string matches nothing.
//
// Returns: (service, true) on a prefix match; ("", false) when no prefix matches.
//
// Called from service.Router.Route for every inbound request.
func (t RouteTable) Match(path string) (ServiceName, bool) {
	for _, r := range t {
		if strings.HasPrefix(path, r.Prefix) {
			return r.Service, true
		}
	}
	return "", false
}

// ValidateRouteTable checks every route has a non-empty prefix starting with "/" and a
// non-empty service name. Returns nil or the first *RouteTableError found.
func ValidateRouteTable(t RouteTable) error {
	for i, r := range t {
		if r.Prefix == "" {
			return &RouteTableError{Index: i, Reason: "prefix must be non-empty"}
		}
		if r.Prefix[0] != '/' {
			return &RouteTableError{Index: i, Reason: "prefix must start with /"}
		}
		if strings.TrimSpace(string(r.Service)) == "" {
			return &RouteTableError{Index: i, Reason: "service must be non-empty"}
		}
	}
	return nil
}

// RouteTableError is returned by ValidateRouteTable for an invalid route entry.
type RouteTableError struct {
	Index  int
	Reason string
}

func (e *RouteTableError) Error() string {
	return "route[" + strconv.Itoa(e.Index) + "]: " + e.Reason
}
