package domain

import "net/http"

// ProxyRequest is the ephemeral value object describing one inbound request to be
// forwarded: method, original path and raw query (passed through unchanged), the
// inbound headers and the body bytes. Lifetime is a single call.
type ProxyRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// ProxyResult is the outcome of one forwarded call: the backend's status code and
// response body bytes. Transport failures are folded into a synthetic 500 result by
// the forwarder, so a ProxyResult always exists.
type ProxyResult struct {
	Status int
	Body   []byte
}

// OK reports whether the result carries a 200 status.
func (r ProxyResult) OK() bool { return r.Status == http.StatusOK }
