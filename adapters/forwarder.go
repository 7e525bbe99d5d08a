package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"
	"github.com/mughalk/csc301-a2/service"
)

// ForwarderHTTP creates an interfaces.Forwarder that performs the outbound leg of a
// proxied request over client. Redirect following is disabled on the fly — the caller,
// not the proxy, decides what a redirect means. Panics on nil client.
//
// Parameter client — outbound HTTP client; set a Timeout so a dead backend cannot hang
// a worker (cmd/iscs uses 10s).
//
// Returns: interfaces.Forwarder (*forwarderHTTP).
//
// Called from cmd/iscs and cmd/orderservice at startup.
func ForwarderHTTP(client *http.Client) interfaces.Forwarder {
	c := *helpers.NilPanic(client, "adapters.forwarder.go: http client is required")
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &forwarderHTTP{client: &c}
}

// forwarderHTTP implements interfaces.Forwarder over a shallow copy of the supplied
// client with redirects disabled.
type forwarderHTTP struct {
	client *http.Client
}

// Forward calls http://<addr><path>[?<query>] with the inbound method, headers (minus
// Host and Content-Length, which the transport recomputes for the outbound leg) and
// body. Response bodies are read for every status — error payloads are never silently
// dropped. Any transport failure is folded into ProxyResult{500, {"error":
// "Forwarding Error: ..."}} so no transport error ever escapes to the client edge.
//
// Parameters: ctx — bounds the call together with the client timeout; addr — backend
// host:port; req — the inbound request's method/path/query/headers/body.
//
// Called from service.Router.Route and handlers.OrderHTTP.Proxy.
func (f *forwarderHTTP) Forward(ctx context.Context, addr string, req domain.ProxyRequest) domain.ProxyResult {
	target := "http://" + addr + req.Path
	if req.RawQuery != "" {
		target += "?" + req.RawQuery
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	out, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return gatewayResult(err)
	}
	for key, values := range req.Header {
		if strings.EqualFold(key, "Host") || strings.EqualFold(key, "Content-Length") {
			continue
		}
		for _, value := range values {
			out.Header.Add(key, value)
		}
	}

	resp, err := f.client.Do(out)
	if err != nil {
		return gatewayResult(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return gatewayResult(err)
	}
	return domain.ProxyResult{Status: resp.StatusCode, Body: respBody}
}

// gatewayResult folds a transport error into the synthetic 500 gateway result.
func gatewayResult(err error) domain.ProxyResult {
	body, _ := json.Marshal(service.ErrResponse{Error: "Forwarding Error: " + err.Error()})
	return domain.ProxyResult{Status: http.StatusInternalServerError, Body: body}
}
