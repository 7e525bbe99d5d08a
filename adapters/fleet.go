package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"
	"github.com/mughalk/csc301-a2/service"
)

// RouterFleet creates an interfaces.FleetClient that reaches the user and product
// backends through the inter-service router — the orchestrator never dials a backend
// address directly. Panics on empty baseURL or nil client.
//
// Parameters: baseURL — router base URL (e.g. http://127.0.0.1:14000), no trailing
// slash; client — HTTP client with a Timeout (cmd/orderservice uses 10s) so a hung
// router call cannot block a worker indefinitely.
//
// Returns: interfaces.FleetClient (*routerFleet).
//
// Called from cmd/orderservice at startup.
func RouterFleet(baseURL string, client *http.Client) interfaces.FleetClient {
	return &routerFleet{
		baseURL: helpers.StrPanic(baseURL, "adapters.fleet.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.fleet.go: http client is required"),
	}
}

// routerFleet implements interfaces.FleetClient over plain HTTP calls to the router.
// Transport failures are folded into status-500 results (the workflow folds any
// non-200 into its existing rejection branches, so the fold loses nothing).
type routerFleet struct {
	baseURL string
	client  *http.Client
}

// GetUser performs GET <router>/user/<id>.
func (f *routerFleet) GetUser(ctx context.Context, id int) domain.ProxyResult {
	return f.do(ctx, http.MethodGet, "/user/"+strconv.Itoa(id), nil)
}

// GetProduct performs GET <router>/product/<id>.
func (f *routerFleet) GetProduct(ctx context.Context, id int) domain.ProxyResult {
	return f.do(ctx, http.MethodGet, "/product/"+strconv.Itoa(id), nil)
}

// UpdateProductQuantity performs POST <router>/product with
// {"command":"update","id":id,"quantity":quantity} — an absolute stock write, the
// orchestrator computes stock−requested itself.
func (f *routerFleet) UpdateProductQuantity(ctx context.Context, id, quantity int) domain.ProxyResult {
	payload, _ := json.Marshal(map[string]any{
		"command":  "update",
		"id":       id,
		"quantity": quantity,
	})
	return f.do(ctx, http.MethodPost, "/product", payload)
}

func (f *routerFleet) do(ctx context.Context, method, path string, payload []byte) domain.ProxyResult {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, body)
	if err != nil {
		return fleetFailure(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fleetFailure(err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fleetFailure(err)
	}
	return domain.ProxyResult{Status: resp.StatusCode, Body: respBody}
}

func fleetFailure(err error) domain.ProxyResult {
	body, _ := json.Marshal(service.ErrResponse{Error: "Fleet call failed: " + err.Error()})
	return domain.ProxyResult{Status: http.StatusInternalServerError, Body: body}
}
