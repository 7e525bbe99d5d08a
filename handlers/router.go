// Package handlers contains the echo HTTP handlers of the fleet services.
package handlers

import (
	"io"
	"net/http"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RouterHTTP exposes the inter-service router over HTTP: a catch-all that routes and
// forwards, plus the administrative POST /shutdown escape hatch that acknowledges and
// then stops the process.
type RouterHTTP struct {
	router interfaces.Router
	stop   func()
	logger log.Logger
}

// NewRouterHTTP creates the router handler set. Panics on nil router, stop or logger.
//
// Parameters: router — service.Router; stop — invoked (in its own goroutine) after the
// shutdown acknowledgement has been written; logger.
//
// Called from cmd/iscs at startup.
func NewRouterHTTP(router interfaces.Router, stop func(), logger log.Logger) *RouterHTTP {
	return &RouterHTTP{
		router: helpers.NilPanic(router, "handlers.router.go: router is required"),
		stop:   helpers.NilPanic(stop, "handlers.router.go: stop is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.router.go: logger is required"), "component", "RouterHTTP"),
	}
}

// Register registers the shutdown route and the catch-all on e. The shutdown route is
// registered for every method so a non-POST yields 405 instead of being routed.
func (h *RouterHTTP) Register(e *echo.Echo) {
	e.Any("/shutdown", h.Shutdown)
	e.Any("/*", h.Handle)
}

// Handle reads the inbound request, hands it to the router and writes back the result.
// The response Content-Type is always application/json regardless of what the backend
// declared.
func (h *RouterHTTP) Handle(c echo.Context) error {
	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	res := h.router.Route(req.Context(), domain.ProxyRequest{
		Method:   req.Method,
		Path:     req.URL.Path,
		RawQuery: req.URL.RawQuery,
		Header:   req.Header,
		Body:     body,
	})
	return c.Blob(res.Status, echo.MIMEApplicationJSON, res.Body)
}

// Shutdown acknowledges a POST with {"status":"ok"} and then triggers the stop
// callback; any other method yields 405. The stop runs in its own goroutine so the
// acknowledgement reaches the caller first.
func (h *RouterHTTP) Shutdown(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	}
	if err := c.JSON(http.StatusOK, statusReply{Status: "ok"}); err != nil {
		return err
	}
	level.Info(h.logger).Log("msg", "shutdown requested")
	go h.stop()
	return nil
}

// statusReply is the {"status": "..."} body used by acknowledgements and order
// workflow rejections.
type statusReply struct {
	Status string `json:"status"`
}
