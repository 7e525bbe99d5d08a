package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"
	"github.com/mughalk/csc301-a2/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// OrderHTTP exposes the order orchestrator over HTTP: the placement workflow, the
// receipt lookup, the per-user purchases query and the transparent /user and /product
// proxy through the inter-service router.
type OrderHTTP struct {
	placer     interfaces.OrderPlacer
	orders     interfaces.OrderStore
	forwarder  interfaces.Forwarder
	routerAddr string
	logger     log.Logger
}

// NewOrderHTTP creates the order service handler set. Panics on nil dependencies or
// empty routerAddr.
//
// Parameters: placer — service.OrderPlacer; orders — receipt store (shared with the
// placer); forwarder — outbound leg for the transparent proxy; routerAddr — the
// router's host:port (the proxy target); logger.
//
// Called from cmd/orderservice at startup.
func NewOrderHTTP(placer interfaces.OrderPlacer, orders interfaces.OrderStore, forwarder interfaces.Forwarder, routerAddr string, logger log.Logger) *OrderHTTP {
	return &OrderHTTP{
		placer:     helpers.NilPanic(placer, "handlers.order.go: placer is required"),
		orders:     helpers.NilPanic(orders, "handlers.order.go: order store is required"),
		forwarder:  helpers.NilPanic(forwarder, "handlers.order.go: forwarder is required"),
		routerAddr: helpers.StrPanic(routerAddr, "handlers.order.go: router address is required"),
		logger:     log.WithPrefix(helpers.NilPanic(logger, "handlers.order.go: logger is required"), "component", "OrderHTTP"),
	}
}

// Register registers all order service routes on e. The static /user/purchased/:user_id
// route wins over the /user/* proxy catch-all in echo's routing, so the purchases
// query is never proxied.
func (h *OrderHTTP) Register(e *echo.Echo) {
	e.POST("/order", h.PlaceOrder)
	e.GET("/order", h.orderIDMissing)
	e.GET("/order/:id", h.GetOrder)
	e.GET("/user/purchased/:user_id", h.UserPurchases)
	e.Any("/user", h.Proxy)
	e.Any("/user/*", h.Proxy)
	e.Any("/product", h.Proxy)
	e.Any("/product/*", h.Proxy)
}

// PlaceOrder runs the placement workflow on the raw body. Rejections answer with the
// workflow's {"status": "<reason>"} wire format (Invalid Request / Exceeded quantity
// limit) and the status mapped from the rejection code; success answers 200 with
// {product_id, user_id, quantity, status:"Success"}.
func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusReply{Status: "Invalid Request"})
	}
	order, err := h.placer.Place(c.Request().Context(), body)
	if err != nil {
		myErr := service.ToMyError(err)
		if myErr == nil {
			return err
		}
		return c.JSON(rejectionStatus(myErr.Code), statusReply{Status: myErr.Message})
	}
	return c.JSON(http.StatusOK, placeOrderReply{
		ProductID: order.ProductID,
		UserID:    order.UserID,
		Quantity:  order.Quantity,
		Status:    "Success",
	})
}

// GetOrder is the pure read of the workflow: looks up the receipt by id, 404 when the
// id was never issued.
func (h *OrderHTTP) GetOrder(c echo.Context) error {
	order, ok := h.orders.Get(c.Param("id"))
	if !ok {
		return service.NewEntityNotFoundError("Order not found", nil)
	}
	return c.JSON(http.StatusOK, order)
}

// orderIDMissing answers GET /order without an id, matching the fleet's wire behavior.
func (h *OrderHTTP) orderIDMissing(echo.Context) error {
	return service.NewEntityNotFoundError("Order id missing", nil)
}

// UserPurchases returns the user's cumulative purchases as {"<product_id>": qty}.
// A malformed or unknown user id yields 404; a user with no purchases an empty map.
func (h *OrderHTTP) UserPurchases(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return service.NewEntityNotFoundError("Invalid user id", err)
	}
	purchases, err := h.placer.Purchases(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

// Proxy forwards /user and /product traffic to the router unchanged and passes the
// response through verbatim.
func (h *OrderHTTP) Proxy(c echo.Context) error {
	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	res := h.forwarder.Forward(req.Context(), h.routerAddr, domain.ProxyRequest{
		Method:   req.Method,
		Path:     req.URL.Path,
		RawQuery: req.URL.RawQuery,
		Header:   req.Header,
		Body:     body,
	})
	return c.Blob(res.Status, echo.MIMEApplicationJSON, res.Body)
}

// rejectionStatus maps a workflow rejection code to its HTTP status. The workflow
// folds downstream 5xx into entity_not_found at the lookup steps, so only these three
// codes reach the handler.
func rejectionStatus(code string) int {
	switch code {
	case service.ErrEntityNotFound:
		return http.StatusNotFound
	case service.ErrQuantityExceeded, service.ErrBadParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// placeOrderReply is the success body of POST /order.
type placeOrderReply struct {
	ProductID int    `json:"product_id"`
	UserID    int    `json:"user_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}
