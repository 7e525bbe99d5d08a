package service

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// OrderPlacer implements interfaces.OrderPlacer: the saga-like placement workflow.
// Every step returns an explicit result that is inspected before the next step runs —
// no error is used as a forward-control mechanism. There is no compensation: once the
// inventory decrement succeeds, a later ledger failure does not roll it back (a
// documented gap of the fleet).
type OrderPlacer struct {
	fleet  interfaces.FleetClient
	ledger interfaces.PurchaseLedger
	orders interfaces.OrderStore
	logger log.Logger
}

// NewOrderPlacer creates the workflow over the fleet client, ledger and order store.
// Panics on any nil dependency.
//
// Called from cmd/orderservice at startup.
func NewOrderPlacer(fleet interfaces.FleetClient, ledger interfaces.PurchaseLedger, orders interfaces.OrderStore, logger log.Logger) *OrderPlacer {
	return &OrderPlacer{
		fleet:  helpers.NilPanic(fleet, "service.order_placer.go: fleet client is required"),
		ledger: helpers.NilPanic(ledger, "service.order_placer.go: ledger is required"),
		orders: helpers.NilPanic(orders, "service.order_placer.go: order store is required"),
		logger: log.With(helpers.NilPanic(logger, "service.order_placer.go: logger is required"), "component", "order_placer"),
	}
}

// Place runs the placement workflow on a raw POST /order body:
//
//  1. validate the body (domain.ParsePlaceOrder) — violation → bad_parameter;
//  2. read the user through the router — non-200 → entity_not_found (a downstream 5xx
//     is deliberately folded into "not found" here, matching the fleet's existing
//     behavior rather than surfacing a gateway error);
//  3. read the product through the router — non-200 → entity_not_found; a body without
//     a parsable stock quantity → bad_parameter;
//  4. reject quantity > stock with quantity_exceeded;
//  5. decrement inventory (absolute update to stock−quantity) — non-200 → bad_parameter;
//  6. record the purchase in the ledger (atomic per-key upsert);
//  7. store the receipt under a fresh uuid and return it.
//
// Returns: (order, nil) on success; (zero, *MyError) on any rejection.
//
// Called from handlers.OrderHTTP.PlaceOrder.
func (p *OrderPlacer) Place(ctx context.Context, body []byte) (domain.Order, error) {
	req, ok := domain.ParsePlaceOrder(body)
	if !ok {
		return domain.Order{}, NewBadParameterError("Invalid Request", nil)
	}

	if res := p.fleet.GetUser(ctx, req.UserID); !res.OK() {
		return domain.Order{}, NewEntityNotFoundError("Invalid Request", nil)
	}

	productRes := p.fleet.GetProduct(ctx, req.ProductID)
	if !productRes.OK() {
		return domain.Order{}, NewEntityNotFoundError("Invalid Request", nil)
	}
	stock, ok := parseStock(productRes.Body)
	if !ok {
		return domain.Order{}, NewBadParameterError("Invalid Request", nil)
	}

	if req.Quantity > stock {
		return domain.Order{}, NewQuantityExceededError("Exceeded quantity limit", nil)
	}

	if res := p.fleet.UpdateProductQuantity(ctx, req.ProductID, stock-req.Quantity); !res.OK() {
		return domain.Order{}, NewBadParameterError("Invalid Request", nil)
	}

	if err := p.ledger.Add(ctx, req.UserID, req.ProductID, req.Quantity); err != nil {
		// Inventory is already decremented at this point and is not rolled back.
		level.Error(p.logger).Log("msg", "ledger write failed after inventory decrement", "err", err)
		return domain.Order{}, NewBadParameterError("Invalid Request", err)
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	p.orders.Insert(order)
	return order, nil
}

// Purchases re-validates the user through the router (non-200 → entity_not_found) and
// returns their ledger entries. A user with no purchases yields an empty map, not an
// error.
//
// Called from handlers.OrderHTTP.UserPurchases.
func (p *OrderPlacer) Purchases(ctx context.Context, userID int) (map[int]int, error) {
	if res := p.fleet.GetUser(ctx, userID); !res.OK() {
		return nil, NewEntityNotFoundError("User not found", nil)
	}
	purchases, err := p.ledger.ForUser(ctx, userID)
	if err != nil {
		return nil, NewInternalServerError("failed to read purchases", err)
	}
	return purchases, nil
}

// parseStock extracts the strictly integral "quantity" field from a product body.
func parseStock(body []byte) (int, bool) {
	obj, err := domain.DecodeObject(body)
	if err != nil {
		return 0, false
	}
	return domain.IntStrict(obj, "quantity")
}
