package interfaces

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
)

// OrderPlacer drives the multi-step order placement workflow and the per-user
// purchases query.
//
// Implemented by service.OrderPlacer. Called from handlers.OrderHTTP.
//
//go:generate moq -stub -out mock/placer.go -pkg mock . OrderPlacer
type OrderPlacer interface {
	// Place runs the placement workflow on a raw POST /order body: validate, check
	// user, check product and stock, decrement inventory, record the purchase, store
	// the receipt.
	// Returns: (order, nil) on success; (zero, *service.MyError) on any rejection —
	// bad_parameter for validation/decrement failures, entity_not_found for missing
	// user/product, quantity_exceeded when the request exceeds stock.
	Place(ctx context.Context, body []byte) (domain.Order, error)

	// Purchases re-validates that the user exists (entity_not_found error otherwise)
	// and returns their ledger entries as productID → cumulative quantity; an empty
	// map, not an error, for a user with no purchases.
	Purchases(ctx context.Context, userID int) (map[int]int, error)
}
