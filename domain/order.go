package domain

import "strings"

// PlaceOrderCommand is the command value required in a POST /order body, compared
// case-insensitively.
const PlaceOrderCommand = "place order"

// Order is the receipt for one successful placement. Created only when the whole
// workflow succeeds, never mutated or deleted afterwards.
type Order struct {
	ID        string `json:"id"`
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the validated body of POST /order.
type PlaceOrderRequest struct {
	UserID    int
	ProductID int
	Quantity  int
}

// ParsePlaceOrder validates a raw POST /order body: it must be a JSON object with a
// case-insensitive command equal to "place order", strictly integral user_id and
// product_id, and a strictly positive integral quantity.
//
// Parameter body — raw request body bytes.
//
// Returns: (request, true) when the body is valid; (zero, false) on any violation.
// The caller rejects invalid bodies with a single 400; no distinction between the
// violations is surfaced.
//
// Called from service.OrderPlacer.Place as the first workflow step.
func ParsePlaceOrder(body []byte) (PlaceOrderRequest, bool) {
	obj, err := DecodeObject(body)
	if err != nil {
		return PlaceOrderRequest{}, false
	}
	command, ok := String(obj, "command")
	if !ok || !strings.EqualFold(command, PlaceOrderCommand) {
		return PlaceOrderRequest{}, false
	}
	userID, ok := IntStrict(obj, "user_id")
	if !ok {
		return PlaceOrderRequest{}, false
	}
	productID, ok := IntStrict(obj, "product_id")
	if !ok {
		return PlaceOrderRequest{}, false
	}
	quantity, ok := IntStrict(obj, "quantity")
	if !ok || quantity <= 0 {
		return PlaceOrderRequest{}, false
	}
	return PlaceOrderRequest{UserID: userID, ProductID: productID, Quantity: quantity}, true
}
