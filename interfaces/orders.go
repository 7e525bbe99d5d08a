package interfaces

import "github.com/mughalk/csc301-a2/domain"

// OrderStore is the process-lifetime keyed store of order receipts. Insert-only: ids
// are generated fresh per placement and never reused, so concurrent inserts for
// distinct keys never conflict. Orders are lost on restart — an accepted gap of the
// fleet, not silently fixed here.
//
// Implemented by service.NewOrderStore (in-memory). Called from service.OrderPlacer
// (insert) and handlers.OrderHTTP (lookup).
//
//go:generate moq -stub -out mock/orders.go -pkg mock . OrderStore
type OrderStore interface {
	// Insert stores the order under its id.
	Insert(order domain.Order)

	// Get returns the order for id, or (zero, false) when the id was never issued.
	Get(id string) (domain.Order, bool)
}
