package interfaces

import "context"

// PurchaseLedger accumulates the cumulative quantity ever purchased per
// (user, product) pair. Entries are created on first purchase and only ever
// incremented.
//
// Implemented by adapters/sqlitestore.Ledger (default) and adapters/redisledger.Ledger.
// Called from service.OrderPlacer after a successful inventory decrement and from the
// purchases query.
//
//go:generate moq -stub -out mock/ledger.go -pkg mock . PurchaseLedger
type PurchaseLedger interface {
	// Add records quantity for the (userID, productID) pair: insert on first purchase,
	// add to the existing value otherwise. The insert-or-add must be atomic per key —
	// two concurrent Adds for the same pair never lose an increment.
	Add(ctx context.Context, userID, productID, quantity int) error

	// ForUser returns every ledger entry of the user as productID → cumulative
	// quantity. A user with no purchases yields an empty, non-nil map.
	ForUser(ctx context.Context, userID int) (map[int]int, error)

	// Close releases the backing store.
	Close() error
}
