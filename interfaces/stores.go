package interfaces

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
)

// UserStore is the keyed record store behind the user service. Errors use the
// service.MyError taxonomy: entity_conflict on duplicate create, entity_not_found on
// missing records, field_mismatch when delete credentials do not match.
//
// Implemented by adapters/sqlitestore.Users. Called from handlers.UserHTTP.
//
//go:generate moq -stub -out mock/users.go -pkg mock . UserStore
type UserStore interface {
	Create(ctx context.Context, user domain.User) error
	Get(ctx context.Context, id int) (domain.User, error)
	Update(ctx context.Context, id int, update domain.UserUpdate) (domain.User, error)
	// Delete removes the user only when username, email and password all match the
	// stored record (field_mismatch error otherwise).
	Delete(ctx context.Context, id int, username, email, password string) error
	Close() error
}

// ProductStore is the keyed record store behind the product service. Error taxonomy as
// for UserStore.
//
// Implemented by adapters/sqlitestore.Products. Called from handlers.ProductHTTP.
//
//go:generate moq -stub -out mock/products.go -pkg mock . ProductStore
type ProductStore interface {
	Create(ctx context.Context, product domain.Product) error
	Get(ctx context.Context, id int) (domain.Product, error)
	Update(ctx context.Context, id int, update domain.ProductUpdate) (domain.Product, error)
	// Delete removes the product only when productname, price and quantity all match
	// the stored record (field_mismatch error otherwise).
	Delete(ctx context.Context, id int, productname string, price float64, quantity int) error
	Close() error
}
