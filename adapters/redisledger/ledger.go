// Package redisledger is the Redis-backed alternative of the purchase ledger,
// selected with LEDGER_BACKEND=redis. Each user's purchases live in one hash
// (purchases:<user_id>, field <product_id>); HIncrBy gives the atomic per-key
// insert-or-add the workflow requires.
package redisledger

import (
	"context"
	"strconv"

	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/service"

	"github.com/go-redis/redis/v8"
)

// NewRedisUniversalClient creates a universal Redis client from a redis:// URL.
func NewRedisUniversalClient(redisURL string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

// Ledger implements interfaces.PurchaseLedger on Redis hashes.
type Ledger struct {
	client redis.UniversalClient
	prefix string
}

// NewLedger creates the ledger over client. Panics on nil client.
//
// Called from cmd/orderservice at startup when LEDGER_BACKEND=redis.
func NewLedger(client redis.UniversalClient) *Ledger {
	return &Ledger{
		client: helpers.NilPanic(client, "redisledger.ledger.go: redis client is required"),
		prefix: "purchases",
	}
}

func (l *Ledger) key(userID int) string {
	return l.prefix + ":" + strconv.Itoa(userID)
}

// Add increments the (userID, productID) field by quantity. HIncrBy creates the field
// at quantity when absent and is atomic server-side, so concurrent Adds never lose an
// increment.
func (l *Ledger) Add(ctx context.Context, userID, productID, quantity int) error {
	err := l.client.HIncrBy(ctx, l.key(userID), strconv.Itoa(productID), int64(quantity)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis ledger increment error", err)
	}
	return nil
}

// ForUser returns the user's hash as productID → cumulative quantity; an empty,
// non-nil map when the hash does not exist.
func (l *Ledger) ForUser(ctx context.Context, userID int) (map[int]int, error) {
	fields, err := l.client.HGetAll(ctx, l.key(userID)).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis ledger read error", err)
	}
	purchases := make(map[int]int, len(fields))
	for field, value := range fields {
		productID, err := strconv.Atoi(field)
		if err != nil {
			return nil, service.NewInternalServerError("Redis ledger field is not a product id", err)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, service.NewInternalServerError("Redis ledger value is not a quantity", err)
		}
		purchases[productID] = quantity
	}
	return purchases, nil
}

// Close closes the client.
func (l *Ledger) Close() error {
	return l.client.Close()
}
