package service

import (
	"sync"

	"github.com/mughalk/csc301-a2/domain"
)

// orderStore implements interfaces.OrderStore with a process-lifetime in-memory map.
// Receipts are insert-only and keyed by freshly generated ids, so distinct placements
// never contend on a key. Lost on restart — a known, accepted gap.
type orderStore struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

// NewOrderStore creates the in-memory order receipt store.
//
// Called from cmd/orderservice at startup.
func NewOrderStore() *orderStore {
	return &orderStore{orders: make(map[string]domain.Order)}
}

// Insert stores the order under its id.
func (s *orderStore) Insert(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// Get returns the order for id, or (zero, false) when the id was never issued.
func (s *orderStore) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	return order, ok
}
