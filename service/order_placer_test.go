package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okResult(body string) domain.ProxyResult {
	return domain.ProxyResult{Status: http.StatusOK, Body: []byte(body)}
}

func notFoundResult() domain.ProxyResult {
	return domain.ProxyResult{Status: http.StatusNotFound, Body: []byte(`{"error":"not found"}`)}
}

// happyFleet returns a fleet mock where user 1 exists and product 2 has the given stock.
func happyFleet(t *testing.T, stock string) *mock.FleetClientMock {
	return &mock.FleetClientMock{
		GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult {
			assert.Equal(t, 1, id)
			return okResult(`{"id":1,"username":"u"}`)
		},
		GetProductFunc: func(ctx context.Context, id int) domain.ProxyResult {
			assert.Equal(t, 2, id)
			return okResult(`{"id":2,"quantity":` + stock + `}`)
		},
		UpdateProductQuantityFunc: func(ctx context.Context, id, quantity int) domain.ProxyResult {
			return okResult(`{"id":2}`)
		},
	}
}

func validBody() []byte {
	return []byte(`{"command":"place order","user_id":1,"product_id":2,"quantity":3}`)
}

func TestNewOrderPlacer_panics_on_nil_dependencies(t *testing.T) {
	fleet := &mock.FleetClientMock{}
	ledger := &mock.PurchaseLedgerMock{}
	orders := &mock.OrderStoreMock{}

	assert.PanicsWithValue(t, "service.order_placer.go: fleet client is required", func() {
		NewOrderPlacer(nil, ledger, orders, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.order_placer.go: ledger is required", func() {
		NewOrderPlacer(fleet, nil, orders, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.order_placer.go: order store is required", func() {
		NewOrderPlacer(fleet, ledger, nil, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.order_placer.go: logger is required", func() {
		NewOrderPlacer(fleet, ledger, orders, nil)
	})
}

func TestOrderPlacer_Place_success(t *testing.T) {
	fleet := happyFleet(t, "10")
	ledger := &mock.PurchaseLedgerMock{}
	orders := &mock.OrderStoreMock{}
	placer := NewOrderPlacer(fleet, ledger, orders, log.NewNopLogger())

	order, err := placer.Place(context.Background(), validBody())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, order.UserID)
	assert.Equal(t, 2, order.ProductID)
	assert.Equal(t, 3, order.Quantity)

	// Decrement is absolute: stock 10 minus requested 3.
	updates := fleet.UpdateProductQuantityCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, 2, updates[0].ID)
	assert.Equal(t, 7, updates[0].Quantity)

	adds := ledger.AddCalls()
	require.Len(t, adds, 1)
	assert.Equal(t, 1, adds[0].UserID)
	assert.Equal(t, 2, adds[0].ProductID)
	assert.Equal(t, 3, adds[0].Quantity)

	inserts := orders.InsertCalls()
	require.Len(t, inserts, 1)
	assert.Equal(t, order, inserts[0].Order)
}

func TestOrderPlacer_Place_exact_stock(t *testing.T) {
	fleet := happyFleet(t, "3")
	placer := NewOrderPlacer(fleet, &mock.PurchaseLedgerMock{}, &mock.OrderStoreMock{}, log.NewNopLogger())

	_, err := placer.Place(context.Background(), validBody())
	require.NoError(t, err)

	updates := fleet.UpdateProductQuantityCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, 0, updates[0].Quantity)
}

func TestOrderPlacer_Place_rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		fleet       *mock.FleetClientMock
		wantCode    string
		wantMessage string
	}{
		{
			name:        "invalid body",
			body:        []byte(`{"command":"place order"}`),
			fleet:       &mock.FleetClientMock{},
			wantCode:    ErrBadParameter,
			wantMessage: "Invalid Request",
		},
		{
			name: "user not found",
			body: validBody(),
			fleet: &mock.FleetClientMock{
				GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult { return notFoundResult() },
			},
			wantCode:    ErrEntityNotFound,
			wantMessage: "Invalid Request",
		},
		{
			name: "user lookup 500 folds into not found",
			body: validBody(),
			fleet: &mock.FleetClientMock{
				GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult {
					return domain.ProxyResult{Status: http.StatusInternalServerError}
				},
			},
			wantCode:    ErrEntityNotFound,
			wantMessage: "Invalid Request",
		},
		{
			name: "product not found",
			body: validBody(),
			fleet: &mock.FleetClientMock{
				GetUserFunc:    func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":1}`) },
				GetProductFunc: func(ctx context.Context, id int) domain.ProxyResult { return notFoundResult() },
			},
			wantCode:    ErrEntityNotFound,
			wantMessage: "Invalid Request",
		},
		{
			name: "product body without parsable stock",
			body: validBody(),
			fleet: &mock.FleetClientMock{
				GetUserFunc:    func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":1}`) },
				GetProductFunc: func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":2,"quantity":"ten"}`) },
			},
			wantCode:    ErrBadParameter,
			wantMessage: "Invalid Request",
		},
		{
			name:        "quantity exceeds stock",
			body:        validBody(),
			fleet:       happyFleet(t, "2"),
			wantCode:    ErrQuantityExceeded,
			wantMessage: "Exceeded quantity limit",
		},
		{
			name: "inventory decrement rejected",
			body: validBody(),
			fleet: &mock.FleetClientMock{
				GetUserFunc:    func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":1}`) },
				GetProductFunc: func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":2,"quantity":10}`) },
				UpdateProductQuantityFunc: func(ctx context.Context, id, quantity int) domain.ProxyResult {
					return domain.ProxyResult{Status: http.StatusBadRequest}
				},
			},
			wantCode:    ErrBadParameter,
			wantMessage: "Invalid Request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &mock.PurchaseLedgerMock{}
			orders := &mock.OrderStoreMock{}
			placer := NewOrderPlacer(tt.fleet, ledger, orders, log.NewNopLogger())

			order, err := placer.Place(context.Background(), tt.body)

			require.Error(t, err)
			assert.Zero(t, order)
			myErr := ToMyError(err)
			require.NotNil(t, myErr)
			assert.Equal(t, tt.wantCode, myErr.Code)
			assert.Equal(t, tt.wantMessage, myErr.Message)

			// A rejected placement leaves no trace.
			assert.Empty(t, ledger.AddCalls())
			assert.Empty(t, orders.InsertCalls())
		})
	}
}

func TestOrderPlacer_Place_overstock_leaves_inventory_untouched(t *testing.T) {
	fleet := happyFleet(t, "2")
	ledger := &mock.PurchaseLedgerMock{}
	placer := NewOrderPlacer(fleet, ledger, &mock.OrderStoreMock{}, log.NewNopLogger())

	_, err := placer.Place(context.Background(), validBody())

	require.Error(t, err)
	assert.True(t, IsQuantityExceededError(err))
	assert.Empty(t, fleet.UpdateProductQuantityCalls())
	assert.Empty(t, ledger.AddCalls())
}

func TestOrderPlacer_Place_ledger_failure_after_decrement(t *testing.T) {
	// The documented gap: inventory is decremented, the ledger write fails, and no
	// compensation runs. The placement is rejected anyway.
	fleet := happyFleet(t, "10")
	ledger := &mock.PurchaseLedgerMock{
		AddFunc: func(ctx context.Context, userID, productID, quantity int) error {
			return assert.AnError
		},
	}
	orders := &mock.OrderStoreMock{}
	placer := NewOrderPlacer(fleet, ledger, orders, log.NewNopLogger())

	_, err := placer.Place(context.Background(), validBody())

	require.Error(t, err)
	assert.True(t, IsBadParameterError(err))
	assert.Len(t, fleet.UpdateProductQuantityCalls(), 1)
	assert.Empty(t, orders.InsertCalls())
}

func TestOrderPlacer_Place_concurrent_same_pair(t *testing.T) {
	// Two hundred concurrent placements for the same (user, product) pair: every
	// accepted placement produces exactly one ledger add and one receipt.
	fleet := happyFleet(t, "1000")
	ledger := &mock.PurchaseLedgerMock{}
	orders := &mock.OrderStoreMock{}
	placer := NewOrderPlacer(fleet, ledger, orders, log.NewNopLogger())

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := placer.Place(context.Background(), validBody())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, ledger.AddCalls(), n)
	assert.Len(t, orders.InsertCalls(), n)

	seen := make(map[string]bool)
	for _, call := range orders.InsertCalls() {
		assert.False(t, seen[call.Order.ID], "duplicate order id %s", call.Order.ID)
		seen[call.Order.ID] = true
	}
}

func TestOrderPlacer_Purchases(t *testing.T) {
	t.Run("returns ledger entries", func(t *testing.T) {
		fleet := &mock.FleetClientMock{
			GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":1}`) },
		}
		ledger := &mock.PurchaseLedgerMock{
			ForUserFunc: func(ctx context.Context, userID int) (map[int]int, error) {
				return map[int]int{2: 5, 9: 1}, nil
			},
		}
		placer := NewOrderPlacer(fleet, ledger, &mock.OrderStoreMock{}, log.NewNopLogger())

		purchases, err := placer.Purchases(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, map[int]int{2: 5, 9: 1}, purchases)
	})
	t.Run("empty map for a user with no purchases", func(t *testing.T) {
		fleet := &mock.FleetClientMock{
			GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult { return okResult(`{"id":1}`) },
		}
		ledger := &mock.PurchaseLedgerMock{
			ForUserFunc: func(ctx context.Context, userID int) (map[int]int, error) {
				return map[int]int{}, nil
			},
		}
		placer := NewOrderPlacer(fleet, ledger, &mock.OrderStoreMock{}, log.NewNopLogger())

		purchases, err := placer.Purchases(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, purchases)
		assert.Empty(t, purchases)
	})
	t.Run("unknown user", func(t *testing.T) {
		fleet := &mock.FleetClientMock{
			GetUserFunc: func(ctx context.Context, id int) domain.ProxyResult { return notFoundResult() },
		}
		ledger := &mock.PurchaseLedgerMock{}
		placer := NewOrderPlacer(fleet, ledger, &mock.OrderStoreMock{}, log.NewNopLogger())

		_, err := placer.Purchases(context.Background(), 404)
		require.Error(t, err)
		assert.True(t, IsEntityNotFoundError(err))
		assert.Empty(t, ledger.ForUserCalls())
	})
}
