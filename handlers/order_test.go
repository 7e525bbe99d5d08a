package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/interfaces/mock"
	"github.com/mughalk/csc301-a2/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	placer    *mock.OrderPlacerMock
	orders    *mock.OrderStoreMock
	forwarder *mock.ForwarderMock
}

func newOrderEcho(m orderMocks) *echo.Echo {
	if m.placer == nil {
		m.placer = &mock.OrderPlacerMock{}
	}
	if m.orders == nil {
		m.orders = &mock.OrderStoreMock{}
	}
	if m.forwarder == nil {
		m.forwarder = &mock.ForwarderMock{}
	}
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	NewOrderHTTP(m.placer, m.orders, m.forwarder, "127.0.0.1:14000", log.NewNopLogger()).Register(e)
	return e
}

func TestOrderHTTP_PlaceOrder(t *testing.T) {
	tests := []struct {
		name           string
		placer         *mock.OrderPlacerMock
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			placer: &mock.OrderPlacerMock{
				PlaceFunc: func(ctx context.Context, body []byte) (domain.Order, error) {
					assert.JSONEq(t, `{"command":"place order","user_id":1,"product_id":2,"quantity":3}`, string(body))
					return domain.Order{ID: "o-1", UserID: 1, ProductID: 2, Quantity: 3}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"product_id":2,"user_id":1,"quantity":3,"status":"Success"}`,
		},
		{
			name: "validation rejection",
			placer: &mock.OrderPlacerMock{
				PlaceFunc: func(ctx context.Context, body []byte) (domain.Order, error) {
					return domain.Order{}, service.NewBadParameterError("Invalid Request", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Invalid Request"}`,
		},
		{
			name: "unknown user or product",
			placer: &mock.OrderPlacerMock{
				PlaceFunc: func(ctx context.Context, body []byte) (domain.Order, error) {
					return domain.Order{}, service.NewEntityNotFoundError("Invalid Request", nil)
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Invalid Request"}`,
		},
		{
			name: "over stock",
			placer: &mock.OrderPlacerMock{
				PlaceFunc: func(ctx context.Context, body []byte) (domain.Order, error) {
					return domain.Order{}, service.NewQuantityExceededError("Exceeded quantity limit", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Exceeded quantity limit"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newOrderEcho(orderMocks{placer: tt.placer})

			req := httptest.NewRequest(http.MethodPost, "/order",
				strings.NewReader(`{"command":"place order","user_id":1,"product_id":2,"quantity":3}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestOrderHTTP_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		orders := &mock.OrderStoreMock{
			GetFunc: func(id string) (domain.Order, bool) {
				assert.Equal(t, "o-1", id)
				return domain.Order{ID: "o-1", UserID: 1, ProductID: 2, Quantity: 3}, true
			},
		}
		e := newOrderEcho(orderMocks{orders: orders})

		req := httptest.NewRequest(http.MethodGet, "/order/o-1", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"o-1","user_id":1,"product_id":2,"quantity":3}`, rec.Body.String())
	})
	t.Run("unknown id", func(t *testing.T) {
		e := newOrderEcho(orderMocks{})

		req := httptest.NewRequest(http.MethodGet, "/order/nope", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
	})
	t.Run("missing id", func(t *testing.T) {
		e := newOrderEcho(orderMocks{})

		req := httptest.NewRequest(http.MethodGet, "/order", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Order id missing"}`, rec.Body.String())
	})
}

func TestOrderHTTP_UserPurchases(t *testing.T) {
	t.Run("returns purchases keyed by product id", func(t *testing.T) {
		placer := &mock.OrderPlacerMock{
			PurchasesFunc: func(ctx context.Context, userID int) (map[int]int, error) {
				assert.Equal(t, 7, userID)
				return map[int]int{2: 5}, nil
			},
		}
		e := newOrderEcho(orderMocks{placer: placer})

		req := httptest.NewRequest(http.MethodGet, "/user/purchased/7", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"2":5}`, rec.Body.String())
	})
	t.Run("empty purchases", func(t *testing.T) {
		placer := &mock.OrderPlacerMock{
			PurchasesFunc: func(ctx context.Context, userID int) (map[int]int, error) {
				return map[int]int{}, nil
			},
		}
		e := newOrderEcho(orderMocks{placer: placer})

		req := httptest.NewRequest(http.MethodGet, "/user/purchased/7", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
	t.Run("unknown user", func(t *testing.T) {
		placer := &mock.OrderPlacerMock{
			PurchasesFunc: func(ctx context.Context, userID int) (map[int]int, error) {
				return nil, service.NewEntityNotFoundError("User not found", nil)
			},
		}
		e := newOrderEcho(orderMocks{placer: placer})

		req := httptest.NewRequest(http.MethodGet, "/user/purchased/404", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
	})
	t.Run("malformed user id", func(t *testing.T) {
		placer := &mock.OrderPlacerMock{}
		e := newOrderEcho(orderMocks{placer: placer})

		req := httptest.NewRequest(http.MethodGet, "/user/purchased/abc", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, placer.PurchasesCalls())
	})
}

func TestOrderHTTP_Proxy(t *testing.T) {
	forwarder := &mock.ForwarderMock{
		ForwardFunc: func(ctx context.Context, addr string, req domain.ProxyRequest) domain.ProxyResult {
			assert.Equal(t, "127.0.0.1:14000", addr)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/user", req.Path)
			assert.Equal(t, []byte(`{"command":"create","id":1}`), req.Body)
			return domain.ProxyResult{Status: http.StatusOK, Body: []byte(`{"id":1}`)}
		},
	}
	e := newOrderEcho(orderMocks{forwarder: forwarder})

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"command":"create","id":1}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	require.Len(t, forwarder.ForwardCalls(), 1)
}

func TestOrderHTTP_purchased_route_beats_proxy(t *testing.T) {
	// /user/purchased/:user_id must be answered locally, never proxied.
	placer := &mock.OrderPlacerMock{
		PurchasesFunc: func(ctx context.Context, userID int) (map[int]int, error) {
			return map[int]int{}, nil
		},
	}
	forwarder := &mock.ForwarderMock{}
	e := newOrderEcho(orderMocks{placer: placer, forwarder: forwarder})

	req := httptest.NewRequest(http.MethodGet, "/user/purchased/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, forwarder.ForwardCalls())
	assert.Len(t, placer.PurchasesCalls(), 1)
}

func TestOrderHTTP_user_get_is_proxied(t *testing.T) {
	forwarder := &mock.ForwarderMock{
		ForwardFunc: func(ctx context.Context, addr string, req domain.ProxyRequest) domain.ProxyResult {
			assert.Equal(t, "/user/7", req.Path)
			return domain.ProxyResult{Status: http.StatusOK, Body: []byte(`{"id":7}`)}
		},
	}
	e := newOrderEcho(orderMocks{forwarder: forwarder})

	req := httptest.NewRequest(http.MethodGet, "/user/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, forwarder.ForwardCalls(), 1)
}
