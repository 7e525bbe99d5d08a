package sqlitestore

import (
	"context"
	"testing"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProducts(t *testing.T) *Products {
	t.Helper()
	products, err := NewProducts(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = products.Close() })
	return products
}

func seedProduct(t *testing.T, products *Products) domain.Product {
	t.Helper()
	product := domain.Product{ID: 1, ProductName: "widget", Description: "a widget", Price: 3.99, Quantity: 10}
	require.NoError(t, products.Create(context.Background(), product))
	return product
}

func TestProducts_Create(t *testing.T) {
	products := newTestProducts(t)
	ctx := context.Background()
	product := seedProduct(t, products)

	t.Run("round trip", func(t *testing.T) {
		got, err := products.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})
	t.Run("duplicate id conflicts", func(t *testing.T) {
		err := products.Create(ctx, domain.Product{ID: 1, ProductName: "other", Description: "d", Price: 1, Quantity: 1})
		require.Error(t, err)
		assert.True(t, service.IsEntityConflictError(err))
		myErr := service.ToMyError(err)
		require.NotNil(t, myErr)
		assert.Equal(t, "Product id already exists", myErr.Message)
	})
	t.Run("same name different id is allowed", func(t *testing.T) {
		err := products.Create(ctx, domain.Product{ID: 2, ProductName: "widget", Description: "d", Price: 1, Quantity: 1})
		assert.NoError(t, err)
	})
}

func TestProducts_Get_missing(t *testing.T) {
	products := newTestProducts(t)

	_, err := products.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
	myErr := service.ToMyError(err)
	require.NotNil(t, myErr)
	assert.Equal(t, "Product not found", myErr.Message)
}

func TestProducts_Update(t *testing.T) {
	products := newTestProducts(t)
	ctx := context.Background()
	seedProduct(t, products)

	t.Run("quantity update keeps other fields", func(t *testing.T) {
		got, err := products.Update(ctx, 1, domain.ProductUpdate{Quantity: helpers.Ptr(7)})
		require.NoError(t, err)
		assert.Equal(t, "widget", got.ProductName)
		assert.InDelta(t, 3.99, got.Price, 1e-9)
		assert.Equal(t, 7, got.Quantity)
	})
	t.Run("missing product", func(t *testing.T) {
		_, err := products.Update(ctx, 404, domain.ProductUpdate{Quantity: helpers.Ptr(7)})
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})
}

func TestProducts_Delete(t *testing.T) {
	t.Run("all fields match", func(t *testing.T) {
		products := newTestProducts(t)
		ctx := context.Background()
		seedProduct(t, products)

		require.NoError(t, products.Delete(ctx, 1, "widget", 3.99, 10))
		_, err := products.Get(ctx, 1)
		assert.True(t, service.IsEntityNotFoundError(err))
	})
	t.Run("price mismatch", func(t *testing.T) {
		products := newTestProducts(t)
		ctx := context.Background()
		seedProduct(t, products)

		err := products.Delete(ctx, 1, "widget", 4.99, 10)
		require.Error(t, err)
		assert.True(t, service.IsFieldMismatchError(err))
		_, err = products.Get(ctx, 1)
		assert.NoError(t, err)
	})
	t.Run("missing product", func(t *testing.T) {
		products := newTestProducts(t)
		err := products.Delete(context.Background(), 404, "widget", 3.99, 10)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})
}
