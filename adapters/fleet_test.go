package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterFleet_panics_on_bad_arguments(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.fleet.go: baseURL is required", func() {
		RouterFleet("", http.DefaultClient)
	})
	assert.PanicsWithValue(t, "adapters.fleet.go: http client is required", func() {
		RouterFleet("http://127.0.0.1:14000", nil)
	})
}

func TestRouterFleet_GetUser(t *testing.T) {
	router := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":42,"username":"u"}`))
	}))
	defer router.Close()

	fleet := RouterFleet(router.URL, &http.Client{Timeout: 2 * time.Second})
	res := fleet.GetUser(context.Background(), 42)

	assert.True(t, res.OK())
	assert.JSONEq(t, `{"id":42,"username":"u"}`, string(res.Body))
}

func TestRouterFleet_GetProduct_passes_status_through(t *testing.T) {
	router := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Product not found"}`))
	}))
	defer router.Close()

	fleet := RouterFleet(router.URL, &http.Client{Timeout: 2 * time.Second})
	res := fleet.GetProduct(context.Background(), 9)

	assert.False(t, res.OK())
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.JSONEq(t, `{"error":"Product not found"}`, string(res.Body))
}

func TestRouterFleet_UpdateProductQuantity(t *testing.T) {
	router := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/product", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"update","id":9,"quantity":4}`, string(body))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":9,"quantity":4}`))
	}))
	defer router.Close()

	fleet := RouterFleet(router.URL, &http.Client{Timeout: 2 * time.Second})
	res := fleet.UpdateProductQuantity(context.Background(), 9, 4)

	assert.True(t, res.OK())
}

func TestRouterFleet_transport_error_folds_into_500(t *testing.T) {
	fleet := RouterFleet("http://127.0.0.1:1", &http.Client{Timeout: 500 * time.Millisecond})
	res := fleet.GetUser(context.Background(), 1)

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(res.Body, &body))
	assert.Contains(t, body.Error, "Fleet call failed: ")
}
