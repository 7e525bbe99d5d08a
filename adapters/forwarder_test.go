package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mughalk/csc301-a2/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwarderHTTP_panics_on_nil_client(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.forwarder.go: http client is required", func() {
		ForwarderHTTP(nil)
	})
}

func TestForwarderHTTP_Forward(t *testing.T) {
	var seen *http.Request
	var seenBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		seenBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer backend.Close()
	addr := strings.TrimPrefix(backend.URL, "http://")

	forwarder := ForwarderHTTP(&http.Client{Timeout: 2 * time.Second})
	header := http.Header{}
	header.Set("X-Custom", "kept")
	header.Set("Host", "stripped.example.com")
	header.Set("Content-Length", "999")

	res := forwarder.Forward(context.Background(), addr, domain.ProxyRequest{
		Method:   http.MethodPost,
		Path:     "/product",
		RawQuery: "verbose=1",
		Header:   header,
		Body:     []byte(`{"command":"create"}`),
	})

	assert.Equal(t, http.StatusCreated, res.Status)
	assert.JSONEq(t, `{"id":7}`, string(res.Body))
	require.NotNil(t, seen)
	assert.Equal(t, "/product", seen.URL.Path)
	assert.Equal(t, "verbose=1", seen.URL.RawQuery)
	assert.Equal(t, "kept", seen.Header.Get("X-Custom"))
	// The transport recomputes Content-Length for the outbound body.
	assert.NotEqual(t, "999", seen.Header.Get("Content-Length"))
	assert.NotEqual(t, "stripped.example.com", seen.Host)
	assert.Equal(t, []byte(`{"command":"create"}`), seenBody)
}

func TestForwarderHTTP_Forward_reads_error_bodies(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"User id or username already exists"}`))
	}))
	defer backend.Close()

	forwarder := ForwarderHTTP(&http.Client{Timeout: 2 * time.Second})
	res := forwarder.Forward(context.Background(), strings.TrimPrefix(backend.URL, "http://"),
		domain.ProxyRequest{Method: http.MethodPost, Path: "/user"})

	assert.Equal(t, http.StatusConflict, res.Status)
	assert.JSONEq(t, `{"error":"User id or username already exists"}`, string(res.Body))
}

func TestForwarderHTTP_Forward_does_not_follow_redirects(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/1" {
			http.Redirect(w, r, "/user/2", http.StatusFound)
			return
		}
		t.Errorf("redirect target was fetched: %s", r.URL.Path)
	}))
	defer backend.Close()

	forwarder := ForwarderHTTP(&http.Client{Timeout: 2 * time.Second})
	res := forwarder.Forward(context.Background(), strings.TrimPrefix(backend.URL, "http://"),
		domain.ProxyRequest{Method: http.MethodGet, Path: "/user/1"})

	assert.Equal(t, http.StatusFound, res.Status)
}

func TestForwarderHTTP_Forward_transport_error(t *testing.T) {
	// A port nothing listens on: connection refused must fold into a 500 result.
	forwarder := ForwarderHTTP(&http.Client{Timeout: 500 * time.Millisecond})
	res := forwarder.Forward(context.Background(), "127.0.0.1:1",
		domain.ProxyRequest{Method: http.MethodGet, Path: "/user/1"})

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(res.Body, &body))
	assert.True(t, strings.HasPrefix(body.Error, "Forwarding Error: "), "got %q", body.Error)
}

func TestForwarderHTTP_does_not_mutate_caller_client(t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	ForwarderHTTP(client)
	assert.Nil(t, client.CheckRedirect)
}
