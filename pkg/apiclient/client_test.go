package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return InitClient(utils.APIConfig{BaseURL: server.URL, TimeoutSeconds: 5})
}

func TestGetJSONDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"name": "thing"})
	})

	var out map[string]string
	require.NoError(t, client.GetJSON(context.Background(), "/things", &out))
	assert.Equal(t, "thing", out["name"])
}

func TestPostJSONSendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 5, in["rating"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	})

	var out map[string]int
	err := client.PostJSON(context.Background(), "/reviews", map[string]int{"rating": 5}, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, out["rating"])
}

func TestNotFoundIsTyped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.GetJSON(context.Background(), "/missing", nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUnexpectedStatusIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	err := client.GetJSON(context.Background(), "/broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
	assert.False(t, errors.Is(err, ErrNotFound))
}
