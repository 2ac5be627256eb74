package okgateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/okgateway"
)

func TestClient_Mutations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/mutasi/qris/OK123456/secret-key", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [
				{"date": "2025-03-02 14:30:00", "amount": "15000", "type": "CR", "brand_name": "GOPAY", "issuer_reff": "abc123"},
				{"date": "2025-03-01 09:00:00", "amount": "5000", "type": "CR", "brand_name": "DANA", "issuer_reff": "def456"}
			]
		}`))
	}))
	defer srv.Close()

	client := okgateway.NewClient(srv.URL)
	entries, err := client.Mutations(context.Background(), "OK123456", "secret-key")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Date.Equal(time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "GOPAY", entries[0].Brand)
	assert.Equal(t, int64(15000), entries[0].Amount)
	assert.Equal(t, "DANA", entries[1].Brand)
}

func TestClient_Mutations_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "success", "data": []}`))
	}))
	defer srv.Close()

	client := okgateway.NewClient(srv.URL)
	entries, err := client.Mutations(context.Background(), "OK123456", "secret-key")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClient_Mutations_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "failed", "data": []}`))
	}))
	defer srv.Close()

	client := okgateway.NewClient(srv.URL)
	_, err := client.Mutations(context.Background(), "OK123456", "secret-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"failed"`)
}

func TestClient_Mutations_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := okgateway.NewClient(srv.URL)
	_, err := client.Mutations(context.Background(), "OK123456", "secret-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
