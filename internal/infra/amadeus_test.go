package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmadeusTestClient(handler http.Handler) (*AmadeusClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &AmadeusClient{
		clientID:     "test-id",
		clientSecret: "test-secret",
		baseURL:      server.URL,
		httpClient:   server.Client(),
	}
	return client, server
}

func amadeusStubHandler(tokenRequests *int32) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenRequests, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "stub-token", "expires_in": 1799}`))
	})
	mux.HandleFunc("/v1/reference-data/locations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("keyword") {
		case "Mumbai":
			_, _ = w.Write([]byte(`{"data": [{"iataCode": "BOM"}]}`))
		case "Jaipur":
			_, _ = w.Write([]byte(`{"data": [{"iataCode": "JAI"}]}`))
		default:
			_, _ = w.Write([]byte(`{"data": []}`))
		}
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer stub-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{
			"data": [{
				"price": {"total": "4321.50", "currency": "INR"},
				"itineraries": [{"segments": [{"carrierCode": "AI"}]}]
			}]
		}`))
	})
	return mux
}

func TestAmadeusClient_CheapestFlight(t *testing.T) {
	var tokenRequests int32
	client, server := newAmadeusTestClient(amadeusStubHandler(&tokenRequests))
	defer server.Close()

	quote, err := client.CheapestFlight(context.Background(), "Mumbai", "Jaipur", "2026-03-14")

	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, ModeFlight, quote.Mode)
	assert.Equal(t, 4321.50, quote.Amount)
	assert.Equal(t, "INR", quote.Currency)
	assert.Equal(t, "AI", quote.Carrier)
}

func TestAmadeusClient_TokenIsCached(t *testing.T) {
	var tokenRequests int32
	client, server := newAmadeusTestClient(amadeusStubHandler(&tokenRequests))
	defer server.Close()

	for i := 0; i < 3; i++ {
		_, err := client.CheapestFlight(context.Background(), "Mumbai", "Jaipur", "2026-03-14")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenRequests))
	assert.True(t, client.tokenExpiry.After(time.Now()))
}

func TestAmadeusClient_UnknownCityMeansNoQuote(t *testing.T) {
	var tokenRequests int32
	client, server := newAmadeusTestClient(amadeusStubHandler(&tokenRequests))
	defer server.Close()

	quote, err := client.CheapestFlight(context.Background(), "Mumbai", "Atlantis", "2026-03-14")

	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestAmadeusClient_UnconfiguredSkipsNetwork(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := &AmadeusClient{baseURL: server.URL, httpClient: server.Client()}

	quote, err := client.CheapestFlight(context.Background(), "Mumbai", "Jaipur", "2026-03-14")

	require.NoError(t, err)
	assert.Nil(t, quote)
	assert.Zero(t, atomic.LoadInt32(&hits))
}
