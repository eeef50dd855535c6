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
	"golang.org/x/time/rate"
)

func newNominatimTestGeocoder(handler http.HandlerFunc) (*NominatimGeocoder, *httptest.Server) {
	server := httptest.NewServer(handler)
	geocoder := NewNominatimGeocoder(time.Millisecond)
	geocoder.baseURL = server.URL
	return geocoder, server
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	geocoder, server := newNominatimTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Jaipur", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"), "Nominatim rejects requests without a User-Agent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"display_name": "Jaipur, Rajasthan, India", "lat": "26.9124", "lon": "75.7873"}]`))
	})
	defer server.Close()

	location, err := geocoder.Geocode(context.Background(), "Jaipur")

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "Jaipur, Rajasthan, India", location.Name)
	assert.InDelta(t, 26.9124, location.Latitude, 0.0001)
	assert.InDelta(t, 75.7873, location.Longitude, 0.0001)
}

func TestNominatimGeocoder_NoMatchIsNotAnError(t *testing.T) {
	geocoder, server := newNominatimTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	location, err := geocoder.Geocode(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestNominatimGeocoder_EmptyQuery(t *testing.T) {
	var hits int32
	geocoder, server := newNominatimTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})
	defer server.Close()

	location, err := geocoder.Geocode(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, location)
	assert.Zero(t, atomic.LoadInt32(&hits), "an empty query should never hit the API")
}

func TestNominatimGeocoder_ServerError(t *testing.T) {
	geocoder, server := newNominatimTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})
	defer server.Close()

	_, err := geocoder.Geocode(context.Background(), "Jaipur")

	assert.Error(t, err)
}

func TestNominatimGeocoder_RateLimitSpacing(t *testing.T) {
	geocoder, server := newNominatimTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	interval := 50 * time.Millisecond
	geocoder.limiter.SetLimit(rate.Every(interval))

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := geocoder.Geocode(context.Background(), "Jaipur")
		require.NoError(t, err)
	}

	// First call is immediate, the next two each wait one interval.
	assert.GreaterOrEqual(t, time.Since(start), 2*interval)
}
