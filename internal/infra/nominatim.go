package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Location is a geocoded place. Nil means the query had no match, which is
// "location unknown" for the caller, not a failure.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type GeocoderInterface interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}

// NominatimGeocoder resolves place names through the OpenStreetMap Nominatim
// search API. The usage policy allows at most one request per second, so every
// call goes through a single shared limiter; one instance is created at
// startup and injected everywhere geocoding is needed, never per request.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
}

func NewNominatimGeocoder(minInterval time.Duration) *NominatimGeocoder {
	if minInterval <= 0 {
		minInterval = time.Second
	}

	return &NominatimGeocoder{
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: "voyago-travel-planner",
		limiter:   rate.NewLimiter(rate.Every(minInterval), 1),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*Location, error) {
	if query == "" {
		return nil, nil
	}

	// Blocks until the shared quota allows another call.
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim request failed with status %d", resp.StatusCode)
	}

	var results []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in nominatim response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in nominatim response: %w", err)
	}

	return &Location{
		Name:      results[0].DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
