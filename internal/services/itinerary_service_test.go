package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/infra"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type fakeGeocoder struct {
	locations map[string]*infra.Location
	errors    map[string]error
	calls     []string
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (*infra.Location, error) {
	f.calls = append(f.calls, query)
	if err, ok := f.errors[query]; ok {
		return nil, err
	}
	return f.locations[query], nil
}

type fakeWeatherClient struct {
	forecast []response_models.WeatherDay
	err      error
	calls    int
}

func (f *fakeWeatherClient) Forecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]response_models.WeatherDay, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

type fakeTransportService struct {
	recommendation response_models.TransportRecommendation
}

func (f *fakeTransportService) RecommendTransport(ctx context.Context, origin, destination, startDate, endDate string, budget request_models.Budget) response_models.TransportRecommendation {
	return f.recommendation
}

func (f *fakeTransportService) FlightQuote(ctx context.Context, origin, destination, date string) (*infra.FareQuote, error) {
	return nil, nil
}

func (f *fakeTransportService) TrainOptions(ctx context.Context, origin, destination, date string) ([]infra.FareQuote, error) {
	return nil, nil
}

type fakeTextGenClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeTextGenClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeTextGenClient) Close() error { return nil }

func dayPlanJSON(days int) string {
	payload := "["
	for i := 0; i < days; i++ {
		if i > 0 {
			payload += ","
		}
		payload += fmt.Sprintf(`{
			"morning": {"name": "Museum %d", "description": ["Visit the museum"], "estimated_cost": {"amount": 20, "currency": "INR"}, "local_cuisine_suggestion": "Thali", "special_event": null, "image_search_term": "museum"},
			"afternoon": null,
			"evening": {"name": "Night Market %d", "description": ["Street food"], "estimated_cost": null, "local_cuisine_suggestion": "Chaat", "special_event": null, "image_search_term": "market"}
		}`, i+1, i+1)
	}
	return payload + "]"
}

func newItineraryFixture(days int) (*fakeGeocoder, *fakeWeatherClient, *fakeTextGenClient, ItineraryServiceInterface) {
	geocoder := &fakeGeocoder{
		locations: map[string]*infra.Location{
			"Jaipur": {Name: "Jaipur, Rajasthan", Latitude: 26.9, Longitude: 75.8},
		},
	}
	weather := &fakeWeatherClient{
		forecast: []response_models.WeatherDay{
			{Date: "2026-03-14", WeatherCode: 1, TempMax: 32.5, TempMin: 19.0},
			{Date: "2026-03-15", WeatherCode: 3, TempMax: 30.1, TempMin: 18.2},
		},
	}
	transport := &fakeTransportService{
		recommendation: response_models.TransportRecommendation{
			Mode:    "Flight",
			Details: "Cheapest flight option found with carrier AI. Booking advised via airline or travel portal.",
		},
	}
	aiClient := &fakeTextGenClient{response: "```json\n" + dayPlanJSON(days) + "\n```"}

	service := NewItineraryService(geocoder, weather, transport, aiClient)
	return geocoder, weather, aiClient, service
}

func generate(service ItineraryServiceInterface) (*response_models.ItineraryPlan, error) {
	return service.GenerateItinerary(
		context.Background(),
		"Jaipur", "2026-03-14", "2026-03-15",
		request_models.Budget{Min: 1000, Max: 50000, Currency: "INR"},
		[]string{"history", "food"},
		"Mumbai",
	)
}

func TestGenerateItinerary_HappyPath(t *testing.T) {
	_, _, _, service := newItineraryFixture(2)

	plan, err := generate(service)

	require.NoError(t, err)
	require.Len(t, plan.Itinerary, 2)
	assert.Equal(t, "Flight", plan.TransportRecommendation.Mode)

	// Forecast entries are attached positionally.
	require.NotNil(t, plan.Itinerary[0].Weather)
	assert.Equal(t, "2026-03-14", plan.Itinerary[0].Weather.Date)
	require.NotNil(t, plan.Itinerary[1].Weather)
	assert.Equal(t, "2026-03-15", plan.Itinerary[1].Weather.Date)
}

func TestGenerateItinerary_InvalidDates(t *testing.T) {
	_, _, _, service := newItineraryFixture(2)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"malformed start", "14-03-2026", "2026-03-15"},
		{"malformed end", "2026-03-14", "tomorrow"},
		{"end before start", "2026-03-15", "2026-03-14"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.GenerateItinerary(
				context.Background(), "Jaipur", tc.start, tc.end,
				request_models.Budget{Max: 50000, Currency: "INR"}, nil, "Mumbai")
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestGenerateItinerary_UnknownDestinationFailsFast(t *testing.T) {
	geocoder, weather, aiClient, service := newItineraryFixture(2)
	delete(geocoder.locations, "Jaipur")

	_, err := generate(service)

	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
	assert.Zero(t, weather.calls, "weather should not be fetched for an unknown destination")
	assert.Zero(t, aiClient.calls, "the model should not be called for an unknown destination")
}

func TestGenerateItinerary_WeatherFailureIsFatal(t *testing.T) {
	_, weather, aiClient, service := newItineraryFixture(2)
	weather.err = errors.New("open-meteo unreachable")

	_, err := generate(service)

	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
	assert.Zero(t, aiClient.calls)
}

func TestGenerateItinerary_ModelErrors(t *testing.T) {
	t.Run("generation failure", func(t *testing.T) {
		_, _, aiClient, service := newItineraryFixture(2)
		aiClient.err = errors.New("quota exceeded")

		_, err := generate(service)
		assert.ErrorIs(t, err, utils.ErrAIGenerationFailed)
	})

	t.Run("non-JSON response", func(t *testing.T) {
		_, _, aiClient, service := newItineraryFixture(2)
		aiClient.response = "I'm sorry, I cannot plan this trip."

		_, err := generate(service)
		assert.ErrorIs(t, err, utils.ErrUnparsableAIResponse)
	})

	t.Run("empty array", func(t *testing.T) {
		_, _, aiClient, service := newItineraryFixture(2)
		aiClient.response = "```json\n[]\n```"

		_, err := generate(service)
		assert.ErrorIs(t, err, utils.ErrUnparsableAIResponse)
	})
}

func TestGenerateItinerary_DayCountMismatchIsNotCorrected(t *testing.T) {
	// Three days back for a two-day trip: the plan is returned as-is and the
	// extra day simply has no forecast to attach.
	_, _, _, service := newItineraryFixture(3)

	plan, err := generate(service)

	require.NoError(t, err)
	require.Len(t, plan.Itinerary, 3)
	assert.NotNil(t, plan.Itinerary[0].Weather)
	assert.NotNil(t, plan.Itinerary[1].Weather)
	assert.Nil(t, plan.Itinerary[2].Weather)
}

func TestGenerateItinerary_ActivityGeocoding(t *testing.T) {
	geocoder, _, _, service := newItineraryFixture(1)
	geocoder.locations["Museum 1, Jaipur"] = &infra.Location{Name: "Museum 1", Latitude: 26.91, Longitude: 75.82}
	geocoder.errors = map[string]error{"Night Market 1, Jaipur": errors.New("nominatim 503")}

	plan, err := generate(service)

	require.NoError(t, err)
	require.Len(t, plan.Itinerary, 1)

	day := plan.Itinerary[0]
	require.NotNil(t, day.Morning.Location)
	assert.Equal(t, "Museum 1", day.Morning.Location.Name)
	assert.InDelta(t, 26.91, day.Morning.Location.Lat, 0.001)

	// A failed POI lookup leaves the slot without coordinates but never fails
	// the itinerary.
	assert.Nil(t, day.Evening.Location)
	assert.Contains(t, geocoder.calls, "Night Market 1, Jaipur")
}
