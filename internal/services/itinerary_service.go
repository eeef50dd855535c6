package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"voyago/internal/infra"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(
		ctx context.Context,
		destination, startDate, endDate string,
		budget request_models.Budget,
		interests []string,
		currentLocation string,
	) (*response_models.ItineraryPlan, error)
}

type ItineraryService struct {
	geocoder  infra.GeocoderInterface
	weather   infra.WeatherClientInterface
	transport TransportServiceInterface
	aiClient  utils.TextGenClientInterface
}

func NewItineraryService(
	geocoder infra.GeocoderInterface,
	weather infra.WeatherClientInterface,
	transport TransportServiceInterface,
	aiClient utils.TextGenClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		geocoder:  geocoder,
		weather:   weather,
		transport: transport,
		aiClient:  aiClient,
	}
}

func (s *ItineraryService) GenerateItinerary(
	ctx context.Context,
	destination, startDate, endDate string,
	budget request_models.Budget,
	interests []string,
	currentLocation string,
) (*response_models.ItineraryPlan, error) {

	start, err := utils.ParseTripDate(startDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseTripDate(endDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	startTime := time.Now()

	// An unresolvable destination fails the whole request before any
	// downstream call is spent on it.
	mainLocation, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("geocoding destination %q: %w", destination, err)
	}
	if mainLocation == nil {
		return nil, utils.ErrDestinationNotFound
	}

	log.Printf("ts: %s - Destination %q resolved to (%f, %f)",
		time.Since(startTime), destination, mainLocation.Latitude, mainLocation.Longitude)

	weatherData, err := s.weather.Forecast(ctx, mainLocation.Latitude, mainLocation.Longitude, startDate, endDate)
	if err != nil {
		log.Printf("Weather forecast failed for %q: %v", destination, err)
		return nil, utils.ErrWeatherUnavailable
	}

	recommendation := s.transport.RecommendTransport(ctx, currentLocation, destination, startDate, endDate, budget)

	duration := utils.TripDurationDays(start, end)

	weatherJSON, err := json.Marshal(weatherData)
	if err != nil {
		return nil, fmt.Errorf("serializing weather data: %w", err)
	}
	transportJSON, err := json.Marshal(recommendation)
	if err != nil {
		return nil, fmt.Errorf("serializing transport recommendation: %w", err)
	}

	prompt := buildItineraryPrompt(
		duration, currentLocation, destination, startDate,
		budget, interests,
		string(transportJSON), string(weatherJSON),
	)

	rawResponse, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("AI generation error: %v", err)
		return nil, utils.ErrAIGenerationFailed
	}

	log.Printf("ts: %s - Model response received (%d chars)", time.Since(startTime), len(rawResponse))

	days, err := s.parseDayPlans(rawResponse)
	if err != nil {
		return nil, err
	}

	if len(days) != duration {
		// Surfaced, not corrected: truncating or padding here would hide a
		// model contract violation from whoever reads the plan.
		log.Printf("Model returned %d day(s) for a %d-day trip to %s", len(days), duration, destination)
	}

	s.annotateWeather(days, weatherData)
	s.geocodeActivities(ctx, days, destination)

	log.Printf("ts: %s - Itinerary for %q complete", time.Since(startTime), destination)

	return &response_models.ItineraryPlan{
		Itinerary:               days,
		TransportRecommendation: recommendation,
	}, nil
}

func (s *ItineraryService) parseDayPlans(rawResponse string) ([]response_models.DayPlan, error) {
	payload, err := utils.ExtractJSON(rawResponse)
	if err != nil {
		log.Printf("Failed to extract itinerary JSON: %v\nRaw response: %s", err, rawResponse)
		return nil, utils.ErrUnparsableAIResponse
	}

	var days []response_models.DayPlan
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		log.Printf("Failed to parse itinerary JSON: %v\nRaw response: %s", err, rawResponse)
		return nil, utils.ErrUnparsableAIResponse
	}

	if len(days) == 0 {
		log.Printf("Model returned an empty itinerary array\nRaw response: %s", rawResponse)
		return nil, utils.ErrUnparsableAIResponse
	}

	return days, nil
}

// annotateWeather attaches forecast entries by position. Days past the end of
// the forecast window simply stay unannotated.
func (s *ItineraryService) annotateWeather(days []response_models.DayPlan, weatherData []response_models.WeatherDay) {
	for i := range days {
		if i < len(weatherData) {
			w := weatherData[i]
			days[i].Weather = &w
		}
	}
}

// geocodeActivities resolves every named point of interest through the shared
// rate-limited geocoder. Failures leave the slot's location null and move on;
// one bad POI never sinks the itinerary.
func (s *ItineraryService) geocodeActivities(ctx context.Context, days []response_models.DayPlan, destination string) {
	for i := range days {
		for _, slot := range []*response_models.ActivitySlot{days[i].Morning, days[i].Afternoon, days[i].Evening} {
			if slot == nil || slot.Name == "" {
				continue
			}

			location, err := s.geocoder.Geocode(ctx, fmt.Sprintf("%s, %s", slot.Name, destination))
			if err != nil {
				log.Printf("Could not geocode %q: %v", slot.Name, err)
				slot.Location = nil
				continue
			}
			if location == nil {
				slot.Location = nil
				continue
			}

			slot.Location = &response_models.GeoPoint{
				Name: slot.Name,
				Lat:  location.Latitude,
				Lng:  location.Longitude,
			}
		}
	}
}
