package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"voyago/internal/models/response_models"
)

type WeatherClientInterface interface {
	Forecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]response_models.WeatherDay, error)
}

// OpenMeteoClient fetches the daily forecast from the Open-Meteo API. One
// entry per day in the inclusive date range, chronological order.
type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: "https://api.open-meteo.com",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *OpenMeteoClient) Forecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]response_models.WeatherDay, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	params.Set("timezone", "auto")
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo request failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Daily struct {
			Time           []string  `json:"time"`
			WeatherCode    []float64 `json:"weather_code"`
			TemperatureMax []float64 `json:"temperature_2m_max"`
			TemperatureMin []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode open-meteo response: %w", err)
	}

	daily := payload.Daily
	if len(daily.WeatherCode) != len(daily.Time) ||
		len(daily.TemperatureMax) != len(daily.Time) ||
		len(daily.TemperatureMin) != len(daily.Time) {
		return nil, fmt.Errorf("open-meteo response has mismatched daily series lengths")
	}

	forecast := make([]response_models.WeatherDay, 0, len(daily.Time))
	for i, day := range daily.Time {
		forecast = append(forecast, response_models.WeatherDay{
			Date:        day,
			WeatherCode: int(daily.WeatherCode[i]),
			TempMax:     roundTemp(daily.TemperatureMax[i]),
			TempMin:     roundTemp(daily.TemperatureMin[i]),
		})
	}

	return forecast, nil
}

func roundTemp(v float64) float64 {
	return math.Round(v*10) / 10
}
