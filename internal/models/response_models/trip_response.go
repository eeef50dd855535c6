package response_models

import "encoding/json"

type TripResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Destination     string   `json:"destination"`
	CurrentLocation string   `json:"current_location"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	BudgetMin       float64  `json:"budget_min"`
	BudgetMax       float64  `json:"budget_max"`
	BudgetCurrency  string   `json:"budget_currency"`
	Interests       []string `json:"interests"`

	Itinerary               json.RawMessage `json:"itinerary,omitempty"`
	TransportRecommendation json.RawMessage `json:"transport_recommendation,omitempty"`
}

type TripSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CreateTripResponse struct {
	TripID string         `json:"trip_id"`
	Plan   *ItineraryPlan `json:"plan"`
}
