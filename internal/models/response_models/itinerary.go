package response_models

// WeatherDay is one day of the Open-Meteo daily forecast.
type WeatherDay struct {
	Date        string  `json:"date"`
	WeatherCode int     `json:"weather_code"`
	TempMax     float64 `json:"temp_max"`
	TempMin     float64 `json:"temp_min"`
}

type CostEstimate struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// GeoPoint is the resolved coordinate annotation attached to an activity.
type GeoPoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// ActivitySlot is one morning/afternoon/evening suggestion as produced by the
// model, plus the location annotation added afterwards. Location stays null
// when geocoding yields no match.
type ActivitySlot struct {
	Name                   string        `json:"name"`
	Description            []string      `json:"description"`
	EstimatedCost          *CostEstimate `json:"estimated_cost"`
	LocalCuisineSuggestion string        `json:"local_cuisine_suggestion"`
	SpecialEvent           *string       `json:"special_event"`
	ImageSearchTerm        string        `json:"image_search_term"`
	Location               *GeoPoint     `json:"location,omitempty"`
}

type DayPlan struct {
	Morning   *ActivitySlot `json:"morning"`
	Afternoon *ActivitySlot `json:"afternoon"`
	Evening   *ActivitySlot `json:"evening"`
	Weather   *WeatherDay   `json:"weather,omitempty"`
}

type TransportRecommendation struct {
	Mode                   string        `json:"mode"`
	EstimatedCostRoundTrip *CostEstimate `json:"estimated_cost_round_trip"`
	Details                string        `json:"details"`
}

// ItineraryPlan is the full artifact handed back from the generation pipeline.
type ItineraryPlan struct {
	Itinerary               []DayPlan               `json:"itinerary"`
	TransportRecommendation TransportRecommendation `json:"transport_recommendation"`
}
