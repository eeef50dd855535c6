package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
)

func buildItineraryPrompt(
	duration int,
	currentLocation, destination, startDate string,
	budget request_models.Budget,
	interests []string,
	transportJSON, weatherJSON string,
) string {
	return fmt.Sprintf(`
Act as an expert travel agent. Create a detailed itinerary for a %d-day trip from %s to %s, starting on %s.
The traveler's budget is between %.0f and %.0f %s. Their interests are %s.

Based on analysis, here is the recommended mode of transport: %s.
Please incorporate the travel from %s to %s on the first day and the return journey on the last day into the itinerary.

Here is the weather forecast: %s. Use this to suggest weather-appropriate activities.

For each day, provide suggestions for 'morning', 'afternoon', and 'evening' in that specific order. For each suggestion, provide:
1. A "name" of a real, geocodable point of interest.
2. A "description" as a JSON list of short, descriptive strings (like bullet points).
3. An "estimated_cost" object with "amount" and "currency".
4. A "local_cuisine_suggestion".
5. A "special_event" (null if none).
6. An "image_search_term", which is a simple, descriptive phrase for a stock photo (e.g., "Goa beach sunset", "historic church Goa").

The sum of all 'estimated_cost' amounts must fall within the traveler's budget.
Provide the output as a valid JSON array.
`,
		duration, currentLocation, destination, startDate,
		budget.Min, budget.Max, budget.Currency, strings.Join(interests, ", "),
		transportJSON,
		currentLocation, destination,
		weatherJSON,
	)
}
