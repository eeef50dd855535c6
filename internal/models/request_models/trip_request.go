package request_models

// Budget carries the traveler's spending range. Currency is a label supplied
// by the caller; no conversion happens anywhere in the pipeline.
type Budget struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type CreateTripRequest struct {
	Name            string   `json:"name"`
	Destination     string   `json:"destination" binding:"required"`
	CurrentLocation string   `json:"current_location" binding:"required"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	Budget          Budget   `json:"budget"`
	Interests       []string `json:"interests"`
}

type UpdateTripRequest struct {
	Name      *string   `json:"name"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Budget    *Budget   `json:"budget"`
	Interests *[]string `json:"interests"`
}
