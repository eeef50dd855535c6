package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userId string, request request_models.CreateTripRequest) (*response_models.CreateTripResponse, error)
	GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]response_models.TripSummaryResponse, error)
	GetTripById(ctx context.Context, tripId string, userId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripId string, userId string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string, userId string) error
}

type TripService struct {
	tripRepo         repositories.TripRepository
	itineraryService ItineraryServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, itineraryService ItineraryServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo:         tripRepo,
		itineraryService: itineraryService,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, userId string, request request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	start, err := utils.ParseTripDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseTripDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := t.itineraryService.GenerateItinerary(
		ctx,
		request.Destination,
		request.StartDate,
		request.EndDate,
		request.Budget,
		request.Interests,
		request.CurrentLocation,
	)
	if err != nil {
		return nil, err
	}

	// The trips table requires a name; fall back to the destination.
	tripName := request.Name
	if tripName == "" {
		tripName = request.Destination
	}
	if tripName == "" {
		tripName = "Untitled Trip"
	}

	itineraryJSON, err := json.Marshal(plan.Itinerary)
	if err != nil {
		log.Printf("Failed to serialize itinerary for storage: %v", err)
		return nil, utils.ErrDatabaseError
	}
	recommendationJSON, err := json.Marshal(plan.TransportRecommendation)
	if err != nil {
		log.Printf("Failed to serialize transport recommendation for storage: %v", err)
		return nil, utils.ErrDatabaseError
	}

	trip := &db_models.Trip{
		UserID:                  userUUID,
		Name:                    tripName,
		Destination:             request.Destination,
		CurrentLocation:         request.CurrentLocation,
		StartDate:               start,
		EndDate:                 end,
		BudgetMin:               request.Budget.Min,
		BudgetMax:               request.Budget.Max,
		BudgetCurrency:          request.Budget.Currency,
		Interests:               pq.StringArray(request.Interests),
		Itinerary:               string(itineraryJSON),
		TransportRecommendation: string(recommendationJSON),
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		log.Printf("Failed to insert trip for user %s: %v", userId, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateTripResponse{
		TripID: trip.ID.String(),
		Plan:   plan,
	}, nil
}

func (t *TripService) GetTripsByUserId(ctx context.Context, page int, pageSize int, userId string) ([]response_models.TripSummaryResponse, error) {

	trips, err := t.tripRepo.ListByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripSummaryResponse{
			ID:          trip.ID.String(),
			Name:        trip.Name,
			Destination: trip.Destination,
			StartDate:   utils.FormatTripDate(trip.StartDate),
			EndDate:     utils.FormatTripDate(trip.EndDate),
		})
	}
	return out, nil
}

func (t *TripService) GetTripById(ctx context.Context, tripId string, userId string) (*response_models.TripResponse, error) {

	trip, err := t.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return toTripResponse(trip), nil
}

func (t *TripService) UpdateTrip(ctx context.Context, tripId string, userId string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {

	trip, err := t.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if request.Name != nil {
		// Name stays NOT NULL even when the caller clears it.
		if *request.Name == "" {
			trip.Name = "Untitled Trip"
		} else {
			trip.Name = *request.Name
		}
	}
	if request.StartDate != nil {
		start, err := utils.ParseTripDate(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseTripDate(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if request.Budget != nil {
		trip.BudgetMin = request.Budget.Min
		trip.BudgetMax = request.Budget.Max
		trip.BudgetCurrency = request.Budget.Currency
	}
	if request.Interests != nil {
		trip.Interests = pq.StringArray(*request.Interests)
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toTripResponse(trip), nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId string, userId string) error {

	deleted, err := t.tripRepo.DeleteByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}

	return nil
}

func toTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:                      trip.ID.String(),
		Name:                    trip.Name,
		Destination:             trip.Destination,
		CurrentLocation:         trip.CurrentLocation,
		StartDate:               utils.FormatTripDate(trip.StartDate),
		EndDate:                 utils.FormatTripDate(trip.EndDate),
		BudgetMin:               trip.BudgetMin,
		BudgetMax:               trip.BudgetMax,
		BudgetCurrency:          trip.BudgetCurrency,
		Interests:               []string(trip.Interests),
		Itinerary:               json.RawMessage(trip.Itinerary),
		TransportRecommendation: json.RawMessage(trip.TransportRecommendation),
	}
}
