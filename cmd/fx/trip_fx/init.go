package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraryService services.ItineraryServiceInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraryService)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
