package itinerary_fx

import (
	"go.uber.org/fx"
	"voyago/internal/infra"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService)

func provideItineraryService(
	geocoder infra.GeocoderInterface,
	weather infra.WeatherClientInterface,
	transport services.TransportServiceInterface,
	aiClient utils.TextGenClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(geocoder, weather, transport, aiClient)
}
