package transport_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideTransportService, provideTransportController)

func provideTransportService(flights infra.FlightClientInterface, trains infra.TrainClientInterface) services.TransportServiceInterface {
	return services.NewTransportService(flights, trains)
}

func provideTransportController(transportService services.TransportServiceInterface) *controllers.TransportController {
	return controllers.NewTransportController(transportService)
}
