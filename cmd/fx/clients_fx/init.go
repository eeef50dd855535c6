package clients_fx

import (
	"time"

	"go.uber.org/fx"
	"voyago/internal/infra"
)

// Nominatim's usage policy allows at most one request per second.
const nominatimMinInterval = time.Second

var Module = fx.Provide(
	provideGeocoder,
	provideWeatherClient,
	provideFlightClient,
	provideTrainClient)

func provideGeocoder() infra.GeocoderInterface {
	return infra.NewNominatimGeocoder(nominatimMinInterval)
}

func provideWeatherClient() infra.WeatherClientInterface {
	return infra.NewOpenMeteoClient()
}

func provideFlightClient() infra.FlightClientInterface {
	return infra.NewAmadeusClient()
}

func provideTrainClient() infra.TrainClientInterface {
	return infra.NewSimulatedRailClient()
}
