package infra

import "context"

type TrainClientInterface interface {
	// TrainOptions lists the available fares for the leg, never empty.
	TrainOptions(ctx context.Context, originCity, destinationCity, date string) ([]FareQuote, error)
	// CheapestTrain returns the lowest fare for the leg.
	CheapestTrain(ctx context.Context, originCity, destinationCity, date string) (FareQuote, error)
}

// SimulatedRailClient serves a fixed fare catalog, cheapest first. It stands
// in until a real rail provider is integrated, so results are deterministic
// and need no network.
type SimulatedRailClient struct{}

func NewSimulatedRailClient() *SimulatedRailClient {
	return &SimulatedRailClient{}
}

var railCatalog = []FareQuote{
	{Mode: ModeTrain, Amount: 1500, Currency: "INR", Carrier: "Intercity Express"},
	{Mode: ModeTrain, Amount: 2200, Currency: "INR", Carrier: "Shatabdi Express"},
}

func (c *SimulatedRailClient) TrainOptions(ctx context.Context, originCity, destinationCity, date string) ([]FareQuote, error) {
	options := make([]FareQuote, len(railCatalog))
	copy(options, railCatalog)
	return options, nil
}

func (c *SimulatedRailClient) CheapestTrain(ctx context.Context, originCity, destinationCity, date string) (FareQuote, error) {
	return railCatalog[0], nil
}
