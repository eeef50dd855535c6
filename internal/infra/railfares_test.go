package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedRailClient_TrainOptions(t *testing.T) {
	client := NewSimulatedRailClient()

	options, err := client.TrainOptions(context.Background(), "Mumbai", "Jaipur", "2026-03-14")

	require.NoError(t, err)
	require.NotEmpty(t, options)
	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i-1].Amount, options[i].Amount, "options should be cheapest first")
	}
	for _, opt := range options {
		assert.Equal(t, ModeTrain, opt.Mode)
		assert.NotEmpty(t, opt.Carrier)
		assert.NotEmpty(t, opt.Currency)
	}
}

func TestSimulatedRailClient_CheapestTrain(t *testing.T) {
	client := NewSimulatedRailClient()

	cheapest, err := client.CheapestTrain(context.Background(), "Mumbai", "Jaipur", "2026-03-14")
	require.NoError(t, err)

	options, err := client.TrainOptions(context.Background(), "Mumbai", "Jaipur", "2026-03-14")
	require.NoError(t, err)

	for _, opt := range options {
		assert.LessOrEqual(t, cheapest.Amount, opt.Amount)
	}
}
