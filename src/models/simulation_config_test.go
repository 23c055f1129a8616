package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newValidConfig() SimulationConfig {
	return SimulationConfig{
		PathCount:               100,
		StartingUnderlyingPrice: 100,
		AnnualizedVolatility:    0.3,
		HoldingPeriodDays:       5,
	}
}

func TestSimulationConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, newValidConfig().Validate())
	})

	t.Run("path count", func(t *testing.T) {
		config := newValidConfig()
		config.PathCount = 0

		require.ErrorIs(t, config.Validate(), PathCountErr)
	})

	t.Run("starting underlying price", func(t *testing.T) {
		config := newValidConfig()
		config.StartingUnderlyingPrice = 0

		require.ErrorIs(t, config.Validate(), StartingUnderlyingPriceErr)
	})

	t.Run("annualized volatility", func(t *testing.T) {
		config := newValidConfig()
		config.AnnualizedVolatility = -0.3

		require.ErrorIs(t, config.Validate(), AnnualizedVolatilityErr)
	})

	t.Run("holding period days", func(t *testing.T) {
		config := newValidConfig()
		config.HoldingPeriodDays = 0

		require.ErrorIs(t, config.Validate(), HoldingPeriodDaysErr)
	})
}
