package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-alpha/src/models"
)

// zeroSource forces every normal draw to 0, which freezes the underlying and
// leaves theta as the only moving part.
type zeroSource struct{}

func (zeroSource) NormFloat64() float64 { return 0 }

func newTestContract() models.OptionContract {
	return models.OptionContract{
		Strike:               100,
		Delta:                0.50,
		Gamma:                0.052,
		Theta:                -0.070,
		Vega:                 0.085,
		Bid:                  4.90,
		Ask:                  5.10,
		ImpliedVolatilityPct: 31.0,
		UnderlyingPrice:      100,
		AverageTrueRange:     2.5,
		Slippage:             0.02,
	}
}

func newTestConfig() models.SimulationConfig {
	return models.SimulationConfig{
		PathCount:               50,
		StartingUnderlyingPrice: 100,
		AnnualizedVolatility:    0.30,
		HoldingPeriodDays:       5,
	}
}

func TestNewSimulator(t *testing.T) {
	t.Run("rejects invalid config", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 0

		_, err := NewSimulator(config, models.FormulaSAS, zeroSource{})
		require.ErrorIs(t, err, models.PathCountErr)
	})

	t.Run("rejects unknown formula", func(t *testing.T) {
		_, err := NewSimulator(newTestConfig(), models.Formula("bogus"), zeroSource{})
		require.ErrorIs(t, err, models.UnknownFormulaErr)
	})
}

func TestSimulateContract(t *testing.T) {
	t.Run("returns exactly pathCount samples", func(t *testing.T) {
		for _, pathCount := range []int{1, 7, 250} {
			config := newTestConfig()
			config.PathCount = pathCount

			simulator, err := NewSimulator(config, models.FormulaSAS, NewNormalSource(1))
			require.NoError(t, err)

			samples, err := simulator.SimulateContract(context.Background(), newTestContract(), 0, nil)
			require.NoError(t, err)
			require.Len(t, samples, pathCount)
		}
	})

	t.Run("zero draws leave only theta decay", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 1
		config.HoldingPeriodDays = 1

		simulator, err := NewSimulator(config, models.FormulaSAS, zeroSource{})
		require.NoError(t, err)

		contract := newTestContract()
		samples, err := simulator.SimulateContract(context.Background(), contract, 0, nil)
		require.NoError(t, err)
		require.Len(t, samples, 1)

		thetaChange := contract.Theta / models.TradingDaysPerYear

		assert.InDelta(t, thetaChange, samples[0].TotalReturn, 1e-12)
		assert.InDelta(t, thetaChange, samples[0].ThetaContribution, 1e-12)
		assert.Equal(t, 0.0, samples[0].DeltaContribution)
		assert.Equal(t, 0.0, samples[0].GammaContribution)
		assert.Equal(t, 0.0, samples[0].VegaContribution)
		assert.Equal(t, 0.0, samples[0].DeltaMagnitude)
		assert.Equal(t, 0.0, samples[0].GammaMagnitude)
		assert.Equal(t, 0.0, samples[0].VegaMagnitude)
		assert.InDelta(t, -thetaChange, samples[0].ThetaMagnitude, 1e-12)
	})

	t.Run("realistic execution pads a losing exit with slippage", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 1
		config.UseRealisticExecution = true

		simulator, err := NewSimulator(config, models.FormulaSAS, zeroSource{})
		require.NoError(t, err)

		contract := newTestContract()
		samples, err := simulator.SimulateContract(context.Background(), contract, 0, nil)
		require.NoError(t, err)

		decay := float64(config.HoldingPeriodDays) * contract.Theta / models.TradingDaysPerYear
		assert.InDelta(t, decay+contract.Slippage, samples[0].TotalReturn, 1e-12)
	})

	t.Run("realistic execution charges slippage on a winning exit", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 1
		config.UseRealisticExecution = true

		contract := newTestContract()
		contract.Theta = 0.5 // decay gain forces a profitable close

		simulator, err := NewSimulator(config, models.FormulaSAS, zeroSource{})
		require.NoError(t, err)

		samples, err := simulator.SimulateContract(context.Background(), contract, 0, nil)
		require.NoError(t, err)

		gain := float64(config.HoldingPeriodDays) * contract.Theta / models.TradingDaysPerYear
		assert.InDelta(t, gain-contract.Slippage, samples[0].TotalReturn, 1e-12)
	})

	t.Run("fixed seed reproduces paths bit for bit", func(t *testing.T) {
		first, err := NewSimulator(newTestConfig(), models.FormulaSAS, NewNormalSource(42))
		require.NoError(t, err)

		second, err := NewSimulator(newTestConfig(), models.FormulaSAS, NewNormalSource(42))
		require.NoError(t, err)

		firstSamples, err := first.SimulateContract(context.Background(), newTestContract(), 0, nil)
		require.NoError(t, err)

		secondSamples, err := second.SimulateContract(context.Background(), newTestContract(), 0, nil)
		require.NoError(t, err)

		require.Equal(t, firstSamples, secondSamples)
	})

	t.Run("progress fires once per completed path", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 25

		simulator, err := NewSimulator(config, models.FormulaSAS, NewNormalSource(1))
		require.NoError(t, err)

		var calls [][3]int
		progress := func(contractIndex, pathIndex, totalPaths int) {
			calls = append(calls, [3]int{contractIndex, pathIndex, totalPaths})
		}

		_, err = simulator.SimulateContract(context.Background(), newTestContract(), 3, progress)
		require.NoError(t, err)

		require.Len(t, calls, 25)
		assert.Equal(t, [3]int{3, 0, 25}, calls[0])
		assert.Equal(t, [3]int{3, 24, 25}, calls[24])
	})

	t.Run("cancellation abandons the contract", func(t *testing.T) {
		simulator, err := NewSimulator(newTestConfig(), models.FormulaSAS, NewNormalSource(1))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		samples, err := simulator.SimulateContract(ctx, newTestContract(), 0, nil)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, samples)
	})
}

func TestRun(t *testing.T) {
	t.Run("summaries keep caller order", func(t *testing.T) {
		near := newTestContract()
		far := newTestContract()
		far.Strike = 110

		simulator, err := NewSimulator(newTestConfig(), models.FormulaSAS, NewNormalSource(1))
		require.NoError(t, err)

		summaries, err := simulator.Run(context.Background(), []models.OptionContract{near, far}, nil)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		assert.Equal(t, 100.0, summaries[0].Contract.Strike)
		assert.Equal(t, 110.0, summaries[1].Contract.Strike)
	})

	t.Run("cancellation yields no partial summaries", func(t *testing.T) {
		config := newTestConfig()
		config.PathCount = 10

		contracts := []models.OptionContract{newTestContract(), newTestContract(), newTestContract()}

		simulator, err := NewSimulator(config, models.FormulaSAS, NewNormalSource(1))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())

		// Cancel partway through the second contract.
		progress := func(contractIndex, pathIndex, totalPaths int) {
			if contractIndex == 1 && pathIndex == 4 {
				cancel()
			}
		}

		summaries, err := simulator.Run(ctx, contracts, progress)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, summaries)
	})

	t.Run("zero contracts completes with an empty result", func(t *testing.T) {
		simulator, err := NewSimulator(newTestConfig(), models.FormulaSAS, NewNormalSource(1))
		require.NoError(t, err)

		summaries, err := simulator.Run(context.Background(), nil, nil)
		require.NoError(t, err)
		require.NotNil(t, summaries)
		require.Len(t, summaries, 0)
	})
}
