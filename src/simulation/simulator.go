package simulation

import (
	"context"
	"fmt"
	"math"

	"github.com/jiaming2012/options-alpha/src/analysis"
	"github.com/jiaming2012/options-alpha/src/models"
)

// ProgressFunc is invoked once after every completed path.
type ProgressFunc func(contractIndex, pathIndex, totalPaths int)

// Simulator runs day-stepped Monte Carlo holding periods for option
// contracts. A single simulator processes contracts sequentially and draws
// all randomness from one source, so paths never interleave draws.
type Simulator struct {
	config  models.SimulationConfig
	formula models.Formula
	source  NormalSource
}

func NewSimulator(config models.SimulationConfig, formula models.Formula, source NormalSource) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("NewSimulator: invalid config: %w", err)
	}

	if err := formula.Validate(); err != nil {
		return nil, fmt.Errorf("NewSimulator: invalid formula: %w", err)
	}

	return &Simulator{
		config:  config,
		formula: formula,
		source:  source,
	}, nil
}

// SimulateContract produces exactly PathCount samples for one contract,
// polling ctx at path granularity. The option's value change is modeled as a
// first/second-order taylor expansion in the contract's quoted greeks; the
// intermediate option value is not clamped and may go negative.
func (s *Simulator) SimulateContract(ctx context.Context, contract models.OptionContract, contractIndex int, progress ProgressFunc) ([]models.PathSample, error) {
	initialValue := contract.MidPrice()
	dailyVol := s.config.AnnualizedVolatility / math.Sqrt(models.TradingDaysPerYear)

	samples := make([]models.PathSample, 0, s.config.PathCount)

	for path := 0; path < s.config.PathCount; path++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("Simulator.SimulateContract: %w", ctx.Err())
		default:
		}

		price := s.config.StartingUnderlyingPrice
		optionValue := initialValue
		var sample models.PathSample

		for day := 0; day < s.config.HoldingPeriodDays; day++ {
			priceChange := price * dailyVol * s.source.NormFloat64()

			deltaChange := contract.Delta * priceChange
			gammaChange := 0.5 * contract.Gamma * priceChange * priceChange
			thetaChange := contract.Theta / models.TradingDaysPerYear

			// The IV shock is loosely anti-correlated with the direction of
			// the price move. Vega is quoted per 1% IV move, so the
			// fractional shock is rescaled by 100.
			ivChange := 0.01*s.source.NormFloat64() - 0.005*sign(priceChange)
			vegaChange := contract.Vega * ivChange * 100

			sample.DeltaContribution += deltaChange
			sample.GammaContribution += gammaChange
			sample.ThetaContribution += thetaChange
			sample.VegaContribution += vegaChange

			sample.DeltaMagnitude += math.Abs(deltaChange)
			sample.GammaMagnitude += math.Abs(gammaChange)
			sample.ThetaMagnitude += math.Abs(thetaChange)
			sample.VegaMagnitude += math.Abs(vegaChange)

			optionValue += deltaChange + gammaChange + thetaChange + vegaChange

			// The price updates after this day's greek terms have consumed it.
			price += priceChange
		}

		exitValue := optionValue
		if s.config.UseRealisticExecution {
			if optionValue > initialValue {
				exitValue -= contract.Slippage
			} else {
				exitValue += contract.Slippage
			}
		}

		sample.TotalReturn = exitValue - initialValue
		samples = append(samples, sample)

		if progress != nil {
			progress(contractIndex, path, s.config.PathCount)
		}
	}

	return samples, nil
}

// Run simulates every contract and returns one summary per contract, in
// caller order; ranking is left to analysis.Rank so callers can keep input
// order. On cancellation the whole run is abandoned: no partial summaries are
// returned, and the wrapped context error distinguishes the outcome from a
// completed run with zero contracts.
func (s *Simulator) Run(ctx context.Context, contracts []models.OptionContract, progress ProgressFunc) (models.ContractSummaries, error) {
	summaries := make(models.ContractSummaries, 0, len(contracts))

	for i, contract := range contracts {
		samples, err := s.SimulateContract(ctx, contract, i, progress)
		if err != nil {
			return nil, fmt.Errorf("Simulator.Run: contract %d: %w", i, err)
		}

		summaries = append(summaries, analysis.Summarize(contract, samples, s.formula))
	}

	return summaries, nil
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}

	if x < 0 {
		return -1
	}

	return 0
}
