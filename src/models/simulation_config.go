package models

import "fmt"

// SimulationConfig describes one simulation run. The starting underlying
// price deliberately re-anchors every contract to a user-chosen scenario
// price, independent of the quote snapshot each contract carries.
type SimulationConfig struct {
	PathCount               int     `json:"path_count" yaml:"path_count"`
	StartingUnderlyingPrice float64 `json:"starting_underlying_price" yaml:"starting_underlying_price"`
	AnnualizedVolatility    float64 `json:"annualized_volatility" yaml:"annualized_volatility"`
	HoldingPeriodDays       int     `json:"holding_period_days" yaml:"holding_period_days"`
	UseRealisticExecution   bool    `json:"use_realistic_execution" yaml:"use_realistic_execution"`
}

// Validate rejects a malformed config before any path is simulated.
func (c SimulationConfig) Validate() error {
	if c.PathCount < 1 {
		return fmt.Errorf("SimulationConfig.Validate: found %d: %w", c.PathCount, PathCountErr)
	}

	if c.StartingUnderlyingPrice <= 0 {
		return fmt.Errorf("SimulationConfig.Validate: found %v: %w", c.StartingUnderlyingPrice, StartingUnderlyingPriceErr)
	}

	if c.AnnualizedVolatility <= 0 {
		return fmt.Errorf("SimulationConfig.Validate: found %v: %w", c.AnnualizedVolatility, AnnualizedVolatilityErr)
	}

	if c.HoldingPeriodDays < 1 {
		return fmt.Errorf("SimulationConfig.Validate: found %d: %w", c.HoldingPeriodDays, HoldingPeriodDaysErr)
	}

	return nil
}
