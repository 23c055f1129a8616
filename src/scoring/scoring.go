package scoring

import (
	"math"

	"github.com/jiaming2012/options-alpha/src/models"
)

// Score computes one alpha metric from a contract's greeks and quotes. Theta
// enters every formula as |theta|. Non-positive denominators resolve to 0
// rather than erroring: they are time-decay/execution costs that are positive
// by construction, so a non-positive value means malformed input and the
// metric degrades to "no edge" instead of poisoning the ranking with Inf/NaN.
func Score(c models.OptionContract, formula models.Formula) models.ScoreResult {
	theta := math.Abs(c.Theta)
	iv := c.ImpliedVolatilityPct / 100
	volEdge := (c.RealizedVolatility() - iv) * c.Vega

	var value float64
	switch formula {
	case models.FormulaSAS:
		value = sas(c.Delta, c.Gamma, theta)
	case models.FormulaRASAS:
		value = raSas(c.Delta, c.Gamma, theta, c.Spread(), c.Slippage)
	case models.FormulaTAS:
		value = sas(c.Delta, c.Gamma, theta) + volEdge
	case models.FormulaExpectedReturn:
		value = raSas(c.Delta, c.Gamma, theta, c.Spread(), c.Slippage) + volEdge
	}

	return models.ScoreResult{
		Formula: formula,
		Value:   value,
	}
}

func sas(delta, gamma, theta float64) float64 {
	if theta <= 0 {
		return 0
	}

	return (delta * gamma) / theta
}

func raSas(delta, gamma, theta, spread, slippage float64) float64 {
	denominator := theta + spread + slippage
	if denominator <= 0 {
		return 0
	}

	return (delta * gamma) / denominator
}
