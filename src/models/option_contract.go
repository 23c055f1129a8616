package models

import "math"

// TradingDaysPerYear is used to annualize daily quantities.
const TradingDaysPerYear = 252

// OptionContract is an immutable snapshot of a single option's greeks and
// quotes. The simulator never mutates it; derived values are exposed as
// methods so the snapshot itself stays read-only.
type OptionContract struct {
	Strike               float64 `json:"strike"`
	Delta                float64 `json:"delta"`
	Gamma                float64 `json:"gamma"`
	Theta                float64 `json:"theta"`
	Vega                 float64 `json:"vega"`
	Bid                  float64 `json:"bid"`
	Ask                  float64 `json:"ask"`
	ImpliedVolatilityPct float64 `json:"implied_volatility_pct"`
	UnderlyingPrice      float64 `json:"underlying_price"`
	AverageTrueRange     float64 `json:"average_true_range"`
	Slippage             float64 `json:"slippage"`
}

func (c OptionContract) Spread() float64 {
	return c.Ask - c.Bid
}

// MidPrice is the modeled initial option value.
func (c OptionContract) MidPrice() float64 {
	return (c.Bid + c.Ask) / 2
}

// RealizedVolatility derives an annualized volatility from the underlying's
// average true range, as a decimal. Returns 0 when the underlying price is
// not positive.
func (c OptionContract) RealizedVolatility() float64 {
	if c.UnderlyingPrice <= 0 {
		return 0
	}

	return (c.AverageTrueRange / c.UnderlyingPrice) * math.Sqrt(TradingDaysPerYear)
}
