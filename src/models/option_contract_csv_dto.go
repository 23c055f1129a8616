package models

// OptionContractCsvDTO is one row of an imported option chain. Headers are
// canonicalized before decoding, so the tags use the canonical lowercase
// names. Slippage, underlying price and ATR apply chain-wide and are supplied
// by the importer, not the file.
type OptionContractCsvDTO struct {
	Strike float64 `csv:"strike"`
	Delta  float64 `csv:"delta"`
	Gamma  float64 `csv:"gamma"`
	Theta  float64 `csv:"theta"`
	Vega   float64 `csv:"vega"`
	Bid    float64 `csv:"bid"`
	Ask    float64 `csv:"ask"`
	IV     float64 `csv:"iv"`
}

func (dto OptionContractCsvDTO) ToOptionContract(slippage, underlyingPrice, averageTrueRange float64) OptionContract {
	return OptionContract{
		Strike:               dto.Strike,
		Delta:                dto.Delta,
		Gamma:                dto.Gamma,
		Theta:                dto.Theta,
		Vega:                 dto.Vega,
		Bid:                  dto.Bid,
		Ask:                  dto.Ask,
		ImpliedVolatilityPct: dto.IV,
		UnderlyingPrice:      underlyingPrice,
		AverageTrueRange:     averageTrueRange,
		Slippage:             slippage,
	}
}
