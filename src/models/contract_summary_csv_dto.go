package models

// ContractSummaryCsvDTO is one exported results row.
type ContractSummaryCsvDTO struct {
	Strike         float64 `csv:"strike"`
	Delta          float64 `csv:"delta"`
	Gamma          float64 `csv:"gamma"`
	Theta          float64 `csv:"theta"`
	Vega           float64 `csv:"vega"`
	IV             float64 `csv:"iv"`
	RV             float64 `csv:"rv"`
	Formula        string  `csv:"formula"`
	InitialScore   float64 `csv:"initial_score"`
	MeanReturn     float64 `csv:"mean_return"`
	MeanReturnPct  float64 `csv:"mean_return_pct"`
	WinRate        float64 `csv:"win_rate"`
	BestCaseReturn float64 `csv:"best_case_return"`
	DominantFactor string  `csv:"dominant_factor"`
}

func NewContractSummaryCsvDTO(s ContractSummary) ContractSummaryCsvDTO {
	return ContractSummaryCsvDTO{
		Strike:         s.Contract.Strike,
		Delta:          s.Contract.Delta,
		Gamma:          s.Contract.Gamma,
		Theta:          s.Contract.Theta,
		Vega:           s.Contract.Vega,
		IV:             s.Contract.ImpliedVolatilityPct,
		RV:             s.Contract.RealizedVolatility() * 100,
		Formula:        string(s.Formula),
		InitialScore:   s.InitialScore,
		MeanReturn:     s.MeanReturn,
		MeanReturnPct:  s.MeanReturnPct,
		WinRate:        s.WinRate,
		BestCaseReturn: s.BestCaseReturn,
		DominantFactor: string(s.DominantFactor),
	}
}
