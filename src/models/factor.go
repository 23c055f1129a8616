package models

// Factor names a greek for P&L attribution.
type Factor string

const (
	FactorDelta Factor = "Delta"
	FactorGamma Factor = "Gamma"
	FactorTheta Factor = "Theta"
	FactorVega  Factor = "Vega"
)

// FactorPrecedence is the tie-break order when selecting the dominant
// factor: first maximum wins.
var FactorPrecedence = []Factor{FactorDelta, FactorGamma, FactorTheta, FactorVega}
