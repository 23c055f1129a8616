package models

// PathSample is one simulated holding period for one contract. Contribution
// fields are signed running sums of each greek's daily value changes;
// magnitude fields accumulate the unsigned daily changes and feed the
// dominant-factor attribution. Samples are never mutated after creation.
type PathSample struct {
	TotalReturn       float64 `json:"total_return"`
	DeltaContribution float64 `json:"delta_contribution"`
	GammaContribution float64 `json:"gamma_contribution"`
	ThetaContribution float64 `json:"theta_contribution"`
	VegaContribution  float64 `json:"vega_contribution"`

	DeltaMagnitude float64 `json:"delta_magnitude"`
	GammaMagnitude float64 `json:"gamma_magnitude"`
	ThetaMagnitude float64 `json:"theta_magnitude"`
	VegaMagnitude  float64 `json:"vega_magnitude"`
}

func (p PathSample) Contribution(f Factor) float64 {
	switch f {
	case FactorDelta:
		return p.DeltaContribution
	case FactorGamma:
		return p.GammaContribution
	case FactorTheta:
		return p.ThetaContribution
	case FactorVega:
		return p.VegaContribution
	}

	return 0
}

func (p PathSample) Magnitude(f Factor) float64 {
	switch f {
	case FactorDelta:
		return p.DeltaMagnitude
	case FactorGamma:
		return p.GammaMagnitude
	case FactorTheta:
		return p.ThetaMagnitude
	case FactorVega:
		return p.VegaMagnitude
	}

	return 0
}
