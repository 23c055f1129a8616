package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/scoring"
)

// Summarize folds one contract's path samples into an aggregate record. The
// initial score reflects the contract's static quoted greeks, not simulated
// outcomes. An empty sample set yields a zeroed summary rather than an error.
func Summarize(contract models.OptionContract, samples []models.PathSample, formula models.Formula) models.ContractSummary {
	summary := models.ContractSummary{
		Contract:     contract,
		Formula:      formula,
		InitialScore: scoring.Score(contract, formula).Value,
		FactorTotals: make(map[models.Factor]float64),
		Samples:      samples,
	}

	returns := make([]float64, 0, len(samples))
	wins := 0
	for _, sample := range samples {
		returns = append(returns, sample.TotalReturn)
		if sample.TotalReturn > 0 {
			wins++
		}

		for _, factor := range models.FactorPrecedence {
			summary.FactorTotals[factor] += sample.Magnitude(factor)
		}
	}

	if meanReturn, err := stats.Mean(returns); err == nil {
		summary.MeanReturn = meanReturn
	}

	if bestCase, err := stats.Max(returns); err == nil {
		summary.BestCaseReturn = bestCase
	}

	if len(samples) > 0 {
		summary.WinRate = float64(wins) / float64(len(samples)) * 100
	}

	if midPrice := contract.MidPrice(); midPrice > 0 {
		summary.MeanReturnPct = summary.MeanReturn / midPrice * 100
	}

	summary.DominantFactor = dominantFactor(summary.FactorTotals)

	return summary
}

// dominantFactor picks the greek with the largest unsigned total. Ties break
// by the fixed precedence order: first maximum wins.
func dominantFactor(totals map[models.Factor]float64) models.Factor {
	dominant := models.FactorPrecedence[0]
	for _, factor := range models.FactorPrecedence[1:] {
		if totals[factor] > totals[dominant] {
			dominant = factor
		}
	}

	return dominant
}
