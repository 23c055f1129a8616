package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-alpha/src/analysis"
	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/scoring"
	"github.com/jiaming2012/options-alpha/src/simulation"
)

// Quick end-to-end demo on a single contract. The real entrypoints live
// under src/cmd.
func main() {
	contract := models.OptionContract{
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

	for _, formula := range []models.Formula{models.FormulaSAS, models.FormulaRASAS, models.FormulaTAS, models.FormulaExpectedReturn} {
		result := scoring.Score(contract, formula)
		fmt.Printf("%s: %.4f\n", result.Formula, result.Value)
	}

	config := models.SimulationConfig{
		PathCount:               1000,
		StartingUnderlyingPrice: 100,
		AnnualizedVolatility:    0.30,
		HoldingPeriodDays:       5,
		UseRealisticExecution:   true,
	}

	simulator, err := simulation.NewSimulator(config, models.FormulaSAS, simulation.NewNormalSource(42))
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	summaries, err := simulator.Run(context.Background(), []models.OptionContract{contract}, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(analysis.Rank(summaries))
}
