package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContractSummary aggregates one contract's simulated paths. Samples retains
// the per-path detail for later distribution analysis.
type ContractSummary struct {
	Contract       OptionContract     `json:"contract"`
	Formula        Formula            `json:"formula"`
	InitialScore   float64            `json:"initial_score"`
	MeanReturn     float64            `json:"mean_return"`
	MeanReturnPct  float64            `json:"mean_return_pct"`
	WinRate        float64            `json:"win_rate"`
	BestCaseReturn float64            `json:"best_case_return"`
	DominantFactor Factor             `json:"dominant_factor"`
	FactorTotals   map[Factor]float64 `json:"factor_totals"`
	Samples        []PathSample       `json:"-"`
}

type ContractSummaries []ContractSummary

func (summaries ContractSummaries) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"Strike", "Score", "Mean Return", "Mean %", "Win Rate", "Best Case", "Dominant"})
	display.WriteString("Simulation Results:\n")

	for _, s := range summaries {
		strike := fmt.Sprintf("$%s", p.Sprintf("%.2f", s.Contract.Strike))
		score := fmt.Sprintf("%.4f", s.InitialScore)
		meanReturn := fmt.Sprintf("%.4f", s.MeanReturn)
		meanPct := fmt.Sprintf("%.2f%%", s.MeanReturnPct)
		winRate := fmt.Sprintf("%.1f%%", s.WinRate)
		bestCase := fmt.Sprintf("%.4f", s.BestCaseReturn)

		table.Append([]string{strike, score, meanReturn, meanPct, winRate, bestCase, string(s.DominantFactor)})
	}

	table.Render()
	return display.String()
}
