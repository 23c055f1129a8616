package run

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/scoring"
	"github.com/jiaming2012/options-alpha/src/services"
)

type RunArgs struct {
	InDir            string
	Formula          string
	Slippage         float64
	UnderlyingPrice  float64
	AverageTrueRange float64
	NoRank           bool
}

type scoredContract struct {
	contract models.OptionContract
	result   models.ScoreResult
}

type RunResults struct {
	Table string
}

func renderTable(scored []scoredContract) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"Strike", "Delta", "Gamma", "Theta", "Vega", "Bid", "Ask", "Underlying", "ATR", "IV", "RV", "Calculation", "Result"})

	for _, s := range scored {
		c := s.contract
		table.Append([]string{
			fmt.Sprintf("%.2f", c.Strike),
			fmt.Sprintf("%.4f", c.Delta),
			fmt.Sprintf("%.6f", c.Gamma),
			fmt.Sprintf("%.4f", c.Theta),
			fmt.Sprintf("%.4f", c.Vega),
			fmt.Sprintf("%.2f", c.Bid),
			fmt.Sprintf("%.2f", c.Ask),
			fmt.Sprintf("%.2f", c.UnderlyingPrice),
			fmt.Sprintf("%.2f", c.AverageTrueRange),
			fmt.Sprintf("%.2f%%", c.ImpliedVolatilityPct),
			fmt.Sprintf("%.2f%%", c.RealizedVolatility()*100),
			string(s.result.Formula),
			fmt.Sprintf("%.4f", s.result.Value),
		})
	}

	table.Render()
	return display.String()
}

func Run(args RunArgs) (RunResults, error) {
	formula, err := models.ParseFormula(args.Formula)
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	contracts, err := services.ImportOptionContracts(services.ImportOptionContractsArgs{
		InDir:            args.InDir,
		Slippage:         args.Slippage,
		UnderlyingPrice:  args.UnderlyingPrice,
		AverageTrueRange: args.AverageTrueRange,
	})
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	scored := make([]scoredContract, 0, len(contracts))
	for _, contract := range contracts {
		scored = append(scored, scoredContract{
			contract: contract,
			result:   scoring.Score(contract, formula),
		})
	}

	if !args.NoRank {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].result.Value > scored[j].result.Value
		})
	}

	return RunResults{Table: renderTable(scored)}, nil
}
