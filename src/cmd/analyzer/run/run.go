package run

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/options-alpha/src/analysis"
	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/services"
	"github.com/jiaming2012/options-alpha/src/simulation"
)

type RunArgs struct {
	InDir            string
	ConfigFile       string
	Formula          string
	PathCount        int
	HoldingDays      int
	StartingPrice    float64
	AnnualizedVol    float64
	Realistic        bool
	Slippage         float64
	UnderlyingPrice  float64
	AverageTrueRange float64
	Seed             int64
	NoRank           bool
	OutFile          string
}

type RunResults struct {
	Summaries models.ContractSummaries
}

func buildConfig(args RunArgs) (models.SimulationConfig, error) {
	if args.ConfigFile != "" {
		data, err := os.ReadFile(args.ConfigFile)
		if err != nil {
			return models.SimulationConfig{}, fmt.Errorf("buildConfig: error reading %s: %w", args.ConfigFile, err)
		}

		var config models.SimulationConfig
		if err := yaml.Unmarshal(data, &config); err != nil {
			return models.SimulationConfig{}, fmt.Errorf("buildConfig: error parsing %s: %w", args.ConfigFile, err)
		}

		return config, nil
	}

	return models.SimulationConfig{
		PathCount:               args.PathCount,
		StartingUnderlyingPrice: args.StartingPrice,
		AnnualizedVolatility:    args.AnnualizedVol,
		HoldingPeriodDays:       args.HoldingDays,
		UseRealisticExecution:   args.Realistic,
	}, nil
}

func Run(ctx context.Context, args RunArgs) (RunResults, error) {
	formula, err := models.ParseFormula(args.Formula)
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	config, err := buildConfig(args)
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

	simulator, err := simulation.NewSimulator(config, formula, simulation.NewNormalSource(args.Seed))
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	runID := uuid.New()
	log.Infof("Run %s: simulating %d contracts, %d paths over %d days", runID, len(contracts), config.PathCount, config.HoldingPeriodDays)

	progress := func(contractIndex, pathIndex, totalPaths int) {
		if (pathIndex+1)%500 == 0 || pathIndex+1 == totalPaths {
			log.Debugf("Run %s: contract %d: %d/%d paths", runID, contractIndex, pathIndex+1, totalPaths)
		}
	}

	summaries, err := simulator.Run(ctx, contracts, progress)
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	if !args.NoRank {
		summaries = analysis.Rank(summaries)
	}

	if args.OutFile != "" {
		if err := services.ExportSummaries(args.OutFile, summaries); err != nil {
			return RunResults{}, fmt.Errorf("Run: %w", err)
		}
	}

	log.Infof("Run %s: completed", runID)

	return RunResults{Summaries: summaries}, nil
}
