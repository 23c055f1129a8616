package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-alpha/src/cmd/analyzer/run"
)

var rootCmd = &cobra.Command{
	Use:   "go run src/cmd/analyzer/main.go --inDir chain.csv --formula sas --starting-price 100 --vol 0.3",
	Short: "Stress-tests an option chain with a day-stepped Monte Carlo simulation and ranks the contracts.",
	Run: func(cmd *cobra.Command, args []string) {
		inDir, err := cmd.Flags().GetString("inDir")
		if err != nil {
			log.Fatalf("error getting inDir: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		formula, err := cmd.Flags().GetString("formula")
		if err != nil {
			log.Fatalf("error getting formula: %v", err)
		}

		pathCount, err := cmd.Flags().GetInt("paths")
		if err != nil {
			log.Fatalf("error getting paths: %v", err)
		}

		holdingDays, err := cmd.Flags().GetInt("days")
		if err != nil {
			log.Fatalf("error getting days: %v", err)
		}

		startingPrice, err := cmd.Flags().GetFloat64("starting-price")
		if err != nil {
			log.Fatalf("error getting starting-price: %v", err)
		}

		annualizedVol, err := cmd.Flags().GetFloat64("vol")
		if err != nil {
			log.Fatalf("error getting vol: %v", err)
		}

		realistic, err := cmd.Flags().GetBool("realistic")
		if err != nil {
			log.Fatalf("error getting realistic: %v", err)
		}

		slippage, err := cmd.Flags().GetFloat64("slippage")
		if err != nil {
			log.Fatalf("error getting slippage: %v", err)
		}

		underlying, err := cmd.Flags().GetFloat64("underlying")
		if err != nil {
			log.Fatalf("error getting underlying: %v", err)
		}

		atr, err := cmd.Flags().GetFloat64("atr")
		if err != nil {
			log.Fatalf("error getting atr: %v", err)
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			log.Fatalf("error getting seed: %v", err)
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		noRank, err := cmd.Flags().GetBool("no-rank")
		if err != nil {
			log.Fatalf("error getting no-rank: %v", err)
		}

		outFile, err := cmd.Flags().GetString("outFile")
		if err != nil {
			log.Fatalf("error getting outFile: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		results, err := run.Run(ctx, run.RunArgs{
			InDir:            inDir,
			ConfigFile:       configFile,
			Formula:          formula,
			PathCount:        pathCount,
			HoldingDays:      holdingDays,
			StartingPrice:    startingPrice,
			AnnualizedVol:    annualizedVol,
			Realistic:        realistic,
			Slippage:         slippage,
			UnderlyingPrice:  underlying,
			AverageTrueRange: atr,
			Seed:             seed,
			NoRank:           noRank,
			OutFile:          outFile,
		})
		if err != nil {
			log.Fatalf("error running analyzer: %v", err)
		}

		fmt.Println(results.Summaries.String())
	},
}

func main() {
	rootCmd.PersistentFlags().String("inDir", "", "Path to the option chain CSV to analyze. This flag is required.")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML scenario config. Overrides the individual simulation flags.")
	rootCmd.PersistentFlags().StringP("formula", "f", "sas", "Alpha formula: sas, ra-sas, tas or expected-return.")
	rootCmd.PersistentFlags().Int("paths", 1000, "Number of simulated holding periods per contract.")
	rootCmd.PersistentFlags().Int("days", 5, "Holding period length in trading days.")
	rootCmd.PersistentFlags().Float64("starting-price", 0, "Scenario starting underlying price. This flag is required unless --config is set.")
	rootCmd.PersistentFlags().Float64("vol", 0.3, "Annualized volatility of the simulated underlying, as a decimal.")
	rootCmd.PersistentFlags().Bool("realistic", false, "Apply slippage against the exit value.")
	rootCmd.PersistentFlags().Float64("slippage", 0.02, "Chain-wide slippage applied to every imported contract.")
	rootCmd.PersistentFlags().Float64("underlying", 0, "Chain-wide underlying price used for realized volatility.")
	rootCmd.PersistentFlags().Float64("atr", 0, "Chain-wide average true range used for realized volatility.")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed. 0 seeds from the clock.")
	rootCmd.PersistentFlags().Bool("no-rank", false, "Keep contracts in input order instead of ranking by mean return.")
	rootCmd.PersistentFlags().String("outFile", "", "Optional CSV file to export the summaries to.")

	rootCmd.MarkPersistentFlagRequired("inDir")

	cobra.CheckErr(rootCmd.Execute())
}
