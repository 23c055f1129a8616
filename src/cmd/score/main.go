package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-alpha/src/cmd/score/run"
)

var rootCmd = &cobra.Command{
	Use:   "go run src/cmd/score/main.go --inDir chain.csv --formula tas --underlying 100 --atr 2.5",
	Short: "Scores an option chain under one alpha formula and renders the ranked table.",
	Run: func(cmd *cobra.Command, args []string) {
		inDir, err := cmd.Flags().GetString("inDir")
		if err != nil {
			log.Fatalf("error getting inDir: %v", err)
		}

		formula, err := cmd.Flags().GetString("formula")
		if err != nil {
			log.Fatalf("error getting formula: %v", err)
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

		noRank, err := cmd.Flags().GetBool("no-rank")
		if err != nil {
			log.Fatalf("error getting no-rank: %v", err)
		}

		results, err := run.Run(run.RunArgs{
			InDir:            inDir,
			Formula:          formula,
			Slippage:         slippage,
			UnderlyingPrice:  underlying,
			AverageTrueRange: atr,
			NoRank:           noRank,
		})
		if err != nil {
			log.Fatalf("error running score: %v", err)
		}

		fmt.Println(results.Table)
	},
}

func main() {
	rootCmd.PersistentFlags().String("inDir", "", "Path to the option chain CSV to score. This flag is required.")
	rootCmd.PersistentFlags().StringP("formula", "f", "sas", "Alpha formula: sas, ra-sas, tas or expected-return.")
	rootCmd.PersistentFlags().Float64("slippage", 0.02, "Chain-wide slippage applied to every imported contract.")
	rootCmd.PersistentFlags().Float64("underlying", 0, "Chain-wide underlying price used for realized volatility.")
	rootCmd.PersistentFlags().Float64("atr", 0, "Chain-wide average true range used for realized volatility.")
	rootCmd.PersistentFlags().Bool("no-rank", false, "Keep contracts in input order instead of ranking by score.")

	rootCmd.MarkPersistentFlagRequired("inDir")

	cobra.CheckErr(rootCmd.Execute())
}
