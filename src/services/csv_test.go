package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-alpha/src/models"
)

func writeTempCsv(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chain.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestImportOptionContracts(t *testing.T) {
	t.Run("imports a chain with aliased headers", func(t *testing.T) {
		path := writeTempCsv(t, strings.Join([]string{
			"Strike Price,Delta,Gamma,Theta,Vega,Bid Price,Ask Price,Implied Volatility",
			"100,0.5,0.052,-0.07,0.085,4.90,5.10,31.0",
			"105,0.35,0.048,-0.06,0.080,2.10,2.30,33.5",
		}, "\n"))

		contracts, err := ImportOptionContracts(ImportOptionContractsArgs{
			InDir:            path,
			Slippage:         0.02,
			UnderlyingPrice:  100,
			AverageTrueRange: 2.5,
		})
		require.NoError(t, err)
		require.Len(t, contracts, 2)

		assert.Equal(t, 100.0, contracts[0].Strike)
		assert.Equal(t, 0.5, contracts[0].Delta)
		assert.Equal(t, 31.0, contracts[0].ImpliedVolatilityPct)
		assert.Equal(t, 0.02, contracts[0].Slippage)
		assert.Equal(t, 100.0, contracts[0].UnderlyingPrice)
		assert.Equal(t, 2.5, contracts[0].AverageTrueRange)
		assert.Equal(t, 105.0, contracts[1].Strike)
	})

	t.Run("missing optional columns default to zero", func(t *testing.T) {
		path := writeTempCsv(t, strings.Join([]string{
			"strike,delta,gamma,theta",
			"100,0.5,0.052,-0.07",
		}, "\n"))

		contracts, err := ImportOptionContracts(ImportOptionContractsArgs{InDir: path})
		require.NoError(t, err)
		require.Len(t, contracts, 1)

		assert.Equal(t, 0.0, contracts[0].Vega)
		assert.Equal(t, 0.0, contracts[0].Bid)
		assert.Equal(t, 0.0, contracts[0].Ask)
	})

	t.Run("rejects a chain missing required fields", func(t *testing.T) {
		path := writeTempCsv(t, strings.Join([]string{
			"strike,delta,bid,ask",
			"100,0.5,4.90,5.10",
		}, "\n"))

		_, err := ImportOptionContracts(ImportOptionContractsArgs{InDir: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gamma")
		assert.Contains(t, err.Error(), "theta")
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		path := writeTempCsv(t, "")

		_, err := ImportOptionContracts(ImportOptionContractsArgs{InDir: path})
		require.Error(t, err)
	})
}

func TestExportSummaries(t *testing.T) {
	t.Run("round trips through the csv dto", func(t *testing.T) {
		summary := models.ContractSummary{
			Contract: models.OptionContract{
				Strike: 100,
				Delta:  0.5,
				Theta:  -0.07,
			},
			Formula:        models.FormulaSAS,
			InitialScore:   0.37,
			MeanReturn:     0.12,
			WinRate:        55.0,
			DominantFactor: models.FactorTheta,
		}

		outFile := filepath.Join(t.TempDir(), "results.csv")
		require.NoError(t, ExportSummaries(outFile, models.ContractSummaries{summary}))

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "initial_score")
		assert.Contains(t, lines[1], "SAS")
		assert.Contains(t, lines[1], "Theta")
	})
}
