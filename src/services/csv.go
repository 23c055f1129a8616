package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-alpha/src/models"
)

// csvHeaderAliases maps the column spellings seen in broker chain exports to
// the canonical header names the DTO decodes.
var csvHeaderAliases = map[string]string{
	"strike":             "strike",
	"strike price":       "strike",
	"strikeprice":        "strike",
	"delta":              "delta",
	"gamma":              "gamma",
	"theta":              "theta",
	"vega":               "vega",
	"bid":                "bid",
	"bid price":          "bid",
	"ask":                "ask",
	"ask price":          "ask",
	"iv":                 "iv",
	"implied volatility": "iv",
	"impliedvolatility":  "iv",
}

var requiredCsvFields = []string{"strike", "delta", "gamma", "theta"}

type ImportOptionContractsArgs struct {
	InDir            string
	Slippage         float64
	UnderlyingPrice  float64
	AverageTrueRange float64
}

// ImportOptionContracts reads an option chain CSV, resolving column-name
// variants before decoding. Slippage, underlying price and ATR are applied
// chain-wide from the args; columns absent from the file decode to 0.
func ImportOptionContracts(args ImportOptionContractsArgs) ([]models.OptionContract, error) {
	f, err := os.Open(args.InDir)
	if err != nil {
		return nil, fmt.Errorf("ImportOptionContracts: error opening file: %w", err)
	}

	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ImportOptionContracts: error reading csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("ImportOptionContracts: %s is empty", args.InDir)
	}

	originalHeader := strings.Join(records[0], ", ")

	for i, column := range records[0] {
		if canonical, found := csvHeaderAliases[strings.ToLower(strings.TrimSpace(column))]; found {
			records[0][i] = canonical
		}
	}

	if missing := missingRequiredFields(records[0]); len(missing) > 0 {
		return nil, fmt.Errorf("ImportOptionContracts: csv is missing required fields: %s (found columns: %s)", strings.Join(missing, ", "), originalHeader)
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("ImportOptionContracts: error rewriting csv: %w", err)
	}

	var rows []models.OptionContractCsvDTO
	if err := gocsv.UnmarshalBytes(buf.Bytes(), &rows); err != nil {
		return nil, fmt.Errorf("ImportOptionContracts: error unmarshalling csv: %w", err)
	}

	contracts := make([]models.OptionContract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.ToOptionContract(args.Slippage, args.UnderlyingPrice, args.AverageTrueRange))
	}

	log.Infof("Imported %d option contracts from %s", len(contracts), args.InDir)

	return contracts, nil
}

func missingRequiredFields(header []string) []string {
	columns := make(map[string]bool)
	for _, column := range header {
		columns[column] = true
	}

	var missing []string
	for _, field := range requiredCsvFields {
		if !columns[field] {
			missing = append(missing, field)
		}
	}

	return missing
}

// ExportSummaries writes simulation results to a CSV file.
func ExportSummaries(outFile string, summaries models.ContractSummaries) error {
	rows := make([]models.ContractSummaryCsvDTO, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, models.NewContractSummaryCsvDTO(summary))
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ExportSummaries: error creating file: %w", err)
	}

	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("ExportSummaries: error marshalling csv: %w", err)
	}

	log.Infof("Exported %d summaries to %s", len(rows), outFile)

	return nil
}
