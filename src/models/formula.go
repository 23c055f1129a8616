package models

import (
	"fmt"
	"strings"
)

// Formula selects one of the four alpha metrics.
type Formula string

const (
	FormulaSAS            Formula = "SAS"
	FormulaRASAS          Formula = "RA-SAS"
	FormulaTAS            Formula = "TAS"
	FormulaExpectedReturn Formula = "Expected Return"
)

func (f Formula) Validate() error {
	switch f {
	case FormulaSAS, FormulaRASAS, FormulaTAS, FormulaExpectedReturn:
		return nil
	default:
		return fmt.Errorf("Formula.Validate: %q: %w", string(f), UnknownFormulaErr)
	}
}

// ParseFormula maps CLI/API spellings to a Formula.
func ParseFormula(input string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "sas":
		return FormulaSAS, nil
	case "ra-sas", "rasas":
		return FormulaRASAS, nil
	case "tas":
		return FormulaTAS, nil
	case "expected return", "expected-return", "expectedreturn", "er":
		return FormulaExpectedReturn, nil
	default:
		return "", fmt.Errorf("ParseFormula: %q: %w", input, UnknownFormulaErr)
	}
}
