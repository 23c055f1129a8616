package models

import "fmt"

var PathCountErr = fmt.Errorf("pathCount must be >= 1")
var HoldingPeriodDaysErr = fmt.Errorf("holdingPeriodDays must be >= 1")
var StartingUnderlyingPriceErr = fmt.Errorf("startingUnderlyingPrice must be > 0")
var AnnualizedVolatilityErr = fmt.Errorf("annualizedVolatility must be > 0")
var UnknownFormulaErr = fmt.Errorf("unknown formula")
