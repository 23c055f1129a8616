package models

// ScoreResult is the outcome of scoring one contract under one formula. A
// fresh value is created on every scoring call; it is never persisted and
// never written back onto the contract.
type ScoreResult struct {
	Formula Formula `json:"formula"`
	Value   float64 `json:"value"`
}
