package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-alpha/src/analysis"
	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/simulation"
)

type SimulateRequest struct {
	Contracts []models.OptionContract `json:"contracts"`
	Config    models.SimulationConfig `json:"config"`
	Formula   string                  `json:"formula"`
	Seed      *int64                  `json:"seed,omitempty"`
	Rank      *bool                   `json:"rank,omitempty"`
}

type SimulateResponse struct {
	RunID     uuid.UUID                `json:"run_id"`
	Summaries models.ContractSummaries `json:"summaries"`
}

// Simulate runs a full simulation synchronously. The request context cancels
// the run at path granularity, so a client disconnect abandons it without
// returning partial results.
func Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("Simulate: failed to decode request", 400, err, w)
		return
	}

	formula, err := models.ParseFormula(req.Formula)
	if err != nil {
		setErrorResponse("Simulate: invalid formula", 400, err, w)
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	simulator, err := simulation.NewSimulator(req.Config, formula, simulation.NewNormalSource(seed))
	if err != nil {
		setErrorResponse("Simulate: invalid config", 400, err, w)
		return
	}

	runID := uuid.New()
	log.Infof("Simulate: run %s started: %d contracts, %d paths", runID, len(req.Contracts), req.Config.PathCount)

	summaries, err := simulator.Run(r.Context(), req.Contracts, nil)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warnf("Simulate: run %s cancelled: %v", runID, err)
			return
		}

		setErrorResponse("Simulate: run failed", 500, err, w)
		return
	}

	if req.Rank == nil || *req.Rank {
		summaries = analysis.Rank(summaries)
	}

	log.Infof("Simulate: run %s completed", runID)

	if err := setResponse(SimulateResponse{RunID: runID, Summaries: summaries}, w); err != nil {
		log.Errorf("Simulate: failed to set response: %v", err)
	}
}
