package handler

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-alpha/src/models"
	"github.com/jiaming2012/options-alpha/src/scoring"
)

type ScoreRequest struct {
	Contract models.OptionContract `json:"contract"`
	Formula  string                `json:"formula"`
}

func Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("Score: failed to decode request", 400, err, w)
		return
	}

	formula, err := models.ParseFormula(req.Formula)
	if err != nil {
		setErrorResponse("Score: invalid formula", 400, err, w)
		return
	}

	result := scoring.Score(req.Contract, formula)

	if err := setResponse(result, w); err != nil {
		log.Errorf("Score: failed to set response: %v", err)
	}
}
