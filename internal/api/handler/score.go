package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lexibook/wordsearch-go/internal/api/middleware"
	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/scoring"
)

// ScoreHandler handles score submission endpoints
type ScoreHandler struct {
	scoringService scoring.ServiceInterface
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoringService scoring.ServiceInterface) *ScoreHandler {
	return &ScoreHandler{
		scoringService: scoringService,
	}
}

// SubmitMatching handles POST /api/v1/scores/matching
func (h *ScoreHandler) SubmitMatching(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitMatchingScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user := middleware.MustGetUser(r.Context())

	score, err := h.scoringService.SubmitMatchingScore(r.Context(),
		user.ID, model.BookID(req.BookID), model.Difficulty(req.Difficulty),
		req.Mistakes, req.TimeSpent)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameScoreFromModel(score))
}

// SubmitWordSearch handles POST /api/v1/scores/wordsearch
func (h *ScoreHandler) SubmitWordSearch(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWordSearchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user := middleware.MustGetUser(r.Context())

	score, err := h.scoringService.SubmitWordSearchScore(r.Context(),
		user.ID, model.BookID(req.BookID), model.Difficulty(req.Difficulty),
		req.TimeSeconds, req.WordsFound, req.TotalWords)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.WordSearchScoreFromModel(score))
}
