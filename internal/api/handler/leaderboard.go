package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexibook/wordsearch-go/internal/api/middleware"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard query endpoints
type LeaderboardHandler struct {
	leaderboardService leaderboard.ServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService leaderboard.ServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Matching handles GET /api/v1/leaderboards/matching/{book_id}/{difficulty}
func (h *LeaderboardHandler) Matching(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.MustGetUser(r.Context())

	entries, err := h.leaderboardService.Matching(r.Context(),
		user.ID, model.BookID(vars["book_id"]), model.Difficulty(vars["difficulty"]),
		limitParam(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	result := response.MatchingLeaderboard{
		Entries: make([]response.LeaderboardEntry, len(entries)),
	}
	for i, e := range entries {
		result.Entries[i] = response.LeaderboardEntryFromModel(e)
	}
	response.JSON(w, http.StatusOK, result)
}

// WordSearch handles GET /api/v1/leaderboards/wordsearch/{book_id}/{difficulty}
func (h *LeaderboardHandler) WordSearch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := middleware.MustGetUser(r.Context())

	scores, err := h.leaderboardService.WordSearch(r.Context(),
		user.ID, model.BookID(vars["book_id"]), model.Difficulty(vars["difficulty"]),
		limitParam(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	result := response.WordSearchLeaderboard{
		Entries: make([]response.WordSearchScore, len(scores)),
	}
	for i, s := range scores {
		result.Entries[i] = response.WordSearchScoreFromModel(s)
	}
	response.JSON(w, http.StatusOK, result)
}

// limitParam parses the optional ?limit= query parameter; 0 means default
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
