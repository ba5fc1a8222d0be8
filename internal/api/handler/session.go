package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexibook/wordsearch-go/internal/api/middleware"
	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/session"
)

// SessionHandler handles matching-game session endpoints
type SessionHandler struct {
	sessionController session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionController session.ControllerInterface) *SessionHandler {
	return &SessionHandler{
		sessionController: sessionController,
	}
}

// Start handles POST /api/v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.BookID == "" {
		WriteError(w, NewInvalidRequestError("book_id is required"))
		return
	}

	user := middleware.MustGetUser(r.Context())

	sess, err := h.sessionController.Start(r.Context(),
		user.ID, model.BookID(req.BookID), model.Difficulty(req.Difficulty), req.PairCount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchingSessionFromModel(sess))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessionController.Get(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchingSessionFromModel(sess))
}

// Select handles POST /api/v1/sessions/{id}/select
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var result *session.SelectionResult
	var err error
	switch {
	case req.Word != "" && req.Translation == "":
		result, err = h.sessionController.SelectWord(r.Context(), sessionID(r), req.Word)
	case req.Translation != "" && req.Word == "":
		result, err = h.sessionController.SelectTranslation(r.Context(), sessionID(r), req.Translation)
	default:
		WriteError(w, NewInvalidRequestError("exactly one of word or translation is required"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SelectionResultFromModel(result))
}

// Complete handles POST /api/v1/sessions/{id}/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	score, err := h.sessionController.Complete(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameScoreFromModel(score))
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessionController.Reset(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchingSessionFromModel(sess))
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}
