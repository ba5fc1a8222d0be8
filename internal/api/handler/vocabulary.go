package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/vocabulary"
)

// VocabularyHandler handles vocabulary book endpoints
type VocabularyHandler struct {
	vocabService vocabulary.ServiceInterface
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(vocabService vocabulary.ServiceInterface) *VocabularyHandler {
	return &VocabularyHandler{
		vocabService: vocabService,
	}
}

// Save handles PUT /api/v1/books/{book_id}/{difficulty}/words
func (h *VocabularyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveVocabularyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.Pairs) == 0 {
		WriteError(w, NewInvalidRequestError("pairs must not be empty"))
		return
	}

	vars := mux.Vars(r)
	pairs := make([]model.WordPair, len(req.Pairs))
	for i, p := range req.Pairs {
		pairs[i] = model.WordPair{Word: p.Word, Translation: p.Translation}
	}

	err := h.vocabService.SavePairs(r.Context(),
		model.BookID(vars["book_id"]), model.Difficulty(vars["difficulty"]), pairs)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Get handles GET /api/v1/books/{book_id}/{difficulty}/words
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pairs, err := h.vocabService.GetPairs(r.Context(),
		model.BookID(vars["book_id"]), model.Difficulty(vars["difficulty"]), 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]response.WordPair, len(pairs))
	for i, p := range pairs {
		result[i] = response.WordPair{Word: p.Word, Translation: p.Translation}
	}
	response.JSON(w, http.StatusOK, result)
}
