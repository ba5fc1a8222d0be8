package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/generator"
)

// PuzzleHandler handles puzzle generation endpoints
type PuzzleHandler struct {
	generatorService generator.ServiceInterface
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(generatorService generator.ServiceInterface) *PuzzleHandler {
	return &PuzzleHandler{
		generatorService: generatorService,
	}
}

// Generate handles POST /api/v1/puzzles
func (h *PuzzleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GeneratePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.BookID == "" {
		WriteError(w, NewInvalidRequestError("book_id is required"))
		return
	}

	bookID := model.BookID(req.BookID)
	difficulty := model.Difficulty(req.Difficulty)

	var puzzle *model.Puzzle
	var err error
	if len(req.Words) > 0 {
		puzzle, err = h.generatorService.GenerateFromWords(bookID, difficulty, req.WordCount, req.Words)
	} else {
		puzzle, err = h.generatorService.Generate(r.Context(), bookID, difficulty, req.WordCount)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(puzzle))
}
