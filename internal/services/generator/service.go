package generator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lexibook/wordsearch-go/internal/dependencies/random"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/vocabulary"
)

const (
	// maxTrialsPerWord bounds the randomized placement attempts for one word.
	// A word that exhausts its trials is dropped, not reported as an error.
	maxTrialsPerWord = 100

	fillAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Service generates word-search puzzles.
//
// Generation is synchronous and owns no state across calls; concurrent
// generations need no locking. Wiring a seeded Random makes the output
// reproducible.
type Service struct {
	vocab  vocabulary.ServiceInterface
	random random.Random
	logger *slog.Logger
}

// New creates a new GeneratorService
func New(vocab vocabulary.ServiceInterface, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		vocab:  vocab,
		random: random,
		logger: logger,
	}
}

// Generate builds a puzzle from the book's vocabulary at the given difficulty
func (s *Service) Generate(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, wordCount int) (*model.Puzzle, error) {
	if !difficulty.IsValid() {
		return nil, model.ErrInvalidDifficulty
	}
	if wordCount <= 0 {
		return nil, model.ErrInvalidWordCount
	}

	words, err := s.vocab.GetWords(ctx, bookID, difficulty, wordCount)
	if err != nil {
		return nil, err
	}

	return s.GenerateFromWords(bookID, difficulty, wordCount, words)
}

// GenerateFromWords builds a puzzle from an explicit ordered candidate list.
// Words that cannot be placed within the trial budget are silently dropped;
// a puzzle with fewer placed words than requested is a normal result.
func (s *Service) GenerateFromWords(bookID model.BookID, difficulty model.Difficulty, wordCount int, words []string) (*model.Puzzle, error) {
	if !difficulty.IsValid() {
		return nil, model.ErrInvalidDifficulty
	}
	if wordCount <= 0 {
		return nil, model.ErrInvalidWordCount
	}

	grid := model.NewGrid(difficulty.GridSize())
	placements := s.placeWords(grid, words, wordCount)
	s.fillGrid(grid)

	placed := make([]string, len(placements))
	for i, p := range placements {
		placed[i] = p.Word
	}

	s.logger.Info("puzzle generated",
		slog.String("book_id", string(bookID)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("requested", wordCount),
		slog.Int("placed", len(placed)),
	)

	return &model.Puzzle{
		Grid:       grid,
		Words:      placed,
		Placements: placements,
		Difficulty: difficulty,
		Size:       grid.Size,
		BookID:     bookID,
	}, nil
}

// placeWords lays candidates onto the grid strictly in input order, stopping
// once wordCount words have been placed
func (s *Service) placeWords(grid *model.Grid, words []string, wordCount int) []model.Placement {
	var placements []model.Placement

	for _, word := range words {
		if len(placements) >= wordCount {
			break
		}

		word = strings.ToUpper(strings.TrimSpace(word))
		if word == "" {
			continue
		}

		if placement, ok := s.tryPlaceWord(grid, word); ok {
			placements = append(placements, placement)
		}
	}

	return placements
}

// tryPlaceWord runs up to maxTrialsPerWord independent randomized trials.
// Each trial draws a direction and a starting cell uniformly; it succeeds if
// every cell the word would occupy is in bounds and either empty or already
// holding the letter the word places there.
func (s *Service) tryPlaceWord(grid *model.Grid, word string) (model.Placement, bool) {
	letters := []rune(word)

	for trial := 0; trial < maxTrialsPerWord; trial++ {
		dir := model.Directions[s.random.Intn(len(model.Directions))]
		start := model.Position{
			Row: s.random.Intn(grid.Size),
			Col: s.random.Intn(grid.Size),
		}

		if !s.canPlace(grid, letters, start, dir) {
			continue
		}

		pos := start
		for _, letter := range letters {
			grid.Set(pos, letter)
			pos.Row += dir.DRow
			pos.Col += dir.DCol
		}

		return model.Placement{
			Word:      word,
			Start:     start,
			Direction: dir,
		}, true
	}

	return model.Placement{}, false
}

// canPlace checks bounds and letter compatibility for one trial.
// Sharing a letter with an earlier word is allowed; a mismatch is not.
func (s *Service) canPlace(grid *model.Grid, letters []rune, start model.Position, dir model.Direction) bool {
	pos := start
	for _, letter := range letters {
		if !grid.InBounds(pos) {
			return false
		}
		if existing := grid.Get(pos); existing != 0 && existing != letter {
			return false
		}
		pos.Row += dir.DRow
		pos.Col += dir.DCol
	}
	return true
}

// fillGrid overwrites every remaining empty cell with a uniformly random
// uppercase letter
func (s *Service) fillGrid(grid *model.Grid) {
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if grid.IsEmpty(pos) {
				grid.Set(pos, rune(fillAlphabet[s.random.Intn(len(fillAlphabet))]))
			}
		}
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, wordCount int) (*model.Puzzle, error)
	GenerateFromWords(bookID model.BookID, difficulty model.Difficulty, wordCount int, words []string) (*model.Puzzle, error)
}

var _ ServiceInterface = (*Service)(nil)
