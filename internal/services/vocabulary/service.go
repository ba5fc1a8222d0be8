package vocabulary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// Service supplies word/translation pairs from vocabulary books
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new VocabularyService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetPairs returns up to count word pairs for a book and difficulty,
// preserving the stored order. count <= 0 returns all pairs.
func (s *Service) GetPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, count int) ([]model.WordPair, error) {
	pairs, err := s.storage.GetWordPairs(ctx, bookID, difficulty)
	if err != nil {
		return nil, err
	}

	if count > 0 && len(pairs) > count {
		pairs = pairs[:count]
	}
	return pairs, nil
}

// GetWords returns up to count upper-cased words for a book and difficulty,
// in stored order, ready for grid placement
func (s *Service) GetWords(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, count int) ([]string, error) {
	pairs, err := s.GetPairs(ctx, bookID, difficulty, count)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(pairs))
	for _, p := range pairs {
		word := strings.ToUpper(strings.TrimSpace(p.Word))
		if word != "" {
			words = append(words, word)
		}
	}
	return words, nil
}

// SavePairs stores the word pairs for a book and difficulty, replacing any
// existing set
func (s *Service) SavePairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, pairs []model.WordPair) error {
	if !difficulty.IsValid() {
		return model.ErrInvalidDifficulty
	}

	if err := s.storage.SaveWordPairs(ctx, bookID, difficulty, pairs); err != nil {
		return err
	}

	s.logger.Info("vocabulary saved",
		slog.String("book_id", string(bookID)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("pair_count", len(pairs)),
	)
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	GetPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, count int) ([]model.WordPair, error)
	GetWords(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, count int) ([]string, error)
	SavePairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, pairs []model.WordPair) error
}

var _ ServiceInterface = (*Service)(nil)
