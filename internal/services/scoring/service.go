package scoring

import (
	"context"
	"log/slog"

	"github.com/lexibook/wordsearch-go/internal/dependencies/clock"
	"github.com/lexibook/wordsearch-go/internal/dependencies/random"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// Matching-game score formula parameters
const (
	BaseScore        = 1000
	MistakePenalty   = 50
	PerSecondPenalty = 2
)

const scoreIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service computes and submits game scores
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new ScoringService
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// ComputeScore maps a completed matching-game session to its score.
// Pure and total: non-increasing in both inputs, floored at zero.
func ComputeScore(mistakes, timeSpentSeconds int) int {
	score := BaseScore - mistakes*MistakePenalty - timeSpentSeconds*PerSecondPenalty
	if score < 0 {
		return 0
	}
	return score
}

// ComputeScore is the method form of the package-level function
func (s *Service) ComputeScore(mistakes, timeSpentSeconds int) int {
	return ComputeScore(mistakes, timeSpentSeconds)
}

// SubmitMatchingScore persists a completed matching-game result for the
// authenticated user. The score value is derived, never caller-supplied.
func (s *Service) SubmitMatchingScore(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, mistakes, timeSpentSeconds int) (*model.GameScore, error) {
	if userID == "" {
		return nil, model.ErrAuthenticationRequired
	}
	if !difficulty.IsValid() {
		return nil, model.ErrInvalidDifficulty
	}
	if mistakes < 0 || timeSpentSeconds < 0 {
		return nil, model.ErrInvalidScore
	}

	score := &model.GameScore{
		ID:          model.ScoreID(s.random.String(12, scoreIDAlphabet)),
		UserID:      userID,
		BookID:      bookID,
		GameType:    model.GameTypeMatching,
		Difficulty:  difficulty,
		Score:       ComputeScore(mistakes, timeSpentSeconds),
		TimeSpent:   timeSpentSeconds,
		Mistakes:    mistakes,
		CompletedAt: s.clock.Now(),
	}

	if err := s.storage.SaveGameScore(ctx, score); err != nil {
		s.logger.Error("failed to save matching score",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("matching score submitted",
		slog.String("score_id", string(score.ID)),
		slog.String("user_id", string(userID)),
		slog.String("book_id", string(bookID)),
		slog.Int("score", score.Score),
	)
	return score, nil
}

// SubmitWordSearchScore persists a completed word-search result for the
// authenticated user
func (s *Service) SubmitWordSearchScore(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, timeSeconds, wordsFound, totalWords int) (*model.WordSearchScore, error) {
	if userID == "" {
		return nil, model.ErrAuthenticationRequired
	}
	if !difficulty.IsValid() {
		return nil, model.ErrInvalidDifficulty
	}
	if timeSeconds < 0 || wordsFound < 0 || totalWords < 0 || wordsFound > totalWords {
		return nil, model.ErrInvalidScore
	}

	score := &model.WordSearchScore{
		ID:          model.ScoreID(s.random.String(12, scoreIDAlphabet)),
		UserID:      userID,
		BookID:      bookID,
		Difficulty:  difficulty,
		TimeSeconds: timeSeconds,
		WordsFound:  wordsFound,
		TotalWords:  totalWords,
		CompletedAt: s.clock.Now(),
	}

	if err := s.storage.SaveWordSearchScore(ctx, score); err != nil {
		s.logger.Error("failed to save word-search score",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("word-search score submitted",
		slog.String("score_id", string(score.ID)),
		slog.String("user_id", string(userID)),
		slog.String("book_id", string(bookID)),
		slog.Int("time_seconds", timeSeconds),
	)
	return score, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	ComputeScore(mistakes, timeSpentSeconds int) int
	SubmitMatchingScore(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, mistakes, timeSpentSeconds int) (*model.GameScore, error)
	SubmitWordSearchScore(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, timeSeconds, wordsFound, totalWords int) (*model.WordSearchScore, error)
}

var _ ServiceInterface = (*Service)(nil)
