package leaderboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// DefaultLimit is the number of entries returned when the caller does not
// ask for a specific count
const DefaultLimit = 10

// PlaceholderName is used when a score's user cannot be resolved to a
// display name. A missing name is never an error.
const PlaceholderName = "Anonymous"

// Service ranks stored scores into leaderboards.
//
// The two query shapes use deliberately different orderings: matching-game
// scores rank higher-is-better, word-search times rank lower-is-better.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new LeaderboardService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Matching returns the matching-game leaderboard for a book and difficulty,
// ordered by score descending and enriched with display names
func (s *Service) Matching(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, limit int) ([]model.LeaderboardEntry, error) {
	if userID == "" {
		return nil, model.ErrAuthenticationRequired
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	scores, err := s.storage.TopGameScores(ctx, bookID, difficulty, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, model.LeaderboardEntry{
			GameScore:   *score,
			DisplayName: s.resolveName(ctx, score.UserID),
		})
	}
	return entries, nil
}

// WordSearch returns the word-search leaderboard for a book and difficulty,
// ordered by completion time ascending. No name enrichment in this variant.
func (s *Service) WordSearch(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.WordSearchScore, error) {
	if userID == "" {
		return nil, model.ErrAuthenticationRequired
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	return s.storage.FastestWordSearchScores(ctx, bookID, difficulty, limit)
}

// resolveName looks up a user's display name, falling back to the
// placeholder when the user is gone or the lookup fails
func (s *Service) resolveName(ctx context.Context, userID model.UserID) string {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warn("display name lookup failed",
				slog.String("user_id", string(userID)),
				slog.String("error", err.Error()),
			)
		}
		return PlaceholderName
	}
	if user.DisplayName == "" {
		return PlaceholderName
	}
	return user.DisplayName
}

// Interface for dependency injection
type ServiceInterface interface {
	Matching(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, limit int) ([]model.LeaderboardEntry, error)
	WordSearch(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.WordSearchScore, error)
}

var _ ServiceInterface = (*Service)(nil)
