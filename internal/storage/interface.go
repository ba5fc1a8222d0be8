package storage

import (
	"context"

	"github.com/lexibook/wordsearch-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Registered user operations
	SaveRegisteredUser(ctx context.Context, ru *model.RegisteredUser) error
	GetRegisteredUser(ctx context.Context, userID model.UserID) (*model.RegisteredUser, error)
	GetRegisteredUserByUsername(ctx context.Context, username string) (*model.RegisteredUser, error)

	// Matching-game score operations.
	// TopGameScores returns records for (bookID, difficulty) ordered by
	// score descending, at most limit entries.
	SaveGameScore(ctx context.Context, score *model.GameScore) error
	TopGameScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.GameScore, error)

	// Word-search score operations.
	// FastestWordSearchScores returns records for (bookID, difficulty)
	// ordered by completion time ascending, at most limit entries.
	SaveWordSearchScore(ctx context.Context, score *model.WordSearchScore) error
	FastestWordSearchScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.WordSearchScore, error)

	// Vocabulary operations
	SaveWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, pairs []model.WordPair) error
	GetWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty) ([]model.WordPair, error)

	// Matching session operations
	SaveSession(ctx context.Context, session *model.MatchingSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.MatchingSession, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
}
