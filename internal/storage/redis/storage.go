package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Apply TTL only for guest accounts
	var ttl time.Duration
	if user.IsGuest {
		ttl = s.cfg.GuestUserTTL
	}
	return s.client.Set(ctx, userKey(user.ID), data, ttl).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	return s.client.Del(ctx, userKey(id)).Err()
}

// Registered user operations

func (s *Storage) SaveRegisteredUser(ctx context.Context, ru *model.RegisteredUser) error {
	data, err := json.Marshal(ru)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredUserKey(ru.UserID), data, 0) // No TTL
	pipe.Set(ctx, usernameIndexKey(ru.Username), string(ru.UserID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredUser(ctx context.Context, userID model.UserID) (*model.RegisteredUser, error) {
	data, err := s.client.Get(ctx, registeredUserKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var ru model.RegisteredUser
	if err := json.Unmarshal(data, &ru); err != nil {
		return nil, err
	}
	return &ru, nil
}

func (s *Storage) GetRegisteredUserByUsername(ctx context.Context, username string) (*model.RegisteredUser, error) {
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetRegisteredUser(ctx, model.UserID(userIDStr))
}

// Matching-game score operations
//
// Each record is stored as a JSON value, and a sorted set per
// (book, difficulty) ranks record IDs by score so leaderboard reads are
// plain range queries.

func (s *Storage) SaveGameScore(ctx context.Context, score *model.GameScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameScoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, matchingBoardKey(score.BookID, score.Difficulty), redis.Z{
		Score:  float64(score.Score),
		Member: string(score.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) TopGameScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.GameScore, error) {
	if limit <= 0 {
		return []*model.GameScore{}, nil
	}

	// Highest score first
	ids, err := s.client.ZRevRange(ctx, matchingBoardKey(bookID, difficulty), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.GameScore{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameScoreKey(model.ScoreID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.GameScore, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record may have been removed externally
		}
		var score model.GameScore
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue // Skip invalid data
		}
		scores = append(scores, &score)
	}
	return scores, nil
}

// Word-search score operations
//
// Same layout as matching scores, but the sorted set ranks by completion
// time so the fastest records come first with a plain ascending range.

func (s *Storage) SaveWordSearchScore(ctx context.Context, score *model.WordSearchScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, wordSearchScoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, wordSearchBoardKey(score.BookID, score.Difficulty), redis.Z{
		Score:  float64(score.TimeSeconds),
		Member: string(score.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) FastestWordSearchScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.WordSearchScore, error) {
	if limit <= 0 {
		return []*model.WordSearchScore{}, nil
	}

	// Lowest time first
	ids, err := s.client.ZRange(ctx, wordSearchBoardKey(bookID, difficulty), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.WordSearchScore{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = wordSearchScoreKey(model.ScoreID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.WordSearchScore, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var score model.WordSearchScore
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue
		}
		scores = append(scores, &score)
	}
	return scores, nil
}

// Vocabulary operations

func (s *Storage) SaveWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, pairs []model.WordPair) error {
	data, err := json.Marshal(pairs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wordPairsKey(bookID, difficulty), data, 0).Err()
}

func (s *Storage) GetWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty) ([]model.WordPair, error) {
	data, err := s.client.Get(ctx, wordPairsKey(bookID, difficulty)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBookNotFound
		}
		return nil, err
	}

	var pairs []model.WordPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Matching session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.MatchingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.MatchingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.MatchingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
