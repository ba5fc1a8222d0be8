package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users            map[model.UserID]*model.User
	registeredUsers  map[model.UserID]*model.RegisteredUser
	usernameIndex    map[string]model.UserID
	gameScores       map[scoreKey][]*model.GameScore
	wordSearchScores map[scoreKey][]*model.WordSearchScore
	wordPairs        map[scoreKey][]model.WordPair
	sessions         map[model.SessionID]*model.MatchingSession
}

type scoreKey struct {
	bookID     model.BookID
	difficulty model.Difficulty
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:            make(map[model.UserID]*model.User),
		registeredUsers:  make(map[model.UserID]*model.RegisteredUser),
		usernameIndex:    make(map[string]model.UserID),
		gameScores:       make(map[scoreKey][]*model.GameScore),
		wordSearchScores: make(map[scoreKey][]*model.WordSearchScore),
		wordPairs:        make(map[scoreKey][]model.WordPair),
		sessions:         make(map[model.SessionID]*model.MatchingSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// Registered user operations

func (s *Storage) SaveRegisteredUser(ctx context.Context, ru *model.RegisteredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredUsers[ru.UserID] = ru
	s.usernameIndex[ru.Username] = ru.UserID
	return nil
}

func (s *Storage) GetRegisteredUser(ctx context.Context, userID model.UserID) (*model.RegisteredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ru, ok := s.registeredUsers[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return ru, nil
}

func (s *Storage) GetRegisteredUserByUsername(ctx context.Context, username string) (*model.RegisteredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	ru, ok := s.registeredUsers[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return ru, nil
}

// Matching-game score operations

func (s *Storage) SaveGameScore(ctx context.Context, score *model.GameScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := scoreKey{bookID: score.BookID, difficulty: score.Difficulty}
	s.gameScores[key] = append(s.gameScores[key], score)
	return nil
}

func (s *Storage) TopGameScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.GameScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := scoreKey{bookID: bookID, difficulty: difficulty}
	scores := make([]*model.GameScore, len(s.gameScores[key]))
	copy(scores, s.gameScores[key])

	// Higher score ranks first
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// Word-search score operations

func (s *Storage) SaveWordSearchScore(ctx context.Context, score *model.WordSearchScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := scoreKey{bookID: score.BookID, difficulty: score.Difficulty}
	s.wordSearchScores[key] = append(s.wordSearchScores[key], score)
	return nil
}

func (s *Storage) FastestWordSearchScores(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, limit int) ([]*model.WordSearchScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := scoreKey{bookID: bookID, difficulty: difficulty}
	scores := make([]*model.WordSearchScore, len(s.wordSearchScores[key]))
	copy(scores, s.wordSearchScores[key])

	// Faster completion ranks first
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TimeSeconds < scores[j].TimeSeconds
	})

	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// Vocabulary operations

func (s *Storage) SaveWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty, pairs []model.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := scoreKey{bookID: bookID, difficulty: difficulty}
	stored := make([]model.WordPair, len(pairs))
	copy(stored, pairs)
	s.wordPairs[key] = stored
	return nil
}

func (s *Storage) GetWordPairs(ctx context.Context, bookID model.BookID, difficulty model.Difficulty) ([]model.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := scoreKey{bookID: bookID, difficulty: difficulty}
	pairs, ok := s.wordPairs[key]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	result := make([]model.WordPair, len(pairs))
	copy(result, pairs)
	return result, nil
}

// Matching session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.MatchingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.MatchingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
