package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/lexibook/wordsearch-go/internal/dependencies/clock"
	"github.com/lexibook/wordsearch-go/internal/dependencies/random"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/scoring"
	"github.com/lexibook/wordsearch-go/internal/services/vocabulary"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the matching-game session lifecycle:
// Idle -> InProgress -> Completed -> Idle on reset.
type Controller struct {
	storage storage.Storage
	vocab   vocabulary.ServiceInterface
	scoring scoring.ServiceInterface
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new SessionController
func NewController(
	storage storage.Storage,
	vocab vocabulary.ServiceInterface,
	scoring scoring.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		vocab:   vocab,
		scoring: scoring,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// SelectionResult reports the outcome of a selection attempt
type SelectionResult struct {
	Session *model.MatchingSession

	// Resolved is true when the selection completed a word/translation
	// pair and it was evaluated
	Resolved bool
	Matched  bool

	// Score is set when the attempt completed the session
	Score *model.GameScore
}

// Start begins a matching session for the given user, snapshotting the
// book's word pairs and capturing the start time
func (c *Controller) Start(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, pairCount int) (*model.MatchingSession, error) {
	if userID == "" {
		return nil, model.ErrAuthenticationRequired
	}
	if !difficulty.IsValid() {
		return nil, model.ErrInvalidDifficulty
	}

	pairs, err := c.vocab.GetPairs(ctx, bookID, difficulty, pairCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	session := &model.MatchingSession{
		ID:         model.SessionID(c.random.String(12, sessionIDAlphabet)),
		UserID:     userID,
		BookID:     bookID,
		Difficulty: difficulty,
		State:      model.SessionStateInProgress,
		Pairs:      pairs,
		Resolved:   make(map[string]bool),
		StartedAt:  now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("matching session started",
		slog.String("session_id", string(session.ID)),
		slog.String("user_id", string(userID)),
		slog.String("book_id", string(bookID)),
		slog.Int("pair_count", len(pairs)),
	)
	return session, nil
}

// Get retrieves a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.MatchingSession, error) {
	return c.storage.GetSession(ctx, id)
}

// SelectWord records the word half of a selection attempt
func (c *Controller) SelectWord(ctx context.Context, id model.SessionID, word string) (*SelectionResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionStateInProgress {
		return nil, model.ErrSessionNotInProgress
	}
	if session.Resolved[word] {
		return nil, model.ErrPairAlreadyResolved
	}

	session.SelectedWord = word
	return c.resolveSelection(ctx, session)
}

// SelectTranslation records the translation half of a selection attempt
func (c *Controller) SelectTranslation(ctx context.Context, id model.SessionID, translation string) (*SelectionResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionStateInProgress {
		return nil, model.ErrSessionNotInProgress
	}

	session.SelectedTranslation = translation
	return c.resolveSelection(ctx, session)
}

// resolveSelection evaluates a complete word/translation pair. A match marks
// the pair resolved, a mismatch increments the mistake counter; both
// selections clear regardless of outcome. Matching the final pair completes
// the session.
func (c *Controller) resolveSelection(ctx context.Context, session *model.MatchingSession) (*SelectionResult, error) {
	result := &SelectionResult{Session: session}

	if session.HasFullSelection() {
		result.Resolved = true
		result.Matched = c.pairMatches(session, session.SelectedWord, session.SelectedTranslation)

		if result.Matched {
			session.Resolved[session.SelectedWord] = true
		} else {
			session.Mistakes++
		}
		session.ClearSelection()

		if result.Matched && session.AllResolved() {
			score, err := c.complete(ctx, session)
			if err != nil {
				return nil, err
			}
			result.Score = score
		}
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// pairMatches checks whether the selected translation belongs to the
// selected word
func (c *Controller) pairMatches(session *model.MatchingSession, word, translation string) bool {
	for _, p := range session.Pairs {
		if p.Word == word {
			return p.Translation == translation
		}
	}
	return false
}

// Complete ends an in-progress session at the caller's request, computing
// and persisting the score for the pairs matched so far
func (c *Controller) Complete(ctx context.Context, id model.SessionID) (*model.GameScore, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionStateInProgress {
		return nil, model.ErrSessionNotInProgress
	}

	score, err := c.complete(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return score, nil
}

// complete transitions the session to Completed and hands the score to
// persistence
func (c *Controller) complete(ctx context.Context, session *model.MatchingSession) (*model.GameScore, error) {
	now := c.clock.Now()
	session.State = model.SessionStateCompleted
	session.CompletedAt = now

	score, err := c.scoring.SubmitMatchingScore(ctx,
		session.UserID, session.BookID, session.Difficulty,
		session.Mistakes, session.TimeSpent(now))
	if err != nil {
		return nil, err
	}

	c.logger.Info("matching session completed",
		slog.String("session_id", string(session.ID)),
		slog.Int("mistakes", session.Mistakes),
		slog.Int("score", score.Score),
	)
	return score, nil
}

// Reset returns a session to Idle for replay, clearing progress and the
// transient selection state
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.MatchingSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.State = model.SessionStateIdle
	session.Resolved = make(map[string]bool)
	session.ClearSelection()
	session.Mistakes = 0
	session.StartedAt = time.Time{}
	session.CompletedAt = time.Time{}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context, userID model.UserID, bookID model.BookID, difficulty model.Difficulty, pairCount int) (*model.MatchingSession, error)
	Get(ctx context.Context, id model.SessionID) (*model.MatchingSession, error)
	SelectWord(ctx context.Context, id model.SessionID, word string) (*SelectionResult, error)
	SelectTranslation(ctx context.Context, id model.SessionID, translation string) (*SelectionResult, error)
	Complete(ctx context.Context, id model.SessionID) (*model.GameScore, error)
	Reset(ctx context.Context, id model.SessionID) (*model.MatchingSession, error)
}

var _ ControllerInterface = (*Controller)(nil)
