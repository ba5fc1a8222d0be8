package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lexibook/wordsearch-go/internal/dependencies/mocks"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/scoring"
	"github.com/lexibook/wordsearch-go/internal/services/vocabulary"
	"github.com/lexibook/wordsearch-go/internal/storage/memory"
	"github.com/lexibook/wordsearch-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	logger := testutil.NopLogger()
	vocab := vocabulary.New(s.storage, logger)
	scoringService := scoring.New(s.storage, s.clock, s.random, logger)
	s.controller = NewController(s.storage, vocab, scoringService, s.clock, s.random, logger)
}

func (s *ControllerSuite) seedVocabulary(pairs ...model.WordPair) {
	err := s.storage.SaveWordPairs(context.Background(), "book-1", model.DifficultyEasy, pairs)
	s.Require().NoError(err)
}

// startSession seeds a two-pair book and starts a session over it
func (s *ControllerSuite) startSession() *model.MatchingSession {
	s.seedVocabulary(
		model.WordPair{Word: "cat", Translation: "gato"},
		model.WordPair{Word: "dog", Translation: "perro"},
	)
	s.random.QueueString("SESSION00001")

	session, err := s.controller.Start(context.Background(), "user-1", "book-1", model.DifficultyEasy, 2)
	s.Require().NoError(err)
	return session
}

func (s *ControllerSuite) TestStart() {
	session := s.startSession()

	s.Equal(model.SessionID("SESSION00001"), session.ID)
	s.Equal(model.SessionStateInProgress, session.State)
	s.Equal(model.UserID("user-1"), session.UserID)
	s.Len(session.Pairs, 2)
	s.Equal(s.clock.Now(), session.StartedAt)
	s.Zero(session.Mistakes)
}

func (s *ControllerSuite) TestStartRequiresUser() {
	_, err := s.controller.Start(context.Background(), "", "book-1", model.DifficultyEasy, 2)
	s.ErrorIs(err, model.ErrAuthenticationRequired)
}

func (s *ControllerSuite) TestStartUnknownBook() {
	_, err := s.controller.Start(context.Background(), "user-1", "missing", model.DifficultyEasy, 2)
	s.ErrorIs(err, model.ErrBookNotFound)
}

func (s *ControllerSuite) TestStartInvalidDifficulty() {
	_, err := s.controller.Start(context.Background(), "user-1", "book-1", "bogus", 2)
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *ControllerSuite) TestGetUnknownSession() {
	_, err := s.controller.Get(context.Background(), "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestPartialSelectionDoesNotResolve() {
	session := s.startSession()
	ctx := context.Background()

	result, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)

	s.False(result.Resolved)
	s.Equal("cat", result.Session.SelectedWord)
	s.Empty(result.Session.SelectedTranslation)
	s.Zero(result.Session.Mistakes)
}

func (s *ControllerSuite) TestMatchedPairResolves() {
	session := s.startSession()
	ctx := context.Background()

	_, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)
	result, err := s.controller.SelectTranslation(ctx, session.ID, "gato")
	s.Require().NoError(err)

	s.True(result.Resolved)
	s.True(result.Matched)
	s.True(result.Session.Resolved["cat"])
	s.Zero(result.Session.Mistakes)

	// Selection clears after resolution
	s.Empty(result.Session.SelectedWord)
	s.Empty(result.Session.SelectedTranslation)
}

func (s *ControllerSuite) TestMismatchCountsMistake() {
	session := s.startSession()
	ctx := context.Background()

	_, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)
	result, err := s.controller.SelectTranslation(ctx, session.ID, "perro")
	s.Require().NoError(err)

	s.True(result.Resolved)
	s.False(result.Matched)
	s.Equal(1, result.Session.Mistakes)
	s.False(result.Session.Resolved["cat"])
	s.Empty(result.Session.SelectedWord)
	s.Empty(result.Session.SelectedTranslation)
}

func (s *ControllerSuite) TestTranslationFirstAlsoResolves() {
	session := s.startSession()
	ctx := context.Background()

	_, err := s.controller.SelectTranslation(ctx, session.ID, "perro")
	s.Require().NoError(err)
	result, err := s.controller.SelectWord(ctx, session.ID, "dog")
	s.Require().NoError(err)

	s.True(result.Resolved)
	s.True(result.Matched)
	s.True(result.Session.Resolved["dog"])
}

func (s *ControllerSuite) TestResolvedWordCannotBeReselected() {
	session := s.startSession()
	ctx := context.Background()

	_, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)
	_, err = s.controller.SelectTranslation(ctx, session.ID, "gato")
	s.Require().NoError(err)

	_, err = s.controller.SelectWord(ctx, session.ID, "cat")
	s.ErrorIs(err, model.ErrPairAlreadyResolved)
}

func (s *ControllerSuite) TestFinalMatchCompletesSession() {
	session := s.startSession()
	ctx := context.Background()
	s.random.QueueString("SCORE0000001")

	_, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)
	_, err = s.controller.SelectTranslation(ctx, session.ID, "gato")
	s.Require().NoError(err)

	s.clock.Advance(30 * time.Second)

	_, err = s.controller.SelectWord(ctx, session.ID, "dog")
	s.Require().NoError(err)
	result, err := s.controller.SelectTranslation(ctx, session.ID, "perro")
	s.Require().NoError(err)

	s.True(result.Matched)
	s.Equal(model.SessionStateCompleted, result.Session.State)
	s.Require().NotNil(result.Score)
	s.Equal(940, result.Score.Score) // 30 seconds, no mistakes
	s.Equal(0, result.Score.Mistakes)
	s.Equal(30, result.Score.TimeSpent)

	// Score lands on the leaderboard store
	stored, err := s.storage.TopGameScores(ctx, "book-1", model.DifficultyEasy, 10)
	s.Require().NoError(err)
	s.Len(stored, 1)
}

func (s *ControllerSuite) TestCallerComplete() {
	session := s.startSession()
	ctx := context.Background()
	s.random.QueueString("SCORE0000001")

	s.clock.Advance(45 * time.Second)

	score, err := s.controller.Complete(ctx, session.ID)
	s.Require().NoError(err)

	s.Equal(45, score.TimeSpent)

	stored, err := s.controller.Get(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStateCompleted, stored.State)
	s.Equal(s.clock.Now(), stored.CompletedAt)
}

func (s *ControllerSuite) TestCompleteTwiceFails() {
	session := s.startSession()
	ctx := context.Background()
	s.random.QueueString("SCORE0000001")

	_, err := s.controller.Complete(ctx, session.ID)
	s.Require().NoError(err)

	_, err = s.controller.Complete(ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotInProgress)
}

func (s *ControllerSuite) TestSelectionAfterCompleteFails() {
	session := s.startSession()
	ctx := context.Background()
	s.random.QueueString("SCORE0000001")

	_, err := s.controller.Complete(ctx, session.ID)
	s.Require().NoError(err)

	_, err = s.controller.SelectWord(ctx, session.ID, "cat")
	s.ErrorIs(err, model.ErrSessionNotInProgress)
}

func (s *ControllerSuite) TestReset() {
	session := s.startSession()
	ctx := context.Background()
	s.random.QueueString("SCORE0000001")

	_, err := s.controller.SelectWord(ctx, session.ID, "cat")
	s.Require().NoError(err)
	_, err = s.controller.SelectTranslation(ctx, session.ID, "perro")
	s.Require().NoError(err)
	_, err = s.controller.Complete(ctx, session.ID)
	s.Require().NoError(err)

	reset, err := s.controller.Reset(ctx, session.ID)
	s.Require().NoError(err)

	s.Equal(model.SessionStateIdle, reset.State)
	s.Empty(reset.Resolved)
	s.Zero(reset.Mistakes)
	s.True(reset.StartedAt.IsZero())
	s.True(reset.CompletedAt.IsZero())
	s.Len(reset.Pairs, 2) // Pairs survive reset for replay
}
