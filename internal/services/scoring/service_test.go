package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lexibook/wordsearch-go/internal/dependencies/mocks"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage/memory"
	"github.com/lexibook/wordsearch-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, testutil.NopLogger())
}

// Score formula

func (s *ServiceSuite) TestComputeScorePerfect() {
	s.Equal(1000, ComputeScore(0, 0))
}

func (s *ServiceSuite) TestComputeScorePenalties() {
	s.Equal(950, ComputeScore(1, 0))
	s.Equal(998, ComputeScore(0, 1))
	s.Equal(840, ComputeScore(2, 30))
}

func (s *ServiceSuite) TestComputeScoreFloorsAtZero() {
	s.Equal(0, ComputeScore(20, 0))
	s.Equal(0, ComputeScore(0, 500))
	s.Equal(0, ComputeScore(100, 1000))
}

func (s *ServiceSuite) TestComputeScoreNonIncreasing() {
	prev := ComputeScore(0, 0)
	for mistakes := 1; mistakes < 25; mistakes++ {
		next := ComputeScore(mistakes, 0)
		s.LessOrEqual(next, prev)
		prev = next
	}

	prev = ComputeScore(0, 0)
	for seconds := 1; seconds < 600; seconds += 25 {
		next := ComputeScore(0, seconds)
		s.LessOrEqual(next, prev)
		prev = next
	}
}

// Matching submissions

func (s *ServiceSuite) TestSubmitMatchingScore() {
	s.random.QueueString("SCORE0000001")

	score, err := s.service.SubmitMatchingScore(context.Background(),
		"user-1", "book-1", model.DifficultyEasy, 2, 30)
	s.Require().NoError(err)

	s.Equal(model.ScoreID("SCORE0000001"), score.ID)
	s.Equal(model.UserID("user-1"), score.UserID)
	s.Equal(model.GameTypeMatching, score.GameType)
	s.Equal(840, score.Score)
	s.Equal(2, score.Mistakes)
	s.Equal(30, score.TimeSpent)
	s.Equal(s.clock.Now(), score.CompletedAt)

	stored, err := s.storage.TopGameScores(context.Background(), "book-1", model.DifficultyEasy, 10)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.Equal(score.ID, stored[0].ID)
}

func (s *ServiceSuite) TestSubmitMatchingRequiresUser() {
	_, err := s.service.SubmitMatchingScore(context.Background(),
		"", "book-1", model.DifficultyEasy, 0, 10)
	s.ErrorIs(err, model.ErrAuthenticationRequired)

	stored, err := s.storage.TopGameScores(context.Background(), "book-1", model.DifficultyEasy, 10)
	s.Require().NoError(err)
	s.Empty(stored)
}

func (s *ServiceSuite) TestSubmitMatchingValidation() {
	ctx := context.Background()

	_, err := s.service.SubmitMatchingScore(ctx, "user-1", "book-1", "bogus", 0, 10)
	s.ErrorIs(err, model.ErrInvalidDifficulty)

	_, err = s.service.SubmitMatchingScore(ctx, "user-1", "book-1", model.DifficultyEasy, -1, 10)
	s.ErrorIs(err, model.ErrInvalidScore)

	_, err = s.service.SubmitMatchingScore(ctx, "user-1", "book-1", model.DifficultyEasy, 0, -5)
	s.ErrorIs(err, model.ErrInvalidScore)
}

// Word-search submissions

func (s *ServiceSuite) TestSubmitWordSearchScore() {
	s.random.QueueString("WSSCORE00001")

	score, err := s.service.SubmitWordSearchScore(context.Background(),
		"user-1", "book-1", model.DifficultyMedium, 95, 5, 5)
	s.Require().NoError(err)

	s.Equal(model.ScoreID("WSSCORE00001"), score.ID)
	s.Equal(95, score.TimeSeconds)
	s.Equal(5, score.WordsFound)
	s.Equal(5, score.TotalWords)
	s.Equal(s.clock.Now(), score.CompletedAt)

	stored, err := s.storage.FastestWordSearchScores(context.Background(), "book-1", model.DifficultyMedium, 10)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.Equal(score.ID, stored[0].ID)
}

func (s *ServiceSuite) TestSubmitWordSearchRequiresUser() {
	_, err := s.service.SubmitWordSearchScore(context.Background(),
		"", "book-1", model.DifficultyMedium, 95, 5, 5)
	s.ErrorIs(err, model.ErrAuthenticationRequired)
}

func (s *ServiceSuite) TestSubmitWordSearchValidation() {
	ctx := context.Background()

	_, err := s.service.SubmitWordSearchScore(ctx, "user-1", "book-1", "bogus", 95, 5, 5)
	s.ErrorIs(err, model.ErrInvalidDifficulty)

	_, err = s.service.SubmitWordSearchScore(ctx, "user-1", "book-1", model.DifficultyMedium, -1, 5, 5)
	s.ErrorIs(err, model.ErrInvalidScore)

	// More found than the puzzle holds
	_, err = s.service.SubmitWordSearchScore(ctx, "user-1", "book-1", model.DifficultyMedium, 95, 6, 5)
	s.ErrorIs(err, model.ErrInvalidScore)
}
