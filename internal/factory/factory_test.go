package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibook/wordsearch-go/internal/model"
)

func TestNewMemoryApp(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.NotNil(t, app.Storage)
	assert.NotNil(t, app.VocabularyService)
	assert.NotNil(t, app.GeneratorService)
	assert.NotNil(t, app.ScoringService)
	assert.NotNil(t, app.LeaderboardService)
	assert.NotNil(t, app.SessionController)
	assert.NotNil(t, app.AuthService)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassandra"})
	assert.Error(t, err)
}

// End-to-end wiring through the real service graph
func TestAppGeneratesFromSeededVocabulary(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	require.NoError(t, app.LoadTestVocabulary("book-1", model.DifficultyMedium))

	// Right from (0,0)
	app.MockRandom.QueueIntn(0, 0, 0)

	puzzle, err := app.GeneratorService.Generate(ctx, "book-1", model.DifficultyMedium, 1)
	require.NoError(t, err)

	assert.Equal(t, 12, puzzle.Size)
	assert.Equal(t, []string{"CAT"}, puzzle.Words)
	assert.Equal(t, 0, puzzle.Grid.EmptyCount())
}

func TestAppScoresFlowToLeaderboard(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	session, err := app.AuthService.CreateGuest(ctx, "Alice")
	require.NoError(t, err)

	app.MockRandom.QueueString("SCORE0000001")
	_, err = app.ScoringService.SubmitMatchingScore(ctx,
		session.UserID, "book-1", model.DifficultyEasy, 0, 10)
	require.NoError(t, err)

	entries, err := app.LeaderboardService.Matching(ctx, session.UserID, "book-1", model.DifficultyEasy, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 980, entries[0].Score)
	assert.Equal(t, "Alice", entries[0].DisplayName)
}
