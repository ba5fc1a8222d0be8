package factory

import (
	"context"
	"time"

	"github.com/lexibook/wordsearch-go/internal/dependencies/mocks"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/auth"
	"github.com/lexibook/wordsearch-go/internal/storage/memory"
	"github.com/lexibook/wordsearch-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestVocabulary seeds a small vocabulary book for testing
func (t *TestApp) LoadTestVocabulary(bookID model.BookID, difficulty model.Difficulty) error {
	pairs := []model.WordPair{
		{Word: "cat", Translation: "gato"},
		{Word: "dog", Translation: "perro"},
		{Word: "bird", Translation: "pajaro"},
		{Word: "house", Translation: "casa"},
		{Word: "water", Translation: "agua"},
		{Word: "bread", Translation: "pan"},
		{Word: "book", Translation: "libro"},
		{Word: "sun", Translation: "sol"},
		{Word: "moon", Translation: "luna"},
		{Word: "tree", Translation: "arbol"},
	}
	return t.VocabularyService.SavePairs(context.Background(), bookID, difficulty, pairs)
}
