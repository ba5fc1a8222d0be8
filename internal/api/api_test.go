package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lexibook/wordsearch-go/internal/api"
	"github.com/lexibook/wordsearch-go/internal/api/apierr"
	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
	"github.com/lexibook/wordsearch-go/internal/factory"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	router http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.router = api.NewRouter(api.RouterConfig{
		Logger:             testutil.NopLogger(),
		AuthService:        s.app.AuthService,
		GeneratorService:   s.app.GeneratorService,
		ScoringService:     s.app.ScoringService,
		LeaderboardService: s.app.LeaderboardService,
		SessionController:  s.app.SessionController,
		VocabularyService:  s.app.VocabularyService,
	})
}

// do performs a request against the router and returns the recorder
func (s *APISuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(v))
}

func (s *APISuite) decodeError(rec *httptest.ResponseRecorder) apierr.ErrorResponse {
	var errResp apierr.ErrorResponse
	s.decode(rec, &errResp)
	return errResp
}

// createGuest creates a guest user and returns its session token
func (s *APISuite) createGuest(name string) string {
	rec := s.do(http.MethodPost, "/api/v1/users/guest", "", request.CreateGuestRequest{DisplayName: name})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp response.AuthResponse
	s.decode(rec, &resp)
	return resp.SessionToken
}

func (s *APISuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/v1/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestGuestFlow() {
	rec := s.do(http.MethodPost, "/api/v1/users/guest", "", request.CreateGuestRequest{DisplayName: "Visitor"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var auth response.AuthResponse
	s.decode(rec, &auth)
	s.NotEmpty(auth.SessionToken)
	s.True(auth.User.IsGuest)

	rec = s.do(http.MethodGet, "/api/v1/users/me", auth.SessionToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var me response.User
	s.decode(rec, &me)
	s.Equal(auth.User.ID, me.ID)
	s.Equal("Visitor", me.DisplayName)
}

func (s *APISuite) TestRegisterAndLogin() {
	rec := s.do(http.MethodPost, "/api/v1/users/register", "", request.RegisterRequest{
		Username:    "alice",
		Password:    "hunter22",
		DisplayName: "Alice",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/users/login", "", request.LoginRequest{
		Username: "alice",
		Password: "hunter22",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/users/login", "", request.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestLogoutInvalidatesToken() {
	token := s.createGuest("Visitor")

	rec := s.do(http.MethodPost, "/api/v1/users/logout", token, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/users/me", token, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestVocabularyRoundTrip() {
	rec := s.do(http.MethodPut, "/api/v1/books/book-1/easy/words", "", request.SaveVocabularyRequest{
		Pairs: []request.VocabularyPair{
			{Word: "cat", Translation: "gato"},
			{Word: "dog", Translation: "perro"},
		},
	})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/books/book-1/easy/words", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var pairs []response.WordPair
	s.decode(rec, &pairs)
	s.Require().Len(pairs, 2)
	s.Equal("cat", pairs[0].Word)
}

func (s *APISuite) TestGeneratePuzzle() {
	s.Require().NoError(s.app.LoadTestVocabulary("book-1", model.DifficultyEasy))

	// Deterministic placement: right from (0,0)
	s.app.MockRandom.QueueIntn(0, 0, 0)

	rec := s.do(http.MethodPost, "/api/v1/puzzles", "", request.GeneratePuzzleRequest{
		BookID:     "book-1",
		Difficulty: "easy",
		WordCount:  1,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var puzzle response.Puzzle
	s.decode(rec, &puzzle)
	s.Equal(8, puzzle.Size)
	s.Equal([]string{"CAT"}, puzzle.Words)
	s.Require().Len(puzzle.Placements, 1)
	s.Equal("CAT", puzzle.Placements[0].Word)
	s.Equal("C", puzzle.Grid[0][0])
	s.Equal("A", puzzle.Grid[0][1])
	s.Equal("T", puzzle.Grid[0][2])
}

func (s *APISuite) TestGeneratePuzzleUnknownBook() {
	rec := s.do(http.MethodPost, "/api/v1/puzzles", "", request.GeneratePuzzleRequest{
		BookID:     "missing",
		Difficulty: "easy",
		WordCount:  3,
	})
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Equal(apierr.CodeBookNotFound, s.decodeError(rec).Error.Code)
}

func (s *APISuite) TestSubmitScoreRequiresAuth() {
	rec := s.do(http.MethodPost, "/api/v1/scores/matching", "", request.SubmitMatchingScoreRequest{
		BookID:     "book-1",
		Difficulty: "easy",
		Mistakes:   1,
		TimeSpent:  30,
	})
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(apierr.CodeAuthenticationRequired, s.decodeError(rec).Error.Code)
}

func (s *APISuite) TestLeaderboardRequiresAuth() {
	rec := s.do(http.MethodGet, "/api/v1/leaderboards/matching/book-1/easy", "", nil)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(apierr.CodeAuthenticationRequired, s.decodeError(rec).Error.Code)
}

func (s *APISuite) TestScoreAndLeaderboardFlow() {
	token := s.createGuest("Alice")

	s.app.MockRandom.QueueString("SCORE0000001")
	rec := s.do(http.MethodPost, "/api/v1/scores/matching", token, request.SubmitMatchingScoreRequest{
		BookID:     "book-1",
		Difficulty: "easy",
		Mistakes:   2,
		TimeSpent:  30,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var score response.GameScore
	s.decode(rec, &score)
	s.Equal(840, score.Score)

	rec = s.do(http.MethodGet, "/api/v1/leaderboards/matching/book-1/easy", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var board response.MatchingLeaderboard
	s.decode(rec, &board)
	s.Require().Len(board.Entries, 1)
	s.Equal(840, board.Entries[0].Score)
	s.Equal("Alice", board.Entries[0].DisplayName)
}

func (s *APISuite) TestWordSearchLeaderboardOrdering() {
	token := s.createGuest("Alice")

	times := []int{120, 45, 90}
	for i, t := range times {
		s.app.MockRandom.QueueString(fmt.Sprintf("WSSCORE%05d", i))
		rec := s.do(http.MethodPost, "/api/v1/scores/wordsearch", token, request.SubmitWordSearchScoreRequest{
			BookID:      "book-1",
			Difficulty:  "easy",
			TimeSeconds: t,
			WordsFound:  5,
			TotalWords:  5,
		})
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodGet, "/api/v1/leaderboards/wordsearch/book-1/easy", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var board response.WordSearchLeaderboard
	s.decode(rec, &board)
	s.Require().Len(board.Entries, 3)
	s.Equal(45, board.Entries[0].TimeSeconds)
	s.Equal(90, board.Entries[1].TimeSeconds)
	s.Equal(120, board.Entries[2].TimeSeconds)
}

func (s *APISuite) TestMatchingSessionFlow() {
	s.Require().NoError(s.app.LoadTestVocabulary("book-1", model.DifficultyEasy))
	token := s.createGuest("Alice")

	s.app.MockRandom.QueueString("SESSION00001")
	rec := s.do(http.MethodPost, "/api/v1/sessions", token, request.StartSessionRequest{
		BookID:     "book-1",
		Difficulty: "easy",
		PairCount:  2,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var sess response.MatchingSession
	s.decode(rec, &sess)
	s.Equal("in_progress", sess.State)
	s.Require().Len(sess.Pairs, 2)

	// Mismatched pair counts a mistake
	path := "/api/v1/sessions/" + sess.ID + "/select"
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Word: "cat"})
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Translation: "perro"})
	s.Require().Equal(http.StatusOK, rec.Code)

	var result response.SelectionResult
	s.decode(rec, &result)
	s.True(result.Resolved)
	s.False(result.Matched)
	s.Equal(1, result.Session.Mistakes)

	// Match the first pair
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Word: "cat"})
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Translation: "gato"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &result)
	s.True(result.Matched)

	// Match the final pair; session completes and yields a score
	s.app.MockRandom.QueueString("SCORE0000001")
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Word: "dog"})
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, path, token, request.SelectRequest{Translation: "perro"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &result)
	s.True(result.Matched)
	s.Equal("completed", result.Session.State)
	s.Require().NotNil(result.Score)
	s.Equal(950, result.Score.Score) // One mistake, no elapsed time

	// Reset returns the session to idle
	rec = s.do(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/reset", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &sess)
	s.Equal("idle", sess.State)
	s.Zero(sess.Mistakes)
}
