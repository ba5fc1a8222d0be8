package response

import (
	"time"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/auth"
	"github.com/lexibook/wordsearch-go/internal/services/session"
)

// User represents a user in API responses
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:          string(u.ID),
		DisplayName: u.DisplayName,
		IsGuest:     u.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Placement describes where a word sits on the grid
type Placement struct {
	Word string `json:"word"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	DRow int    `json:"d_row"`
	DCol int    `json:"d_col"`
}

// Puzzle represents a generated word-search puzzle
type Puzzle struct {
	Grid       [][]string  `json:"grid"`
	Words      []string    `json:"words"`
	Placements []Placement `json:"placements"`
	Difficulty string      `json:"difficulty"`
	Size       int         `json:"size"`
	BookID     string      `json:"book_id"`
}

// PuzzleFromModel converts a model.Puzzle to a response Puzzle
func PuzzleFromModel(p *model.Puzzle) Puzzle {
	grid := make([][]string, p.Grid.Size)
	for row := 0; row < p.Grid.Size; row++ {
		grid[row] = make([]string, p.Grid.Size)
		for col := 0; col < p.Grid.Size; col++ {
			grid[row][col] = string(p.Grid.Cells[row][col])
		}
	}

	placements := make([]Placement, len(p.Placements))
	for i, pl := range p.Placements {
		placements[i] = Placement{
			Word: pl.Word,
			Row:  pl.Start.Row,
			Col:  pl.Start.Col,
			DRow: pl.Direction.DRow,
			DCol: pl.Direction.DCol,
		}
	}

	return Puzzle{
		Grid:       grid,
		Words:      p.Words,
		Placements: placements,
		Difficulty: string(p.Difficulty),
		Size:       p.Size,
		BookID:     string(p.BookID),
	}
}

// GameScore represents a stored matching-game score
type GameScore struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	BookID      string    `json:"book_id"`
	GameType    string    `json:"game_type"`
	Difficulty  string    `json:"difficulty"`
	Score       int       `json:"score"`
	TimeSpent   int       `json:"time_spent"`
	Mistakes    int       `json:"mistakes"`
	CompletedAt time.Time `json:"completed_at"`
}

// GameScoreFromModel converts model.GameScore
func GameScoreFromModel(s *model.GameScore) GameScore {
	return GameScore{
		ID:          string(s.ID),
		UserID:      string(s.UserID),
		BookID:      string(s.BookID),
		GameType:    s.GameType,
		Difficulty:  string(s.Difficulty),
		Score:       s.Score,
		TimeSpent:   s.TimeSpent,
		Mistakes:    s.Mistakes,
		CompletedAt: s.CompletedAt,
	}
}

// WordSearchScore represents a stored word-search score
type WordSearchScore struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	BookID      string    `json:"book_id"`
	Difficulty  string    `json:"difficulty"`
	TimeSeconds int       `json:"time_seconds"`
	WordsFound  int       `json:"words_found"`
	TotalWords  int       `json:"total_words"`
	CompletedAt time.Time `json:"completed_at"`
}

// WordSearchScoreFromModel converts model.WordSearchScore
func WordSearchScoreFromModel(s *model.WordSearchScore) WordSearchScore {
	return WordSearchScore{
		ID:          string(s.ID),
		UserID:      string(s.UserID),
		BookID:      string(s.BookID),
		Difficulty:  string(s.Difficulty),
		TimeSeconds: s.TimeSeconds,
		WordsFound:  s.WordsFound,
		TotalWords:  s.TotalWords,
		CompletedAt: s.CompletedAt,
	}
}

// LeaderboardEntry is a matching-game score with its resolved display name
type LeaderboardEntry struct {
	GameScore
	DisplayName string `json:"display_name"`
}

// LeaderboardEntryFromModel converts model.LeaderboardEntry
func LeaderboardEntryFromModel(e model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		GameScore:   GameScoreFromModel(&e.GameScore),
		DisplayName: e.DisplayName,
	}
}

// MatchingLeaderboard is the matching-game leaderboard response
type MatchingLeaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// WordSearchLeaderboard is the word-search leaderboard response
type WordSearchLeaderboard struct {
	Entries []WordSearchScore `json:"entries"`
}

// MatchingSession represents a matching-game session
type MatchingSession struct {
	ID                  string          `json:"id"`
	State               string          `json:"state"`
	BookID              string          `json:"book_id"`
	Difficulty          string          `json:"difficulty"`
	Pairs               []WordPair      `json:"pairs"`
	Resolved            map[string]bool `json:"resolved"`
	SelectedWord        string          `json:"selected_word,omitempty"`
	SelectedTranslation string          `json:"selected_translation,omitempty"`
	Mistakes            int             `json:"mistakes"`
	StartedAt           *time.Time      `json:"started_at,omitempty"`
}

// WordPair is a word/translation pair in session responses
type WordPair struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// MatchingSessionFromModel converts model.MatchingSession
func MatchingSessionFromModel(s *model.MatchingSession) MatchingSession {
	pairs := make([]WordPair, len(s.Pairs))
	for i, p := range s.Pairs {
		pairs[i] = WordPair{Word: p.Word, Translation: p.Translation}
	}

	var startedAt *time.Time
	if !s.StartedAt.IsZero() {
		t := s.StartedAt
		startedAt = &t
	}

	return MatchingSession{
		ID:                  string(s.ID),
		State:               string(s.State),
		BookID:              string(s.BookID),
		Difficulty:          string(s.Difficulty),
		Pairs:               pairs,
		Resolved:            s.Resolved,
		SelectedWord:        s.SelectedWord,
		SelectedTranslation: s.SelectedTranslation,
		Mistakes:            s.Mistakes,
		StartedAt:           startedAt,
	}
}

// SelectionResult is the response to a selection attempt
type SelectionResult struct {
	Session  MatchingSession `json:"session"`
	Resolved bool            `json:"resolved"`
	Matched  bool            `json:"matched"`
	Score    *GameScore      `json:"score,omitempty"`
}

// SelectionResultFromModel converts a session.SelectionResult
func SelectionResultFromModel(r *session.SelectionResult) SelectionResult {
	result := SelectionResult{
		Session:  MatchingSessionFromModel(r.Session),
		Resolved: r.Resolved,
		Matched:  r.Matched,
	}
	if r.Score != nil {
		score := GameScoreFromModel(r.Score)
		result.Score = &score
	}
	return result
}
