package model

import "time"

// ScoreID uniquely identifies a stored score record
type ScoreID string

// GameTypeMatching is the game type recorded on matching-game scores
const GameTypeMatching = "matching"

// GameScore is a completed matching-game session result.
// Records are immutable once stored.
type GameScore struct {
	ID          ScoreID
	UserID      UserID
	BookID      BookID
	GameType    string
	Difficulty  Difficulty
	Score       int
	TimeSpent   int // seconds
	Mistakes    int
	CompletedAt time.Time
}

// WordSearchScore is a completed word-search session result
type WordSearchScore struct {
	ID          ScoreID
	UserID      UserID
	BookID      BookID
	Difficulty  Difficulty
	TimeSeconds int
	WordsFound  int
	TotalWords  int
	CompletedAt time.Time
}

// LeaderboardEntry is a GameScore enriched with a resolved display name
type LeaderboardEntry struct {
	GameScore
	DisplayName string
}
