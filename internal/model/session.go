package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// SessionState represents the current phase of a game session
type SessionState string

const (
	SessionStateIdle       SessionState = "idle"
	SessionStateInProgress SessionState = "in_progress"
	SessionStateCompleted  SessionState = "completed"
)

// MatchingSession tracks one matching-game session for a user.
// While in progress it carries the transient per-attempt selection state:
// a selected word and/or selected translation.
type MatchingSession struct {
	ID         SessionID
	UserID     UserID
	BookID     BookID
	Difficulty Difficulty
	State      SessionState

	// Pairs to match, snapshot at session start
	Pairs []WordPair

	// Resolved marks words whose pair has been matched
	Resolved map[string]bool

	// Transient selection state, cleared after each resolved attempt
	SelectedWord        string
	SelectedTranslation string

	Mistakes    int
	StartedAt   time.Time
	CompletedAt time.Time
}

// AllResolved returns true if every pair has been matched
func (s *MatchingSession) AllResolved() bool {
	for _, p := range s.Pairs {
		if !s.Resolved[p.Word] {
			return false
		}
	}
	return true
}

// HasFullSelection returns true if both a word and a translation are selected
func (s *MatchingSession) HasFullSelection() bool {
	return s.SelectedWord != "" && s.SelectedTranslation != ""
}

// ClearSelection resets the transient selection state
func (s *MatchingSession) ClearSelection() {
	s.SelectedWord = ""
	s.SelectedTranslation = ""
}

// TimeSpent returns the elapsed whole seconds between start and the given time
func (s *MatchingSession) TimeSpent(now time.Time) int {
	if s.StartedAt.IsZero() {
		return 0
	}
	return int(now.Sub(s.StartedAt) / time.Second)
}
