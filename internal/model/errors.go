package model

import "errors"

// Common errors used across the application
var (
	// Auth errors
	ErrUserNotFound = errors.New("user not found")

	// ErrAuthenticationRequired is raised by score submission and
	// leaderboard-scoped operations when no authenticated user identity is
	// available. It must propagate to the caller, never be swallowed.
	ErrAuthenticationRequired = errors.New("authentication required")

	// Generation errors
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidWordCount  = errors.New("word count must be positive")

	// Vocabulary errors
	ErrBookNotFound = errors.New("vocabulary book not found")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")
	ErrInvalidScore  = errors.New("score fields must be non-negative")

	// Session errors
	ErrSessionNotFound      = errors.New("game session not found")
	ErrSessionNotInProgress = errors.New("game session is not in progress")
	ErrPairAlreadyResolved  = errors.New("pair has already been matched")
)
