package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a player account
type User struct {
	ID          UserID
	DisplayName string
	IsGuest     bool // true for unregistered users
	CreatedAt   time.Time
}

// RegisteredUser extends User with authentication data
// Stored separately so the hash never travels with session data
type RegisteredUser struct {
	UserID       UserID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
