package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lexibook/wordsearch-go/internal/dependencies/clock"
	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session represents an authenticated session
type Session struct {
	Token     string
	UserID    model.UserID
	User      model.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles authentication and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new AuthService
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CreateGuest creates an anonymous user and session
func (s *Service) CreateGuest(ctx context.Context, displayName string) (*Session, error) {
	userID := model.UserID(s.generateID("u_"))
	now := s.clock.Now()

	user := &model.User{
		ID:          userID,
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return s.createSession(user)
}

// Register creates a registered user account and session
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*Session, error) {
	// Check if username exists
	_, err := s.storage.GetRegisteredUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := model.UserID(s.generateID("u_"))
	now := s.clock.Now()

	user := &model.User{
		ID:          userID,
		DisplayName: displayName,
		IsGuest:     false,
		CreatedAt:   now,
	}

	registeredUser := &model.RegisteredUser{
		UserID:       userID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.storage.SaveRegisteredUser(ctx, registeredUser); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", string(userID)))

	return s.createSession(user)
}

// Login authenticates a registered user and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	ru, err := s.storage.GetRegisteredUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ru.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUser(ctx, ru.UserID)
	if err != nil {
		return nil, err
	}

	return s.createSession(user)
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// createSession creates and stores a new session for a user
func (s *Service) createSession(user *model.User) (*Session, error) {
	token, err := s.generateToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &Session{
		Token:     token,
		UserID:    user.ID,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session, nil
}

// generateToken creates a cryptographically random session token
func (s *Service) generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// generateID creates a random identifier with the given prefix
func (s *Service) generateID(prefix string) string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return prefix + "fallback"
	}
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
