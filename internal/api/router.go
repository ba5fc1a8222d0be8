package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexibook/wordsearch-go/internal/api/handler"
	"github.com/lexibook/wordsearch-go/internal/api/middleware"
	"github.com/lexibook/wordsearch-go/internal/services/auth"
	"github.com/lexibook/wordsearch-go/internal/services/generator"
	"github.com/lexibook/wordsearch-go/internal/services/leaderboard"
	"github.com/lexibook/wordsearch-go/internal/services/scoring"
	"github.com/lexibook/wordsearch-go/internal/services/session"
	"github.com/lexibook/wordsearch-go/internal/services/vocabulary"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	GeneratorService   generator.ServiceInterface
	ScoringService     scoring.ServiceInterface
	LeaderboardService leaderboard.ServiceInterface
	SessionController  session.ControllerInterface
	VocabularyService  vocabulary.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	puzzleHandler := handler.NewPuzzleHandler(cfg.GeneratorService)
	scoreHandler := handler.NewScoreHandler(cfg.ScoringService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	vocabularyHandler := handler.NewVocabularyHandler(cfg.VocabularyService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// User routes (no auth required for creating users/logging in)
	api.HandleFunc("/users/guest", userHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Protected user routes
	userProtected := api.PathPrefix("/users").Subrouter()
	userProtected.Use(authMiddleware)
	userProtected.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)
	userProtected.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodPost)

	// Puzzle generation (no auth: puzzles carry no user state)
	api.HandleFunc("/puzzles", puzzleHandler.Generate).Methods(http.MethodPost)

	// Vocabulary books (no auth: read/seed vocabulary)
	api.HandleFunc("/books/{book_id}/{difficulty}/words", vocabularyHandler.Save).Methods(http.MethodPut)
	api.HandleFunc("/books/{book_id}/{difficulty}/words", vocabularyHandler.Get).Methods(http.MethodGet)

	// Score submission (requires auth)
	scores := api.PathPrefix("/scores").Subrouter()
	scores.Use(authMiddleware)
	scores.HandleFunc("/matching", scoreHandler.SubmitMatching).Methods(http.MethodPost)
	scores.HandleFunc("/wordsearch", scoreHandler.SubmitWordSearch).Methods(http.MethodPost)

	// Leaderboards (requires auth)
	leaderboards := api.PathPrefix("/leaderboards").Subrouter()
	leaderboards.Use(authMiddleware)
	leaderboards.HandleFunc("/matching/{book_id}/{difficulty}", leaderboardHandler.Matching).Methods(http.MethodGet)
	leaderboards.HandleFunc("/wordsearch/{book_id}/{difficulty}", leaderboardHandler.WordSearch).Methods(http.MethodGet)

	// Matching sessions (requires auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/select", sessionHandler.Select).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/complete", sessionHandler.Complete).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
