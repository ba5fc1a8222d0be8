package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexibook/wordsearch-go/internal/model"
	"github.com/lexibook/wordsearch-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeUsernameExists         = "USERNAME_EXISTS"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeBookNotFound           = "BOOK_NOT_FOUND"
	CodeInvalidDifficulty      = "INVALID_DIFFICULTY"
	CodeInvalidWordCount       = "INVALID_WORD_COUNT"
	CodeInvalidScore           = "INVALID_SCORE"
	CodeSessionNotFound        = "SESSION_NOT_FOUND"
	CodeSessionNotInProgress   = "SESSION_NOT_IN_PROGRESS"
	CodePairAlreadyResolved    = "PAIR_ALREADY_RESOLVED"
	CodeInternalError          = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAuthenticationRequired):
		return &httpError{http.StatusUnauthorized, APIError{CodeAuthenticationRequired, "Authentication required"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrBookNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBookNotFound, "Vocabulary book not found"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium or hard"}}
	case errors.Is(err, model.ErrInvalidWordCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWordCount, "Word count must be positive"}}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScore, "Score fields must be non-negative"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game session not found"}}
	case errors.Is(err, model.ErrSessionNotInProgress):
		return &httpError{http.StatusConflict, APIError{CodeSessionNotInProgress, "Game session is not in progress"}}
	case errors.Is(err, model.ErrPairAlreadyResolved):
		return &httpError{http.StatusConflict, APIError{CodePairAlreadyResolved, "Pair has already been matched"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeAuthenticationRequired, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an authentication-required error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeAuthenticationRequired, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
