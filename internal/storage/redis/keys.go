package redis

import (
	"fmt"

	"github.com/lexibook/wordsearch-go/internal/model"
)

// Key prefix for all word-game data
const keyPrefix = "wordgame"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// registeredUserKey returns the Redis key for a RegisteredUser
func registeredUserKey(userID model.UserID) string {
	return fmt.Sprintf("%s:registered_user:%s", keyPrefix, userID)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// gameScoreKey returns the Redis key for a matching-game score record
func gameScoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:matching:%s", keyPrefix, id)
}

// matchingBoardKey returns the key of the sorted set ranking matching-game
// scores for a book and difficulty (member = score ID, score = game score)
func matchingBoardKey(bookID model.BookID, difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:board:matching:%s:%s", keyPrefix, bookID, difficulty)
}

// wordSearchScoreKey returns the Redis key for a word-search score record
func wordSearchScoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:wordsearch:%s", keyPrefix, id)
}

// wordSearchBoardKey returns the key of the sorted set ranking word-search
// scores for a book and difficulty (member = score ID, score = seconds taken)
func wordSearchBoardKey(bookID model.BookID, difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:board:wordsearch:%s:%s", keyPrefix, bookID, difficulty)
}

// wordPairsKey returns the Redis key for a book's word pairs at a difficulty
func wordPairsKey(bookID model.BookID, difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:vocab:%s:%s", keyPrefix, bookID, difficulty)
}

// sessionKey returns the Redis key for a MatchingSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}
