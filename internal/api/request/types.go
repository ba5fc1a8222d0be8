package request

// CreateGuestRequest is the request body for creating a guest user
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a user account
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GeneratePuzzleRequest is the request body for generating a word-search puzzle
type GeneratePuzzleRequest struct {
	BookID     string   `json:"book_id"`
	Difficulty string   `json:"difficulty"`
	WordCount  int      `json:"word_count"`
	Words      []string `json:"words,omitempty"` // Optional explicit candidates
}

// SubmitMatchingScoreRequest is the request body for submitting a matching-game result
type SubmitMatchingScoreRequest struct {
	BookID     string `json:"book_id"`
	Difficulty string `json:"difficulty"`
	Mistakes   int    `json:"mistakes"`
	TimeSpent  int    `json:"time_spent"`
}

// SubmitWordSearchScoreRequest is the request body for submitting a word-search result
type SubmitWordSearchScoreRequest struct {
	BookID      string `json:"book_id"`
	Difficulty  string `json:"difficulty"`
	TimeSeconds int    `json:"time_seconds"`
	WordsFound  int    `json:"words_found"`
	TotalWords  int    `json:"total_words"`
}

// StartSessionRequest is the request body for starting a matching session
type StartSessionRequest struct {
	BookID     string `json:"book_id"`
	Difficulty string `json:"difficulty"`
	PairCount  int    `json:"pair_count"`
}

// SelectRequest is the request body for a selection attempt in a matching session.
// Exactly one of Word or Translation should be set.
type SelectRequest struct {
	Word        string `json:"word,omitempty"`
	Translation string `json:"translation,omitempty"`
}

// SaveVocabularyRequest is the request body for storing a book's word pairs
type SaveVocabularyRequest struct {
	Pairs []VocabularyPair `json:"pairs"`
}

// VocabularyPair is one word/translation pair in a vocabulary request
type VocabularyPair struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}
