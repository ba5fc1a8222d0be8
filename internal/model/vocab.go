package model

// WordPair is a word together with its translation, as supplied by a
// vocabulary book
type WordPair struct {
	Word        string
	Translation string
}
