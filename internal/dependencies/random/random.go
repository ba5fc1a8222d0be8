package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededRandom implements Random using a deterministic PRNG.
// Puzzle generation wired with a SeededRandom is fully reproducible.
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom from the given seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{
		rng: mathrand.New(mathrand.NewPCG(seed, seed)),
	}
}

// Intn returns a deterministic pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a pseudo-random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

func randomString(r Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
