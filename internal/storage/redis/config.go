package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings. Score records and vocabulary are durable and carry no
	// TTL; guest accounts and game sessions expire.
	GuestUserTTL time.Duration
	SessionTTL   time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		GuestUserTTL: 24 * time.Hour,
		SessionTTL:   24 * time.Hour,
	}
}
