package cmd

import "time"

// Config holds all process-wide configuration, loaded once at startup from
// the environment and treated as immutable afterwards. Every component
// receives the values it needs by injection; nothing reads the environment
// after boot.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret signs session tokens; JWTExpiresIn is their lifetime.
	JWTSecret    string
	JWTExpiresIn time.Duration

	LogLevel string

	// Rate limiting thresholds for the HTTP middleware.
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int

	// StalePendingMaxAge is how long an order may stay PENDING before the
	// watchdog job reports it.
	StalePendingMaxAge time.Duration
}
