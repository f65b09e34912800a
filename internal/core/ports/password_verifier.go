package ports

// PasswordVerifier compares plaintext passwords against stored hashes.
// Implementations must use a comparison that is safe against timing attacks.
type PasswordVerifier interface {
	// Compare returns nil when the plaintext password matches the hash and
	// an error otherwise. Callers map any mismatch to the same
	// invalid-credentials failure as an unknown account.
	Compare(hashedPassword string, password string) error
}
