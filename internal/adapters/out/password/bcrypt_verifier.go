// Package password implements the PasswordVerifier port with bcrypt.
// bcrypt's comparison is safe against timing attacks, which keeps the
// credential check constant-time with respect to the stored hash.
package password

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier compares plaintext passwords against bcrypt hashes.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a bcrypt-backed password verifier.
func NewBcryptVerifier() BcryptVerifier {
	return BcryptVerifier{}
}

// Compare returns nil when the password matches the hash. Any error,
// whether a mismatch or a malformed hash, means the credentials are
// invalid; callers must not distinguish the two.
func (BcryptVerifier) Compare(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Hash produces a bcrypt hash of the password at the default cost.
// Used for seeding accounts and in tests; the API itself never creates users.
func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
