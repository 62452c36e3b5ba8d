package auth

import "golang.org/x/crypto/bcrypt"

// LoginHashCost is the bcrypt cost applied to shop credentials when the
// caller does not pick one. Register and login both hash on the request
// path, so the cost bounds their latency.
const LoginHashCost = bcrypt.DefaultCost

// PasswordHasher hashes and verifies user credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher is the bcrypt-backed PasswordHasher used for customer and
// admin accounts.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost, falling back to
// LoginHashCost for non-positive values.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = LoginHashCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives the stored form of a password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare reports whether password matches the stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
