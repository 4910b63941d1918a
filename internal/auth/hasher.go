package auth

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// PasswordHasher abstracts one-way password hashing so the concrete
// algorithm stays swappable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt at the default cost
type BcryptHasher struct{}

// Hash produces a salted bcrypt hash of password
func (BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches the stored hash
func (BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
