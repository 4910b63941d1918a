// Package auth implements account registration and credential
// verification over a UserStore.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AzizElBechir/AzPay/internal/domain"
	"github.com/AzizElBechir/AzPay/internal/store"
)

var (
	// ErrEmailTaken is returned by Register when the email already has an account.
	ErrEmailTaken = errors.New("auth: email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures leak nothing about which one it was.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// Service handles registration and authentication
type Service struct {
	users  store.UserStore
	hasher PasswordHasher
}

// NewService constructs a Service over a user store and a hasher
func NewService(users store.UserStore, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// Register creates a new account. Fails with ErrEmailTaken if the email
// is already registered.
func (s *Service) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	// Reject duplicates before hashing
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-check and lose the
		// race on the unique index; report it as the same taken-email error
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email+password and returns the user on success.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
