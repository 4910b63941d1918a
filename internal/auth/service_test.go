package auth

import (
	"context"
	"testing"

	"github.com/AzizElBechir/AzPay/internal/domain"
	"github.com/AzizElBechir/AzPay/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory UserStore keyed by email
type fakeUserStore struct {
	users     map[string]*domain.User
	nextID    uint
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func TestRegister(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, BcryptHasher{})

	user, err := svc.Register(context.Background(), "Jane@Example.com", "secret123", "Jane")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane", user.Name)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, BcryptHasher{})

	_, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane")
	require.NoError(t, err)
	originalHash := users.users["jane@example.com"].PasswordHash

	_, err = svc.Register(context.Background(), "jane@example.com", "other456", "Impostor")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The original account is untouched
	assert.Equal(t, originalHash, users.users["jane@example.com"].PasswordHash)
}

func TestRegisterDuplicateRace(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, BcryptHasher{})

	// A concurrent signup won the unique index between the pre-check
	// and the insert: the store reports ErrDuplicate on Create even
	// though GetByEmail saw no account
	users.createErr = store.ErrDuplicate

	_, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, BcryptHasher{})

	registered, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Email lookup is case-insensitive
	user, err = svc.Authenticate(context.Background(), "JANE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateUniformError(t *testing.T) {
	users := newFakeUserStore()
	svc := NewService(users, BcryptHasher{})

	_, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane")
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller
	_, unknownErr := svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
	_, wrongErr := svc.Authenticate(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}
