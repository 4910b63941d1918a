// Package store gives the handlers and services their persistence
// capabilities. Interfaces are declared here so tests can substitute
// in-memory fakes; the concrete implementations run on GORM.
package store

import (
	"context"
	"errors"

	"github.com/AzizElBechir/AzPay/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert violates a unique
	// constraint, such as two signups racing on the same email.
	ErrDuplicate = errors.New("store: duplicate")
)

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TransactionStore persists transaction records and answers
// ownership-scoped queries.
type TransactionStore interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	// ListByUser returns the user's transactions, newest first.
	ListByUser(ctx context.Context, userID uint) ([]domain.Transaction, error)
}
