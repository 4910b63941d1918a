package store

import (
	"context"
	"errors"

	"github.com/AzizElBechir/AzPay/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GormUserStore implements UserStore on a GORM connection
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore wraps a GORM connection as a UserStore
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// Create inserts a new user row, ErrDuplicate when the email is taken
func (s *GormUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by email, ErrNotFound on miss
func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
