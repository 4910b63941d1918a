package store

import (
	"context"
	"errors"

	"github.com/AzizElBechir/AzPay/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GormTransactionStore implements TransactionStore on a GORM connection
type GormTransactionStore struct {
	db *gorm.DB
}

// NewGormTransactionStore wraps a GORM connection as a TransactionStore
func NewGormTransactionStore(db *gorm.DB) *GormTransactionStore {
	return &GormTransactionStore{db: db}
}

// Create inserts a new transaction row
func (s *GormTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

// GetByID fetches a transaction by its id, ErrNotFound on miss
func (s *GormTransactionStore) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// ListByUser returns all transactions owned by userID, newest first
func (s *GormTransactionStore) ListByUser(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
