package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the single gorm-backed data access layer. All engine reads and
// writes go through it; Transaction yields a Store bound to one database
// transaction so the booking read-validate-write sequence is atomic.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a tx-bound Store. fn returning an error
// rolls everything back. Nested calls open a SAVEPOINT, so an inner
// failure can be contained without poisoning the outer transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) DB() *gorm.DB { return s.db }
