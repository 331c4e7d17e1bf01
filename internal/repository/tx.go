package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager is the begin/commit/rollback boundary. The callback's error
// decides the outcome: nil commits, anything else rolls the whole unit back.
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
