package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// txManager implements domain.TxManager on database/sql
type txManager struct {
	db *DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *DB) domain.TxManager {
	return &txManager{db: db}
}

// WithinTx begins a transaction, runs fn and commits on success. Rollback is
// deferred so every early return and panic releases the row locks fn took.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	dbTx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := fn(ctx, dbTx); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapSQLError(err))
	}

	return nil
}

// sqlTx unwraps the opaque domain.Tx handle passed back into repositories.
func sqlTx(tx domain.Tx) (*sql.Tx, error) {
	dbTx, ok := tx.(*sql.Tx)
	if !ok || dbTx == nil {
		return nil, fmt.Errorf("postgres: operation requires a transaction")
	}
	return dbTx, nil
}
