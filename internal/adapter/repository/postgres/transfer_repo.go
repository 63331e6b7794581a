package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// transferRepository implements domain.TransferRepository
type transferRepository struct {
	db *DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *DB) domain.TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, book_id, from_asset_id, to_asset_id, amount,
	note, date, created_at, updated_at`

// GetByID retrieves a transfer by its ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`

	transfer, err := scanTransfer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transfer by ID: %w", err)
	}
	return transfer, nil
}

// GetByIDForUpdate loads the transfer under a row lock inside the caller's
// transaction
func (r *transferRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Transfer, error) {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1 FOR UPDATE`

	transfer, err := scanTransfer(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if mapped := mapSQLError(err); mapped != err {
			return nil, fmt.Errorf("transfer %s: %w", id, mapped)
		}
		return nil, fmt.Errorf("failed to lock transfer: %w", err)
	}
	return transfer, nil
}

// Create inserts a transfer inside the caller's transaction
func (r *transferRepository) Create(ctx context.Context, tx domain.Tx, transfer *domain.Transfer) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transfers (id, book_id, from_asset_id, to_asset_id, amount,
			note, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = dbTx.ExecContext(ctx, query,
		transfer.ID,
		transfer.BookID,
		nullableUUID(transfer.FromAssetID),
		nullableUUID(transfer.ToAssetID),
		transfer.Amount.String(),
		transfer.Note,
		transfer.Date,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}
	return nil
}

// Update persists a transfer inside the caller's transaction
func (r *transferRepository) Update(ctx context.Context, tx domain.Tx, transfer *domain.Transfer) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE transfers
		SET from_asset_id = $2, to_asset_id = $3, amount = $4, note = $5,
			date = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := dbTx.ExecContext(ctx, query,
		transfer.ID,
		nullableUUID(transfer.FromAssetID),
		nullableUUID(transfer.ToAssetID),
		transfer.Amount.String(),
		transfer.Note,
		transfer.Date,
		transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	return requireRowAffected(res, "transfer")
}

// Delete removes a transfer inside the caller's transaction
func (r *transferRepository) Delete(ctx context.Context, tx domain.Tx, id uuid.UUID) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return requireRowAffected(res, "transfer")
}

// ListByBook retrieves transfers for a book within [from, to), newest first
func (r *transferRepository) ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + `
		FROM transfers
		WHERE book_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, bookID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	return transfers, rows.Err()
}

func scanTransfer(row rowScanner) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var fromAssetID, toAssetID sql.NullString
	var amountStr string

	err := row.Scan(
		&transfer.ID,
		&transfer.BookID,
		&fromAssetID,
		&toAssetID,
		&amountStr,
		&transfer.Note,
		&transfer.Date,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if transfer.FromAssetID, err = parseNullableUUID(fromAssetID); err != nil {
		return nil, fmt.Errorf("failed to parse from_asset_id: %w", err)
	}
	if transfer.ToAssetID, err = parseNullableUUID(toAssetID); err != nil {
		return nil, fmt.Errorf("failed to parse to_asset_id: %w", err)
	}
	if transfer.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	return &transfer, nil
}
