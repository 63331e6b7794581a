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

// recordRepository implements domain.RecordRepository
type recordRepository struct {
	db *DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *DB) domain.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `id, book_id, asset_id, type, category, subcategory,
	amount, note, date, is_marked_tax_return, generated_by, created_at, updated_at`

// GetByID retrieves a record by its ID
func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get record by ID: %w", err)
	}
	return record, nil
}

// GetByIDForUpdate loads the record under a row lock inside the caller's
// transaction, serializing concurrent updates to the same record.
func (r *recordRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Record, error) {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 FOR UPDATE`

	record, err := scanRecord(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if mapped := mapSQLError(err); mapped != err {
			return nil, fmt.Errorf("record %s: %w", id, mapped)
		}
		return nil, fmt.Errorf("failed to lock record: %w", err)
	}
	return record, nil
}

// Create inserts a record inside the caller's transaction
func (r *recordRepository) Create(ctx context.Context, tx domain.Tx, record *domain.Record) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (id, book_id, asset_id, type, category, subcategory,
			amount, note, date, is_marked_tax_return, generated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = dbTx.ExecContext(ctx, query,
		record.ID,
		record.BookID,
		nullableUUID(record.AssetID),
		string(record.Type),
		record.Category,
		record.Subcategory,
		record.Amount.String(),
		record.Note,
		record.Date,
		record.IsMarkedTaxReturn,
		nullableUUID(record.GeneratedBy),
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Update persists a record inside the caller's transaction
func (r *recordRepository) Update(ctx context.Context, tx domain.Tx, record *domain.Record) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE records
		SET asset_id = $2, type = $3, category = $4, subcategory = $5,
			amount = $6, note = $7, date = $8, is_marked_tax_return = $9,
			updated_at = $10
		WHERE id = $1
	`

	res, err := dbTx.ExecContext(ctx, query,
		record.ID,
		nullableUUID(record.AssetID),
		string(record.Type),
		record.Category,
		record.Subcategory,
		record.Amount.String(),
		record.Note,
		record.Date,
		record.IsMarkedTaxReturn,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return requireRowAffected(res, "record")
}

// Delete removes a record inside the caller's transaction
func (r *recordRepository) Delete(ctx context.Context, tx domain.Tx, id uuid.UUID) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return requireRowAffected(res, "record")
}

// ListByBook retrieves records for a book within [from, to), newest first
func (r *recordRepository) ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM records
		WHERE book_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`

	return r.list(ctx, query, bookID, from, to)
}

// ListBySchedule retrieves the records a schedule has materialized
func (r *recordRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*domain.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM records
		WHERE generated_by = $1
		ORDER BY date DESC`

	return r.list(ctx, query, scheduleID)
}

func (r *recordRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanRecord(row rowScanner) (*domain.Record, error) {
	var record domain.Record
	var assetID, generatedBy sql.NullString
	var recordType, amountStr string

	err := row.Scan(
		&record.ID,
		&record.BookID,
		&assetID,
		&recordType,
		&record.Category,
		&record.Subcategory,
		&amountStr,
		&record.Note,
		&record.Date,
		&record.IsMarkedTaxReturn,
		&generatedBy,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Type = domain.RecordType(recordType)
	if record.AssetID, err = parseNullableUUID(assetID); err != nil {
		return nil, fmt.Errorf("failed to parse asset_id: %w", err)
	}
	if record.GeneratedBy, err = parseNullableUUID(generatedBy); err != nil {
		return nil, fmt.Errorf("failed to parse generated_by: %w", err)
	}
	if record.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	return &record, nil
}
