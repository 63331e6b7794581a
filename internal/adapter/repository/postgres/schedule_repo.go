package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// scheduleRepository implements domain.ScheduleRepository. Scheduled records
// live in their own table carrying the full record template plus the
// recurrence definition; materialized records land in the records table.
type scheduleRepository struct {
	db *DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *DB) domain.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, book_id, asset_id, type, category, subcategory,
	amount, note, date, is_marked_tax_return, created_at, updated_at,
	frequency, num_of_days, week_days, month_day, start_date,
	next_occurrence, end_date, status, last_run`

// GetByID retrieves a schedule by its ID
func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledRecord, error) {
	query := `SELECT ` + scheduleColumns + ` FROM scheduled_records WHERE id = $1`

	sched, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get schedule by ID: %w", err)
	}
	return sched, nil
}

// GetByIDForUpdate locks the schedule row without waiting. A row held by a
// concurrent sweep surfaces as ErrLockTimeout so the caller can skip it
// instead of stalling the whole sweep behind one schedule.
func (r *scheduleRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.ScheduledRecord, error) {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + scheduleColumns + ` FROM scheduled_records WHERE id = $1 FOR UPDATE NOWAIT`

	sched, err := scanSchedule(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if mapped := mapSQLError(err); mapped != err {
			return nil, fmt.Errorf("schedule %s: %w", id, mapped)
		}
		return nil, fmt.Errorf("failed to lock schedule: %w", err)
	}
	return sched, nil
}

// Create inserts a new schedule
func (r *scheduleRepository) Create(ctx context.Context, sched *domain.ScheduledRecord) error {
	query := `
		INSERT INTO scheduled_records (id, book_id, asset_id, type, category,
			subcategory, amount, note, date, is_marked_tax_return, created_at,
			updated_at, frequency, num_of_days, week_days, month_day, start_date,
			next_occurrence, end_date, status, last_run)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.db.ExecContext(ctx, query, scheduleArgs(sched)...)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// Update persists a schedule inside the caller's transaction
func (r *scheduleRepository) Update(ctx context.Context, tx domain.Tx, sched *domain.ScheduledRecord) error {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
		UPDATE scheduled_records
		SET book_id = $2, asset_id = $3, type = $4, category = $5,
			subcategory = $6, amount = $7, note = $8, date = $9,
			is_marked_tax_return = $10, created_at = $11, updated_at = $12,
			frequency = $13, num_of_days = $14, week_days = $15, month_day = $16,
			start_date = $17, next_occurrence = $18, end_date = $19,
			status = $20, last_run = $21
		WHERE id = $1
	`

	res, err := dbTx.ExecContext(ctx, query, scheduleArgs(sched)...)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return requireRowAffected(res, "schedule")
}

// Delete removes a schedule; its materialized records keep existing with a
// detached generated-by link
func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return requireRowAffected(res, "schedule")
}

// List retrieves schedules, optionally filtered by status and frequency
func (r *scheduleRepository) List(ctx context.Context, status domain.ScheduleStatus, frequency domain.Frequency) ([]*domain.ScheduledRecord, error) {
	query := `SELECT ` + scheduleColumns + ` FROM scheduled_records WHERE 1=1`
	args := []interface{}{}
	if status != "" {
		args = append(args, string(status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if frequency != "" {
		args = append(args, string(frequency))
		query += fmt.Sprintf(" AND frequency = $%d", len(args))
	}
	query += ` ORDER BY next_occurrence`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// ListDueIDs returns the IDs of schedules ready to fire. No locks here; the
// sweep locks each schedule individually so a long-running firing cannot
// block the scan.
func (r *scheduleRepository) ListDueIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM scheduled_records
		WHERE status = $1 AND next_occurrence <= $2 AND start_date <= $2
		ORDER BY next_occurrence
	`

	rows, err := r.db.QueryContext(ctx, query, string(domain.ScheduleStatusActive), now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due schedules: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan schedule id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListExpiredForUpdate locks and returns active schedules past their end
// date. SKIP LOCKED keeps concurrent cleanup sweeps from contending.
func (r *scheduleRepository) ListExpiredForUpdate(ctx context.Context, tx domain.Tx, now time.Time) ([]*domain.ScheduledRecord, error) {
	dbTx, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + scheduleColumns + `
		FROM scheduled_records
		WHERE status = $1 AND end_date IS NOT NULL AND end_date <= $2
		FOR UPDATE SKIP LOCKED`

	rows, err := dbTx.QueryContext(ctx, query, string(domain.ScheduleStatusActive), now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func collectSchedules(rows *sql.Rows) ([]*domain.ScheduledRecord, error) {
	var scheds []*domain.ScheduledRecord
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		scheds = append(scheds, sched)
	}
	return scheds, rows.Err()
}

func scheduleArgs(sched *domain.ScheduledRecord) []interface{} {
	weekDays := make(pq.Int64Array, len(sched.WeekDays))
	for i, d := range sched.WeekDays {
		weekDays[i] = int64(d)
	}

	var endDate, lastRun interface{}
	if sched.EndDate != nil {
		endDate = *sched.EndDate
	}
	if sched.LastRun != nil {
		lastRun = *sched.LastRun
	}

	return []interface{}{
		sched.Record.ID,
		sched.BookID,
		nullableUUID(sched.AssetID),
		string(sched.Type),
		sched.Category,
		sched.Subcategory,
		sched.Amount.String(),
		sched.Note,
		sched.Date,
		sched.IsMarkedTaxReturn,
		sched.CreatedAt,
		sched.UpdatedAt,
		string(sched.Frequency),
		sched.NumOfDays,
		weekDays,
		sched.MonthDay,
		sched.StartDate,
		sched.NextOccurrence,
		endDate,
		string(sched.Status),
		lastRun,
	}
}

func scanSchedule(row rowScanner) (*domain.ScheduledRecord, error) {
	var sched domain.ScheduledRecord
	var assetID sql.NullString
	var recordType, amountStr, frequency, status string
	var weekDays pq.Int64Array
	var endDate, lastRun sql.NullTime

	err := row.Scan(
		&sched.Record.ID,
		&sched.BookID,
		&assetID,
		&recordType,
		&sched.Category,
		&sched.Subcategory,
		&amountStr,
		&sched.Note,
		&sched.Date,
		&sched.IsMarkedTaxReturn,
		&sched.CreatedAt,
		&sched.UpdatedAt,
		&frequency,
		&sched.NumOfDays,
		&weekDays,
		&sched.MonthDay,
		&sched.StartDate,
		&sched.NextOccurrence,
		&endDate,
		&status,
		&lastRun,
	)
	if err != nil {
		return nil, err
	}

	sched.Type = domain.RecordType(recordType)
	sched.Frequency = domain.Frequency(frequency)
	sched.Status = domain.ScheduleStatus(status)

	if sched.AssetID, err = parseNullableUUID(assetID); err != nil {
		return nil, fmt.Errorf("failed to parse asset_id: %w", err)
	}
	if sched.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	sched.WeekDays = make([]int, len(weekDays))
	for i, d := range weekDays {
		sched.WeekDays[i] = int(d)
	}
	if len(sched.WeekDays) == 0 {
		sched.WeekDays = nil
	}

	if endDate.Valid {
		t := endDate.Time
		sched.EndDate = &t
	}
	if lastRun.Valid {
		t := lastRun.Time
		sched.LastRun = &t
	}

	return &sched, nil
}
