package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tx is an opaque handle for a database transaction. It is created by a
// TxManager and threaded through every repository call that must share the
// same all-or-nothing scope. The postgres adapter is the only code that
// looks inside it.
type Tx interface{}

// TxManager runs a function inside a single database transaction. The
// transaction commits when fn returns nil and rolls back on error or panic,
// so balance mutations and the owning record write always succeed or fail
// together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// Update persists the mutable asset fields except the balance
	Update(ctx context.Context, asset *Asset) error

	// Delete removes an asset; records and transfers referencing it keep
	// working with a NULL asset reference (set-null semantics)
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves assets, optionally filtered by group
	List(ctx context.Context, groupID *uuid.UUID) ([]*Asset, error)

	// LockForUpdate reads an asset under an exclusive row lock held until
	// the enclosing transaction ends. Returns ErrNotFound if the row is
	// gone and ErrLockTimeout if the lock cannot be acquired in time.
	LockForUpdate(ctx context.Context, tx Tx, id uuid.UUID) (*Asset, error)

	// UpdateBalance writes a new balance for a row previously locked with
	// LockForUpdate in the same transaction
	UpdateBalance(ctx context.Context, tx Tx, id uuid.UUID, balance decimal.Decimal) error
}

// AssetGroupRepository defines the interface for asset group persistence
type AssetGroupRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AssetGroup, error)
	Create(ctx context.Context, group *AssetGroup) error
	Update(ctx context.Context, group *AssetGroup) error

	// Delete removes a group; its assets are detached, not deleted
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, bookID *uuid.UUID) ([]*AssetGroup, error)
}

// BookRepository defines the interface for book persistence operations
type BookRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error

	// Delete removes a book and cascades to its records and transfers
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Book, error)
}

// RecordRepository defines the interface for record persistence operations.
// Writes always run inside the transaction that mutates the asset balance.
type RecordRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// GetByIDForUpdate loads the persisted record state under a row lock so
	// concurrent updates to the same record serialize
	GetByIDForUpdate(ctx context.Context, tx Tx, id uuid.UUID) (*Record, error)

	Create(ctx context.Context, tx Tx, record *Record) error
	Update(ctx context.Context, tx Tx, record *Record) error
	Delete(ctx context.Context, tx Tx, id uuid.UUID) error

	// ListByBook retrieves records for a book within [from, to), ordered by date
	ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*Record, error)

	// ListBySchedule retrieves the records a schedule has materialized
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*Record, error)
}

// TransferRepository defines the interface for transfer persistence operations
type TransferRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	GetByIDForUpdate(ctx context.Context, tx Tx, id uuid.UUID) (*Transfer, error)
	Create(ctx context.Context, tx Tx, transfer *Transfer) error
	Update(ctx context.Context, tx Tx, transfer *Transfer) error
	Delete(ctx context.Context, tx Tx, id uuid.UUID) error
	ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*Transfer, error)
}

// ScheduleRepository defines the interface for scheduled record persistence
type ScheduleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduledRecord, error)

	// GetByIDForUpdate loads a schedule under a non-blocking row lock.
	// Returns ErrLockTimeout immediately when another sweep holds the row,
	// so one stuck schedule cannot stall a whole sweep.
	GetByIDForUpdate(ctx context.Context, tx Tx, id uuid.UUID) (*ScheduledRecord, error)

	Create(ctx context.Context, schedule *ScheduledRecord) error
	Update(ctx context.Context, tx Tx, schedule *ScheduledRecord) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves schedules, optionally filtered by status and frequency
	List(ctx context.Context, status ScheduleStatus, frequency Frequency) ([]*ScheduledRecord, error)

	// ListDueIDs returns the IDs of active schedules whose next occurrence
	// and start date are at or before now. No locks are taken; callers lock
	// each schedule individually before firing it.
	ListDueIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)

	// ListExpiredForUpdate locks and returns active schedules whose end date
	// has passed, skipping rows locked by concurrent sweeps
	ListExpiredForUpdate(ctx context.Context, tx Tx, now time.Time) ([]*ScheduledRecord, error)
}

// Notifier delivers best-effort side-channel notifications when a schedule
// fires. Failures are logged by the caller and never affect the firing.
type Notifier interface {
	ScheduleFired(ctx context.Context, schedule *ScheduledRecord, record *Record) error
}
