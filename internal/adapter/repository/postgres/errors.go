package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// Postgres error codes the repositories translate into domain errors.
const (
	pqLockNotAvailable     = "55P03" // FOR UPDATE NOWAIT lost the race
	pqDeadlockDetected     = "40P01"
	pqSerializationFailure = "40001"
)

// mapSQLError translates driver-level failures into the domain taxonomy:
// missing rows become ErrNotFound, lock and serialization failures become
// the retryable ErrLockTimeout. Everything else passes through for the
// caller to wrap.
func mapSQLError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqLockNotAvailable, pqDeadlockDetected, pqSerializationFailure:
			return fmt.Errorf("%v: %w", pqErr.Message, domain.ErrLockTimeout)
		}
	}

	// A statement cancelled by lock_timeout surfaces as a context error when
	// the caller bounded the wait.
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("lock wait cancelled: %w", domain.ErrLockTimeout)
	}

	return err
}
