package domain

import "errors"

// Sentinel errors shared across services and adapters. Services wrap these
// with context via fmt.Errorf and %w; the gRPC adapter maps them to status
// codes with errors.Is.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates an operation was rejected by the current entity
	// state (e.g. pausing an already paused schedule).
	ErrConflict = errors.New("conflict")

	// ErrLockTimeout indicates a row lock could not be acquired in time.
	// The operation did not run and may be retried by the caller.
	ErrLockTimeout = errors.New("lock wait timeout")
)
