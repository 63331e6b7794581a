package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer represents a paired entry moving a fixed amount from one asset to
// another within the same book. Amount is always the positive magnitude
// moved; the signs are applied per side when the balances are mutated.
// The asset references are nullable in storage (assets may be deleted after
// the fact) but both are required when a transfer is written.
type Transfer struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	FromAssetID *uuid.UUID
	ToAssetID   *uuid.UUID
	Amount      decimal.Decimal
	Note        string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate ensures the transfer adheres to domain rules
// Returns an error if validation fails
// CRITICAL: a transfer between an asset and itself is rejected, not corrected
func (t *Transfer) Validate() error {
	if t.FromAssetID == nil || t.ToAssetID == nil {
		return errors.New("transfer must reference a from asset and a to asset")
	}

	if *t.FromAssetID == *t.ToAssetID {
		return errors.New("transfer from asset and to asset must differ")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transfer amount must be positive")
	}

	if t.Date.IsZero() {
		return errors.New("transfer date must be set")
	}

	return nil
}
