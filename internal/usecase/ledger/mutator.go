package ledger

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// AssetDelta is one signed balance change to apply to an asset. A nil asset
// ID is a legal no-op: unassigned records do not affect any balance.
type AssetDelta struct {
	AssetID *uuid.UUID
	Delta   decimal.Decimal
}

// BalanceMutator applies signed balance deltas to asset rows under exclusive
// row locks. It must be invoked inside the same transaction as the owning
// record or transfer write; Asset.Balance is never mutated anywhere else.
type BalanceMutator struct {
	Assets domain.AssetRepository
}

// NewBalanceMutator creates a new BalanceMutator instance
func NewBalanceMutator(assets domain.AssetRepository) *BalanceMutator {
	return &BalanceMutator{Assets: assets}
}

// Apply locks each affected asset row and applies its accumulated delta via
// read-modify-write. Deltas targeting the same asset are merged so each row
// is locked exactly once, and locks are always acquired in ascending asset
// ID order to prevent deadlock between writers touching the same pair of
// assets in opposite directions.
//
// A delta whose asset row no longer exists is skipped: the record keeps a
// NULL asset reference under set-null semantics, so there is no balance to
// maintain. Lock wait timeouts propagate unchanged as retryable errors.
func (m *BalanceMutator) Apply(ctx context.Context, tx domain.Tx, deltas ...AssetDelta) error {
	merged := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0, len(deltas))

	for _, d := range deltas {
		if d.AssetID == nil || d.Delta.IsZero() {
			continue
		}
		if _, seen := merged[*d.AssetID]; !seen {
			order = append(order, *d.AssetID)
		}
		merged[*d.AssetID] = merged[*d.AssetID].Add(d.Delta)
	}

	sortAssetIDs(order)

	for _, id := range order {
		delta := merged[id]
		if delta.IsZero() {
			// Deltas cancelled out; no point taking the lock
			continue
		}

		asset, err := m.Assets.LockForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return err
		}

		if err := m.Assets.UpdateBalance(ctx, tx, id, asset.Balance.Add(delta)); err != nil {
			return err
		}
	}

	return nil
}

// sortAssetIDs orders UUIDs by their byte representation, the fixed global
// lock acquisition order.
func sortAssetIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
}
