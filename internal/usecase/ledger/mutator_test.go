package ledger

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

func TestBalanceMutator_MergesDeltasPerAsset(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	mutator := NewBalanceMutator(assets)

	assetID := uuid.New()
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(100)}

	// Two deltas on the same asset take one lock and one write
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(130))).Return(nil).Once()

	err := mutator.Apply(ctx, nil,
		AssetDelta{AssetID: &assetID, Delta: decimal.NewFromInt(-20)},
		AssetDelta{AssetID: &assetID, Delta: decimal.NewFromInt(50)},
	)

	assert.NoError(t, err)
	assets.AssertExpectations(t)
}

func TestBalanceMutator_NilAssetIsNoOp(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	mutator := NewBalanceMutator(assets)

	err := mutator.Apply(ctx, nil, AssetDelta{AssetID: nil, Delta: decimal.NewFromInt(100)})

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "LockForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceMutator_CancelledDeltasSkipLock(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	mutator := NewBalanceMutator(assets)

	assetID := uuid.New()
	err := mutator.Apply(ctx, nil,
		AssetDelta{AssetID: &assetID, Delta: decimal.NewFromInt(100)},
		AssetDelta{AssetID: &assetID, Delta: decimal.NewFromInt(-100)},
	)

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "LockForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceMutator_LocksInAscendingIDOrder(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	mutator := NewBalanceMutator(assets)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	var locked []uuid.UUID
	for _, id := range ids {
		id := id
		asset := &domain.Asset{ID: id, Name: "Asset", Balance: decimal.Zero}
		assets.On("LockForUpdate", ctx, mock.Anything, id).Run(func(args mock.Arguments) {
			locked = append(locked, id)
		}).Return(asset, nil)
		assets.On("UpdateBalance", ctx, mock.Anything, id, mock.Anything).Return(nil)
	}

	// Deltas handed over in arbitrary order
	err := mutator.Apply(ctx, nil,
		AssetDelta{AssetID: &ids[2], Delta: decimal.NewFromInt(1)},
		AssetDelta{AssetID: &ids[0], Delta: decimal.NewFromInt(1)},
		AssetDelta{AssetID: &ids[1], Delta: decimal.NewFromInt(1)},
	)

	assert.NoError(t, err)
	assert.Len(t, locked, 3)
	for i := 1; i < len(locked); i++ {
		assert.True(t, bytes.Compare(locked[i-1][:], locked[i][:]) < 0,
			"locks must be acquired in ascending asset ID order")
	}
}
