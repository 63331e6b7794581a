package asset

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

type stubTxManager struct{}

func (stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	return fn(ctx, nil)
}

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context, groupID *uuid.UUID) ([]*domain.Asset, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) LockForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateBalance(ctx context.Context, tx domain.Tx, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, tx, id, balance)
	return args.Error(0)
}

// MockAssetGroupRepository is a mock implementation of AssetGroupRepository for testing
type MockAssetGroupRepository struct {
	mock.Mock
}

func (m *MockAssetGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetGroup), args.Error(1)
}

func (m *MockAssetGroupRepository) Create(ctx context.Context, group *domain.AssetGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockAssetGroupRepository) Update(ctx context.Context, group *domain.AssetGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockAssetGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetGroupRepository) List(ctx context.Context, bookID *uuid.UUID) ([]*domain.AssetGroup, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssetGroup), args.Error(1)
}

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Asset", func(t *testing.T) {
		assets := new(MockAssetRepository)
		groups := new(MockAssetGroupRepository)
		service := NewService(stubTxManager{}, assets, groups)

		assets.On("Create", ctx, mock.MatchedBy(func(a *domain.Asset) bool {
			return a.ID != uuid.Nil
		})).Return(nil)

		created, err := service.CreateAsset(ctx, &domain.Asset{Name: "Checking"})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assets.AssertExpectations(t)
	})

	t.Run("Unknown Group Rejected", func(t *testing.T) {
		assets := new(MockAssetRepository)
		groups := new(MockAssetGroupRepository)
		service := NewService(stubTxManager{}, assets, groups)

		groupID := uuid.New()
		groups.On("GetByID", ctx, groupID).Return(nil, domain.ErrNotFound)

		_, err := service.CreateAsset(ctx, &domain.Asset{Name: "Checking", GroupID: &groupID})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty Name Rejected", func(t *testing.T) {
		assets := new(MockAssetRepository)
		groups := new(MockAssetGroupRepository)
		service := NewService(stubTxManager{}, assets, groups)

		_, err := service.CreateAsset(ctx, &domain.Asset{})

		assert.ErrorContains(t, err, "name cannot be empty")
		assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOverrideBalance_LocksBeforeWriting(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	groups := new(MockAssetGroupRepository)
	service := NewService(stubTxManager{}, assets, groups)

	assetID := uuid.New()
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(123)}

	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return decimal.NewFromInt(1000).Equal(d)
	})).Return(nil)

	err := service.OverrideBalance(ctx, assetID, decimal.NewFromInt(1000))

	assert.NoError(t, err)
	assets.AssertExpectations(t)
}

func TestOverrideBalance_MissingAsset(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	groups := new(MockAssetGroupRepository)
	service := NewService(stubTxManager{}, assets, groups)

	assetID := uuid.New()
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(nil, domain.ErrNotFound)

	err := service.OverrideBalance(ctx, assetID, decimal.NewFromInt(1000))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assets.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
