package asset

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// Service manages assets and asset groups. Balance is only written here for
// the manual override path; every other balance change goes through the
// balance mutator.
type Service struct {
	TxMgr  domain.TxManager
	Assets domain.AssetRepository
	Groups domain.AssetGroupRepository
}

// NewService creates a new asset Service instance
func NewService(txMgr domain.TxManager, assets domain.AssetRepository, groups domain.AssetGroupRepository) *Service {
	return &Service{TxMgr: txMgr, Assets: assets, Groups: groups}
}

// CreateAsset validates and persists a new asset
func (s *Service) CreateAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if asset.GroupID != nil {
		if _, err := s.Groups.GetByID(ctx, *asset.GroupID); err != nil {
			return nil, err
		}
	}
	if err := s.Assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// UpdateAsset persists the asset's descriptive fields. The balance is
// deliberately excluded; use OverrideBalance for manual corrections.
func (s *Service) UpdateAsset(ctx context.Context, asset *domain.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if asset.GroupID != nil {
		if _, err := s.Groups.GetByID(ctx, *asset.GroupID); err != nil {
			return err
		}
	}
	return s.Assets.Update(ctx, asset)
}

// DeleteAsset removes an asset. Records and transfers referencing it are
// detached (set-null), not deleted, and their amounts no longer affect any
// balance.
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return s.Assets.Delete(ctx, id)
}

// GetAsset retrieves an asset by ID
func (s *Service) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return s.Assets.GetByID(ctx, id)
}

// ListAssets retrieves assets, optionally filtered by group
func (s *Service) ListAssets(ctx context.Context, groupID *uuid.UUID) ([]*domain.Asset, error) {
	return s.Assets.List(ctx, groupID)
}

// OverrideBalance sets an asset balance to an explicit value, resetting the
// baseline the running sum of record effects accumulates on. It takes the
// same row lock as the mutator so it serializes with concurrent writers.
func (s *Service) OverrideBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		if _, err := s.Assets.LockForUpdate(ctx, tx, id); err != nil {
			return err
		}
		return s.Assets.UpdateBalance(ctx, tx, id, balance)
	})
}

// CreateGroup validates and persists a new asset group
func (s *Service) CreateGroup(ctx context.Context, group *domain.AssetGroup) (*domain.AssetGroup, error) {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	if err := group.Validate(); err != nil {
		return nil, err
	}
	if err := s.Groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup persists changes to an asset group
func (s *Service) UpdateGroup(ctx context.Context, group *domain.AssetGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}
	return s.Groups.Update(ctx, group)
}

// DeleteGroup removes a group, detaching its assets
func (s *Service) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return s.Groups.Delete(ctx, id)
}

// ListGroups retrieves groups, optionally filtered by book
func (s *Service) ListGroups(ctx context.Context, bookID *uuid.UUID) ([]*domain.AssetGroup, error) {
	return s.Groups.List(ctx, bookID)
}
