package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
	"github.com/simaogato/moneybook-backend/internal/usecase/ledger"
)

// CreateTransferInput represents the input for creating a transfer
type CreateTransferInput struct {
	BookID      uuid.UUID
	FromAssetID uuid.UUID
	ToAssetID   uuid.UUID
	Amount      decimal.Decimal
	Note        string
	Date        time.Time
}

// UpdateTransferInput is a partial update: nil fields keep the persisted
// value. From and to assets may be reassigned together with the amount.
type UpdateTransferInput struct {
	FromAssetID *uuid.UUID
	ToAssetID   *uuid.UUID
	Amount      *decimal.Decimal
	Note        *string
	Date        *time.Time
}

// Service orchestrates the transfer lifecycle. A transfer always touches two
// assets with opposite signs; both mutations and the transfer write share
// one transaction.
type Service struct {
	TxMgr     domain.TxManager
	Books     domain.BookRepository
	Assets    domain.AssetRepository
	Transfers domain.TransferRepository
	Mutator   *ledger.BalanceMutator

	loc *time.Location
	now func() time.Time
}

// NewService creates a new transfer lifecycle Service instance
func NewService(
	txMgr domain.TxManager,
	books domain.BookRepository,
	assets domain.AssetRepository,
	transfers domain.TransferRepository,
	mutator *ledger.BalanceMutator,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		TxMgr:     txMgr,
		Books:     books,
		Assets:    assets,
		Transfers: transfers,
		Mutator:   mutator,
		loc:       loc,
		now:       time.Now,
	}
}

// CreateTransfer validates the input and persists the transfer, moving the
// amount out of the from asset and into the to asset.
func (s *Service) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	if _, err := s.Books.GetByID(ctx, input.BookID); err != nil {
		return nil, err
	}

	now := s.now()
	from := input.FromAssetID
	to := input.ToAssetID
	transfer := &domain.Transfer{
		ID:          uuid.New(),
		BookID:      input.BookID,
		FromAssetID: &from,
		ToAssetID:   &to,
		Amount:      input.Amount,
		Note:        input.Note,
		Date:        input.Date.In(s.loc),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.Assets.GetByID(ctx, from); err != nil {
		return nil, err
	}
	if _, err := s.Assets.GetByID(ctx, to); err != nil {
		return nil, err
	}

	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		err := s.Mutator.Apply(ctx, tx,
			ledger.AssetDelta{AssetID: transfer.FromAssetID, Delta: transfer.Amount.Neg()},
			ledger.AssetDelta{AssetID: transfer.ToAssetID, Delta: transfer.Amount},
		)
		if err != nil {
			return err
		}
		return s.Transfers.Create(ctx, tx, transfer)
	})
	if err != nil {
		return nil, err
	}

	return transfer, nil
}

// UpdateTransfer loads the prior state under lock and applies the patch.
// The prior effect is reversed and the new effect applied in one lock-
// ordered pass, which covers amount changes, from/to reassignment and both
// at once; an amount-only change degenerates to the usual delta on the
// existing pair.
func (s *Service) UpdateTransfer(ctx context.Context, id uuid.UUID, input UpdateTransferInput) (*domain.Transfer, error) {
	if input.FromAssetID != nil {
		if _, err := s.Assets.GetByID(ctx, *input.FromAssetID); err != nil {
			return nil, err
		}
	}
	if input.ToAssetID != nil {
		if _, err := s.Assets.GetByID(ctx, *input.ToAssetID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Transfer
	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		prior, err := s.Transfers.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		next := *prior
		if input.FromAssetID != nil {
			next.FromAssetID = input.FromAssetID
		}
		if input.ToAssetID != nil {
			next.ToAssetID = input.ToAssetID
		}
		if input.Amount != nil {
			next.Amount = *input.Amount
		}
		if input.Note != nil {
			next.Note = *input.Note
		}
		if input.Date != nil {
			next.Date = input.Date.In(s.loc)
		}

		if err := next.Validate(); err != nil {
			return err
		}
		next.UpdatedAt = s.now()

		err = s.Mutator.Apply(ctx, tx,
			// Reverse the prior effect
			ledger.AssetDelta{AssetID: prior.FromAssetID, Delta: prior.Amount},
			ledger.AssetDelta{AssetID: prior.ToAssetID, Delta: prior.Amount.Neg()},
			// Apply the new effect
			ledger.AssetDelta{AssetID: next.FromAssetID, Delta: next.Amount.Neg()},
			ledger.AssetDelta{AssetID: next.ToAssetID, Delta: next.Amount},
		)
		if err != nil {
			return err
		}

		if err := s.Transfers.Update(ctx, tx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTransfer reverses the transfer's effect on both assets and removes
// the row.
func (s *Service) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	return s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		prior, err := s.Transfers.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		err = s.Mutator.Apply(ctx, tx,
			ledger.AssetDelta{AssetID: prior.FromAssetID, Delta: prior.Amount},
			ledger.AssetDelta{AssetID: prior.ToAssetID, Delta: prior.Amount.Neg()},
		)
		if err != nil {
			return err
		}

		return s.Transfers.Delete(ctx, tx, id)
	})
}

// GetTransfer retrieves a transfer by ID
func (s *Service) GetTransfer(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	return s.Transfers.GetByID(ctx, id)
}

// ListTransfers retrieves the transfers of a book within [from, to)
func (s *Service) ListTransfers(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Transfer, error) {
	return s.Transfers.ListByBook(ctx, bookID, from.In(s.loc), to.In(s.loc))
}
