package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// CreateRecordInput represents the input for creating a record
type CreateRecordInput struct {
	BookID            uuid.UUID
	AssetID           *uuid.UUID // nil for records not tied to an asset
	Type              domain.RecordType
	Category          string
	Subcategory       string
	Amount            decimal.Decimal
	Note              string
	Date              time.Time
	IsMarkedTaxReturn bool
}

// UpdateRecordInput is a partial update: nil fields keep the persisted
// value. AssetID reassigns the record to another asset; ClearAsset detaches
// it instead.
type UpdateRecordInput struct {
	Type              *domain.RecordType
	Category          *string
	Subcategory       *string
	Amount            *decimal.Decimal
	Note              *string
	Date              *time.Time
	IsMarkedTaxReturn *bool
	AssetID           *uuid.UUID
	ClearAsset        bool
}

// Service orchestrates the record lifecycle. Every create, update and delete
// runs inside one database transaction together with the balance mutation it
// implies, so a failure after the balance read rolls both back.
type Service struct {
	TxMgr   domain.TxManager
	Books   domain.BookRepository
	Assets  domain.AssetRepository
	Records domain.RecordRepository
	Mutator *BalanceMutator

	loc *time.Location
	now func() time.Time
}

// NewService creates a new record lifecycle Service instance. loc is the
// timezone all persisted dates are normalized to.
func NewService(
	txMgr domain.TxManager,
	books domain.BookRepository,
	assets domain.AssetRepository,
	records domain.RecordRepository,
	mutator *BalanceMutator,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		TxMgr:   txMgr,
		Books:   books,
		Assets:  assets,
		Records: records,
		Mutator: mutator,
		loc:     loc,
		now:     time.Now,
	}
}

// CreateRecord validates the input, normalizes the amount sign and date, and
// persists the record while applying its effect to the asset balance.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	if _, err := s.Books.GetByID(ctx, input.BookID); err != nil {
		return nil, err
	}
	if input.AssetID != nil {
		if _, err := s.Assets.GetByID(ctx, *input.AssetID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	record := &domain.Record{
		ID:                uuid.New(),
		BookID:            input.BookID,
		AssetID:           input.AssetID,
		Type:              input.Type,
		Category:          input.Category,
		Subcategory:       input.Subcategory,
		Amount:            input.Amount,
		Note:              input.Note,
		Date:              s.normalizeDate(input.Date),
		IsMarkedTaxReturn: input.IsMarkedTaxReturn,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		return s.CreateInTx(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateInTx normalizes, validates and persists a record inside an existing
// transaction, applying its balance effect. The schedule sweep uses this to
// materialize records in the same transaction that advances the schedule.
func (s *Service) CreateInTx(ctx context.Context, tx domain.Tx, record *domain.Record) error {
	record.NormalizeAmount()
	if err := record.Validate(); err != nil {
		return err
	}

	if err := s.Mutator.Apply(ctx, tx, AssetDelta{AssetID: record.AssetID, Delta: record.Amount}); err != nil {
		return err
	}

	return s.Records.Create(ctx, tx, record)
}

// UpdateRecord loads the prior persisted state under lock and applies the
// patch, adjusting asset balances for the difference:
//   - asset newly set: the new amount lands on the new asset
//   - asset changed: the old amount leaves the old asset, the new amount
//     lands on the new one
//   - asset unchanged: only the amount difference is applied
//   - asset cleared: the old amount leaves the old asset
//
// All four reduce to reversing the old effect and applying the new one; the
// mutator merges deltas per asset and locks in a stable order.
func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, input UpdateRecordInput) (*domain.Record, error) {
	if input.AssetID != nil && input.ClearAsset {
		return nil, fmt.Errorf("cannot both reassign and clear the asset")
	}
	if input.AssetID != nil {
		if _, err := s.Assets.GetByID(ctx, *input.AssetID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Record
	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		prior, err := s.Records.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		next := *prior
		if input.Type != nil {
			next.Type = *input.Type
		}
		if input.Category != nil {
			next.Category = *input.Category
		}
		if input.Subcategory != nil {
			next.Subcategory = *input.Subcategory
		}
		if input.Amount != nil {
			next.Amount = *input.Amount
		}
		if input.Note != nil {
			next.Note = *input.Note
		}
		if input.Date != nil {
			next.Date = s.normalizeDate(*input.Date)
		}
		if input.IsMarkedTaxReturn != nil {
			next.IsMarkedTaxReturn = *input.IsMarkedTaxReturn
		}
		if input.AssetID != nil {
			next.AssetID = input.AssetID
		}
		if input.ClearAsset {
			next.AssetID = nil
		}

		next.NormalizeAmount()
		if err := next.Validate(); err != nil {
			return err
		}
		next.UpdatedAt = s.now()

		err = s.Mutator.Apply(ctx, tx,
			AssetDelta{AssetID: prior.AssetID, Delta: prior.Amount.Neg()},
			AssetDelta{AssetID: next.AssetID, Delta: next.Amount},
		)
		if err != nil {
			return err
		}

		if err := s.Records.Update(ctx, tx, &next); err != nil {
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

// DeleteRecord reverses the record's lifetime contribution to its asset and
// removes the row.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		prior, err := s.Records.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		err = s.Mutator.Apply(ctx, tx, AssetDelta{AssetID: prior.AssetID, Delta: prior.Amount.Neg()})
		if err != nil {
			return err
		}

		return s.Records.Delete(ctx, tx, id)
	})
}

// GetRecord retrieves a record by ID
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return s.Records.GetByID(ctx, id)
}

// ListRecords retrieves the records of a book within [from, to)
func (s *Service) ListRecords(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Record, error) {
	return s.Records.ListByBook(ctx, bookID, s.normalizeDate(from), s.normalizeDate(to))
}

// ListGenerated retrieves the records a schedule has materialized
func (s *Service) ListGenerated(ctx context.Context, scheduleID uuid.UUID) ([]*domain.Record, error) {
	return s.Records.ListBySchedule(ctx, scheduleID)
}

// normalizeDate promotes a timestamp to the configured timezone. Date-range
// and monthly aggregation queries assume all persisted dates share one zone.
func (s *Service) normalizeDate(t time.Time) time.Time {
	return t.In(s.loc)
}
