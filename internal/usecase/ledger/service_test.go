package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// stubTxManager runs the function directly; the repositories are mocked so
// there is no real transaction to manage.
type stubTxManager struct{}

func (stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	return fn(ctx, nil)
}

// MockBookRepository is a mock implementation of BookRepository for testing
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Book), args.Error(1)
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

// MockRecordRepository is a mock implementation of RecordRepository for testing
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Record, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) Create(ctx context.Context, tx domain.Tx, record *domain.Record) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) Update(ctx context.Context, tx domain.Tx, record *domain.Record) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) Delete(ctx context.Context, tx domain.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockRecordRepository) ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Record, error) {
	args := m.Called(ctx, bookID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*domain.Record, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Record), args.Error(1)
}

// decimalEq matches a decimal argument by value, not representation
func decimalEq(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return expected.Equal(d)
	})
}

func newTestService(books *MockBookRepository, assets *MockAssetRepository, records *MockRecordRepository) *Service {
	return NewService(stubTxManager{}, books, assets, records, NewBalanceMutator(assets), time.UTC)
}

func TestCreateRecord_IncomeAppliesPositiveDelta(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	bookID := uuid.New()
	assetID := uuid.New()
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(100)}

	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)
	assets.On("GetByID", ctx, assetID).Return(asset, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(2100))).Return(nil)
	records.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)

	created, err := service.CreateRecord(ctx, CreateRecordInput{
		BookID:   bookID,
		AssetID:  &assetID,
		Type:     domain.RecordTypeIncome,
		Category: "Salary",
		Amount:   decimal.NewFromInt(2000),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2000).Equal(created.Amount))
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestCreateRecord_ExpenseSignNormalized(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	bookID := uuid.New()
	assetID := uuid.New()
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(100)}

	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)
	assets.On("GetByID", ctx, assetID).Return(asset, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(70))).Return(nil)
	records.On("Create", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Record) bool {
		return decimal.NewFromInt(-30).Equal(r.Amount)
	})).Return(nil)

	created, err := service.CreateRecord(ctx, CreateRecordInput{
		BookID:   bookID,
		AssetID:  &assetID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(30), // positive input, stored negative
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-30).Equal(created.Amount))
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestCreateRecord_WithoutAssetSkipsBalance(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	bookID := uuid.New()
	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)
	records.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := service.CreateRecord(ctx, CreateRecordInput{
		BookID:   bookID,
		Type:     domain.RecordTypeExpense,
		Category: "Cash",
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "LockForUpdate", mock.Anything, mock.Anything, mock.Anything)
	assets.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	records.AssertExpectations(t)
}

func TestCreateRecord_ZeroAmountRejected(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	bookID := uuid.New()
	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)

	_, err := service.CreateRecord(ctx, CreateRecordInput{
		BookID:   bookID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.Zero,
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.ErrorContains(t, err, "amount cannot be zero")
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRecord_AmountChangeAppliesNetDelta(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	recordID := uuid.New()
	assetID := uuid.New()
	prior := &domain.Record{
		ID:       recordID,
		BookID:   uuid.New(),
		AssetID:  &assetID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(-100),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(500)}

	records.On("GetByIDForUpdate", ctx, mock.Anything, recordID).Return(prior, nil)
	// Reversal +100 and new effect -150 merge into one -50 delta
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(450))).Return(nil).Once()
	records.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

	newAmount := decimal.NewFromInt(150)
	updated, err := service.UpdateRecord(ctx, recordID, UpdateRecordInput{Amount: &newAmount})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-150).Equal(updated.Amount))
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestUpdateRecord_ReassignMovesEffectBetweenAssets(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	recordID := uuid.New()
	oldAssetID := uuid.New()
	newAssetID := uuid.New()
	prior := &domain.Record{
		ID:       recordID,
		BookID:   uuid.New(),
		AssetID:  &oldAssetID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(-100),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	oldAsset := &domain.Asset{ID: oldAssetID, Name: "Checking", Balance: decimal.NewFromInt(400)}
	newAsset := &domain.Asset{ID: newAssetID, Name: "Credit Card", Balance: decimal.NewFromInt(0)}

	assets.On("GetByID", ctx, newAssetID).Return(newAsset, nil)
	records.On("GetByIDForUpdate", ctx, mock.Anything, recordID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, oldAssetID).Return(oldAsset, nil).Once()
	assets.On("LockForUpdate", ctx, mock.Anything, newAssetID).Return(newAsset, nil).Once()
	// Old asset gets the reversal, new asset gets the effect
	assets.On("UpdateBalance", ctx, mock.Anything, oldAssetID, decimalEq(decimal.NewFromInt(500))).Return(nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, newAssetID, decimalEq(decimal.NewFromInt(-100))).Return(nil).Once()
	records.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

	updated, err := service.UpdateRecord(ctx, recordID, UpdateRecordInput{AssetID: &newAssetID})

	assert.NoError(t, err)
	assert.Equal(t, newAssetID, *updated.AssetID)
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestUpdateRecord_ClearAssetReversesOldEffect(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	recordID := uuid.New()
	assetID := uuid.New()
	prior := &domain.Record{
		ID:       recordID,
		BookID:   uuid.New(),
		AssetID:  &assetID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(-100),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(400)}

	records.On("GetByIDForUpdate", ctx, mock.Anything, recordID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(500))).Return(nil).Once()
	records.On("Update", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Record) bool {
		return r.AssetID == nil
	})).Return(nil)

	updated, err := service.UpdateRecord(ctx, recordID, UpdateRecordInput{ClearAsset: true})

	assert.NoError(t, err)
	assert.Nil(t, updated.AssetID)
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestUpdateRecord_ReassignAndClearRejected(t *testing.T) {
	ctx := context.Background()
	service := newTestService(new(MockBookRepository), new(MockAssetRepository), new(MockRecordRepository))

	assetID := uuid.New()
	_, err := service.UpdateRecord(ctx, uuid.New(), UpdateRecordInput{AssetID: &assetID, ClearAsset: true})

	assert.ErrorContains(t, err, "cannot both reassign and clear")
}

func TestDeleteRecord_ReversesEffect(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	recordID := uuid.New()
	assetID := uuid.New()
	prior := &domain.Record{
		ID:       recordID,
		BookID:   uuid.New(),
		AssetID:  &assetID,
		Type:     domain.RecordTypeIncome,
		Category: "Salary",
		Amount:   decimal.NewFromInt(2000),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	asset := &domain.Asset{ID: assetID, Name: "Checking", Balance: decimal.NewFromInt(2500)}

	records.On("GetByIDForUpdate", ctx, mock.Anything, recordID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(asset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, assetID, decimalEq(decimal.NewFromInt(500))).Return(nil)
	records.On("Delete", ctx, mock.Anything, recordID).Return(nil)

	err := service.DeleteRecord(ctx, recordID)

	assert.NoError(t, err)
	assets.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestDeleteRecord_AssetRowGoneIsSkipped(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	records := new(MockRecordRepository)
	service := newTestService(books, assets, records)

	recordID := uuid.New()
	assetID := uuid.New()
	prior := &domain.Record{
		ID:       recordID,
		BookID:   uuid.New(),
		AssetID:  &assetID,
		Type:     domain.RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(-30),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	records.On("GetByIDForUpdate", ctx, mock.Anything, recordID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, assetID).Return(nil, domain.ErrNotFound)
	records.On("Delete", ctx, mock.Anything, recordID).Return(nil)

	err := service.DeleteRecord(ctx, recordID)

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	records.AssertExpectations(t)
}
