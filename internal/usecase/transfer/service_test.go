package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/moneybook-backend/internal/domain"
	"github.com/simaogato/moneybook-backend/internal/usecase/ledger"
)

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

// MockTransferRepository is a mock implementation of TransferRepository for testing
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.Transfer, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) Create(ctx context.Context, tx domain.Tx, transfer *domain.Transfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) Update(ctx context.Context, tx domain.Tx, transfer *domain.Transfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) Delete(ctx context.Context, tx domain.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockTransferRepository) ListByBook(ctx context.Context, bookID uuid.UUID, from, to time.Time) ([]*domain.Transfer, error) {
	args := m.Called(ctx, bookID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

func decimalEq(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return expected.Equal(d)
	})
}

func newTestService(books *MockBookRepository, assets *MockAssetRepository, transfers *MockTransferRepository) *Service {
	return NewService(stubTxManager{}, books, assets, transfers, ledger.NewBalanceMutator(assets), time.UTC)
}

func TestCreateTransfer_MovesAmountBetweenAssets(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	bookID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	fromAsset := &domain.Asset{ID: fromID, Name: "Checking", Balance: decimal.NewFromInt(500)}
	toAsset := &domain.Asset{ID: toID, Name: "Savings", Balance: decimal.NewFromInt(1000)}

	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)
	assets.On("GetByID", ctx, fromID).Return(fromAsset, nil)
	assets.On("GetByID", ctx, toID).Return(toAsset, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, fromID).Return(fromAsset, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, toID).Return(toAsset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, fromID, decimalEq(decimal.NewFromInt(300))).Return(nil)
	assets.On("UpdateBalance", ctx, mock.Anything, toID, decimalEq(decimal.NewFromInt(1200))).Return(nil)
	transfers.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)

	created, err := service.CreateTransfer(ctx, CreateTransferInput{
		BookID:      bookID,
		FromAssetID: fromID,
		ToAssetID:   toID,
		Amount:      decimal.NewFromInt(200),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(created.Amount))
	assets.AssertExpectations(t)
	transfers.AssertExpectations(t)
}

func TestCreateTransfer_SameAssetRejected(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	bookID := uuid.New()
	assetID := uuid.New()
	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)

	_, err := service.CreateTransfer(ctx, CreateTransferInput{
		BookID:      bookID,
		FromAssetID: assetID,
		ToAssetID:   assetID,
		Amount:      decimal.NewFromInt(200),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.ErrorContains(t, err, "must differ")
	assets.AssertNotCalled(t, "LockForUpdate", mock.Anything, mock.Anything, mock.Anything)
	transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransfer_NonPositiveAmountRejected(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	bookID := uuid.New()
	books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)

	_, err := service.CreateTransfer(ctx, CreateTransferInput{
		BookID:      bookID,
		FromAssetID: uuid.New(),
		ToAssetID:   uuid.New(),
		Amount:      decimal.NewFromInt(-10),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	assert.ErrorContains(t, err, "must be positive")
	transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTransfer_AmountChangeAppliesNetDeltas(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	transferID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	prior := &domain.Transfer{
		ID:          transferID,
		BookID:      uuid.New(),
		FromAssetID: &fromID,
		ToAssetID:   &toID,
		Amount:      decimal.NewFromInt(200),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	fromAsset := &domain.Asset{ID: fromID, Name: "Checking", Balance: decimal.NewFromInt(300)}
	toAsset := &domain.Asset{ID: toID, Name: "Savings", Balance: decimal.NewFromInt(1200)}

	transfers.On("GetByIDForUpdate", ctx, mock.Anything, transferID).Return(prior, nil)
	// 200 -> 150: from gains 50 back, to gives 50 up
	assets.On("LockForUpdate", ctx, mock.Anything, fromID).Return(fromAsset, nil).Once()
	assets.On("LockForUpdate", ctx, mock.Anything, toID).Return(toAsset, nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, fromID, decimalEq(decimal.NewFromInt(350))).Return(nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, toID, decimalEq(decimal.NewFromInt(1150))).Return(nil).Once()
	transfers.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

	newAmount := decimal.NewFromInt(150)
	updated, err := service.UpdateTransfer(ctx, transferID, UpdateTransferInput{Amount: &newAmount})

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(updated.Amount))
	assets.AssertExpectations(t)
	transfers.AssertExpectations(t)
}

func TestUpdateTransfer_ReassignBothSides(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	transferID := uuid.New()
	oldFromID := uuid.New()
	oldToID := uuid.New()
	newFromID := uuid.New()
	newToID := uuid.New()
	prior := &domain.Transfer{
		ID:          transferID,
		BookID:      uuid.New(),
		FromAssetID: &oldFromID,
		ToAssetID:   &oldToID,
		Amount:      decimal.NewFromInt(100),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	oldFrom := &domain.Asset{ID: oldFromID, Name: "A", Balance: decimal.NewFromInt(0)}
	oldTo := &domain.Asset{ID: oldToID, Name: "B", Balance: decimal.NewFromInt(100)}
	newFrom := &domain.Asset{ID: newFromID, Name: "C", Balance: decimal.NewFromInt(500)}
	newTo := &domain.Asset{ID: newToID, Name: "D", Balance: decimal.NewFromInt(0)}

	assets.On("GetByID", ctx, newFromID).Return(newFrom, nil)
	assets.On("GetByID", ctx, newToID).Return(newTo, nil)
	transfers.On("GetByIDForUpdate", ctx, mock.Anything, transferID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, oldFromID).Return(oldFrom, nil).Once()
	assets.On("LockForUpdate", ctx, mock.Anything, oldToID).Return(oldTo, nil).Once()
	assets.On("LockForUpdate", ctx, mock.Anything, newFromID).Return(newFrom, nil).Once()
	assets.On("LockForUpdate", ctx, mock.Anything, newToID).Return(newTo, nil).Once()
	// Old pair restored, new pair takes over the movement
	assets.On("UpdateBalance", ctx, mock.Anything, oldFromID, decimalEq(decimal.NewFromInt(100))).Return(nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, oldToID, decimalEq(decimal.NewFromInt(0))).Return(nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, newFromID, decimalEq(decimal.NewFromInt(400))).Return(nil).Once()
	assets.On("UpdateBalance", ctx, mock.Anything, newToID, decimalEq(decimal.NewFromInt(100))).Return(nil).Once()
	transfers.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

	updated, err := service.UpdateTransfer(ctx, transferID, UpdateTransferInput{
		FromAssetID: &newFromID,
		ToAssetID:   &newToID,
	})

	assert.NoError(t, err)
	assert.Equal(t, newFromID, *updated.FromAssetID)
	assert.Equal(t, newToID, *updated.ToAssetID)
	assets.AssertExpectations(t)
	transfers.AssertExpectations(t)
}

func TestDeleteTransfer_ReversesBothSides(t *testing.T) {
	ctx := context.Background()
	books := new(MockBookRepository)
	assets := new(MockAssetRepository)
	transfers := new(MockTransferRepository)
	service := newTestService(books, assets, transfers)

	transferID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	prior := &domain.Transfer{
		ID:          transferID,
		BookID:      uuid.New(),
		FromAssetID: &fromID,
		ToAssetID:   &toID,
		Amount:      decimal.NewFromInt(200),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	fromAsset := &domain.Asset{ID: fromID, Name: "Checking", Balance: decimal.NewFromInt(300)}
	toAsset := &domain.Asset{ID: toID, Name: "Savings", Balance: decimal.NewFromInt(1200)}

	transfers.On("GetByIDForUpdate", ctx, mock.Anything, transferID).Return(prior, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, fromID).Return(fromAsset, nil)
	assets.On("LockForUpdate", ctx, mock.Anything, toID).Return(toAsset, nil)
	assets.On("UpdateBalance", ctx, mock.Anything, fromID, decimalEq(decimal.NewFromInt(500))).Return(nil)
	assets.On("UpdateBalance", ctx, mock.Anything, toID, decimalEq(decimal.NewFromInt(1000))).Return(nil)
	transfers.On("Delete", ctx, mock.Anything, transferID).Return(nil)

	err := service.DeleteTransfer(ctx, transferID)

	assert.NoError(t, err)
	assets.AssertExpectations(t)
	transfers.AssertExpectations(t)
}
