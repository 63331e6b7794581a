package schedule

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

// MockScheduleRepository is a mock implementation of ScheduleRepository for testing
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledRecord), args.Error(1)
}

func (m *MockScheduleRepository) GetByIDForUpdate(ctx context.Context, tx domain.Tx, id uuid.UUID) (*domain.ScheduledRecord, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledRecord), args.Error(1)
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *domain.ScheduledRecord) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, tx domain.Tx, schedule *domain.ScheduledRecord) error {
	args := m.Called(ctx, tx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) List(ctx context.Context, status domain.ScheduleStatus, frequency domain.Frequency) ([]*domain.ScheduledRecord, error) {
	args := m.Called(ctx, status, frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledRecord), args.Error(1)
}

func (m *MockScheduleRepository) ListDueIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockScheduleRepository) ListExpiredForUpdate(ctx context.Context, tx domain.Tx, now time.Time) ([]*domain.ScheduledRecord, error) {
	args := m.Called(ctx, tx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledRecord), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ScheduleFired(ctx context.Context, schedule *domain.ScheduledRecord, record *domain.Record) error {
	args := m.Called(ctx, schedule, record)
	return args.Error(0)
}

type testEnv struct {
	books     *MockBookRepository
	assets    *MockAssetRepository
	records   *MockRecordRepository
	schedules *MockScheduleRepository
	notifier  *MockNotifier
	service   *Service
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		books:     new(MockBookRepository),
		assets:    new(MockAssetRepository),
		records:   new(MockRecordRepository),
		schedules: new(MockScheduleRepository),
		notifier:  new(MockNotifier),
	}
	txMgr := stubTxManager{}
	ledgerService := ledger.NewService(txMgr, env.books, env.assets, env.records, ledger.NewBalanceMutator(env.assets), time.UTC)
	env.service = NewService(txMgr, env.books, env.assets, env.schedules, ledgerService, env.notifier, time.UTC)
	env.service.now = func() time.Time { return now }
	return env
}

func monthlySchedule(next time.Time) *domain.ScheduledRecord {
	return &domain.ScheduledRecord{
		Record: domain.Record{
			ID:       uuid.New(),
			BookID:   uuid.New(),
			Type:     domain.RecordTypeExpense,
			Category: "Rent",
			Amount:   decimal.NewFromInt(-900),
			Date:     next,
		},
		Frequency:      domain.FrequencyMonthly,
		MonthDay:       next.Day(),
		StartDate:      next.AddDate(-1, 0, 0),
		NextOccurrence: next,
		Status:         domain.ScheduleStatusActive,
	}
}

func TestCreateSchedule_FirstOccurrenceIsStartDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	bookID := uuid.New()
	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	env.books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)
	env.schedules.On("Create", ctx, mock.MatchedBy(func(s *domain.ScheduledRecord) bool {
		return s.NextOccurrence.Equal(start) &&
			s.Status == domain.ScheduleStatusActive &&
			decimal.NewFromInt(-900).Equal(s.Amount) // sign normalized on the template
	})).Return(nil)

	created, err := env.service.CreateSchedule(ctx, CreateScheduleInput{
		BookID:    bookID,
		Type:      domain.RecordTypeExpense,
		Category:  "Rent",
		Amount:    decimal.NewFromInt(900),
		Frequency: domain.FrequencyMonthly,
		MonthDay:  1,
		StartDate: start,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ScheduleStatusActive, created.Status)
	env.schedules.AssertExpectations(t)
}

func TestCreateSchedule_WeeklyRequiresWeekdays(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	bookID := uuid.New()
	env.books.On("GetByID", ctx, bookID).Return(&domain.Book{ID: bookID, Name: "Personal"}, nil)

	_, err := env.service.CreateSchedule(ctx, CreateScheduleInput{
		BookID:    bookID,
		Type:      domain.RecordTypeExpense,
		Category:  "Gym",
		Amount:    decimal.NewFromInt(15),
		Frequency: domain.FrequencyWeekly,
		StartDate: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorContains(t, err, "at least one weekday")
	env.schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPauseSchedule(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Active Is Paused", func(t *testing.T) {
		env := newTestEnv(now)
		sched := monthlySchedule(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

		env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, sched.Record.ID).Return(sched, nil)
		env.schedules.On("Update", ctx, mock.Anything, mock.MatchedBy(func(s *domain.ScheduledRecord) bool {
			return s.Status == domain.ScheduleStatusPaused
		})).Return(nil)

		assert.NoError(t, env.service.PauseSchedule(ctx, sched.Record.ID))
		env.schedules.AssertExpectations(t)
	})

	t.Run("Completed Is Rejected", func(t *testing.T) {
		env := newTestEnv(now)
		sched := monthlySchedule(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
		sched.Status = domain.ScheduleStatusCompleted

		env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, sched.Record.ID).Return(sched, nil)

		err := env.service.PauseSchedule(ctx, sched.Record.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		env.schedules.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResumeSchedule_SkipsMissedOccurrences(t *testing.T) {
	ctx := context.Background()
	// Paused in January with a stale occurrence; resumed in March
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	sched := monthlySchedule(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	sched.Status = domain.ScheduleStatusPaused

	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, sched.Record.ID).Return(sched, nil)
	env.schedules.On("Update", ctx, mock.Anything, mock.MatchedBy(func(s *domain.ScheduledRecord) bool {
		return s.Status == domain.ScheduleStatusActive && s.NextOccurrence.After(now)
	})).Return(nil)

	assert.NoError(t, env.service.ResumeSchedule(ctx, sched.Record.ID))
	env.schedules.AssertExpectations(t)
}

func TestExecuteScheduleNow_NotDueRejected(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	sched := monthlySchedule(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)) // future occurrence
	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, sched.Record.ID).Return(sched, nil)

	_, err := env.service.ExecuteScheduleNow(ctx, sched.Record.ID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorContains(t, err, "not due")
	env.records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteScheduleNow_FiresAndAdvances(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	occurrence := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	sched := monthlySchedule(occurrence)
	scheduleID := sched.Record.ID

	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, scheduleID).Return(sched, nil)
	env.records.On("Create", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Record) bool {
		return r.GeneratedBy != nil && *r.GeneratedBy == scheduleID &&
			r.Date.Equal(occurrence) && // record dated at the occurrence, not the wall clock
			r.ID != scheduleID
	})).Return(nil)
	env.schedules.On("Update", ctx, mock.Anything, mock.MatchedBy(func(s *domain.ScheduledRecord) bool {
		// Advanced from the fired occurrence, anchored to the cadence
		return s.NextOccurrence.Equal(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)) && s.LastRun != nil
	})).Return(nil)
	env.notifier.On("ScheduleFired", ctx, mock.Anything, mock.Anything).Return(nil)

	record, err := env.service.ExecuteScheduleNow(ctx, scheduleID)

	assert.NoError(t, err)
	assert.Equal(t, scheduleID, *record.GeneratedBy)
	env.schedules.AssertExpectations(t)
	env.records.AssertExpectations(t)
	env.notifier.AssertExpectations(t)
}

func TestCheckDueRecords_FiresDueAndSkipsLocked(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	due := monthlySchedule(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	lockedID := uuid.New()

	env.schedules.On("ListDueIDs", ctx, now).Return([]uuid.UUID{due.Record.ID, lockedID}, nil)
	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, due.Record.ID).Return(due, nil)
	// Another sweep holds this row; the non-blocking lock fails fast
	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, lockedID).Return(nil, domain.ErrLockTimeout)
	env.records.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	env.schedules.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)
	env.notifier.On("ScheduleFired", ctx, mock.Anything, mock.Anything).Return(nil)

	count, err := env.service.CheckDueRecords(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	env.schedules.AssertExpectations(t)
	env.notifier.AssertNumberOfCalls(t, "ScheduleFired", 1)
}

func TestCheckDueRecords_ReverifiesAfterLock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	// Advanced by a concurrent sweep between the unlocked scan and the lock
	advanced := monthlySchedule(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	env.schedules.On("ListDueIDs", ctx, now).Return([]uuid.UUID{advanced.Record.ID}, nil)
	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, advanced.Record.ID).Return(advanced, nil)

	count, err := env.service.CheckDueRecords(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	env.records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	env.notifier.AssertNotCalled(t, "ScheduleFired", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckDueRecords_NotifierFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	due := monthlySchedule(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	env.schedules.On("ListDueIDs", ctx, now).Return([]uuid.UUID{due.Record.ID}, nil)
	env.schedules.On("GetByIDForUpdate", ctx, mock.Anything, due.Record.ID).Return(due, nil)
	env.records.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	env.schedules.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)
	env.notifier.On("ScheduleFired", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

	count, err := env.service.CheckDueRecords(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCleanupExpiredSchedules(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	expired := monthlySchedule(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expired.EndDate = &end

	env.schedules.On("ListExpiredForUpdate", ctx, mock.Anything, now).Return([]*domain.ScheduledRecord{expired}, nil)
	env.schedules.On("Update", ctx, mock.Anything, mock.MatchedBy(func(s *domain.ScheduledRecord) bool {
		return s.Status == domain.ScheduleStatusCompleted
	})).Return(nil)

	count, err := env.service.CleanupExpiredSchedules(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	env.schedules.AssertExpectations(t)
}
