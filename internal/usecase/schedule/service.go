package schedule

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
	"github.com/simaogato/moneybook-backend/internal/usecase/ledger"
	"github.com/simaogato/moneybook-backend/internal/usecase/recurrence"
)

// CreateScheduleInput represents the input for creating a scheduled record
type CreateScheduleInput struct {
	BookID            uuid.UUID
	AssetID           *uuid.UUID
	Type              domain.RecordType
	Category          string
	Subcategory       string
	Amount            decimal.Decimal
	Note              string
	IsMarkedTaxReturn bool

	Frequency domain.Frequency
	NumOfDays int
	WeekDays  []int
	MonthDay  int
	StartDate time.Time
	EndDate   *time.Time
}

// Service owns the scheduled record lifecycle: creation with the initial
// next occurrence, the pause/resume/execute state machine, and the periodic
// sweeps that materialize due records and complete expired schedules.
type Service struct {
	TxMgr     domain.TxManager
	Books     domain.BookRepository
	Assets    domain.AssetRepository
	Schedules domain.ScheduleRepository
	Ledger    *ledger.Service
	Notifier  domain.Notifier

	loc *time.Location
	now func() time.Time
}

// NewService creates a new schedule Service instance
func NewService(
	txMgr domain.TxManager,
	books domain.BookRepository,
	assets domain.AssetRepository,
	schedules domain.ScheduleRepository,
	ledgerService *ledger.Service,
	notifier domain.Notifier,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		TxMgr:     txMgr,
		Books:     books,
		Assets:    assets,
		Schedules: schedules,
		Ledger:    ledgerService,
		Notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

// CreateSchedule validates the frequency-specific fields and persists the
// schedule with its first occurrence set to the start date.
func (s *Service) CreateSchedule(ctx context.Context, input CreateScheduleInput) (*domain.ScheduledRecord, error) {
	if _, err := s.Books.GetByID(ctx, input.BookID); err != nil {
		return nil, err
	}
	if input.AssetID != nil {
		if _, err := s.Assets.GetByID(ctx, *input.AssetID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	start := input.StartDate.In(s.loc)
	var end *time.Time
	if input.EndDate != nil {
		e := input.EndDate.In(s.loc)
		end = &e
	}

	sched := &domain.ScheduledRecord{
		Record: domain.Record{
			ID:                uuid.New(),
			BookID:            input.BookID,
			AssetID:           input.AssetID,
			Type:              input.Type,
			Category:          input.Category,
			Subcategory:       input.Subcategory,
			Amount:            input.Amount,
			Note:              input.Note,
			Date:              start,
			IsMarkedTaxReturn: input.IsMarkedTaxReturn,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Frequency:      input.Frequency,
		NumOfDays:      input.NumOfDays,
		WeekDays:       input.WeekDays,
		MonthDay:       input.MonthDay,
		StartDate:      start,
		NextOccurrence: start,
		EndDate:        end,
		Status:         domain.ScheduleStatusActive,
	}

	sched.NormalizeAmount()
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	if err := s.Schedules.Create(ctx, sched); err != nil {
		return nil, err
	}

	return sched, nil
}

// GetSchedule retrieves a schedule by ID
func (s *Service) GetSchedule(ctx context.Context, id uuid.UUID) (*domain.ScheduledRecord, error) {
	return s.Schedules.GetByID(ctx, id)
}

// ListSchedules retrieves schedules filtered by status and frequency; empty
// filters match everything.
func (s *Service) ListSchedules(ctx context.Context, status domain.ScheduleStatus, frequency domain.Frequency) ([]*domain.ScheduledRecord, error) {
	return s.Schedules.List(ctx, status, frequency)
}

// DeleteSchedule removes a schedule. Records it materialized stay in the
// ledger; only their generated-by link is detached at the schema level.
func (s *Service) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	return s.Schedules.Delete(ctx, id)
}

// PauseSchedule transitions an active schedule to paused, freezing its next
// occurrence where it is.
func (s *Service) PauseSchedule(ctx context.Context, id uuid.UUID) error {
	return s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		sched, err := s.Schedules.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := sched.Pause(); err != nil {
			return err
		}
		return s.Schedules.Update(ctx, tx, sched)
	})
}

// ResumeSchedule transitions a paused schedule back to active and recomputes
// the next occurrence from the current wall clock. A schedule paused for a
// month resumes into the future; missed occurrences are skipped, never
// replayed.
func (s *Service) ResumeSchedule(ctx context.Context, id uuid.UUID) error {
	return s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		sched, err := s.Schedules.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := sched.Resume(); err != nil {
			return err
		}
		sched.NextOccurrence = recurrence.Advance(sched, s.now().In(s.loc))
		return s.Schedules.Update(ctx, tx, sched)
	})
}

// ExecuteScheduleNow fires a schedule on demand. It is rejected when the
// schedule is not active or not yet due.
func (s *Service) ExecuteScheduleNow(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	now := s.now().In(s.loc)

	var fired *firing
	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		sched, err := s.Schedules.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if sched.Status != domain.ScheduleStatusActive {
			return fmt.Errorf("cannot execute inactive schedule: %w", domain.ErrConflict)
		}
		if !recurrence.IsDue(sched, now) {
			return fmt.Errorf("schedule is not due: %w", domain.ErrConflict)
		}
		fired, err = s.fire(ctx, tx, sched, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, fired)
	return fired.record, nil
}

// CheckDueRecords is the periodic sweep: it collects due schedule IDs, then
// fires each in its own transaction under a non-blocking row lock. A
// schedule locked or already advanced by a concurrent sweep is skipped.
// Returns the number of schedules fired.
func (s *Service) CheckDueRecords(ctx context.Context) (int, error) {
	now := s.now().In(s.loc)

	ids, err := s.Schedules.ListDueIDs(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, id := range ids {
		fired, err := s.fireOne(ctx, id, now)
		if err != nil {
			if errors.Is(err, domain.ErrLockTimeout) {
				// Another sweep owns this schedule right now
				continue
			}
			log.Printf("schedule %s: firing failed: %v", id, err)
			continue
		}
		if fired != nil {
			s.notify(ctx, fired)
			count++
		}
	}

	return count, nil
}

// CleanupExpiredSchedules completes every active schedule whose end date has
// passed. Returns the number of schedules completed.
func (s *Service) CleanupExpiredSchedules(ctx context.Context) (int, error) {
	now := s.now().In(s.loc)

	count := 0
	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		expired, err := s.Schedules.ListExpiredForUpdate(ctx, tx, now)
		if err != nil {
			return err
		}
		for _, sched := range expired {
			sched.Status = domain.ScheduleStatusCompleted
			if err := s.Schedules.Update(ctx, tx, sched); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// firing carries a materialized record and its schedule out of the firing
// transaction for the best-effort notification afterwards.
type firing struct {
	schedule *domain.ScheduledRecord
	record   *domain.Record
}

// fireOne locks a single due schedule and fires it in one transaction,
// re-verifying due-ness after the lock: another process may have advanced
// the occurrence between the unlocked scan and here.
func (s *Service) fireOne(ctx context.Context, id uuid.UUID, now time.Time) (*firing, error) {
	var fired *firing
	err := s.TxMgr.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		sched, err := s.Schedules.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !recurrence.IsDue(sched, now) || sched.StartDate.After(now) {
			return nil
		}
		fired, err = s.fire(ctx, tx, sched, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fired, nil
}

// fire materializes a record from the schedule template and advances the
// occurrence, all inside the caller's transaction. The record is an
// independent copy; deleting the schedule later does not touch it.
func (s *Service) fire(ctx context.Context, tx domain.Tx, sched *domain.ScheduledRecord, now time.Time) (*firing, error) {
	occurrence := sched.NextOccurrence
	scheduleID := sched.Record.ID

	record := &domain.Record{
		ID:                uuid.New(),
		BookID:            sched.BookID,
		AssetID:           sched.AssetID,
		Type:              sched.Type,
		Category:          sched.Category,
		Subcategory:       sched.Subcategory,
		Amount:            sched.Amount,
		Note:              sched.Note,
		Date:              occurrence,
		IsMarkedTaxReturn: sched.IsMarkedTaxReturn,
		GeneratedBy:       &scheduleID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Ledger.CreateInTx(ctx, tx, record); err != nil {
		return nil, err
	}

	// Advance from the occurrence just fired so the cadence stays anchored
	// to the schedule, not to sweep timing.
	sched.NextOccurrence = recurrence.Advance(sched, occurrence)
	lastRun := now
	sched.LastRun = &lastRun
	sched.UpdatedAt = now

	if err := s.Schedules.Update(ctx, tx, sched); err != nil {
		return nil, err
	}

	return &firing{schedule: sched, record: record}, nil
}

// notify delivers the firing notification outside the transaction. Failures
// are logged and never propagate: the record is already committed.
func (s *Service) notify(ctx context.Context, f *firing) {
	if f == nil || s.Notifier == nil {
		return
	}
	if err := s.Notifier.ScheduleFired(ctx, f.schedule, f.record); err != nil {
		log.Printf("schedule %s: notification failed: %v", f.schedule.Record.ID, err)
	}
}
