package domain

import (
	"errors"
	"fmt"
	"time"
)

// Frequency represents how often a scheduled record fires
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

// ScheduleStatus represents the lifecycle state of a scheduled record
type ScheduleStatus string

const (
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusPaused    ScheduleStatus = "paused"
	ScheduleStatusCompleted ScheduleStatus = "completed" // terminal
)

// ScheduledRecord is a template that periodically materializes new records.
// It carries a full Record (the values copied into each materialized record)
// plus the recurrence definition. Each firing produces an independent Record
// linked back via Record.GeneratedBy; the template itself never appears in
// balance math.
type ScheduledRecord struct {
	Record

	Frequency      Frequency
	NumOfDays      int   // days between occurrences, 1-365; daily only
	WeekDays       []int // weekday indices 0-6 with Monday=0; weekly only
	MonthDay       int   // day of month 1-31; monthly only
	StartDate      time.Time
	NextOccurrence time.Time // derived, read-only to clients
	EndDate        *time.Time
	Status         ScheduleStatus
	LastRun        *time.Time
}

// Validate ensures the schedule adheres to domain rules, including the
// frequency-specific required fields.
func (s *ScheduledRecord) Validate() error {
	if err := s.Record.Validate(); err != nil {
		return err
	}

	switch s.Frequency {
	case FrequencyDaily:
		if s.NumOfDays < 1 || s.NumOfDays > 365 {
			return errors.New("daily schedule requires num_of_days between 1 and 365")
		}
	case FrequencyWeekly:
		if len(s.WeekDays) == 0 {
			return errors.New("weekly schedule requires at least one weekday")
		}
		for _, d := range s.WeekDays {
			if d < 0 || d > 6 {
				return errors.New("weekday indices must be between 0 (Monday) and 6 (Sunday)")
			}
		}
	case FrequencyMonthly:
		if s.MonthDay < 1 || s.MonthDay > 31 {
			return errors.New("monthly schedule requires month_day between 1 and 31")
		}
	case FrequencyAnnually:
		// No frequency-specific fields
	default:
		return errors.New("frequency must be daily, weekly, monthly or annually")
	}

	if s.StartDate.IsZero() {
		return errors.New("schedule start date must be set")
	}

	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return errors.New("schedule end date cannot be before start date")
	}

	switch s.Status {
	case ScheduleStatusActive, ScheduleStatusPaused, ScheduleStatusCompleted:
	default:
		return errors.New("schedule status must be active, paused or completed")
	}

	return nil
}

// Pause transitions the schedule to paused. Pausing a schedule that is not
// active is a state conflict, not a no-op.
func (s *ScheduledRecord) Pause() error {
	switch s.Status {
	case ScheduleStatusPaused:
		return fmt.Errorf("schedule is already paused: %w", ErrConflict)
	case ScheduleStatusCompleted:
		return fmt.Errorf("completed schedule cannot be paused: %w", ErrConflict)
	}
	s.Status = ScheduleStatusPaused
	return nil
}

// Resume transitions a paused schedule back to active. The caller is
// responsible for recomputing NextOccurrence from the current wall clock;
// a resumed schedule never carries a backlog of missed occurrences.
func (s *ScheduledRecord) Resume() error {
	switch s.Status {
	case ScheduleStatusActive:
		return fmt.Errorf("schedule is already active: %w", ErrConflict)
	case ScheduleStatusCompleted:
		return fmt.Errorf("completed schedule cannot be resumed: %w", ErrConflict)
	}
	s.Status = ScheduleStatusActive
	return nil
}
