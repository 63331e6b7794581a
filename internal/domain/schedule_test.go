package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validSchedule(freq Frequency) *ScheduledRecord {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &ScheduledRecord{
		Record: Record{
			ID:       uuid.New(),
			BookID:   uuid.New(),
			Type:     RecordTypeExpense,
			Category: "Rent",
			Amount:   decimal.NewFromInt(-900),
			Date:     start,
		},
		Frequency:      freq,
		StartDate:      start,
		NextOccurrence: start,
		Status:         ScheduleStatusActive,
	}
	switch freq {
	case FrequencyDaily:
		s.NumOfDays = 1
	case FrequencyWeekly:
		s.WeekDays = []int{0, 3}
	case FrequencyMonthly:
		s.MonthDay = 1
	}
	return s
}

func TestScheduledRecordValidate(t *testing.T) {
	t.Run("Valid Per Frequency", func(t *testing.T) {
		for _, freq := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAnnually} {
			assert.NoError(t, validSchedule(freq).Validate(), "frequency %s", freq)
		}
	})

	t.Run("Invalid Frequency", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Frequency = "fortnightly"
		assert.ErrorContains(t, s.Validate(), "frequency must be")
	})

	t.Run("Daily Out Of Range", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.NumOfDays = 0
		assert.ErrorContains(t, s.Validate(), "num_of_days between 1 and 365")

		s.NumOfDays = 366
		assert.ErrorContains(t, s.Validate(), "num_of_days between 1 and 365")
	})

	t.Run("Weekly Without Weekdays", func(t *testing.T) {
		s := validSchedule(FrequencyWeekly)
		s.WeekDays = nil
		assert.ErrorContains(t, s.Validate(), "at least one weekday")
	})

	t.Run("Weekly Bad Weekday Index", func(t *testing.T) {
		s := validSchedule(FrequencyWeekly)
		s.WeekDays = []int{7}
		assert.ErrorContains(t, s.Validate(), "weekday indices")
	})

	t.Run("Monthly Without Month Day", func(t *testing.T) {
		s := validSchedule(FrequencyMonthly)
		s.MonthDay = 0
		assert.ErrorContains(t, s.Validate(), "month_day between 1 and 31")
	})

	t.Run("End Before Start", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		end := s.StartDate.AddDate(0, 0, -1)
		s.EndDate = &end
		assert.ErrorContains(t, s.Validate(), "end date cannot be before start date")
	})

	t.Run("Template Still Validated", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Category = ""
		assert.ErrorContains(t, s.Validate(), "category cannot be empty")
	})
}

func TestSchedulePauseResume(t *testing.T) {
	t.Run("Pause Active", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		assert.NoError(t, s.Pause())
		assert.Equal(t, ScheduleStatusPaused, s.Status)
	})

	t.Run("Pause Paused", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Status = ScheduleStatusPaused
		err := s.Pause()
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Pause Completed", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Status = ScheduleStatusCompleted
		err := s.Pause()
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, ScheduleStatusCompleted, s.Status)
	})

	t.Run("Resume Paused", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Status = ScheduleStatusPaused
		assert.NoError(t, s.Resume())
		assert.Equal(t, ScheduleStatusActive, s.Status)
	})

	t.Run("Resume Active", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		err := s.Resume()
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Resume Completed", func(t *testing.T) {
		s := validSchedule(FrequencyDaily)
		s.Status = ScheduleStatusCompleted
		err := s.Resume()
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, ScheduleStatusCompleted, s.Status)
	})
}
