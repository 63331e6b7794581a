package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func daily(n int) *domain.ScheduledRecord {
	return &domain.ScheduledRecord{Frequency: domain.FrequencyDaily, NumOfDays: n, Status: domain.ScheduleStatusActive}
}

func weekly(days ...int) *domain.ScheduledRecord {
	return &domain.ScheduledRecord{Frequency: domain.FrequencyWeekly, WeekDays: days, Status: domain.ScheduleStatusActive}
}

func monthly(day int) *domain.ScheduledRecord {
	return &domain.ScheduledRecord{Frequency: domain.FrequencyMonthly, MonthDay: day, Status: domain.ScheduleStatusActive}
}

func annually() *domain.ScheduledRecord {
	return &domain.ScheduledRecord{Frequency: domain.FrequencyAnnually, Status: domain.ScheduleStatusActive}
}

func TestNextDaily(t *testing.T) {
	assert.Equal(t, date(2024, 3, 11), Next(date(2024, 3, 10), daily(1)))
	assert.Equal(t, date(2024, 3, 24), Next(date(2024, 3, 10), daily(14)))
	// Crosses a month boundary
	assert.Equal(t, date(2024, 4, 2), Next(date(2024, 3, 31), daily(2)))
}

func TestNextWeekly(t *testing.T) {
	// 2024-03-11 is a Monday
	monday := date(2024, 3, 11)

	// Monday and Thursday: Monday advances to Thursday
	assert.Equal(t, date(2024, 3, 14), Next(monday, weekly(0, 3)))
	// Thursday wraps to next Monday
	assert.Equal(t, date(2024, 3, 18), Next(date(2024, 3, 14), weekly(0, 3)))
	// Single weekday fires exactly one week later
	assert.Equal(t, date(2024, 3, 18), Next(monday, weekly(0)))
	// Sunday index 6: Monday advances to Sunday
	assert.Equal(t, date(2024, 3, 17), Next(monday, weekly(6)))
}

func TestNextMonthly(t *testing.T) {
	// Plain case
	assert.Equal(t, date(2024, 4, 15), Next(date(2024, 3, 15), monthly(15)))
	// Day 31 clamps to the length of the target month
	assert.Equal(t, date(2024, 4, 30), Next(date(2024, 3, 31), monthly(31)))
	// Day 31 from a clamped occurrence returns to 31 when the month has it
	assert.Equal(t, date(2024, 5, 31), Next(date(2024, 4, 30), monthly(31)))
	// February in a leap year
	assert.Equal(t, date(2024, 2, 29), Next(date(2024, 1, 31), monthly(31)))
	// February in a non-leap year
	assert.Equal(t, date(2025, 2, 28), Next(date(2025, 1, 31), monthly(31)))
	// Target day later in the same month counts as the next occurrence
	assert.Equal(t, date(2024, 3, 20), Next(date(2024, 3, 10), monthly(20)))
}

func TestNextAnnually(t *testing.T) {
	assert.Equal(t, date(2025, 6, 15), Next(date(2024, 6, 15), annually()))
	// Feb 29 anniversary clamps to Feb 28 in a non-leap year
	assert.Equal(t, date(2025, 2, 28), Next(date(2024, 2, 29), annually()))
}

func TestNextPreservesClock(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	current := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	next := Next(current, daily(1))
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.Equal(t, loc, next.Location())
}

func TestAdvance(t *testing.T) {
	t.Run("Active Without End Date", func(t *testing.T) {
		s := daily(1)
		next := Advance(s, date(2024, 3, 10))
		assert.Equal(t, date(2024, 3, 11), next)
		assert.Equal(t, domain.ScheduleStatusActive, s.Status)
	})

	t.Run("Paused Is Untouched", func(t *testing.T) {
		s := daily(1)
		s.Status = domain.ScheduleStatusPaused
		assert.Equal(t, date(2024, 3, 10), Advance(s, date(2024, 3, 10)))
		assert.Equal(t, domain.ScheduleStatusPaused, s.Status)
	})

	t.Run("Current At End Date Completes", func(t *testing.T) {
		s := daily(1)
		end := date(2024, 3, 10)
		s.EndDate = &end
		next := Advance(s, date(2024, 3, 10))
		assert.Equal(t, date(2024, 3, 10), next)
		assert.Equal(t, domain.ScheduleStatusCompleted, s.Status)
	})

	t.Run("Next Past End Date Completes Keeping Current", func(t *testing.T) {
		s := daily(7)
		end := date(2024, 3, 12)
		s.EndDate = &end
		next := Advance(s, date(2024, 3, 10))
		assert.Equal(t, date(2024, 3, 10), next)
		assert.Equal(t, domain.ScheduleStatusCompleted, s.Status)
	})

	t.Run("Next Within End Date Stays Active", func(t *testing.T) {
		s := daily(1)
		end := date(2024, 3, 31)
		s.EndDate = &end
		next := Advance(s, date(2024, 3, 10))
		assert.Equal(t, date(2024, 3, 11), next)
		assert.Equal(t, domain.ScheduleStatusActive, s.Status)
	})
}

func TestIsDue(t *testing.T) {
	now := date(2024, 3, 10)

	t.Run("Due When Occurrence Passed", func(t *testing.T) {
		s := daily(1)
		s.NextOccurrence = date(2024, 3, 9)
		assert.True(t, IsDue(s, now))
	})

	t.Run("Due At Exact Instant", func(t *testing.T) {
		s := daily(1)
		s.NextOccurrence = now
		assert.True(t, IsDue(s, now))
	})

	t.Run("Not Due In The Future", func(t *testing.T) {
		s := daily(1)
		s.NextOccurrence = date(2024, 3, 11)
		assert.False(t, IsDue(s, now))
	})

	t.Run("Paused Never Due", func(t *testing.T) {
		s := daily(1)
		s.NextOccurrence = date(2024, 3, 9)
		s.Status = domain.ScheduleStatusPaused
		assert.False(t, IsDue(s, now))
	})

	t.Run("Occurrence Past End Date Never Due", func(t *testing.T) {
		s := daily(1)
		end := date(2024, 3, 8)
		s.EndDate = &end
		s.NextOccurrence = date(2024, 3, 9)
		assert.False(t, IsDue(s, now))
	})
}
