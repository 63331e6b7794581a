package recurrence

import (
	"time"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// Next computes the occurrence following current for the schedule's
// frequency definition. It is pure calendar math: status and end date guards
// live in Advance.
//
// Logic per frequency:
//   - daily: current + num_of_days days
//   - weekly: scan forward day by day until landing on a configured weekday
//   - monthly: target day clamped to the length of the target month
//   - annually: add one year, clamping Feb 29 anniversaries to Feb 28
func Next(current time.Time, s *domain.ScheduledRecord) time.Time {
	switch s.Frequency {
	case domain.FrequencyDaily:
		days := s.NumOfDays
		if days < 1 {
			days = 1
		}
		return current.AddDate(0, 0, days)

	case domain.FrequencyWeekly:
		if len(s.WeekDays) == 0 {
			return current.AddDate(0, 0, 7)
		}
		allowed := make(map[int]bool, len(s.WeekDays))
		for _, d := range s.WeekDays {
			allowed[d] = true
		}
		next := current.AddDate(0, 0, 1)
		for i := 0; i < 7; i++ {
			if allowed[mondayIndexed(next.Weekday())] {
				return next
			}
			next = next.AddDate(0, 0, 1)
		}
		// Unreachable with a non-empty set; every weekday repeats within 7 days
		return next

	case domain.FrequencyMonthly:
		if s.MonthDay == 0 {
			return addMonthsClamped(current, 1, current.Day())
		}
		// Try the current month first: the clamped target may still be ahead
		candidate := withClampedDay(current, current.Year(), current.Month(), s.MonthDay)
		if candidate.After(current) {
			return candidate
		}
		year, month := current.Year(), current.Month()+1
		return withClampedDay(current, year, month, s.MonthDay)

	case domain.FrequencyAnnually:
		// Feb 29 anniversaries clamp to Feb 28 in non-leap years
		return withClampedDay(current, current.Year()+1, current.Month(), current.Day())

	default:
		return current
	}
}

// Advance applies the lifecycle guards around Next and returns the new next
// occurrence for the schedule, mutating its status when the recurrence
// window closes:
//   - inactive schedules are untouched
//   - a schedule already at or past its end date completes without advancing
//   - a computed occurrence past the end date completes the schedule and the
//     prior occurrence is kept (it never points beyond the window)
func Advance(s *domain.ScheduledRecord, current time.Time) time.Time {
	if s.Status != domain.ScheduleStatusActive {
		return current
	}

	if s.EndDate != nil && !current.Before(*s.EndDate) {
		s.Status = domain.ScheduleStatusCompleted
		return current
	}

	next := Next(current, s)
	if s.EndDate != nil && next.After(*s.EndDate) {
		s.Status = domain.ScheduleStatusCompleted
		return current
	}

	return next
}

// IsDue reports whether the schedule should fire at now.
func IsDue(s *domain.ScheduledRecord, now time.Time) bool {
	if s.Status != domain.ScheduleStatusActive {
		return false
	}
	if s.NextOccurrence.After(now) {
		return false
	}
	if s.EndDate != nil && s.NextOccurrence.After(*s.EndDate) {
		return false
	}
	return true
}

// mondayIndexed converts Go's Sunday-based weekday to the Monday=0 indexing
// used by schedule weekday sets.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// withClampedDay builds a timestamp in the given year and month, keeping the
// clock fields of base and clamping day to the length of the target month.
// Month may be January+12; time.Date normalizes the year.
func withClampedDay(base time.Time, year int, month time.Month, day int) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

// addMonthsClamped adds months to base without the overflow of AddDate
// (Jan 31 + 1 month lands on the last day of February, not March 3).
func addMonthsClamped(base time.Time, months, day int) time.Time {
	year := base.Year()
	month := base.Month() + time.Month(months)
	return withClampedDay(base, year, month, day)
}

// daysInMonth returns the number of days in the given month. Day 0 of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
