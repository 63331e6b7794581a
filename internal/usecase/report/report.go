package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// DailyGroup is one calendar day of records with its income and expense
// totals. Expense records are stored negative, so SumOfExpense is negative
// or zero.
type DailyGroup struct {
	Date         time.Time // midnight of the day in the grouping timezone
	Records      []*domain.Record
	SumOfIncome  decimal.Decimal
	SumOfExpense decimal.Decimal
}

// GroupRecordsByDate groups records by calendar day in loc, newest day
// first, summing income and expense per day. Pure computation; callers pass
// the result straight to the presentation layer.
func GroupRecordsByDate(records []*domain.Record, loc *time.Location) []DailyGroup {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[time.Time]*DailyGroup)
	for _, rec := range records {
		d := rec.Date.In(loc)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

		group, ok := byDay[day]
		if !ok {
			group = &DailyGroup{
				Date:         day,
				SumOfIncome:  decimal.Zero,
				SumOfExpense: decimal.Zero,
			}
			byDay[day] = group
		}

		group.Records = append(group.Records, rec)
		switch rec.Type {
		case domain.RecordTypeIncome:
			group.SumOfIncome = group.SumOfIncome.Add(rec.Amount)
		case domain.RecordTypeExpense:
			group.SumOfExpense = group.SumOfExpense.Add(rec.Amount)
		}
	}

	groups := make([]DailyGroup, 0, len(byDay))
	for _, g := range byDay {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})

	return groups
}
