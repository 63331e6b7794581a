package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

func record(typ domain.RecordType, amount int64, date time.Time) *domain.Record {
	return &domain.Record{
		ID:       uuid.New(),
		BookID:   uuid.New(),
		Type:     typ,
		Category: "Misc",
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
	}
}

func TestGroupRecordsByDate(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 11, 19, 30, 0, 0, time.UTC)

	records := []*domain.Record{
		record(domain.RecordTypeExpense, -30, day1),
		record(domain.RecordTypeIncome, 2000, day1.Add(4*time.Hour)),
		record(domain.RecordTypeExpense, -15, day2),
	}

	groups := GroupRecordsByDate(records, time.UTC)

	assert.Len(t, groups, 2)

	// Newest day first
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), groups[0].Date)
	assert.Len(t, groups[0].Records, 1)
	assert.True(t, decimal.Zero.Equal(groups[0].SumOfIncome))
	assert.True(t, decimal.NewFromInt(-15).Equal(groups[0].SumOfExpense))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), groups[1].Date)
	assert.Len(t, groups[1].Records, 2)
	assert.True(t, decimal.NewFromInt(2000).Equal(groups[1].SumOfIncome))
	assert.True(t, decimal.NewFromInt(-30).Equal(groups[1].SumOfExpense))
}

func TestGroupRecordsByDate_TimezoneSplitsDays(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)

	// 23:00 UTC on March 10 is already March 11 in UTC+8
	late := record(domain.RecordTypeExpense, -10, time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC))
	early := record(domain.RecordTypeExpense, -20, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC))

	groups := GroupRecordsByDate([]*domain.Record{late, early}, loc)

	assert.Len(t, groups, 2)
	assert.Equal(t, 11, groups[0].Date.Day())
	assert.Equal(t, 10, groups[1].Date.Day())
}

func TestGroupRecordsByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupRecordsByDate(nil, time.UTC))
}
