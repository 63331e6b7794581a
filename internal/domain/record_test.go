package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validRecord() *Record {
	return &Record{
		ID:       uuid.New(),
		BookID:   uuid.New(),
		Type:     RecordTypeExpense,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(30),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		typ      RecordType
		amount   decimal.Decimal
		expected decimal.Decimal
	}{
		{"Expense Positive Input", RecordTypeExpense, decimal.NewFromInt(30), decimal.NewFromInt(-30)},
		{"Expense Negative Input", RecordTypeExpense, decimal.NewFromInt(-30), decimal.NewFromInt(-30)},
		{"Income Positive Input", RecordTypeIncome, decimal.NewFromInt(20), decimal.NewFromInt(20)},
		{"Income Negative Input", RecordTypeIncome, decimal.NewFromInt(-20), decimal.NewFromInt(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			r.Type = tt.typ
			r.Amount = tt.amount
			r.NormalizeAmount()
			assert.True(t, tt.expected.Equal(r.Amount),
				"expected %s, got %s", tt.expected, r.Amount)
		})
	}
}

func TestRecordValidate(t *testing.T) {
	t.Run("Valid Record", func(t *testing.T) {
		assert.NoError(t, validRecord().Validate())
	})

	t.Run("Unknown Type", func(t *testing.T) {
		r := validRecord()
		r.Type = "refund"
		assert.ErrorContains(t, r.Validate(), "record type must be income or expense")
	})

	t.Run("Zero Amount", func(t *testing.T) {
		r := validRecord()
		r.Amount = decimal.Zero
		assert.ErrorContains(t, r.Validate(), "amount cannot be zero")
	})

	t.Run("Empty Category", func(t *testing.T) {
		r := validRecord()
		r.Category = ""
		assert.ErrorContains(t, r.Validate(), "category cannot be empty")
	})

	t.Run("Zero Date", func(t *testing.T) {
		r := validRecord()
		r.Date = time.Time{}
		assert.ErrorContains(t, r.Validate(), "date must be set")
	})
}

func TestRecordEffect(t *testing.T) {
	r := validRecord()
	r.NormalizeAmount()
	assert.True(t, decimal.NewFromInt(-30).Equal(r.Effect()))
}
