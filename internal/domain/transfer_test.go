package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransfer() *Transfer {
	from := uuid.New()
	to := uuid.New()
	return &Transfer{
		ID:          uuid.New(),
		BookID:      uuid.New(),
		FromAssetID: &from,
		ToAssetID:   &to,
		Amount:      decimal.NewFromInt(100),
		Date:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransferValidate(t *testing.T) {
	t.Run("Valid Transfer", func(t *testing.T) {
		assert.NoError(t, validTransfer().Validate())
	})

	t.Run("Missing From Asset", func(t *testing.T) {
		tr := validTransfer()
		tr.FromAssetID = nil
		assert.ErrorContains(t, tr.Validate(), "must reference")
	})

	t.Run("Missing To Asset", func(t *testing.T) {
		tr := validTransfer()
		tr.ToAssetID = nil
		assert.ErrorContains(t, tr.Validate(), "must reference")
	})

	t.Run("Same Asset Both Sides", func(t *testing.T) {
		tr := validTransfer()
		tr.ToAssetID = tr.FromAssetID
		assert.ErrorContains(t, tr.Validate(), "must differ")
	})

	t.Run("Zero Amount", func(t *testing.T) {
		tr := validTransfer()
		tr.Amount = decimal.Zero
		assert.ErrorContains(t, tr.Validate(), "must be positive")
	})

	t.Run("Negative Amount", func(t *testing.T) {
		tr := validTransfer()
		tr.Amount = decimal.NewFromInt(-50)
		assert.ErrorContains(t, tr.Validate(), "must be positive")
	})

	t.Run("Zero Date", func(t *testing.T) {
		tr := validTransfer()
		tr.Date = time.Time{}
		assert.ErrorContains(t, tr.Validate(), "date must be set")
	})
}
