package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssetValidate(t *testing.T) {
	t.Run("Valid Asset", func(t *testing.T) {
		a := &Asset{Name: "Checking", Balance: decimal.NewFromInt(100)}
		assert.NoError(t, a.Validate())
	})

	t.Run("Empty Name", func(t *testing.T) {
		a := &Asset{}
		assert.ErrorContains(t, a.Validate(), "name cannot be empty")
	})

	t.Run("Bill Day Out Of Range", func(t *testing.T) {
		a := &Asset{Name: "Card", IsCredit: true, BillDay: 30}
		assert.ErrorContains(t, a.Validate(), "bill day must be between 1 and 29")
	})

	t.Run("Bill Day Unset Is Allowed", func(t *testing.T) {
		a := &Asset{Name: "Card", IsCredit: true}
		assert.NoError(t, a.Validate())
	})

	t.Run("Repayment Day Out Of Range", func(t *testing.T) {
		a := &Asset{Name: "Card", IsCredit: true, RepaymentDay: 31}
		assert.ErrorContains(t, a.Validate(), "repayment day must be between 1 and 29")
	})

	t.Run("Negative Credit Limit", func(t *testing.T) {
		a := &Asset{Name: "Card", IsCredit: true, CreditLimit: decimal.NewFromInt(-1)}
		assert.ErrorContains(t, a.Validate(), "credit limit cannot be negative")
	})
}

func TestAssetGroupValidate(t *testing.T) {
	t.Run("Valid Group", func(t *testing.T) {
		g := &AssetGroup{Name: "Bank Accounts"}
		assert.NoError(t, g.Validate())
	})

	t.Run("Empty Name", func(t *testing.T) {
		g := &AssetGroup{}
		assert.ErrorContains(t, g.Validate(), "name cannot be empty")
	})
}
