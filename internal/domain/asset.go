package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a balance-bearing account (cash, credit card, investment).
// Balance is the running sum of the signed effects of every record and
// transfer applied to the asset since creation or since the last manual
// override. It is maintained incrementally and never recomputed from history,
// so it may only be changed through the balance mutator inside a lock-held
// transaction.
type Asset struct {
	ID           uuid.UUID
	Name         string
	GroupID      *uuid.UUID // NULL when the asset is ungrouped
	Balance      decimal.Decimal
	IsCredit     bool
	CreditLimit  decimal.Decimal
	BillDay      int // day of month, 1-29; 0 when unset
	RepaymentDay int // day of month, 1-29; 0 when unset
	IsTotalAsset bool
	IsNoBudget   bool
	Note         string
}

// Validate ensures the asset adheres to domain rules
// Returns an error if validation fails
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}

	// Billing days are clamped to 1-29 so every month has the day
	if a.BillDay != 0 && (a.BillDay < 1 || a.BillDay > 29) {
		return errors.New("bill day must be between 1 and 29")
	}
	if a.RepaymentDay != 0 && (a.RepaymentDay < 1 || a.RepaymentDay > 29) {
		return errors.New("repayment day must be between 1 and 29")
	}

	if a.CreditLimit.IsNegative() {
		return errors.New("credit limit cannot be negative")
	}

	return nil
}

// AssetGroup is a named collection of assets within a book. The book
// reference is nullable: deleting a book detaches its groups rather than
// deleting them, and deleting a group detaches its assets.
type AssetGroup struct {
	ID     uuid.UUID
	Name   string
	BookID *uuid.UUID
}

// Validate ensures the asset group adheres to domain rules
func (g *AssetGroup) Validate() error {
	if g.Name == "" {
		return errors.New("asset group name cannot be empty")
	}
	return nil
}
