package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType represents the type of a ledger record
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// Record represents a single income or expense entry affecting at most one
// asset. The stored amount is signed: expense amounts are negative, income
// amounts positive. The sign is enforced at write time by NormalizeAmount,
// never left to display code.
type Record struct {
	ID                uuid.UUID
	BookID            uuid.UUID
	AssetID           *uuid.UUID // NULL for records not assigned to an asset
	Type              RecordType
	Category          string
	Subcategory       string
	Amount            decimal.Decimal
	Note              string
	Date              time.Time
	IsMarkedTaxReturn bool
	GeneratedBy       *uuid.UUID // schedule that materialized this record, if any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeAmount forces the stored sign to match the record type:
// expenses are stored negative, income non-negative.
func (r *Record) NormalizeAmount() {
	switch r.Type {
	case RecordTypeExpense:
		r.Amount = r.Amount.Abs().Neg()
	case RecordTypeIncome:
		r.Amount = r.Amount.Abs()
	}
}

// Validate ensures the record adheres to domain rules
// Returns an error if validation fails
func (r *Record) Validate() error {
	if r.Type != RecordTypeIncome && r.Type != RecordTypeExpense {
		return errors.New("record type must be income or expense")
	}

	if r.Amount.IsZero() {
		return errors.New("record amount cannot be zero")
	}

	if r.Category == "" {
		return errors.New("record category cannot be empty")
	}

	if r.Date.IsZero() {
		return errors.New("record date must be set")
	}

	return nil
}

// Effect returns the signed balance delta this record contributes to its
// asset for as long as it exists.
func (r *Record) Effect() decimal.Decimal {
	return r.Amount
}
