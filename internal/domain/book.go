package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is a user's ledger. It is the root aggregate for records, transfers
// and (via asset groups) assets. Deleting a book cascades to its records and
// transfers at the schema level.
type Book struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Note        string
	MonthlyGoal *decimal.Decimal // NULL when no goal is set
}

// Validate ensures the book adheres to domain rules
func (b *Book) Validate() error {
	if b.Name == "" {
		return errors.New("book name cannot be empty")
	}
	if b.MonthlyGoal != nil && b.MonthlyGoal.IsNegative() {
		return errors.New("monthly goal cannot be negative")
	}
	return nil
}
