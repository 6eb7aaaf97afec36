package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical date layouts used across the system.
// Operation dates carry a day component, month selectors do not.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Transaction represents a single card operation handed to the calculators
// by a transaction-loading collaborator.
// OperationDate stays a raw string so that malformed dates surface where the
// contract demands it: inside the aggregation, as a hard error.
// OperationAmount is a NullDecimal so that a record with a missing amount can
// be represented and rejected rather than silently defaulting to zero.
type Transaction struct {
	OperationDate   string              // YYYY-MM-DD
	OperationAmount decimal.NullDecimal // invalid = missing in the source
	Card            string
	Category        string
	Description     string
}

// Date parses the transaction's operation date.
// Returns a ValidationError if the date is missing or not YYYY-MM-DD.
func (t Transaction) Date() (time.Time, error) {
	if t.OperationDate == "" {
		return time.Time{}, NewValidationError("transaction has no operation date")
	}
	parsed, err := time.Parse(DateLayout, t.OperationDate)
	if err != nil {
		return time.Time{}, NewValidationError("invalid operation date %q: expected YYYY-MM-DD", t.OperationDate)
	}
	return parsed, nil
}

// Amount returns the transaction's operation amount.
// Returns a ValidationError if the amount is missing.
func (t Transaction) Amount() (decimal.Decimal, error) {
	if !t.OperationAmount.Valid {
		return decimal.Zero, NewValidationError("transaction dated %q has no operation amount", t.OperationDate)
	}
	return t.OperationAmount.Decimal, nil
}

// ParseMonth parses a YYYY-MM month selector.
// Returns a ValidationError on any other shape, including out-of-range months.
func ParseMonth(month string) (time.Time, error) {
	parsed, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, NewValidationError("invalid month format %q: expected YYYY-MM", month)
	}
	return parsed, nil
}

// SameMonth reports whether date falls in the calendar month of target.
// The day component of target is ignored.
func SameMonth(date, target time.Time) bool {
	return date.Year() == target.Year() && date.Month() == target.Month()
}
