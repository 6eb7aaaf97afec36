package investment

import (
	"github.com/shopspring/decimal"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// RoundAmount rounds amount up to the nearest multiple of limit.
// An amount that is already an exact multiple is returned unchanged.
// limit is not validated here; InvestmentBank rejects non-positive limits
// before any amount reaches this function.
func RoundAmount(amount decimal.Decimal, limit int64) decimal.Decimal {
	step := decimal.NewFromInt(limit)
	return amount.Div(step).Ceil().Mul(step)
}

// CalculateInvestment returns the spare change for a single transaction: the
// gap between the amount and its round-up target, at cent precision.
// The result is always in [0, limit) for a non-negative amount, and exactly
// zero when the amount is already a multiple of limit.
func CalculateInvestment(amount decimal.Decimal, limit int64) decimal.Decimal {
	return RoundAmount(amount, limit).Sub(amount).Round(2)
}

// InvestmentBank calculates the total amount that can be moved into the
// investment piggy bank for one calendar month.
// Logic:
//  1. Validate month is a YYYY-MM selector and limit is positive
//  2. Reject any record with a malformed date or missing amount
//  3. Skip records outside the target month and non-positive amounts (refunds/income)
//  4. Sum the per-transaction spare change, rounded to 2 decimal places
//
// Validation failures return a domain.ValidationError and no partial total.
// The function is pure and safe for concurrent callers.
func InvestmentBank(month string, transactions []domain.Transaction, limit int64) (decimal.Decimal, error) {
	target, err := domain.ParseMonth(month)
	if err != nil {
		return decimal.Zero, err
	}

	if limit <= 0 {
		return decimal.Zero, domain.NewValidationError("rounding limit must be positive, got %d", limit)
	}

	total := decimal.Zero

	for i, tx := range transactions {
		date, err := tx.Date()
		if err != nil {
			return decimal.Zero, domain.NewValidationError("transaction %d: %v", i, err)
		}

		amount, err := tx.Amount()
		if err != nil {
			return decimal.Zero, domain.NewValidationError("transaction %d: %v", i, err)
		}

		// Out-of-month records are silently excluded, unlike malformed ones.
		if !domain.SameMonth(date, target) {
			continue
		}

		// Only spends contribute; refunds and income carry a non-positive amount.
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		total = total.Add(CalculateInvestment(amount, limit))
	}

	return total.Round(2), nil
}
