package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// AnalyzeCards aggregates spending per card.
// Total spent is the sum of absolute amounts, cashback is 1% of it, both at
// 2 decimal places. Only the last four digits of each card are reported.
// Results are sorted by last digits for a deterministic order.
// A record with a missing amount fails the whole call with a ValidationError.
func AnalyzeCards(transactions []domain.Transaction) ([]domain.CardSummary, error) {
	totals := make(map[string]decimal.Decimal)

	for i, tx := range transactions {
		amount, err := tx.Amount()
		if err != nil {
			return nil, domain.NewValidationError("transaction %d: %v", i, err)
		}
		if tx.Card == "" {
			continue
		}
		digits := lastDigits(tx.Card)
		totals[digits] = totals[digits].Add(amount.Abs())
	}

	summaries := make([]domain.CardSummary, 0, len(totals))
	for digits, total := range totals {
		summaries = append(summaries, domain.CardSummary{
			LastDigits: digits,
			TotalSpent: total.Round(2),
			Cashback:   total.Div(oneHundred).Round(2),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastDigits < summaries[j].LastDigits
	})

	return summaries, nil
}

// TopTransactions returns the n largest transactions by absolute amount, in
// descending order. Ties keep the input order. n larger than the input
// returns everything; n <= 0 returns an empty list.
func TopTransactions(transactions []domain.Transaction, n int) ([]domain.TopTransaction, error) {
	if n <= 0 {
		return []domain.TopTransaction{}, nil
	}

	type ranked struct {
		abs   decimal.Decimal
		entry domain.TopTransaction
	}

	items := make([]ranked, 0, len(transactions))
	for i, tx := range transactions {
		amount, err := tx.Amount()
		if err != nil {
			return nil, domain.NewValidationError("transaction %d: %v", i, err)
		}
		items = append(items, ranked{
			abs: amount.Abs(),
			entry: domain.TopTransaction{
				Date:        tx.OperationDate,
				Amount:      amount.Round(2),
				Category:    tx.Category,
				Description: tx.Description,
			},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].abs.GreaterThan(items[j].abs)
	})

	if n > len(items) {
		n = len(items)
	}

	top := make([]domain.TopTransaction, 0, n)
	for _, item := range items[:n] {
		top = append(top, item.entry)
	}

	return top, nil
}

// lastDigits masks a card number down to its final four digits.
func lastDigits(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
