package report

import (
	"context"
	"sort"
	"time"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// Window is how far back from the target date a category report looks.
const Window = 90 * 24 * time.Hour

// ReportService builds category spending reports
type ReportService struct {
	Sink domain.ReportSink // optional, may be nil
}

// NewReportService creates a new ReportService instance.
// sink may be nil when the caller does not want finished reports forwarded.
func NewReportService(sink domain.ReportSink) *ReportService {
	return &ReportService{Sink: sink}
}

// SpendingByCategory reports every transaction in the given category over the
// three months up to asOf.
// Logic:
//  1. Validate category is non-empty and asOf (when given) parses as YYYY-MM-DD;
//     empty asOf means today
//  2. Keep transactions inside [asOf - 90 days, asOf] with a matching category
//  3. Sort ascending by date, amounts at 2 decimal places
//  4. Forward the finished report to the sink when one is configured
//
// A transaction with a malformed date or missing amount fails the whole call
// with a domain.ValidationError.
func (s *ReportService) SpendingByCategory(ctx context.Context, transactions []domain.Transaction, category, asOf string) ([]domain.CategoryEntry, error) {
	if category == "" {
		return nil, domain.NewValidationError("category must not be empty")
	}

	target := time.Now()
	if asOf != "" {
		parsed, err := time.Parse(domain.DateLayout, asOf)
		if err != nil {
			return nil, domain.NewValidationError("invalid report date %q: expected YYYY-MM-DD", asOf)
		}
		target = parsed
	}
	windowStart := target.Add(-Window)

	type dated struct {
		at    time.Time
		entry domain.CategoryEntry
	}

	var matched []dated
	for i, tx := range transactions {
		date, err := tx.Date()
		if err != nil {
			return nil, domain.NewValidationError("transaction %d: %v", i, err)
		}
		amount, err := tx.Amount()
		if err != nil {
			return nil, domain.NewValidationError("transaction %d: %v", i, err)
		}

		if date.Before(windowStart) || date.After(target) {
			continue
		}
		if tx.Category != category {
			continue
		}

		matched = append(matched, dated{
			at: date,
			entry: domain.CategoryEntry{
				Date:        tx.OperationDate,
				Category:    tx.Category,
				Amount:      amount.Round(2),
				Description: tx.Description,
			},
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].at.Before(matched[j].at)
	})

	entries := make([]domain.CategoryEntry, 0, len(matched))
	for _, m := range matched {
		entries = append(entries, m.entry)
	}

	if s.Sink != nil {
		if err := s.Sink.Save(ctx, domain.NewReport("spending_by_category", entries)); err != nil {
			return nil, err
		}
	}

	return entries, nil
}
