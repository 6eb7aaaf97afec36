package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report is the envelope handed to a ReportSink after a report function has
// produced its result. The payload is the report-specific slice of entries.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	GeneratedAt time.Time `json:"generated_at"`
	Payload     any       `json:"payload"`
}

// NewReport wraps a computed payload in a Report envelope.
func NewReport(name string, payload any) *Report {
	return &Report{
		ID:          uuid.New(),
		Name:        name,
		GeneratedAt: time.Now(),
		Payload:     payload,
	}
}

// CardSummary aggregates spending for a single card.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// CategoryEntry is one transaction in a category spending report.
type CategoryEntry struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TopTransaction is one entry in a largest-transactions listing.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}
