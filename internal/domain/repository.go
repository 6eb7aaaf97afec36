package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransactionSource defines the interface for the collaborator that converts
// a tabular source into the transaction records consumed by the calculators.
type TransactionSource interface {
	// Load reads and converts every record from the source.
	Load(ctx context.Context) ([]Transaction, error)
}

// ReportSink defines the interface for the optional collaborator that
// receives a finished report. It is invoked after a report function returns,
// never baked into the computation itself.
type ReportSink interface {
	// Save persists or forwards a finished report.
	Save(ctx context.Context, report *Report) error
}

// QuoteProvider defines the interface for fetching the latest price of a
// single ticker symbol.
type QuoteProvider interface {
	// GetPrice returns the latest price for symbol, rounded to 2 decimal places.
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// RateProvider defines the interface for fetching currency rates against the
// user's base currency.
type RateProvider interface {
	// GetRates returns one rate per requested currency code.
	// Currencies unknown to the provider are omitted, not an error.
	GetRates(ctx context.Context, currencies []string) ([]CurrencyRate, error)
}
