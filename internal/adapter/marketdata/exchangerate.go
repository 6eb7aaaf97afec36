package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

const defaultExchangeRateURL = "https://api.exchangerate-api.com"

// ExchangeRateClient fetches currency rates from exchangerate-api.com.
// The API returns how many foreign units one base unit buys; the client
// inverts that into the cost of one foreign unit in the base currency.
// Implements domain.RateProvider.
type ExchangeRateClient struct {
	base    string
	baseURL string
	cli     *http.Client
}

// NewExchangeRateClient creates a client for the production endpoint.
// base is the user's own currency, e.g. "RUB".
func NewExchangeRateClient(base string) *ExchangeRateClient {
	return NewExchangeRateClientWithBaseURL(base, defaultExchangeRateURL)
}

// NewExchangeRateClientWithBaseURL creates a client against a custom
// endpoint. Used by tests to point the client at a local server.
func NewExchangeRateClientWithBaseURL(base, baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{
		base:    strings.ToUpper(strings.TrimSpace(base)),
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     &http.Client{Timeout: 8 * time.Second},
	}
}

// GetRates returns the cost of one unit of each requested currency in the
// base currency, rounded to 2 decimal places. Currencies the API does not
// know are omitted from the result.
func (c *ExchangeRateClient) GetRates(ctx context.Context, currencies []string) ([]domain.CurrencyRate, error) {
	endpoint := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, c.base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchangerate-api http %d", resp.StatusCode)
	}

	var raw struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	rates := make([]domain.CurrencyRate, 0, len(currencies))
	for _, currency := range currencies {
		currency = strings.ToUpper(strings.TrimSpace(currency))
		perBase, ok := raw.Rates[currency]
		if !ok || perBase <= 0 {
			continue
		}
		rate := decimal.NewFromInt(1).Div(decimal.NewFromFloat(perBase)).Round(2)
		rates = append(rates, domain.CurrencyRate{Currency: currency, Rate: rate})
	}

	return rates, nil
}
