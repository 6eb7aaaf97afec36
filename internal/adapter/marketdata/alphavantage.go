package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Alpha Vantage GLOBAL_QUOTE provider (simple, cached)

var (
	ErrPriceNotFound  = errors.New("price not found")
	ErrAPIKeyMissing  = errors.New("alpha vantage API key not set")
	ErrAPIRateLimited = errors.New("alpha vantage rate limit or information note")
)

const defaultAlphaVantageURL = "https://www.alphavantage.co"

// AlphaVantageClient fetches stock quotes from the Alpha Vantage GLOBAL_QUOTE
// endpoint. Quotes are cached per symbol for the configured TTL.
// Implements domain.QuoteProvider.
type AlphaVantageClient struct {
	apiKey  string
	baseURL string
	cli     *http.Client
	ttl     time.Duration

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

type cachedQuote struct {
	price   decimal.Decimal
	fetched time.Time
}

// NewAlphaVantageClient creates a client for the production endpoint.
func NewAlphaVantageClient(apiKey string) (*AlphaVantageClient, error) {
	return newAlphaVantageClient(apiKey, defaultAlphaVantageURL)
}

// NewAlphaVantageClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point the client at a local server.
func NewAlphaVantageClientWithBaseURL(apiKey, baseURL string) (*AlphaVantageClient, error) {
	return newAlphaVantageClient(apiKey, baseURL)
}

func newAlphaVantageClient(apiKey, baseURL string) (*AlphaVantageClient, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, ErrAPIKeyMissing
	}
	return &AlphaVantageClient{
		apiKey:  key,
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     &http.Client{Timeout: 8 * time.Second},
		ttl:     60 * time.Second,
		cache:   make(map[string]cachedQuote),
	}, nil
}

// GetPrice returns the latest quote for symbol, rounded to 2 decimal places.
func (c *AlphaVantageClient) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return decimal.Zero, ErrPriceNotFound
	}

	// cache hit?
	c.mu.RLock()
	if cached, ok := c.cache[symbol]; ok && time.Since(cached.fetched) < c.ttl {
		c.mu.RUnlock()
		return cached.price, nil
	}
	c.mu.RUnlock()

	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("alphavantage http %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return decimal.Zero, err
	}
	if _, ok := raw["Note"]; ok {
		return decimal.Zero, ErrAPIRateLimited
	}
	if _, ok := raw["Information"]; ok {
		return decimal.Zero, ErrAPIRateLimited
	}
	quote, ok := raw["Global Quote"].(map[string]any)
	if !ok || len(quote) == 0 {
		return decimal.Zero, ErrPriceNotFound
	}

	priceStr, _ := quote["05. price"].(string)
	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrPriceNotFound
	}
	price = price.Round(2)

	c.mu.Lock()
	c.cache[symbol] = cachedQuote{price: price, fetched: time.Now()}
	c.mu.Unlock()

	return price, nil
}
