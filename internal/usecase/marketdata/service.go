package marketdata

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// MarketDataService assembles the live market data requested by the user's
// settings from its rate and quote providers.
type MarketDataService struct {
	Rates  domain.RateProvider
	Quotes domain.QuoteProvider
}

// NewMarketDataService creates a new MarketDataService instance.
func NewMarketDataService(rates domain.RateProvider, quotes domain.QuoteProvider) *MarketDataService {
	return &MarketDataService{Rates: rates, Quotes: quotes}
}

// Snapshot fetches currency rates and one price per tracked stock.
// The rate request and every quote request run concurrently; the first
// failure cancels the rest and is returned as the call's error.
func (s *MarketDataService) Snapshot(ctx context.Context, settings domain.UserSettings) (*domain.MarketSnapshot, error) {
	snapshot := &domain.MarketSnapshot{
		CurrencyRates: []domain.CurrencyRate{},
		StockPrices:   make([]domain.StockPrice, len(settings.UserStocks)),
	}

	g, gctx := errgroup.WithContext(ctx)

	if len(settings.UserCurrencies) > 0 {
		g.Go(func() error {
			rates, err := s.Rates.GetRates(gctx, settings.UserCurrencies)
			if err != nil {
				return fmt.Errorf("failed to fetch currency rates: %w", err)
			}
			snapshot.CurrencyRates = rates
			return nil
		})
	}

	for i, symbol := range settings.UserStocks {
		i, symbol := i, symbol
		g.Go(func() error {
			price, err := s.Quotes.GetPrice(gctx, symbol)
			if err != nil {
				return fmt.Errorf("failed to fetch price for %s: %w", symbol, err)
			}
			// Each goroutine writes its own slot, so no lock is needed.
			snapshot.StockPrices[i] = domain.StockPrice{Stock: symbol, Price: price}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}
