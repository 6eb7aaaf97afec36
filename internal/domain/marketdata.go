package domain

import "github.com/shopspring/decimal"

// CurrencyRate is the cost of one unit of a foreign currency in the user's
// base currency.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// StockPrice is the latest quote for a single ticker symbol.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// MarketSnapshot bundles the live market data requested by the user's
// settings: currency rates plus one price per tracked stock.
type MarketSnapshot struct {
	CurrencyRates []CurrencyRate `json:"currency_rates"`
	StockPrices   []StockPrice   `json:"stock_prices"`
}

// UserSettings lists the currencies and stocks the user wants on the
// dashboard. Loaded from the user settings file by the config package.
type UserSettings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}
