package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ch3rk4/kopilka-backend/internal/adapter/csvsource"
	marketapi "github.com/ch3rk4/kopilka-backend/internal/adapter/marketdata"
	"github.com/ch3rk4/kopilka-backend/internal/adapter/reportsink"
	"github.com/ch3rk4/kopilka-backend/internal/config"
	"github.com/ch3rk4/kopilka-backend/internal/domain"
	"github.com/ch3rk4/kopilka-backend/internal/usecase/investment"
	"github.com/ch3rk4/kopilka-backend/internal/usecase/marketdata"
	"github.com/ch3rk4/kopilka-backend/internal/usecase/report"
	"github.com/ch3rk4/kopilka-backend/internal/usecase/summary"
)

// AnalysisResult is the single JSON document the analyzer prints.
type AnalysisResult struct {
	Cards            []domain.CardSummary    `json:"cards"`
	TopTransactions  []domain.TopTransaction `json:"top_transactions"`
	CategoryReport   []domain.CategoryEntry  `json:"category_report,omitempty"`
	MarketSnapshot   *domain.MarketSnapshot  `json:"market_snapshot,omitempty"`
	InvestmentMonth  string                  `json:"investment_month,omitempty"`
	InvestmentAmount *decimal.Decimal        `json:"investment_amount,omitempty"`
}

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// 1. Load configuration (.env is optional)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", "error", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// 2. Load user settings and transaction records
	settings, err := config.LoadUserSettings(cfg.SettingsPath)
	if err != nil {
		logger.Error("Failed to load user settings", "error", err)
		os.Exit(1)
	}

	source := csvsource.NewLoader(cfg.OperationsPath)
	transactions, err := source.Load(ctx)
	if err != nil {
		logger.Error("Failed to load operations", "error", err, "path", cfg.OperationsPath)
		os.Exit(1)
	}
	logger.Info("Loaded operations", "count", len(transactions), "path", cfg.OperationsPath)

	result := AnalysisResult{}

	// 3. Card summaries and top transactions
	result.Cards, err = summary.AnalyzeCards(transactions)
	if err != nil {
		logger.Error("Failed to analyze cards", "error", err)
		os.Exit(1)
	}
	result.TopTransactions, err = summary.TopTransactions(transactions, cfg.TopCount)
	if err != nil {
		logger.Error("Failed to rank transactions", "error", err)
		os.Exit(1)
	}

	// 4. Category spending report (optional)
	if cfg.Category != "" {
		sink := reportsink.NewJSONSink(os.Stderr)
		reportService := report.NewReportService(sink)
		result.CategoryReport, err = reportService.SpendingByCategory(ctx, transactions, cfg.Category, "")
		if err != nil {
			logger.Error("Failed to build category report", "error", err, "category", cfg.Category)
			os.Exit(1)
		}
		logger.Info("Category report built", "category", cfg.Category, "entries", len(result.CategoryReport))
	}

	// 5. Market snapshot (optional, needs an API key)
	if cfg.AlphaVantageAPIKey != "" && (len(settings.UserCurrencies) > 0 || len(settings.UserStocks) > 0) {
		quotes, err := marketapi.NewAlphaVantageClient(cfg.AlphaVantageAPIKey)
		if err != nil {
			logger.Error("Failed to initialize quote provider", "error", err)
			os.Exit(1)
		}
		rates := marketapi.NewExchangeRateClient(cfg.BaseCurrency)

		marketService := marketdata.NewMarketDataService(rates, quotes)
		snapshotCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
		snapshot, err := marketService.Snapshot(snapshotCtx, settings)
		cancel()
		if err != nil {
			// Market data is enrichment; the analysis still stands without it.
			logger.Warn("Market snapshot unavailable", "error", err)
		} else {
			result.MarketSnapshot = snapshot
		}
	}

	// 6. Round-up investment total (optional)
	month := cfg.InvestmentMonth
	if month == "" {
		month = time.Now().Format(domain.MonthLayout)
	}
	total, err := investment.InvestmentBank(month, transactions, cfg.RoundingLimit)
	if err != nil {
		logger.Error("Failed to calculate investment amount", "error", err, "month", month)
		os.Exit(1)
	}
	result.InvestmentMonth = month
	result.InvestmentAmount = &total
	logger.Info("Investment amount calculated", "month", month, "amount", total.String())

	// 7. Print the result document
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("Failed to encode result", "error", err)
		os.Exit(1)
	}
}
