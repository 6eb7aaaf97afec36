package report

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// MockReportSink is a mock implementation of ReportSink for testing
type MockReportSink struct {
	mock.Mock
}

func (m *MockReportSink) Save(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func tx(date, amount, category, description string) domain.Transaction {
	return domain.Transaction{
		OperationDate:   date,
		OperationAmount: decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		Category:        category,
		Description:     description,
	}
}

func TestSpendingByCategory_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	service := NewReportService(nil)

	transactions := []domain.Transaction{
		tx("2024-03-10", "250.456", "Groceries", "supermarket"),
		tx("2024-01-05", "100.0", "Groceries", "market"),       // inside the 90-day window
		tx("2023-11-01", "999.0", "Groceries", "too old"),      // before the window
		tx("2024-03-20", "50.0", "Transport", "metro"),         // other category
		tx("2024-04-01", "75.0", "Groceries", "after the cut"), // after asOf
	}

	entries, err := service.SpendingByCategory(ctx, transactions, "Groceries", "2024-03-25")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-05", entries[0].Date)
	assert.Equal(t, "2024-03-10", entries[1].Date)
	assert.True(t, entries[1].Amount.Equal(decimal.RequireFromString("250.46")), "amounts are rounded to cents, got %s", entries[1].Amount)
}

func TestSpendingByCategory_EmptyResult(t *testing.T) {
	ctx := context.Background()
	service := NewReportService(nil)

	entries, err := service.SpendingByCategory(ctx, nil, "Groceries", "2024-03-25")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSpendingByCategory_EmptyCategory(t *testing.T) {
	ctx := context.Background()
	service := NewReportService(nil)

	_, err := service.SpendingByCategory(ctx, nil, "", "2024-03-25")

	assert.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestSpendingByCategory_InvalidAsOfDate(t *testing.T) {
	ctx := context.Background()
	service := NewReportService(nil)

	_, err := service.SpendingByCategory(ctx, nil, "Groceries", "25.03.2024")

	assert.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "invalid report date")
}

func TestSpendingByCategory_MalformedTransactionDate(t *testing.T) {
	ctx := context.Background()
	service := NewReportService(nil)

	transactions := []domain.Transaction{
		tx("not-a-date", "100.0", "Groceries", "broken record"),
	}

	_, err := service.SpendingByCategory(ctx, transactions, "Groceries", "2024-03-25")

	assert.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "transaction 0")
}

func TestSpendingByCategory_SavesThroughSink(t *testing.T) {
	ctx := context.Background()
	mockSink := new(MockReportSink)
	service := NewReportService(mockSink)

	mockSink.On("Save", ctx, mock.MatchedBy(func(report *domain.Report) bool {
		entries, ok := report.Payload.([]domain.CategoryEntry)
		return report.Name == "spending_by_category" && ok && len(entries) == 1
	})).Return(nil)

	transactions := []domain.Transaction{
		tx("2024-03-10", "250.0", "Groceries", "supermarket"),
	}

	entries, err := service.SpendingByCategory(ctx, transactions, "Groceries", "2024-03-25")

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	mockSink.AssertExpectations(t)
}

func TestSpendingByCategory_SinkFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mockSink := new(MockReportSink)
	service := NewReportService(mockSink)

	mockSink.On("Save", ctx, mock.Anything).Return(errors.New("sink unavailable"))

	transactions := []domain.Transaction{
		tx("2024-03-10", "250.0", "Groceries", "supermarket"),
	}

	_, err := service.SpendingByCategory(ctx, transactions, "Groceries", "2024-03-25")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sink unavailable")
}
