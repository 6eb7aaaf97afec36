package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

/*
CSV layout

operations.csv
date,amount,card,category,description

Notes:
- date = "2006-01-02" (day precision); passed through as-is, the calculators
  own date validation.
- amount = decimal; an empty cell is carried as a missing amount so the
  calculators can reject the record, a non-numeric cell is a load error.
*/

// expected header columns, in order
var columns = []string{"date", "amount", "card", "category", "description"}

// Loader reads transaction records from a CSV file.
// Implements domain.TransactionSource.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given CSV file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and converts every record from the file.
func (l *Loader) Load(ctx context.Context) ([]domain.Transaction, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operations file: %w", err)
	}
	defer f.Close()

	transactions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return transactions, nil
}

// Parse converts CSV content into transaction records.
func Parse(r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(columns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("operations file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tx := domain.Transaction{
			OperationDate: strings.TrimSpace(record[0]),
			Card:          strings.TrimSpace(record[2]),
			Category:      strings.TrimSpace(record[3]),
			Description:   strings.TrimSpace(record[4]),
		}

		if raw := strings.TrimSpace(record[1]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, raw, err)
			}
			tx.OperationAmount = decimal.NewNullDecimal(amount)
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func checkHeader(header []string) error {
	for i, want := range columns {
		if i >= len(header) || !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("unexpected header: want columns %s", strings.Join(columns, ","))
		}
	}
	return nil
}
