package reportsink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// JSONSink writes finished reports as indented JSON to a caller-supplied
// writer, one document per report.
// Implements domain.ReportSink.
type JSONSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONSink creates a sink over the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// Save encodes the report to the underlying writer.
func (s *JSONSink) Save(_ context.Context, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report %s: %w", report.Name, err)
	}
	return nil
}
