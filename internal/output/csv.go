/*
PURPOSE:
  Writes best learning rate records to a CSV file, for spreadsheets.

REQUIREMENTS:
  User-specified:
  - Same fields as the JSONL hand-off.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.BestLR

ERROR HANDLING:
  - Returns error on header or record write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter(f)
  w.Write(rec)

RELATED FILES:
  - internal/output/json.go
*/

package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"github.com/daryltucker/euroeval-report/internal/model"
)

// CSVWriter handles writing best-lr records as CSV rows.
type CSVWriter struct {
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the header row.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)

	header := []string{"dataset", "model", "language", "best_lr", "mean_f1"}
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{writer: cw}, nil
}

// Write writes a single record to the CSV output.
func (cw *CSVWriter) Write(r model.BestLR) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.Dataset,
		r.Model,
		r.Language,
		r.BestLR,
		strconv.FormatFloat(r.MeanF1, 'f', 4, 64),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}
