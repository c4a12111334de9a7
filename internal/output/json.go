/*
PURPOSE:
  Writes best learning rate records to a JSON Lines file (NDJSON).
  This is the hand-off format read by the final-training job launcher.

REQUIREMENTS:
  User-specified:
  - One {dataset, model, language, best_lr, mean_f1} object per line.

  Implementation-discovered:
  - Non-ASCII model and dataset names must stay readable (no \u escapes
    beyond what encoding/json requires).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.BestLR

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Writer does not own the destination; callers close it.

USAGE:
  w := output.NewJSONWriter(f)
  w.Write(rec)

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/daryltucker/euroeval-report/internal/model"
)

// JSONWriter handles writing best-lr records as JSON lines.
type JSONWriter struct {
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter on w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{encoder: enc}
}

// Write writes a single record as a JSON line.
func (jw *JSONWriter) Write(r model.BestLR) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(r)
}
