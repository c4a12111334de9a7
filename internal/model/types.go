/*
PURPOSE:
  Defines the core data structures used throughout euroeval-report.
  These models represent evaluation result records, their per-configuration
  entries, and the best learning rate hand-off record.

REQUIREMENTS:
  User-specified:
  - One record per model x dataset x hyperparameter configuration.
  - Keep the metric order of the source record (it drives the column labels).

  Implementation-discovered:
  - Harness writes `results` either as {raw,total} or as {<lr>: {raw,total}}.
    The shape is resolved once at parse time into an explicit Kind.
  - Need JSON tags for the best-lr hand-off file.

ARCHITECTURE INTEGRATION:
  - Used by: internal/ingest, internal/metrics, internal/selection,
    internal/aggregate, internal/render, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Optional numbers are pointers; nil means absent.

USAGE:
  rec := model.ResultRecord{...}
  name := rec.DisplayName()

SELF-HEALING INSTRUCTIONS:
  - If the harness output changes shape, update internal/ingest/results.go first.

RELATED FILES:
  - internal/ingest/results.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new record fields.
*/

package model

import (
	"math"
	"strings"
)

// SESuffix marks a metric as the standard error of the metric with the same base name.
const SESuffix = "_se"

// ResultsKind tells whether a record holds one or several configurations.
type ResultsKind int

const (
	// ResultsSingle is a record whose configuration was already selected.
	ResultsSingle ResultsKind = iota
	// ResultsMulti is a record keyed by configuration (e.g. learning rate).
	ResultsMulti
)

func (k ResultsKind) String() string {
	switch k {
	case ResultsSingle:
		return "single"
	case ResultsMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ResultRecord represents one evaluation outcome as written by the harness.
type ResultRecord struct {
	Model         string
	Dataset       string
	Task          string
	Languages     []string
	NumParameters *float64
	Results       Results
}

// DisplayName returns the final path segment of the model identifier.
func (r ResultRecord) DisplayName() string {
	return DisplayName(r.Model)
}

// PrimaryLanguage returns the first dataset language, or "" if there is none.
func (r ResultRecord) PrimaryLanguage() string {
	if len(r.Languages) == 0 {
		return ""
	}
	return r.Languages[0]
}

// DisplayName strips any "org/" style prefix from a model identifier.
func DisplayName(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}

// Results is the typed form of the record's `results` object.
type Results struct {
	Kind    ResultsKind
	Single  *ResultEntry
	Configs []ConfigEntry
}

// Total returns the aggregate metrics used for reporting. For multi-configuration
// records this is the first configuration in source order.
func (r Results) Total() Total {
	switch r.Kind {
	case ResultsSingle:
		if r.Single != nil {
			return r.Single.Total
		}
	case ResultsMulti:
		if len(r.Configs) > 0 {
			return r.Configs[0].Entry.Total
		}
	}
	return nil
}

// ConfigEntry is one configuration of a multi-configuration record.
type ConfigEntry struct {
	ID    string
	Entry ResultEntry
}

// ResultEntry holds per-example scores and their aggregates.
type ResultEntry struct {
	Raw   []map[string]float64
	Total Total
}

// Metric is one named aggregate value. A nil Value means the harness wrote null.
type Metric struct {
	Name  string
	Value *float64
}

// IsSE reports whether the metric is a standard-error entry.
func (m Metric) IsSE() bool {
	return strings.HasSuffix(m.Name, SESuffix)
}

// Total is an ordered list of aggregate metrics, in source order.
type Total []Metric

// Lookup returns the metric with the given name.
func (t Total) Lookup(name string) (Metric, bool) {
	for _, m := range t {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// MetricValue is a metric value with its optional standard error.
type MetricValue struct {
	Value  *float64
	StdErr *float64
}

// Present reports whether the value is set and is a number.
func (v MetricValue) Present() bool {
	return v.Value != nil && !math.IsNaN(*v.Value)
}

// HasStdErr reports whether a usable standard error is attached.
func (v MetricValue) HasStdErr() bool {
	return v.StdErr != nil && !math.IsNaN(*v.StdErr)
}

// BestLR is the hand-off record consumed by the final-training job launcher.
type BestLR struct {
	Dataset  string  `json:"dataset"`
	Model    string  `json:"model"`
	Language string  `json:"language"`
	BestLR   string  `json:"best_lr"`
	MeanF1   float64 `json:"mean_f1"`
}
