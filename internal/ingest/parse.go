/*
PURPOSE:
  Turns one line of harness output (JSONL) into a typed model.ResultRecord.

REQUIREMENTS:
  User-specified:
  - Malformed lines are skipped with a warning, never abort the run.
  - Records of failed runs (model contains the failed marker) are excluded.

  Implementation-discovered:
  - Harness lines may contain bare NaN (Python json). See quoteNonFinite.
  - num_model_parameters is sometimes missing or not a number.
  - `results` key order matters, so it is decoded with a token decoder,
    the rest of the record through a generic document.

ARCHITECTURE INTEGRATION:
  - Called by: internal/ingest/reader.go
  - Produces: internal/model.ResultRecord

ERROR HANDLING:
  - Every failure is returned as a *ParseError.

USAGE:
  rec, err := ingest.ParseLine(line)
*/

package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/daryltucker/euroeval-report/internal/model"
)

type recordHeader struct {
	Model         string   `mapstructure:"model"`
	Dataset       string   `mapstructure:"dataset"`
	Task          string   `mapstructure:"task"`
	Languages     []string `mapstructure:"dataset_languages"`
	NumParameters any      `mapstructure:"num_model_parameters"`
}

// ParseLine parses one JSON line into a record.
func ParseLine(line []byte) (*model.ResultRecord, error) {
	line = quoteNonFinite(line)

	var doc any
	if err := json.Unmarshal(line, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := validateRecord(doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	var hdr recordHeader
	if err := mapstructure.Decode(doc, &hdr); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode record: %w", err)}
	}

	var body struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(line, &body); err != nil {
		return nil, &ParseError{Err: err}
	}
	results, err := decodeResults(body.Results)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	rec := &model.ResultRecord{
		Model:     hdr.Model,
		Dataset:   hdr.Dataset,
		Task:      hdr.Task,
		Languages: hdr.Languages,
		Results:   results,
	}
	if n, ok := hdr.NumParameters.(float64); ok {
		rec.NumParameters = &n
	}
	return rec, nil
}
