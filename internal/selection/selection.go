/*
PURPOSE:
  Picks the best hyperparameter configuration (learning rate) for each
  model/dataset pair from a hyperparameter search results file.

REQUIREMENTS:
  User-specified:
  - Score = the F1-family metric, or the mean of all F1-family metrics when
    there are several.
  - Highest score wins; ties keep the configuration seen first.

  Implementation-discovered:
  - The score is computed once over the complete set of qualifying metrics.
  - A configuration without any F1 metric must not be silently skipped: the
    chosen learning rate drives the final training jobs.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (best-lrs)
  - Produces: internal/model.BestLR

ERROR HANDLING:
  - *MissingMetricError when a configuration has no qualifying metric.

USAGE:
  lr, score, err := selection.BestConfiguration(rec.Results.Configs)
*/

package selection

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
)

// ScoreMetricSubstring selects the metrics that make up a configuration's score.
const ScoreMetricSubstring = "f1"

// MissingMetricError reports a configuration with nothing to score.
type MissingMetricError struct {
	Config string
}

func (e *MissingMetricError) Error() string {
	if e.Config == "" {
		return "no configurations to select from"
	}
	return fmt.Sprintf("configuration %q has no %s metric", e.Config, ScoreMetricSubstring)
}

// Score is the mean of every present F1-family metric in total.
func Score(total model.Total) (float64, bool) {
	values := lo.FilterMap(total, func(m model.Metric, _ int) (float64, bool) {
		if m.IsSE() || !strings.Contains(m.Name, ScoreMetricSubstring) {
			return 0, false
		}
		if m.Value == nil || math.IsNaN(*m.Value) {
			return 0, false
		}
		return *m.Value, true
	})
	if len(values) == 0 {
		return 0, false
	}
	return lo.Sum(values) / float64(len(values)), true
}

// BestConfiguration returns the configuration with the strictly greatest score.
func BestConfiguration(configs []model.ConfigEntry) (string, float64, error) {
	if len(configs) == 0 {
		return "", 0, &MissingMetricError{}
	}

	bestIdx := -1
	best := math.Inf(-1)
	for i, c := range configs {
		score, ok := Score(c.Entry.Total)
		if !ok {
			return "", 0, &MissingMetricError{Config: c.ID}
		}
		if bestIdx < 0 || score > best {
			bestIdx, best = i, score
		}
	}
	return configs[bestIdx].ID, best, nil
}

// SelectAll runs BestConfiguration for every multi-configuration record, in
// input order. Records whose configuration was already chosen are skipped.
func SelectAll(records []model.ResultRecord) ([]model.BestLR, error) {
	out := make([]model.BestLR, 0, len(records))
	for _, rec := range records {
		if rec.Results.Kind != model.ResultsMulti {
			output.Logger.Debug("Skipping single-configuration record", "model", rec.Model, "dataset", rec.Dataset)
			continue
		}

		lr, score, err := BestConfiguration(rec.Results.Configs)
		if err != nil {
			return nil, fmt.Errorf("model %s, dataset %s: %w", rec.Model, rec.Dataset, err)
		}

		out = append(out, model.BestLR{
			Dataset:  rec.Dataset,
			Model:    rec.Model,
			Language: rec.PrimaryLanguage(),
			BestLR:   lr,
			MeanF1:   score,
		})
	}
	return out, nil
}
