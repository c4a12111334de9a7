package metrics

import (
	"fmt"

	"github.com/daryltucker/euroeval-report/internal/config"
)

// Label pairs a harness metric name with its column label.
type Label struct {
	Metric string
	Label  string
}

// Labels is an ordered metric label table.
type Labels []Label

// DefaultLabels is the table used for the EuroEval paper tables.
var DefaultLabels = Labels{
	{Metric: "test_mcc", Label: "MCC"},
	{Metric: "test_macro_f1", Label: "Ma F1"},
	{Metric: "test_micro_f1_no_misc", Label: "Mi F1 no misc"},
	{Metric: "test_f1", Label: "F1"},
	{Metric: "test_micro_f1", Label: "Mi F1"},
	{Metric: "test_em", Label: "EM"},
}

// LabelsFromConfig converts the config table, falling back to DefaultLabels
// when it is empty.
func LabelsFromConfig(cfg []config.MetricLabel) Labels {
	if len(cfg) == 0 {
		return DefaultLabels
	}
	out := make(Labels, len(cfg))
	for i, ml := range cfg {
		out[i] = Label{Metric: ml.Metric, Label: ml.Label}
	}
	return out
}

// Lookup returns the label for metric.
func (l Labels) Lookup(metric string) (string, bool) {
	for _, e := range l {
		if e.Metric == metric {
			return e.Label, true
		}
	}
	return "", false
}

// UnknownMetricError reports a metric with no label. Dropping it would
// silently change the report, so it is fatal.
type UnknownMetricError struct {
	Metric string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("no display label for metric %q (add it to metric_labels)", e.Metric)
}
