/*
PURPOSE:
  Formats the aggregate metrics of one result entry into the cell text
  used by every renderer, and exposes the values used for best-model
  selection.

REQUIREMENTS:
  User-specified:
  - "value±se" with two decimals when a standard error exists, "value" otherwise.
  - Missing or NaN values print as "-".
  - Cells join metrics with " / " in the order the harness wrote them.

  Implementation-discovered:
  - Standard errors are keyed "<metric>_se"; they never become columns.
  - An unlabelled metric must stop the run (UnknownMetricError).

ARCHITECTURE INTEGRATION:
  - Called by: internal/aggregate
  - Consumes: internal/model.Total

ERROR HANDLING:
  - Returns *UnknownMetricError for unmapped metric names.

USAGE:
  f, err := metrics.Format(rec.Results.Total(), labels)
*/

package metrics

import (
	"fmt"
	"math"
	"strings"

	"github.com/daryltucker/euroeval-report/internal/model"
)

// Placeholder is printed for missing values.
const Placeholder = "-"

// NamedValue is one formatted metric.
type NamedValue struct {
	Name  string
	Label string
	model.MetricValue
}

// Formatted is the result of Format.
type Formatted struct {
	Display string
	Values  []NamedValue
	Labels  []string
}

// Format pairs each metric with its standard error and renders the cell text.
func Format(total model.Total, labels Labels) (Formatted, error) {
	var f Formatted
	parts := make([]string, 0, len(total))

	for _, m := range total {
		if m.IsSE() {
			continue
		}
		label, ok := labels.Lookup(m.Name)
		if !ok {
			return Formatted{}, &UnknownMetricError{Metric: m.Name}
		}

		v := model.MetricValue{Value: m.Value}
		if se, ok := total.Lookup(m.Name + model.SESuffix); ok {
			v.StdErr = se.Value
		}

		f.Values = append(f.Values, NamedValue{Name: m.Name, Label: label, MetricValue: v})
		f.Labels = append(f.Labels, label)
		parts = append(parts, FormatValue(v))
	}

	if len(parts) == 0 {
		f.Display = Placeholder
	} else {
		f.Display = strings.Join(parts, " / ")
	}
	return f, nil
}

// FormatValue renders a single metric value.
func FormatValue(v model.MetricValue) string {
	switch {
	case !v.Present():
		return Placeholder
	case v.HasStdErr():
		return fmt.Sprintf("%.2f±%.2f", *v.Value, *v.StdErr)
	default:
		return fmt.Sprintf("%.2f", *v.Value)
	}
}

// Mean averages the present values. ok is false when there are none.
func (f Formatted) Mean() (mean float64, ok bool) {
	var sum float64
	n := 0
	for _, v := range f.Values {
		if !v.Present() {
			continue
		}
		sum += *v.Value
		n++
	}
	if n == 0 {
		return math.NaN(), false
	}
	return sum / float64(n), true
}
