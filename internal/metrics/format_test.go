package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/daryltucker/euroeval-report/internal/config"
	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		total   model.Total
		display string
		labels  []string
	}{
		{
			name:    "empty total is a placeholder",
			total:   model.Total{},
			display: "-",
		},
		{
			name:    "value only",
			total:   model.Total{{Name: "test_f1", Value: f(85.5)}},
			display: "85.50",
			labels:  []string{"F1"},
		},
		{
			name: "value with standard error",
			total: model.Total{
				{Name: "test_mcc", Value: f(60.123)},
				{Name: "test_mcc_se", Value: f(1.457)},
			},
			display: "60.12±1.46",
			labels:  []string{"MCC"},
		},
		{
			name: "source order is kept and standard errors are paired",
			total: model.Total{
				{Name: "test_mcc", Value: f(10)},
				{Name: "test_macro_f1_se", Value: f(2)},
				{Name: "test_mcc_se", Value: f(1)},
				{Name: "test_macro_f1", Value: f(20)},
			},
			display: "10.00±1.00 / 20.00±2.00",
			labels:  []string{"MCC", "Ma F1"},
		},
		{
			name: "NaN and null values are placeholders",
			total: model.Total{
				{Name: "test_f1", Value: f(math.NaN())},
				{Name: "test_em", Value: nil},
			},
			display: "- / -",
			labels:  []string{"F1", "EM"},
		},
		{
			name: "NaN standard error is not shown",
			total: model.Total{
				{Name: "test_em", Value: f(50)},
				{Name: "test_em_se", Value: f(math.NaN())},
			},
			display: "50.00",
			labels:  []string{"EM"},
		},
		{
			name:    "orphan standard error is ignored",
			total:   model.Total{{Name: "test_f1_se", Value: f(1)}},
			display: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.total, DefaultLabels)
			require.NoError(t, err)
			assert.Equal(t, tt.display, got.Display)
			assert.Equal(t, tt.labels, got.Labels)
		})
	}
}

func TestFormat_ValueCountMatchesNonSEKeys(t *testing.T) {
	total := model.Total{
		{Name: "test_mcc", Value: f(1)},
		{Name: "test_mcc_se", Value: f(0.1)},
		{Name: "test_macro_f1", Value: nil},
		{Name: "test_em", Value: f(3)},
		{Name: "test_em_se", Value: nil},
	}
	got, err := Format(total, DefaultLabels)
	require.NoError(t, err)
	assert.Len(t, got.Values, 3)
	assert.Len(t, got.Labels, 3)
}

func TestFormat_UnknownMetric(t *testing.T) {
	_, err := Format(model.Total{{Name: "test_bleu", Value: f(1)}}, DefaultLabels)
	require.Error(t, err)

	var ume *UnknownMetricError
	require.True(t, errors.As(err, &ume))
	assert.Equal(t, "test_bleu", ume.Metric)
}

func TestFormatted_Mean(t *testing.T) {
	got, err := Format(model.Total{
		{Name: "test_mcc", Value: f(10)},
		{Name: "test_macro_f1", Value: f(math.NaN())},
		{Name: "test_em", Value: f(30)},
	}, DefaultLabels)
	require.NoError(t, err)

	mean, ok := got.Mean()
	require.True(t, ok)
	assert.InDelta(t, 20.0, mean, 1e-9)

	empty, err := Format(model.Total{}, DefaultLabels)
	require.NoError(t, err)
	_, ok = empty.Mean()
	assert.False(t, ok)
}

func TestLabelsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultLabels, LabelsFromConfig(nil))

	labels := LabelsFromConfig([]config.MetricLabel{{Metric: "test_bleu", Label: "BLEU"}})
	got, ok := labels.Lookup("test_bleu")
	assert.True(t, ok)
	assert.Equal(t, "BLEU", got)
	_, ok = labels.Lookup("test_f1")
	assert.False(t, ok)
}
