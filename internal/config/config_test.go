package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "latex", cfg.Format)
	assert.Equal(t, "failed", cfg.FailedMarker)
	assert.Len(t, cfg.MonolingualModels, 5)
	assert.Equal(t, "test_mcc", cfg.MetricLabels[0].Metric)
}

func TestLoad_ExplicitFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: results.jsonl.zst
format: html
monolingual_models: [my-bert]
metric_labels:
  - {metric: test_accuracy, label: Acc}
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "results.jsonl.zst", cfg.Input)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, []string{"my-bert"}, cfg.MonolingualModels)
	assert.Equal(t, []MetricLabel{{Metric: "test_accuracy", Label: "Acc"}}, cfg.MetricLabels)
	// untouched fields keep their defaults
	assert.Equal(t, "tables.tex", cfg.Output)
	assert.Equal(t, DefaultCaption, cfg.Caption)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_SearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.yaml"), []byte("format: markdown\n"), 0644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "euroeval_report.yaml"), []byte("format: html\n"), 0644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"yaml", "format: [", "failed to parse"},
		{"format", "format: pdf", "unknown format"},
		{"empty label", "metric_labels: [{metric: test_f1}]", "both metric and label"},
		{"duplicate", "metric_labels: [{metric: test_f1, label: F1}, {metric: test_f1, label: F}]", "labelled twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
