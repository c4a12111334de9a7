/*
PURPOSE:
  Defines the configuration structure and loading logic for euroeval-report.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the monolingual model set, metric labels,
    language names and the table caption.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Metric labels are an ordered list, not a map (label order is stable).
  - Defaults must reproduce the published EuroEval tables without a config file.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (LaTeX output, "failed" marker).

USAGE:
  cfg, err := config.Load("euroeval_report.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new report options.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MetricLabel maps a harness metric name to its column label.
type MetricLabel struct {
	Metric string `yaml:"metric"`
	Label  string `yaml:"label"`
}

// Config represents the full configuration for euroeval-report.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Format is one of latex, markdown, html.
	Format            string   `yaml:"format"`
	MonolingualModels []string `yaml:"monolingual_models"`
	// FailedMarker excludes records whose model contains it (substring match)
	FailedMarker string            `yaml:"failed_marker"`
	Languages    map[string]string `yaml:"languages"`
	MetricLabels []MetricLabel     `yaml:"metric_labels"`
	// Caption may reference {{language}}.
	Caption string `yaml:"caption"`

	HyperparameterInput string `yaml:"hyperparameter_input"`
	BestLRsOutput       string `yaml:"best_lrs_output"`
	FinalResults        string `yaml:"final_results"`
}

// DefaultCaption is the caption used by the published tables.
const DefaultCaption = `Results for tasks included in EuroEval in {{language}} language. In the metrics header, "MCC" is an abbreviation for Matthews Correlation Coefficient, "Ma" represents macro, "Mi" represents micro, and "EM" represents exact match. The best average scores for monolingual and multilingual models are highlighted in bold.`

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  "euroeval_benchmark_results_spesific_lrs.jsonl",
		Output: "tables.tex",
		Format: "latex",
		MonolingualModels: []string{
			"bert-base-finnish-cased-v1",
			"bert-large-finnish-cased-v1",
			"roberta-large-1160k",
			"deberta-v3-base",
			"deberta-v3-large",
		},
		FailedMarker: "failed",
		Languages: map[string]string{
			"fi": "Finnish",
			"sv": "Swedish",
			"en": "English",
		},
		MetricLabels: []MetricLabel{
			{Metric: "test_mcc", Label: "MCC"},
			{Metric: "test_macro_f1", Label: "Ma F1"},
			{Metric: "test_micro_f1_no_misc", Label: "Mi F1 no misc"},
			{Metric: "test_f1", Label: "F1"},
			{Metric: "test_micro_f1", Label: "Mi F1"},
			{Metric: "test_em", Label: "EM"},
		},
		Caption:             DefaultCaption,
		HyperparameterInput: "euroeval_benchmark_results_hyperparameter_search.jsonl",
		BestLRsOutput:       "best_lrs.jsonl",
		FinalResults:        "euroeval_benchmark_results_spesific_lrs.jsonl",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range []string{"euroeval_report.yaml", "report.yaml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks fields that would otherwise fail late in the pipeline.
func (c *Config) Validate() error {
	switch c.Format {
	case "latex", "markdown", "html":
	default:
		return fmt.Errorf("unknown format %q (want latex, markdown or html)", c.Format)
	}
	seen := make(map[string]bool, len(c.MetricLabels))
	for _, ml := range c.MetricLabels {
		if ml.Metric == "" || ml.Label == "" {
			return fmt.Errorf("metric_labels entries need both metric and label")
		}
		if seen[ml.Metric] {
			return fmt.Errorf("metric %q labelled twice", ml.Metric)
		}
		seen[ml.Metric] = true
	}
	return nil
}
