/*
PURPOSE:
  High-level runners that orchestrate each report pipeline.
  Load results -> select / aggregate -> render -> write.

REQUIREMENTS:
  User-specified:
  - Produce the LaTeX tables from the final results file.
  - Produce the best learning rate hand-off file from the hyperparameter
    search results.

  Implementation-discovered:
  - Needs to report progress to CLI.
  - Output files are replaced atomically; an interrupted run leaves the
    previous document in place.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/ingest, internal/selection, internal/aggregate,
    internal/render, internal/output

ERROR HANDLING:
  - Bad input lines are logged and skipped (resilience).
  - Metric errors abort the run; a partial report is worse than none.

IMPLEMENTATION RULES:
  - Single pass, single goroutine.
  - Configuration is passed in, never read from globals.

USAGE:
  engine.RunTables(cfg)
  engine.RunBestLRs(cfg, "")

SELF-HEALING INSTRUCTIONS:
  - If a stage fails, run with --debug to see per-record decisions.

RELATED FILES:
  - internal/engine/merge.go
  - internal/engine/pending.go

MAINTENANCE:
  - Update when adding pipeline stages.
*/

package engine

import (
	"fmt"
	"io"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/config"
	"github.com/daryltucker/euroeval-report/internal/ingest"
	"github.com/daryltucker/euroeval-report/internal/metrics"
	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
	"github.com/daryltucker/euroeval-report/internal/render"
	"github.com/daryltucker/euroeval-report/internal/selection"
)

// Aggregate loads cfg.Input and builds the per-language report.
func Aggregate(cfg *config.Config) (*aggregate.Report, error) {
	reader := &ingest.Reader{FailedMarker: cfg.FailedMarker}
	records, _, err := reader.Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	rep, err := aggregate.Aggregate(
		records,
		aggregate.NewStaticCategories(cfg.MonolingualModels),
		metrics.LabelsFromConfig(cfg.MetricLabels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", cfg.Input, err)
	}
	return rep, nil
}

// RunTables renders the report document to cfg.Output.
func RunTables(cfg *config.Config) error {
	r, err := render.New(cfg.Format, renderOptions(cfg))
	if err != nil {
		return err
	}

	rep, err := Aggregate(cfg)
	if err != nil {
		return err
	}

	if err := output.WriteFileAtomic(cfg.Output, func(w io.Writer) error {
		return r.Render(w, rep)
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	output.Logger.Info("Tables written", "file", cfg.Output, "format", cfg.Format, "languages", len(rep.Groups))
	return nil
}

// RunSummary prints the best models per dataset to w.
func RunSummary(cfg *config.Config, w io.Writer, styled bool) error {
	rep, err := Aggregate(cfg)
	if err != nil {
		return err
	}
	r := &render.SummaryRenderer{Options: renderOptions(cfg), Styled: styled}
	return r.Render(w, rep)
}

// RunBestLRs selects the best learning rate for every record of
// cfg.HyperparameterInput and writes the hand-off file. csvPath is optional.
func RunBestLRs(cfg *config.Config, csvPath string) error {
	reader := &ingest.Reader{FailedMarker: cfg.FailedMarker}
	records, _, err := reader.Load(cfg.HyperparameterInput)
	if err != nil {
		return err
	}

	best, err := selection.SelectAll(records)
	if err != nil {
		return fmt.Errorf("failed to select learning rates from %s: %w", cfg.HyperparameterInput, err)
	}

	for _, b := range best {
		output.Logger.Info("Best learning rate",
			"dataset", b.Dataset,
			"language", b.Language,
			"model", b.Model,
			"best_lr", b.BestLR,
			"mean_f1", fmt.Sprintf("%.2f", b.MeanF1),
		)
	}

	if err := output.WriteFileAtomic(cfg.BestLRsOutput, func(w io.Writer) error {
		return writeBestLRs(output.NewJSONWriter(w), best)
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.BestLRsOutput, err)
	}

	if csvPath != "" {
		if err := output.WriteFileAtomic(csvPath, func(w io.Writer) error {
			cw, err := output.NewCSVWriter(w)
			if err != nil {
				return err
			}
			return writeBestLRs(cw, best)
		}); err != nil {
			return fmt.Errorf("failed to write %s: %w", csvPath, err)
		}
	}

	output.Logger.Info("Best learning rates written", "file", cfg.BestLRsOutput, "records", len(best))
	return nil
}

type bestLRWriter interface {
	Write(model.BestLR) error
}

func writeBestLRs(w bestLRWriter, best []model.BestLR) error {
	for _, b := range best {
		if err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func renderOptions(cfg *config.Config) render.Options {
	return render.Options{Languages: cfg.Languages, Caption: cfg.Caption}
}
