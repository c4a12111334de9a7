package engine

import (
	"github.com/daryltucker/euroeval-report/internal/ingest"
	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
)

type runKey struct {
	dataset string
	model   string
}

// Pending returns the best-lr entries whose (dataset, model) pair has no
// record in the final results file yet. A missing results file means
// nothing has finished.
func Pending(bestLRsPath, finalResultsPath, failedMarker string) ([]model.BestLR, error) {
	best, err := ingest.LoadBestLRs(bestLRsPath)
	if err != nil {
		return nil, err
	}

	done := make(map[runKey]bool)
	records, _, err := (&ingest.Reader{FailedMarker: failedMarker}).Load(finalResultsPath)
	if err != nil {
		output.Logger.Warn("Final results not readable, treating every run as pending", "file", finalResultsPath, "error", err)
	}
	for _, r := range records {
		done[runKey{dataset: r.Dataset, model: r.Model}] = true
	}

	var pending []model.BestLR
	for _, b := range best {
		if done[runKey{dataset: b.Dataset, model: b.Model}] {
			output.Logger.Debug("Result already exists, skipping", "dataset", b.Dataset, "model", b.Model)
			continue
		}
		pending = append(pending, b)
	}
	return pending, nil
}
