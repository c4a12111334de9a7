package engine

import (
	"sort"

	"github.com/samber/lo"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/config"
	"github.com/daryltucker/euroeval-report/internal/ingest"
	"github.com/daryltucker/euroeval-report/internal/model"
)

// ModelInfo describes one model seen in a results file.
type ModelInfo struct {
	Model    string
	Category string
	Records  int
}

// ListModels returns the distinct display models of cfg.Input, sorted by name.
func ListModels(cfg *config.Config) ([]ModelInfo, error) {
	records, _, err := (&ingest.Reader{FailedMarker: cfg.FailedMarker}).Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	cats := aggregate.NewStaticCategories(cfg.MonolingualModels)
	counts := lo.CountValuesBy(records, func(r model.ResultRecord) string { return r.DisplayName() })

	infos := make([]ModelInfo, 0, len(counts))
	for name, n := range counts {
		infos = append(infos, ModelInfo{Model: name, Category: aggregate.CategoryOf(cats, name), Records: n})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Model < infos[j].Model })
	return infos, nil
}
