/*
PURPOSE:
  Groups normalized result records into per-language tables and picks the
  best monolingual and multilingual model for every dataset.

REQUIREMENTS:
  User-specified:
  - One table per primary language (first entry of dataset_languages).
  - Best model per dataset and category = highest mean over the record's
    present metrics.
  - Rows sorted by model display name, datasets sorted by name.

  Implementation-discovered:
  - The best-mean baseline is 0: a category whose means are all <= 0 has no
    best model. Metrics are percentages, so this only hides broken runs.
  - A dataset's metric labels come from its first record; all records of a
    dataset are expected to share one metric set.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/metrics
  - Output consumed by: internal/render

ERROR HANDLING:
  - Metric formatting errors (unknown metric) abort with the record identity.

USAGE:
  rep, err := aggregate.Aggregate(records, aggregate.NewStaticCategories(names), labels)
*/

package aggregate

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/daryltucker/euroeval-report/internal/metrics"
	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
)

// Report is the aggregated view of one results file.
type Report struct {
	Groups []LanguageGroup
}

// LanguageGroup is one table.
type LanguageGroup struct {
	Language  string
	Datasets  []Dataset
	Mono      []Row
	Multi     []Row
	BestMono  map[string]Best
	BestMulti map[string]Best
}

// Dataset is a table column.
type Dataset struct {
	Name   string
	Labels []string
}

// Best is the selected model for a dataset and category.
type Best struct {
	Model string
	Mean  float64
}

// Row is one model's line in a table; Cells follow LanguageGroup.Datasets.
type Row struct {
	Model         string
	NumParameters *float64
	Cells         []*Cell
}

// Cell is a formatted result. A nil *Cell means the model has no result for the dataset.
type Cell struct {
	Display string
	Mean    float64
	HasMean bool
	Best    bool
}

type entry struct {
	name      string
	dataset   string
	numParams *float64
	formatted metrics.Formatted
}

// Aggregate builds the report. Records without languages are left out.
func Aggregate(records []model.ResultRecord, cats Categories, labels metrics.Labels) (*Report, error) {
	withLang := lo.Filter(records, func(r model.ResultRecord, _ int) bool {
		if r.PrimaryLanguage() == "" {
			output.Logger.Debug("Skipping record without dataset language", "model", r.Model, "dataset", r.Dataset)
			return false
		}
		return true
	})

	byLang := lo.GroupBy(withLang, func(r model.ResultRecord) string { return r.PrimaryLanguage() })
	langs := lo.Keys(byLang)
	sort.Strings(langs)

	rep := &Report{}
	for _, lang := range langs {
		g, err := buildGroup(lang, byLang[lang], cats, labels)
		if err != nil {
			return nil, err
		}
		rep.Groups = append(rep.Groups, g)
	}
	return rep, nil
}

func buildGroup(lang string, records []model.ResultRecord, cats Categories, labels metrics.Labels) (LanguageGroup, error) {
	g := LanguageGroup{Language: lang}

	entries := make([]entry, 0, len(records))
	for _, r := range records {
		f, err := metrics.Format(r.Results.Total(), labels)
		if err != nil {
			return g, fmt.Errorf("model %s, dataset %s: %w", r.Model, r.Dataset, err)
		}
		entries = append(entries, entry{
			name:      r.DisplayName(),
			dataset:   r.Dataset,
			numParams: r.NumParameters,
			formatted: f,
		})
	}

	firstLabels := make(map[string][]string)
	for _, e := range entries {
		if _, ok := firstLabels[e.dataset]; !ok {
			firstLabels[e.dataset] = e.formatted.Labels
		}
	}
	names := lo.Keys(firstLabels)
	sort.Strings(names)
	for _, ds := range names {
		g.Datasets = append(g.Datasets, Dataset{Name: ds, Labels: firstLabels[ds]})
	}

	mono, multi := lo.FilterReject(entries, func(e entry, _ int) bool { return cats.IsMonolingual(e.name) })
	g.BestMono = bestPerDataset(mono)
	g.BestMulti = bestPerDataset(multi)
	g.Mono = buildRows(mono, g.Datasets, g.BestMono)
	g.Multi = buildRows(multi, g.Datasets, g.BestMulti)

	return g, nil
}

// bestPerDataset keeps, per dataset, the first entry with the strictly
// greatest positive mean.
func bestPerDataset(entries []entry) map[string]Best {
	best := make(map[string]Best)
	for _, e := range entries {
		mean, ok := e.formatted.Mean()
		if !ok {
			continue
		}
		cur, seen := best[e.dataset]
		baseline := 0.0
		if seen {
			baseline = cur.Mean
		}
		if mean > baseline {
			best[e.dataset] = Best{Model: e.name, Mean: mean}
		}
	}
	return best
}

func buildRows(entries []entry, datasets []Dataset, best map[string]Best) []Row {
	models := lo.Uniq(lo.Map(entries, func(e entry, _ int) string { return e.name }))
	sort.Strings(models)

	rows := make([]Row, 0, len(models))
	for _, name := range models {
		mine := lo.Filter(entries, func(e entry, _ int) bool { return e.name == name })
		row := Row{Model: name, NumParameters: mine[0].numParams}

		for _, ds := range datasets {
			e, ok := lo.Find(mine, func(e entry) bool { return e.dataset == ds.Name })
			if !ok {
				row.Cells = append(row.Cells, nil)
				continue
			}
			mean, hasMean := e.formatted.Mean()
			b, hasBest := best[ds.Name]
			row.Cells = append(row.Cells, &Cell{
				Display: e.formatted.Display,
				Mean:    mean,
				HasMean: hasMean,
				Best:    hasBest && b.Model == name,
			})
		}
		rows = append(rows, row)
	}
	return rows
}
