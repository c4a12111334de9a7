package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/metrics"
)

var (
	summaryTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	summaryHeaderStyle = lipgloss.NewStyle().Faint(true)
	summaryBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// SummaryRenderer prints the best model per dataset and category for a terminal.
type SummaryRenderer struct {
	Options Options
	// Styled enables colours; leave it off when not writing to a terminal.
	Styled bool
}

func (r *SummaryRenderer) Render(w io.Writer, rep *aggregate.Report) error {
	ew := &errWriter{w: w}
	if len(rep.Groups) == 0 {
		ew.printf("No results.\n")
		return ew.err
	}

	header := []string{"Dataset", "Labels", "Best " + strings.ToLower(aggregate.Monolingual), "Mean", "Best " + strings.ToLower(aggregate.Multilingual), "Mean"}
	for i, g := range rep.Groups {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s\n", r.style(summaryTitleStyle, fmt.Sprintf("%s (%s)", r.Options.LanguageName(g.Language), g.Language)))

		rows := [][]string{header}
		for _, ds := range g.Datasets {
			mono, monoMean := bestCells(g.BestMono, ds.Name)
			multi, multiMean := bestCells(g.BestMulti, ds.Name)
			rows = append(rows, []string{ds.Name, strings.Join(ds.Labels, " / "), mono, monoMean, multi, multiMean})
		}

		widths := columnWidths(rows)
		for j, row := range rows {
			cells := make([]string, len(row))
			for k, cell := range row {
				padded := runewidth.FillRight(cell, widths[k])
				switch {
				case j == 0:
					padded = r.style(summaryHeaderStyle, padded)
				case (k == 2 || k == 4) && cell != metrics.Placeholder:
					padded = r.style(summaryBestStyle, padded)
				}
				cells[k] = padded
			}
			ew.printf("  %s\n", strings.TrimRight(strings.Join(cells, "  "), " "))
		}
	}
	return ew.err
}

func (r *SummaryRenderer) style(s lipgloss.Style, text string) string {
	if !r.Styled {
		return text
	}
	return s.Render(text)
}

func bestCells(best map[string]aggregate.Best, dataset string) (string, string) {
	b, ok := best[dataset]
	if !ok {
		return metrics.Placeholder, metrics.Placeholder
	}
	return b.Model, fmt.Sprintf("%.2f", b.Mean)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
