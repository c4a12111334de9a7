package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/metrics"
)

// MarkdownRenderer writes GitHub-flavoured Markdown tables, one per language.
type MarkdownRenderer struct {
	opts Options
}

func (r *MarkdownRenderer) Render(w io.Writer, rep *aggregate.Report) error {
	ew := &errWriter{w: w}
	for i, g := range rep.Groups {
		if i > 0 {
			ew.printf("\n")
		}
		r.table(ew, g)
	}
	return ew.err
}

func (r *MarkdownRenderer) table(ew *errWriter, g aggregate.LanguageGroup) {
	name := r.opts.LanguageName(g.Language)
	ew.printf("## %s (%s)\n\n", EscapeMarkdown(name), EscapeMarkdown(g.Language))

	header := []string{"Model", "N params (M)"}
	sub := []string{"", ""}
	for _, ds := range g.Datasets {
		header = append(header, EscapeMarkdown(ds.Name))
		sub = append(sub, "*"+EscapeMarkdown(strings.Join(ds.Labels, " / "))+"*")
	}
	ew.printf("%s\n", mdRow(header))
	ew.printf("|%s\n", strings.Repeat(" --- |", len(header)))
	ew.printf("%s\n", mdRow(sub))

	ncols := len(header)
	if len(g.Mono) > 0 {
		r.section(ew, aggregate.Monolingual, g.Mono, ncols)
	}
	if len(g.Multi) > 0 {
		r.section(ew, aggregate.Multilingual, g.Multi, ncols)
	}

	ew.printf("\n%s\n", EscapeMarkdown(r.opts.caption(name)))
}

func (r *MarkdownRenderer) section(ew *errWriter, title string, rows []aggregate.Row, ncols int) {
	cols := make([]string, ncols)
	cols[0] = fmt.Sprintf("**%s**", title)
	ew.printf("%s\n", mdRow(cols))

	for _, row := range rows {
		cols := []string{EscapeMarkdown(row.Model), FormatParams(row.NumParameters)}
		for _, c := range row.Cells {
			switch {
			case c == nil:
				cols = append(cols, metrics.Placeholder)
			case c.Best:
				cols = append(cols, "**"+EscapeMarkdown(c.Display)+"**")
			default:
				cols = append(cols, EscapeMarkdown(c.Display))
			}
		}
		ew.printf("%s\n", mdRow(cols))
	}
}

func mdRow(cols []string) string {
	return "| " + strings.Join(cols, " | ") + " |"
}
