package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/metrics"
)

// LaTeXRenderer writes booktabs table* environments, one per language.
type LaTeXRenderer struct {
	opts Options
}

func (r *LaTeXRenderer) Render(w io.Writer, rep *aggregate.Report) error {
	var lines []string
	for _, g := range rep.Groups {
		lines = append(lines, r.table(g)...)
		lines = append(lines, "")
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func (r *LaTeXRenderer) table(g aggregate.LanguageGroup) []string {
	ncols := 2 + len(g.Datasets)
	lines := []string{
		fmt.Sprintf("%% --- Language: %s ---", EscapeLaTeX(g.Language)),
		`\begin{table*}`,
		`\centering`,
		`\tiny`,
		fmt.Sprintf(`\begin{tabular}{l l %s}`, strings.TrimSpace(strings.Repeat("c ", len(g.Datasets)))),
	}

	header := []string{`\textbf{Model}`, `\textbf{N params (M)}`}
	sub := []string{fmt.Sprintf(`\cmidrule(lr){3-%d} &`, ncols)}
	for _, ds := range g.Datasets {
		header = append(header, fmt.Sprintf(`\textbf{%s}`, EscapeLaTeX(ds.Name)))
		sub = append(sub, fmt.Sprintf(`\textit{%s}`, EscapeLaTeX(strings.Join(ds.Labels, " / "))))
	}
	lines = append(lines,
		strings.Join(header, " & ")+` \\`,
		strings.Join(sub, " & ")+` \\`,
		`\midrule`,
	)

	if len(g.Mono) > 0 {
		lines = append(lines, r.section(aggregate.Monolingual, g.Mono, ncols)...)
	}
	if len(g.Mono) > 0 && len(g.Multi) > 0 {
		lines = append(lines, `\addlinespace`, `\midrule`)
	}
	if len(g.Multi) > 0 {
		lines = append(lines, r.section(aggregate.Multilingual, g.Multi, ncols)...)
	}

	lines = append(lines,
		`\bottomrule`,
		`\end{tabular}`,
		fmt.Sprintf(`\caption{%s}`, r.opts.caption(EscapeLaTeX(r.opts.LanguageName(g.Language)))),
		fmt.Sprintf(`\label{tab:euroeval-%s}`, g.Language),
		`\end{table*}`,
	)
	return lines
}

func (r *LaTeXRenderer) section(title string, rows []aggregate.Row, ncols int) []string {
	lines := []string{fmt.Sprintf(`\multicolumn{%d}{l}{\textbf{%s}} \\`, ncols, EscapeLaTeX(title))}
	for _, row := range rows {
		cols := []string{EscapeLaTeX(row.Model), FormatParams(row.NumParameters)}
		for _, c := range row.Cells {
			switch {
			case c == nil:
				cols = append(cols, metrics.Placeholder)
			case c.Best:
				cols = append(cols, fmt.Sprintf(`\textbf{%s}`, EscapeLaTeX(c.Display)))
			default:
				cols = append(cols, EscapeLaTeX(c.Display))
			}
		}
		lines = append(lines, strings.Join(cols, " & ")+` \\`)
	}
	return lines
}
