/*
PURPOSE:
  Renders an aggregated report into a document: LaTeX tables for the paper,
  Markdown for READMEs, HTML for quick browsing.

REQUIREMENTS:
  User-specified:
  - One table per language, datasets as columns, models as rows.
  - Monolingual and Multilingual sections; best cell per dataset in bold.
  - Parameter counts in millions, two decimals.
  - All text escaped for the target format.

  Implementation-discovered:
  - Language names come from config first, then CLDR (x/text), then the code.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/aggregate.Report

ERROR HANDLING:
  - Returns write errors; unknown formats fail in New().

USAGE:
  r, err := render.New("latex", render.Options{...})
  err = r.Render(w, rep)
*/

package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
	"github.com/daryltucker/euroeval-report/internal/config"
	"github.com/daryltucker/euroeval-report/internal/metrics"
)

// Renderer writes a report document.
type Renderer interface {
	Render(w io.Writer, rep *aggregate.Report) error
}

// Options configures document renderers.
type Options struct {
	// Languages overrides language display names by code.
	Languages map[string]string
	// Caption is the table caption; {{language}} is replaced by the language name.
	Caption string
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	if opts.Caption == "" {
		opts.Caption = config.DefaultCaption
	}
	switch format {
	case "latex", "":
		return &LaTeXRenderer{opts: opts}, nil
	case "markdown", "md":
		return &MarkdownRenderer{opts: opts}, nil
	case "html":
		return &HTMLRenderer{md: MarkdownRenderer{opts: opts}}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// LanguageName returns a human readable name for a language code.
func (o Options) LanguageName(code string) string {
	if name, ok := o.Languages[code]; ok {
		return name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if namer := display.Languages(language.English); namer != nil {
		if name := namer.Name(tag); name != "" {
			return name
		}
	}
	return code
}

func (o Options) caption(languageName string) string {
	return strings.ReplaceAll(o.Caption, "{{language}}", languageName)
}

// FormatParams prints a parameter count in millions.
func FormatParams(n *float64) string {
	if n == nil {
		return metrics.Placeholder
	}
	return fmt.Sprintf("%.2f", *n/1e6)
}

// errWriter keeps the first write error so renderers can write line by line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
