package render

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/daryltucker/euroeval-report/internal/aggregate"
)

// HTMLRenderer converts the Markdown report to a standalone HTML page.
type HTMLRenderer struct {
	md MarkdownRenderer
}

const htmlTitle = "EuroEval results"

func (r *HTMLRenderer) Render(w io.Writer, rep *aggregate.Report) error {
	var src bytes.Buffer
	if err := r.md.Render(&src, rep); err != nil {
		return err
	}

	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("failed to convert report to HTML: %w", err)
	}

	ew := &errWriter{w: w}
	ew.printf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(htmlTitle))
	ew.printf("%s", body.String())
	ew.printf("</body>\n</html>\n")
	return ew.err
}
