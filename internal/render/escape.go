package render

import "strings"

// latexEscapes is applied in a single pass, so the braces of an inserted
// \textbackslash{} are never escaped again.
var latexEscapes = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`_`, `\_`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

var latexUnescapes = strings.NewReplacer(
	`\textbackslash{}`, `\`,
	`\textasciitilde{}`, `~`,
	`\textasciicircum{}`, `^`,
	`\_`, `_`,
	`\%`, `%`,
	`\&`, `&`,
	`\#`, `#`,
	`\{`, `{`,
	`\}`, `}`,
	`\$`, `$`,
)

// EscapeLaTeX makes s safe to embed in LaTeX text.
func EscapeLaTeX(s string) string {
	return latexEscapes.Replace(s)
}

// UnescapeLaTeX reverses EscapeLaTeX.
func UnescapeLaTeX(s string) string {
	return latexUnescapes.Replace(s)
}

var markdownEscapes = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`)

// EscapeMarkdown escapes characters that would break a table cell or add emphasis.
func EscapeMarkdown(s string) string {
	return markdownEscapes.Replace(s)
}
