package output

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed syntax.md
var syntaxGuide string

// SyntaxGuide returns the template syntax guide as markdown
func SyntaxGuide() string {
	return syntaxGuide
}

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a custom style
	Width int    // word wrap width, 0 leaves glamour's default
}

// NewMarkdownRenderer creates a markdown renderer that detects the
// terminal background
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. The source is returned
// unchanged if glamour fails.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderMarkdown renders markdown for the given format. Text and JSON
// output get the markdown source.
func RenderMarkdown(content string, format Format) string {
	switch format {
	case FormatTerminal, FormatAuto:
		return NewMarkdownRenderer().Render(content)
	default:
		return content
	}
}
