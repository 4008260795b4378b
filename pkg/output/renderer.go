package output

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/types"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderSummary reports a completed render run
	RenderSummary(summary types.Summary) error

	// RenderPlan lists the mappings a render run would write
	RenderPlan(summary types.Summary) error

	// RenderError reports a failed command
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Resolve turns FormatAuto into a concrete format for output: the
// detected format when it is a file, text otherwise
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// NewRenderer creates a renderer for the format, resolving FormatAuto
// against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return NewTerminalRenderer(output), nil
	case FormatText:
		return NewTextRenderer(output), nil
	case FormatJSON:
		return NewJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// relativeTo shortens path for display when it lives under root
func relativeTo(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// mappingRows returns display rows of input and output paths relative to
// their roots
func mappingRows(summary types.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Mappings))
	for _, m := range summary.Mappings {
		rows = append(rows, []string{
			relativeTo(summary.InputRoot, m.Input),
			relativeTo(summary.OutputRoot, m.Output),
		})
	}
	return rows
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
