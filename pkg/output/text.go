package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/types"
)

// TextRenderer writes plain text without colors or styling
type TextRenderer struct {
	output io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{output: w}
}

// RenderSummary renders one line per written file followed by a total
func (r *TextRenderer) RenderSummary(summary types.Summary) error {
	rows := mappingRows(summary)
	for _, row := range rows[:min(summary.Processed, len(rows))] {
		if _, err := fmt.Fprintf(r.output, "%s -> %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "Rendered %d of %d %s into %s\n",
		summary.Processed, summary.Discovered, plural(summary.Discovered, "template"), summary.OutputRoot)
	return err
}

// RenderPlan renders one line per mapping
func (r *TextRenderer) RenderPlan(summary types.Summary) error {
	for _, row := range mappingRows(summary) {
		if _, err := fmt.Fprintf(r.output, "%s -> %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *TextRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		_, werr := fmt.Fprintf(r.output, "Error [%s]: %s\n", code, errors.GetErrorMessage(err))
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *TextRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
