package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/output/styles"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/pterm/pterm"
)

// TerminalRenderer writes styled output for interactive terminals
type TerminalRenderer struct {
	output io.Writer
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{output: w}
}

// RenderSummary renders the outcome of a render run
func (r *TerminalRenderer) RenderSummary(summary types.Summary) error {
	var b strings.Builder

	if summary.Discovered == 0 {
		b.WriteString(styles.Render("Warning", "No templates found under "+summary.InputRoot))
		b.WriteString("\n")
		b.WriteString(styles.Render("Muted", "Created "+summary.OutputRoot))
		b.WriteString("\n")
		return r.write(b.String())
	}

	headline := fmt.Sprintf("Rendered %s %s", styles.Render("Count", fmt.Sprint(summary.Processed)), plural(summary.Processed, "template"))
	if summary.Complete() {
		b.WriteString(styles.Render("Success", "✓ ") + headline)
	} else {
		b.WriteString(styles.Render("Warning", "! ") + headline + fmt.Sprintf(" of %d", summary.Discovered))
	}
	b.WriteString(" " + styles.Render("Muted", "into "+summary.OutputRoot))
	b.WriteString("\n\n")

	table, err := r.table(summary)
	if err != nil {
		return err
	}
	b.WriteString(table)
	return r.write(b.String())
}

// RenderPlan renders the mappings a render run would produce
func (r *TerminalRenderer) RenderPlan(summary types.Summary) error {
	var b strings.Builder

	b.WriteString(styles.Render("Header", "Templates in "+summary.InputRoot))
	b.WriteString("\n")

	if summary.Discovered == 0 {
		b.WriteString(styles.Render("Muted", "No templates found"))
		b.WriteString("\n")
		return r.write(b.String())
	}

	table, err := r.table(summary)
	if err != nil {
		return err
	}
	b.WriteString(table)
	b.WriteString("\n")
	b.WriteString(styles.Render("Muted", fmt.Sprintf("%d %s would be written to %s",
		summary.Discovered, plural(summary.Discovered, "file"), summary.OutputRoot)))
	b.WriteString("\n")
	return r.write(b.String())
}

// RenderError renders an error with its code
func (r *TerminalRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}

	line := fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, styles.Render("Error", err.Error()))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line = fmt.Sprintf("%s %s %s", pterm.Error.Prefix.Text, styles.Render("Code", string(code)), styles.Render("Error", errors.GetErrorMessage(err)))
	}
	return r.write(line + "\n")
}

// RenderMessage renders a simple message
func (r *TerminalRenderer) RenderMessage(msg string) error {
	return r.write(styles.Render("Info", msg) + "\n")
}

func (r *TerminalRenderer) table(summary types.Summary) (string, error) {
	data := pterm.TableData{{"Template", "Output"}}
	data = append(data, mappingRows(summary)...)

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render mapping table")
	}
	return rendered + "\n", nil
}

func (r *TerminalRenderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}
