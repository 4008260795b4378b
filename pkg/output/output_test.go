package output_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/output"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}

func sampleSummary() types.Summary {
	in := filepath.FromSlash("/work/templates")
	out := filepath.FromSlash("/work/build")
	return types.Summary{
		InputRoot:  in,
		OutputRoot: out,
		Mappings: types.MappingSet{
			{Input: filepath.Join(in, "greeting.st"), Output: filepath.Join(out, "greeting.txt")},
			{Input: filepath.Join(in, "a", "b", "c.st"), Output: filepath.Join(out, "a", "b", "c.txt")},
		},
		Discovered: 2,
		Processed:  2,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
	}{
		{"", output.FormatAuto},
		{"auto", output.FormatAuto},
		{"term", output.FormatTerminal},
		{"Terminal", output.FormatTerminal},
		{"plain", output.FormatText},
		{"json", output.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := output.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := output.ParseFormat("xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", output.FormatJSON.String())
	assert.Equal(t, "term", output.FormatTerminal.String())
	assert.Equal(t, "unknown", output.Format(42).String())
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := output.NewRenderer(output.FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &output.TextRenderer{}, r, "non-file writers fall back to text")

	r, err = output.NewRenderer(output.FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &output.JSONRenderer{}, r)

	_, err = output.NewRenderer(output.Format(99), &buf)
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	t.Run("summary lists written files relative to their roots", func(t *testing.T) {
		// Setup
		var buf bytes.Buffer
		r := output.NewTextRenderer(&buf)

		// Execute
		err := r.RenderSummary(sampleSummary())

		// Verify
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "greeting.st -> greeting.txt", lines[0])
		assert.Equal(t, filepath.Join("a", "b", "c.st")+" -> "+filepath.Join("a", "b", "c.txt"), lines[1])
		assert.Contains(t, lines[2], "Rendered 2 of 2 templates")
	})

	t.Run("partial summary stops at the failure", func(t *testing.T) {
		// Setup
		var buf bytes.Buffer
		summary := sampleSummary()
		summary.Processed = 1

		// Execute
		require.NoError(t, output.NewTextRenderer(&buf).RenderSummary(summary))

		// Verify
		assert.NotContains(t, buf.String(), "c.st")
		assert.Contains(t, buf.String(), "Rendered 1 of 2")
	})

	t.Run("coded error", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New(errors.ErrUnresolvedAttribute, "unresolved attribute 'missing'")

		require.NoError(t, output.NewTextRenderer(&buf).RenderError(err))
		assert.Equal(t, "Error [UNRESOLVED_ATTRIBUTE]: unresolved attribute 'missing'\n", buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewTextRenderer(&buf).RenderError(stderrors.New("boom")))
		assert.Equal(t, "Error: boom\n", buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	t.Run("summary with table", func(t *testing.T) {
		// Setup
		var buf bytes.Buffer

		// Execute
		err := output.NewTerminalRenderer(&buf).RenderSummary(sampleSummary())

		// Verify
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Rendered")
		assert.Contains(t, out, "templates")
		assert.Contains(t, out, "Template")
		assert.Contains(t, out, "greeting.txt")
	})

	t.Run("empty run", func(t *testing.T) {
		var buf bytes.Buffer
		summary := types.Summary{InputRoot: "/in", OutputRoot: "/out"}

		require.NoError(t, output.NewTerminalRenderer(&buf).RenderSummary(summary))
		assert.Contains(t, buf.String(), "No templates found under /in")
	})

	t.Run("plan", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, output.NewTerminalRenderer(&buf).RenderPlan(sampleSummary()))
		assert.Contains(t, buf.String(), "2 files would be written")
	})

	t.Run("error shows code", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New(errors.ErrSelfOverwrite, "would overwrite input")

		require.NoError(t, output.NewTerminalRenderer(&buf).RenderError(err))
		assert.Contains(t, buf.String(), "SELF_OVERWRITE")
		assert.Contains(t, buf.String(), "would overwrite input")
	})
}

func TestJSONRenderer(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		// Setup
		var buf bytes.Buffer

		// Execute
		require.NoError(t, output.NewJSONRenderer(&buf).RenderSummary(sampleSummary()))

		// Verify
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "render", decoded["command"])
		assert.Equal(t, float64(2), decoded["processed"])
		assert.Equal(t, true, decoded["complete"])
		assert.Len(t, decoded["mappings"], 2)
	})

	t.Run("empty plan keeps an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewJSONRenderer(&buf).RenderPlan(types.Summary{}))
		assert.Contains(t, buf.String(), `"mappings": []`)
	})

	t.Run("error with details", func(t *testing.T) {
		// Setup
		var buf bytes.Buffer
		err := errors.New(errors.ErrRead, "cannot read").WithDetail(errors.DetailPath, "/in/x.st")

		// Execute
		require.NoError(t, output.NewJSONRenderer(&buf).RenderError(err))

		// Verify
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "READ", decoded["code"])
		assert.Equal(t, "cannot read", decoded["error"])
		assert.Equal(t, "/in/x.st", decoded["details"].(map[string]interface{})["path"])
	})
}

func TestRenderMarkdown(t *testing.T) {
	guide := output.SyntaxGuide()
	require.Contains(t, guide, "# Template syntax")

	assert.Equal(t, guide, output.RenderMarkdown(guide, output.FormatText))

	r := &output.MarkdownRenderer{Style: "notty", Width: 60}
	rendered := r.Render(guide)
	assert.Contains(t, rendered, "Template syntax")
	assert.Contains(t, rendered, "Placeholders")
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, output.FormatText, output.Resolve(output.FormatAuto, &buf))
	assert.Equal(t, output.FormatJSON, output.Resolve(output.FormatJSON, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, output.FormatText, output.Resolve(output.FormatAuto, os.Stdout))
}
