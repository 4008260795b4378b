package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tplgen/pkg/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreEmbedded(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.LoadStyles("styles.yaml"))
	})
}

func TestEmbeddedTheme(t *testing.T) {
	names := styles.Current().Names()
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Info", "Muted", "FilePath", "Count", "Code"} {
		assert.Contains(t, names, name)
	}
	assert.IsIncreasing(t, names)
}

func TestStyleAttributes(t *testing.T) {
	assert.True(t, styles.GetStyle("Header").GetBold())
	assert.True(t, styles.GetStyle("Success").GetBold())
	assert.True(t, styles.GetStyle("Code").GetItalic())
	assert.False(t, styles.GetStyle("Muted").GetBold())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	restoreEmbedded(t)

	t.Run("custom definitions replace the registry", func(t *testing.T) {
		// Setup
		data := []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF8888"
styles:
  Alert:
    bold: true
    underline: true
    foreground: red
`)

		// Execute
		err := styles.LoadStylesFromData(data)

		// Verify
		require.NoError(t, err)
		assert.True(t, styles.GetStyle("Alert").GetUnderline())
		assert.Equal(t, []string{"Alert"}, styles.Current().Names())
	})

	t.Run("invalid yaml keeps the active theme", func(t *testing.T) {
		before := styles.Current()

		err := styles.LoadStylesFromData([]byte("styles: [unclosed"))

		assert.Error(t, err)
		assert.Same(t, before, styles.Current())
	})
}

func TestLoadStyles(t *testing.T) {
	restoreEmbedded(t)

	t.Run("missing file", func(t *testing.T) {
		err := styles.LoadStyles(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("file on disk", func(t *testing.T) {
		// Setup
		path := filepath.Join(t.TempDir(), "styles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("styles:\n  Loud:\n    bold: true\n"), 0644))

		// Execute
		err := styles.LoadStyles(path)

		// Verify
		require.NoError(t, err)
		assert.True(t, styles.GetStyle("Loud").GetBold())
	})
}

func TestParseTheme_UnknownColor(t *testing.T) {
	theme, err := styles.ParseTheme([]byte("styles:\n  Odd:\n    foreground: nowhere\n"))

	require.NoError(t, err)
	assert.Equal(t, "x", theme.Style("Odd").Render("x"))
}
