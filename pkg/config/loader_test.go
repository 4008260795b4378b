package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	// Setup
	dir := t.TempDir()

	// Execute
	settings, err := LoadSettings(LoadOptions{WorkDir: dir, IgnoreUserConfig: true})

	// Verify
	require.NoError(t, err)
	assert.Equal(t, ".st", settings.InputSuffix)
	assert.Equal(t, "", settings.OutputSuffix)
	assert.Equal(t, "UTF-8", settings.Encoding)
	assert.Equal(t, "$", settings.StartDelimiter)
	assert.Equal(t, "$", settings.EndDelimiter)
	assert.False(t, settings.AllowUnresolved)
	assert.Empty(t, settings.Attributes)
}

func TestLoadSettings_ProjectFiles(t *testing.T) {
	t.Run("toml in working directory", func(t *testing.T) {
		// Setup
		dir := t.TempDir()
		writeFile(t, dir, ".tplgen.toml", `
input_dir = "templates"
output_dir = "build"
output_suffix = ".txt"

[attributes]
name = "World"
count = 3
`)

		// Execute
		settings, err := LoadSettings(LoadOptions{WorkDir: dir, IgnoreUserConfig: true})

		// Verify
		require.NoError(t, err)
		assert.Equal(t, "templates", settings.InputDir)
		assert.Equal(t, "build", settings.OutputDir)
		assert.Equal(t, ".txt", settings.OutputSuffix)
		assert.Equal(t, ".st", settings.InputSuffix)
		assert.Equal(t, map[string]string{"name": "World", "count": "3"}, settings.Attributes)
	})

	t.Run("yaml in working directory", func(t *testing.T) {
		// Setup
		dir := t.TempDir()
		writeFile(t, dir, ".tplgen.yaml", `
input_dir: src
output_dir: out
start_delimiter: "<"
end_delimiter: ">"
allow_unresolved: true
attributes:
  Title: Report
`)

		// Execute
		settings, err := LoadSettings(LoadOptions{WorkDir: dir, IgnoreUserConfig: true})

		// Verify
		require.NoError(t, err)
		assert.Equal(t, "src", settings.InputDir)
		assert.Equal(t, "<", settings.StartDelimiter)
		assert.Equal(t, ">", settings.EndDelimiter)
		assert.True(t, settings.AllowUnresolved)
		assert.Equal(t, "Report", settings.Attributes["Title"])
	})

	t.Run("explicit config file wins over working directory", func(t *testing.T) {
		// Setup
		dir := t.TempDir()
		writeFile(t, dir, ".tplgen.toml", `input_dir = "from-workdir"`)
		explicit := writeFile(t, t.TempDir(), "custom.toml", `input_dir = "from-flag"`)

		// Execute
		settings, err := LoadSettings(LoadOptions{ConfigFile: explicit, WorkDir: dir, IgnoreUserConfig: true})

		// Verify
		require.NoError(t, err)
		assert.Equal(t, "from-flag", settings.InputDir)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		// Execute
		_, err := LoadSettings(LoadOptions{
			ConfigFile:       filepath.Join(t.TempDir(), "nope.toml"),
			IgnoreUserConfig: true,
		})

		// Verify
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	})

	t.Run("broken toml", func(t *testing.T) {
		// Setup
		dir := t.TempDir()
		writeFile(t, dir, ".tplgen.toml", `input_dir = `)

		// Execute
		_, err := LoadSettings(LoadOptions{WorkDir: dir, IgnoreUserConfig: true})

		// Verify
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		// Setup
		path := writeFile(t, t.TempDir(), "config.json", `{}`)

		// Execute
		_, err := LoadSettings(LoadOptions{ConfigFile: path, IgnoreUserConfig: true})

		// Verify
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	})
}

func TestLoadSettings_Precedence(t *testing.T) {
	// Setup
	dir := t.TempDir()
	user := writeFile(t, t.TempDir(), "config.toml", `
input_dir = "user-in"
output_dir = "user-out"
encoding = "ISO-8859-1"
`)
	writeFile(t, dir, ".tplgen.toml", `
input_dir = "project-in"
output_dir = "project-out"

[attributes]
name = "project"
`)
	t.Setenv("TPLGEN_OUTPUT_DIR", "env-out")
	t.Setenv("TPLGEN_ATTR_name", "env")
	t.Setenv("TPLGEN_ATTR_Greeting", "Hi")

	// Execute
	settings, err := LoadSettings(LoadOptions{
		WorkDir:        dir,
		UserConfigFile: user,
		Overrides: map[string]interface{}{
			KeyOutputSuffix:         ".out",
			KeyAttributes + ".name": "flag",
		},
	})

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", settings.Encoding, "user config beats defaults")
	assert.Equal(t, "project-in", settings.InputDir, "project config beats user config")
	assert.Equal(t, "env-out", settings.OutputDir, "environment beats project config")
	assert.Equal(t, ".out", settings.OutputSuffix)
	assert.Equal(t, "flag", settings.Attributes["name"], "overrides beat environment")
	assert.Equal(t, "Hi", settings.Attributes["Greeting"], "attribute names keep their case")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "input_dir", envKey("TPLGEN_INPUT_DIR"))
	assert.Equal(t, "allow_unresolved", envKey("TPLGEN_ALLOW_UNRESOLVED"))
	assert.Equal(t, "attributes.userName", envKey("TPLGEN_ATTR_userName"))
}

func TestLoad_Validates(t *testing.T) {
	// Setup
	dir := t.TempDir()
	writeFile(t, dir, ".tplgen.toml", `
input_dir = "in"
output_dir = "out"
input_suffix = "  .st  "
encoding = "iso-8859-1"
`)

	// Execute
	cfg, err := Load(LoadOptions{WorkDir: dir, IgnoreUserConfig: true})

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.InputRoot)
	assert.Equal(t, ".st", cfg.InputSuffix)
	assert.Equal(t, '$', cfg.StartDelimiter)
	assert.Contains(t, cfg.Encoding, "8859-1")
}

func TestLoadSettings_UserConfigFromXDG(t *testing.T) {
	// Setup
	configHome := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "tplgen"), 0755))
	writeFile(t, filepath.Join(configHome, "tplgen"), "config.toml", `output_suffix = ".html"`)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	// Execute
	settings, err := LoadSettings(LoadOptions{WorkDir: t.TempDir()})

	// Verify
	require.NoError(t, err)
	assert.Equal(t, ".html", settings.OutputSuffix)

	t.Run("ignored on request", func(t *testing.T) {
		settings, err := LoadSettings(LoadOptions{WorkDir: t.TempDir(), IgnoreUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, "", settings.OutputSuffix)
	})
}
