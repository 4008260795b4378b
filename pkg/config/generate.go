package config

import (
	"strings"

	"github.com/arthur-debert/tplgen/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# tplgen project configuration
#
# Save as .tplgen.toml next to your templates. Every key can also be set
# with a TPLGEN_<KEY> environment variable or a command-line flag.
# Attributes may also come from TPLGEN_ATTR_<name>.

`

// DefaultSettings returns the settings tplgen starts from before any
// source is read
func DefaultSettings() Settings {
	d := defaults()
	return Settings{
		InputSuffix:    d[KeyInputSuffix].(string),
		OutputSuffix:   d[KeyOutputSuffix].(string),
		Encoding:       d[KeyEncoding].(string),
		StartDelimiter: d[KeyStartDelimiter].(string),
		EndDelimiter:   d[KeyEndDelimiter].(string),
		Attributes:     map[string]string{},
	}
}

// GenerateConfigContent renders settings as a .tplgen.toml document. With
// commented set, every assignment is commented out so the file documents
// the values without pinning them.
func GenerateConfigContent(settings Settings, commented bool) (string, error) {
	if settings.Attributes == nil {
		settings.Attributes = map[string]string{}
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}

	content := string(data)
	if commented {
		content = commentOutConfigValues(content)
	}
	return generatedHeader + content, nil
}

// commentOutConfigValues comments out every assignment, keeping blank
// lines, comments and table headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
