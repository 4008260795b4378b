package config

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/tplgen/pkg/charset"
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/template"
	"github.com/arthur-debert/tplgen/pkg/types"
)

// Configuration keys
const (
	KeyInputDir        = "input_dir"
	KeyInputSuffix     = "input_suffix"
	KeyOutputDir       = "output_dir"
	KeyOutputSuffix    = "output_suffix"
	KeyEncoding        = "encoding"
	KeyStartDelimiter  = "start_delimiter"
	KeyEndDelimiter    = "end_delimiter"
	KeyAllowUnresolved = "allow_unresolved"
	KeyAttributes      = "attributes"
)

// Settings is the raw, unvalidated configuration as read from all sources
type Settings struct {
	InputDir        string            `koanf:"input_dir" toml:"input_dir"`
	InputSuffix     string            `koanf:"input_suffix" toml:"input_suffix"`
	OutputDir       string            `koanf:"output_dir" toml:"output_dir"`
	OutputSuffix    string            `koanf:"output_suffix" toml:"output_suffix"`
	Encoding        string            `koanf:"encoding" toml:"encoding"`
	StartDelimiter  string            `koanf:"start_delimiter" toml:"start_delimiter"`
	EndDelimiter    string            `koanf:"end_delimiter" toml:"end_delimiter"`
	AllowUnresolved bool              `koanf:"allow_unresolved" toml:"allow_unresolved"`
	Attributes      map[string]string `koanf:"attributes" toml:"attributes"`
}

// defaults returns the built-in defaults as a flat koanf map
func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyInputSuffix:     types.DefaultInputSuffix,
		KeyOutputSuffix:    types.DefaultOutputSuffix,
		KeyEncoding:        types.DefaultEncoding,
		KeyStartDelimiter:  string(types.DefaultDelimiter),
		KeyEndDelimiter:    string(types.DefaultDelimiter),
		KeyAllowUnresolved: false,
	}
}

// Validate checks the settings and converts them into a run configuration
func (s Settings) Validate() (types.Config, error) {
	if strings.TrimSpace(s.InputDir) == "" {
		return types.Config{}, errors.New(errors.ErrConfigValid, "input directory is required")
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		return types.Config{}, errors.New(errors.ErrConfigValid, "output directory is required")
	}

	start, err := delimiter("start", s.StartDelimiter)
	if err != nil {
		return types.Config{}, err
	}
	end, err := delimiter("end", s.EndDelimiter)
	if err != nil {
		return types.Config{}, err
	}
	if _, err := template.New(start, end); err != nil {
		return types.Config{}, err
	}

	codec, err := charset.Lookup(s.Encoding)
	if err != nil {
		return types.Config{}, err
	}

	attributes := make(map[string]string, len(s.Attributes))
	for _, name := range sortedKeys(s.Attributes) {
		if !template.IsIdentifier(name) {
			return types.Config{}, errors.Newf(errors.ErrConfigValid,
				"attribute name %q must contain only letters, digits and underscores", name).
				WithDetail(errors.DetailAttribute, name)
		}
		attributes[name] = s.Attributes[name]
	}

	return types.Config{
		InputRoot:       s.InputDir,
		InputSuffix:     strings.TrimSpace(s.InputSuffix),
		OutputRoot:      s.OutputDir,
		OutputSuffix:    strings.TrimSpace(s.OutputSuffix),
		Encoding:        codec.Name(),
		StartDelimiter:  start,
		EndDelimiter:    end,
		Attributes:      attributes,
		AllowUnresolved: s.AllowUnresolved,
	}, nil
}

func delimiter(which, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, errors.Newf(errors.ErrConfigValid, "%s delimiter must be exactly one character, got %q", which, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
