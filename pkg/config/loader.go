package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/logging"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable tplgen reads
	EnvPrefix = "TPLGEN_"

	// EnvAttrPrefix marks attribute variables: TPLGEN_ATTR_name=value
	EnvAttrPrefix = "ATTR_"

	// UserConfigName is looked up under the XDG config directories
	UserConfigName = "tplgen/config.toml"
)

// ProjectConfigNames are tried in order in the working directory
var ProjectConfigNames = []string{".tplgen.toml", ".tplgen.yaml", ".tplgen.yml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit project config file. It must exist.
	ConfigFile string

	// WorkDir is searched for ProjectConfigNames when ConfigFile is empty.
	// Defaults to the current directory.
	WorkDir string

	// UserConfigFile overrides the XDG lookup of the user config
	UserConfigFile string

	// IgnoreUserConfig skips the user config layer
	IgnoreUserConfig bool

	// Overrides are explicit values, usually from flags, keyed by the Key*
	// constants. Attributes use "attributes.<name>".
	Overrides map[string]interface{}
}

// Load reads every configuration source and returns the validated config
func Load(opts LoadOptions) (types.Config, error) {
	settings, err := LoadSettings(opts)
	if err != nil {
		return types.Config{}, err
	}
	return settings.Validate()
}

// LoadSettings merges every configuration source without validating
func LoadSettings(opts LoadOptions) (Settings, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	if !opts.IgnoreUserConfig {
		if path := userConfigPath(opts.UserConfigFile); path != "" {
			if err := loadFile(k, path); err != nil {
				return Settings{}, err
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Project config
	projectFile, err := projectConfigPath(opts)
	if err != nil {
		return Settings{}, err
	}
	if projectFile != "" {
		if err := loadFile(k, projectFile); err != nil {
			return Settings{}, err
		}
		logger.Debug().Str("path", projectFile).Msg("Loaded project config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	logger.Debug().
		Str("inputDir", settings.InputDir).
		Str("outputDir", settings.OutputDir).
		Int("attributes", len(settings.Attributes)).
		Msg("Configuration loaded")
	return settings, nil
}

// envKey maps TPLGEN_INPUT_DIR to input_dir and TPLGEN_ATTR_Name to
// attributes.Name
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if strings.HasPrefix(key, EnvAttrPrefix) {
		return KeyAttributes + "." + strings.TrimPrefix(key, EnvAttrPrefix)
	}
	return strings.ToLower(key)
}

func userConfigPath(override string) string {
	if override != "" {
		if _, err := os.Stat(override); err == nil {
			return override
		}
		return ""
	}
	// XDG_CONFIG_HOME is re-read so a value set after start-up wins
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		path := filepath.Join(configHome, filepath.FromSlash(UserConfigName))
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}
	path, err := xdg.SearchConfigFile(UserConfigName)
	if err != nil {
		return ""
	}
	return path
}

func projectConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file '%s' not found", opts.ConfigFile).
				WithDetail(errors.DetailPath, opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml", "":
		parser = toml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config format '%s'", filepath.Ext(path)).
			WithDetail(errors.DetailPath, path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}
