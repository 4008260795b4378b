package tplgen

import (
	"strings"

	"github.com/arthur-debert/tplgen/pkg/config"
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/template"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/spf13/cobra"
)

// renderFlags holds the flags shared by every command that resolves a run
// configuration
type renderFlags struct {
	inputDir        string
	inputSuffix     string
	outputDir       string
	outputSuffix    string
	encoding        string
	startDelimiter  string
	endDelimiter    string
	attrs           []string
	allowUnresolved bool
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.inputDir, "input-dir", "i", "", MsgFlagInputDir)
	flags.StringVar(&f.inputSuffix, "input-suffix", types.DefaultInputSuffix, MsgFlagInputSuffix)
	flags.StringVarP(&f.outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	flags.StringVar(&f.outputSuffix, "output-suffix", types.DefaultOutputSuffix, MsgFlagOutputSuffix)
	flags.StringVar(&f.encoding, "encoding", types.DefaultEncoding, MsgFlagEncoding)
	flags.StringVar(&f.startDelimiter, "start-delimiter", string(types.DefaultDelimiter), MsgFlagStartDelimiter)
	flags.StringVar(&f.endDelimiter, "end-delimiter", string(types.DefaultDelimiter), MsgFlagEndDelimiter)
	flags.StringArrayVarP(&f.attrs, "attr", "a", nil, MsgFlagAttr)
	flags.BoolVar(&f.allowUnresolved, "allow-unresolved", false, MsgFlagAllowUnresolved)

	_ = cmd.MarkFlagDirname("input-dir")
	_ = cmd.MarkFlagDirname("output-dir")
}

// overrides returns only the flags the user set explicitly, so lower
// precedence sources keep their values for the rest
func (f *renderFlags) overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	flags := cmd.Flags()
	values := map[string]interface{}{}

	set := func(flag, key string, value interface{}) {
		if flags.Changed(flag) {
			values[key] = value
		}
	}
	set("input-dir", config.KeyInputDir, f.inputDir)
	set("input-suffix", config.KeyInputSuffix, f.inputSuffix)
	set("output-dir", config.KeyOutputDir, f.outputDir)
	set("output-suffix", config.KeyOutputSuffix, f.outputSuffix)
	set("encoding", config.KeyEncoding, f.encoding)
	set("start-delimiter", config.KeyStartDelimiter, f.startDelimiter)
	set("end-delimiter", config.KeyEndDelimiter, f.endDelimiter)
	set("allow-unresolved", config.KeyAllowUnresolved, f.allowUnresolved)

	for _, attr := range f.attrs {
		name, value, err := parseAttr(attr)
		if err != nil {
			return nil, err
		}
		values[config.KeyAttributes+"."+name] = value
	}

	return values, nil
}

// loadOptions builds the config loader options for cmd
func (f *renderFlags) loadOptions(cmd *cobra.Command) (config.LoadOptions, error) {
	overrides, err := f.overrides(cmd)
	if err != nil {
		return config.LoadOptions{}, err
	}
	configFile, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	}, nil
}

// parseAttr splits name=value. The value may itself contain '='.
func parseAttr(attr string) (string, string, error) {
	name, value, ok := strings.Cut(attr, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Newf(errors.ErrInvalidInput, MsgErrBadAttr, attr)
	}
	if !template.IsIdentifier(name) {
		return "", "", errors.Newf(errors.ErrConfigValid,
			"attribute name %q must contain only letters, digits and underscores", name).
			WithDetail(errors.DetailAttribute, name)
	}
	return name, value, nil
}
