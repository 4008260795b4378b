// Package config handles configuration management for tplgen.
// It supports loading configuration from multiple sources including
// TOML and YAML files, environment variables, and command-line flags,
// and validates the merged result into a types.Config.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults
//  2. user config: $XDG_CONFIG_HOME/tplgen/config.toml
//  3. project config: --config, else .tplgen.toml, .tplgen.yaml or
//     .tplgen.yml in the working directory
//  4. environment: TPLGEN_INPUT_DIR, TPLGEN_OUTPUT_SUFFIX, ... and
//     TPLGEN_ATTR_<name> for attributes (the name keeps its case)
//  5. explicit command-line flags
package config
