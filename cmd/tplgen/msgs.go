package tplgen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Render a tree of templates into a mirrored output tree"
	MsgRenderShort     = "Render every template under the input directory"
	MsgListShort       = "List templates and where they would be written"
	MsgSyntaxShort     = "Show the template syntax guide"
	MsgGenConfigShort  = "Generate a .tplgen.toml from the current settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Write one man page per command to the given directory (default: current directory)."

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagQuiet           = "Only log warnings and errors"
	MsgFlagNoColor         = "Disable colored output"
	MsgFlagFormat          = "Output format: auto, term, text or json"
	MsgFlagStyles          = "YAML file overriding the built-in output styles"
	MsgFlagConfig          = "Project config file (default: .tplgen.toml or .tplgen.yaml in the current directory)"
	MsgFlagInputDir        = "Directory to search for templates"
	MsgFlagInputSuffix     = "Suffix that marks a file as a template"
	MsgFlagOutputDir       = "Directory to write rendered files to"
	MsgFlagOutputSuffix    = "Suffix that replaces the input suffix"
	MsgFlagEncoding        = "Charset of templates and rendered files"
	MsgFlagStartDelimiter  = "Character that opens a placeholder"
	MsgFlagEndDelimiter    = "Character that closes a placeholder"
	MsgFlagAttr            = "Attribute as name=value (repeatable)"
	MsgFlagAllowUnresolved = "Leave placeholders without an attribute in the output"
	MsgFlagWrite           = "Write .tplgen.toml to the current directory instead of stdout"
	MsgFlagForce           = "Overwrite an existing .tplgen.toml"
	MsgFlagCommented       = "Comment out every value in the generated file"

	// Status messages
	MsgConfigWritten = "Wrote %s"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrBadAttr       = "attribute %q must be written as name=value"
	MsgErrConfigExists  = "%s already exists (use --force to replace it)"
	MsgErrWriteConfig   = "cannot write %s"
	MsgErrManDirCreate  = "cannot create man page directory %s"
	MsgErrGenManPages   = "cannot generate man pages"
	MsgErrGenCompletion = "cannot generate %s completion"
)

// Long messages and examples
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
