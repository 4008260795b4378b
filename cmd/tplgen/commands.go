package tplgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/tplgen/internal/version"
	"github.com/arthur-debert/tplgen/pkg/config"
	"github.com/arthur-debert/tplgen/pkg/core"
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/logging"
	"github.com/arthur-debert/tplgen/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// ProjectConfigFile is the file genconfig --write creates
const ProjectConfigFile = ".tplgen.toml"

// NewRootCmd creates the tplgen command tree
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		quiet      bool
		noColor    bool
		format     string
		stylesFile string
	)

	rootCmd := &cobra.Command{
		Use:     "tplgen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := output.ParseFormat(format); err != nil {
				return err
			}
			logging.SetupLogger(logging.Options{
				Verbosity: verbosity,
				Quiet:     quiet,
				NoColor:   noColor,
				Console:   cmd.ErrOrStderr(),
			})
			output.ConfigureColor(noColor)
			if err := output.LoadStylesFromFile(stylesFile); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&format, "format", output.FormatAuto.String(), MsgFlagFormat)
	flags.StringP("config", "c", "", MsgFlagConfig)
	flags.StringVar(&stylesFile, "styles", "", MsgFlagStyles)
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml", "yaml", "yml")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// Execute runs the command tree with args and reports a failure on
// stderr. It returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	renderer, rerr := output.NewRenderer(formatOf(rootCmd), stderr)
	if rerr != nil {
		renderer = output.NewTextRenderer(stderr)
	}
	_ = renderer.RenderError(err)
	return 1
}

// formatOf returns the --format value, falling back to auto when it
// cannot be parsed
func formatOf(cmd *cobra.Command) output.Format {
	value, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := output.ParseFormat(value)
	if err != nil {
		return output.FormatAuto
	}
	return format
}

func rendererFor(cmd *cobra.Command) (output.Renderer, error) {
	return output.NewRenderer(formatOf(cmd), cmd.OutOrStdout())
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"run"},
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(opts)
			if err != nil {
				return err
			}

			summary, err := core.RenderTemplates(core.RenderOptions{Config: cfg})
			if err != nil {
				return err
			}

			renderer, err := rendererFor(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderSummary(summary)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newListCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(opts)
			if err != nil {
				return err
			}

			summary, err := core.PlanTemplates(core.RenderOptions{Config: cfg})
			if err != nil {
				return err
			}

			renderer, err := rendererFor(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderPlan(summary)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Resolve(formatOf(cmd), cmd.OutOrStdout())
			_, err := fmt.Fprint(cmd.OutOrStdout(), output.RenderMarkdown(output.SyntaxGuide(), format))
			return err
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		flags     renderFlags
		write     bool
		force     bool
		commented bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Aliases: []string{"gen-config"},
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(cmd)
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings(opts)
			if err != nil {
				return err
			}

			content, err := config.GenerateConfigContent(settings, commented)
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			if _, err := os.Stat(ProjectConfigFile); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, ProjectConfigFile).
					WithDetail(errors.DetailPath, ProjectConfigFile)
			}
			if err := os.WriteFile(ProjectConfigFile, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrWrite, MsgErrWriteConfig, ProjectConfigFile).
					WithDetail(errors.DetailPath, ProjectConfigFile)
			}

			renderer, err := rendererFor(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, ProjectConfigFile))
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "tplgen version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, MsgErrGenCompletion, args[0])
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, MsgErrManDirCreate, dir).
					WithDetail(errors.DetailPath, dir)
			}

			header := &doc.GenManHeader{
				Title:   "TPLGEN",
				Section: "1",
				Source:  "tplgen " + version.Version,
				Manual:  "tplgen manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, filepath.Clean(dir)); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrGenManPages)
			}
			return nil
		},
	}
}
