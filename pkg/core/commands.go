package core

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/filesystem"
	"github.com/arthur-debert/tplgen/pkg/logging"
	"github.com/arthur-debert/tplgen/pkg/paths"
	"github.com/arthur-debert/tplgen/pkg/processor"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/rs/zerolog"
)

// RenderOptions defines the options for RenderTemplates and PlanTemplates.
type RenderOptions struct {
	// Config is the validated run configuration.
	Config types.Config
	// FS is the filesystem to operate on. Defaults to the OS filesystem.
	FS types.FS
	// Logger overrides the component logger, mostly for tests.
	Logger *zerolog.Logger
}

func (o RenderOptions) fs() types.FS {
	if o.FS != nil {
		return o.FS
	}
	return filesystem.NewOS()
}

func (o RenderOptions) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return logging.GetLogger("core.commands")
}

// PlanTemplates discovers templates and returns their mappings without
// touching the output tree.
func PlanTemplates(opts RenderOptions) (types.Summary, error) {
	log := opts.logger()
	log.Debug().Str("command", "PlanTemplates").Msg("Executing command")

	cfg := opts.Config
	mappings, err := paths.NewMapper(opts.fs()).WithLogger(log).
		Discover(cfg.InputRoot, cfg.InputSuffix, cfg.OutputRoot, cfg.OutputSuffix)
	if err != nil {
		return types.Summary{}, err
	}

	summary := newSummary(cfg, mappings)
	logDiscovery(log, summary)
	return summary, nil
}

// RenderTemplates discovers every template under the input root and renders
// it into the output root. The first error aborts the run; files written
// before it stay on disk and the returned summary counts them.
func RenderTemplates(opts RenderOptions) (types.Summary, error) {
	log := opts.logger()
	log.Debug().Str("command", "RenderTemplates").Msg("Executing command")
	done := logging.LogOperationStart(log, "RenderTemplates")
	defer done()

	fsys := opts.fs()
	cfg := opts.Config

	// Configuration problems surface before discovery touches the disk
	proc, err := processor.New(fsys, cfg)
	if err != nil {
		return types.Summary{}, err
	}

	mappings, err := paths.NewMapper(fsys).WithLogger(log).
		Discover(cfg.InputRoot, cfg.InputSuffix, cfg.OutputRoot, cfg.OutputSuffix)
	if err != nil {
		return types.Summary{}, err
	}
	summary := newSummary(cfg, mappings)

	if err := fsys.MkdirAll(summary.OutputRoot, 0755); err != nil {
		return summary, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output directory '%s'", summary.OutputRoot).
			WithDetail(errors.DetailPath, summary.OutputRoot)
	}

	logDiscovery(log, summary)

	result, err := proc.WithLogger(log).Process(mappings)
	summary.Processed = result.Processed
	if err != nil {
		return summary, err
	}

	log.Info().
		Int("discovered", summary.Discovered).
		Int("processed", summary.Processed).
		Str("outputRoot", summary.OutputRoot).
		Msg("Render finished")
	return summary, nil
}

func newSummary(cfg types.Config, mappings types.MappingSet) types.Summary {
	return types.Summary{
		InputRoot:  absOrSelf(cfg.InputRoot),
		OutputRoot: absOrSelf(cfg.OutputRoot),
		Mappings:   mappings,
		Discovered: len(mappings),
	}
}

func logDiscovery(log zerolog.Logger, summary types.Summary) {
	log.Info().
		Int("count", summary.Discovered).
		Strs("mappings", summary.Mappings.Strings()).
		Msg(fmt.Sprintf("Found %d template files", summary.Discovered))
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
