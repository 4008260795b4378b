// Package processor renders a discovered MappingSet to disk, one file at a
// time and in order, stopping at the first error.
package processor

import (
	"path/filepath"

	"github.com/arthur-debert/tplgen/pkg/charset"
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/logging"
	"github.com/arthur-debert/tplgen/pkg/template"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/rs/zerolog"
)

const (
	outputFileMode = 0644
	outputDirMode  = 0755
)

// Processor reads, renders and writes templates
type Processor struct {
	fs         types.FS
	codec      *charset.Codec
	engine     *template.Engine
	attributes map[string]string
	logger     zerolog.Logger
}

// New builds a processor from the run configuration. It fails when the
// encoding is unknown or the delimiters are unusable.
func New(fsys types.FS, cfg types.Config) (*Processor, error) {
	codec, err := charset.Lookup(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	engine, err := template.New(cfg.StartDelimiter, cfg.EndDelimiter,
		template.WithAllowUnresolved(cfg.AllowUnresolved))
	if err != nil {
		return nil, err
	}

	attributes := make(map[string]string, len(cfg.Attributes))
	for k, v := range cfg.Attributes {
		attributes[k] = v
	}

	return &Processor{
		fs:         fsys,
		codec:      codec,
		engine:     engine,
		attributes: attributes,
		logger:     logging.GetLogger("processor"),
	}, nil
}

// WithLogger replaces the processor's logger
func (p *Processor) WithLogger(logger zerolog.Logger) *Processor {
	p.logger = logger
	return p
}

func (p *Processor) logSettings() {
	start, end := p.engine.Delimiters()
	p.logger.Debug().
		Str("start", string(start)).
		Str("end", string(end)).
		Str("encoding", p.codec.Name()).
		Int("attributes", len(p.attributes)).
		Msg("Processor settings")
}

// Process renders every mapping in order. The returned summary is valid even
// when err is non-nil and counts the files written before the failure.
func (p *Processor) Process(mappings types.MappingSet) (types.Summary, error) {
	summary := types.Summary{
		Mappings:   mappings,
		Discovered: len(mappings),
	}

	p.logSettings()

	if err := p.checkCollisions(mappings); err != nil {
		return summary, err
	}

	for _, mapping := range mappings {
		if err := p.processOne(mapping); err != nil {
			p.logger.Error().
				Err(err).
				Str("input", mapping.Input).
				Int("processed", summary.Processed).
				Int("discovered", summary.Discovered).
				Msg("Aborting run")
			return summary, err
		}
		summary.Processed++
	}

	return summary, nil
}

// checkCollisions fails when an output would overwrite its own input or any
// other input of the run, before anything is written
func (p *Processor) checkCollisions(mappings types.MappingSet) error {
	inputs := make(map[string]string, len(mappings))
	canonicalOutputs := make([]string, len(mappings))

	for i, mapping := range mappings {
		in, err := p.fs.Canonical(mapping.Input)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRead, "cannot resolve input '%s'", mapping.Input).
				WithDetail(errors.DetailPath, mapping.Input)
		}
		out, err := p.fs.Canonical(mapping.Output)
		if err != nil {
			return errors.Wrapf(err, errors.ErrWrite, "cannot resolve output '%s'", mapping.Output).
				WithDetail(errors.DetailPath, mapping.Output)
		}
		inputs[in] = mapping.Input
		canonicalOutputs[i] = out
	}

	for i, mapping := range mappings {
		victim, ok := inputs[canonicalOutputs[i]]
		if !ok {
			continue
		}
		msg := "output '%s' would overwrite input '%s'"
		if victim == mapping.Input {
			msg = "output '%s' is the same file as its input '%s'"
		}
		return errors.Newf(errors.ErrSelfOverwrite, msg, mapping.Output, victim).
			WithDetail(errors.DetailInput, victim).
			WithDetail(errors.DetailOutput, mapping.Output)
	}

	return nil
}

func (p *Processor) processOne(mapping types.FileMapping) error {
	raw, err := p.fs.ReadFile(mapping.Input)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRead, "cannot read template '%s'", mapping.Input).
			WithDetail(errors.DetailPath, mapping.Input)
	}

	text, err := p.codec.Decode(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRead, "cannot read template '%s'", mapping.Input).
			WithDetail(errors.DetailPath, mapping.Input)
	}
	p.logger.Info().Str("input", mapping.Input).Int("bytes", len(raw)).Msg("read")

	rendered, err := p.engine.Render(text, p.attributes)
	if err != nil {
		code := errors.GetErrorCode(err)
		return errors.Wrapf(err, code, "cannot render template '%s'", mapping.Input).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail(errors.DetailPath, mapping.Input)
	}

	data, err := p.codec.Encode(rendered)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "cannot write '%s'", mapping.Output).
			WithDetail(errors.DetailPath, mapping.Output)
	}

	dir := filepath.Dir(mapping.Output)
	if err := p.fs.MkdirAll(dir, outputDirMode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory '%s'", dir).
			WithDetail(errors.DetailPath, dir)
	}

	if err := p.fs.WriteFile(mapping.Output, data, outputFileMode); err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "cannot write '%s'", mapping.Output).
			WithDetail(errors.DetailPath, mapping.Output)
	}
	p.logger.Info().
		Str("input", mapping.Input).
		Str("output", mapping.Output).
		Int("bytes", len(data)).
		Msg("wrote")

	return nil
}
