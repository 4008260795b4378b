package paths

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/logging"
	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/rs/zerolog"
)

// Mapper discovers template files and computes their output paths
type Mapper struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewMapper creates a mapper reading through the given filesystem
func NewMapper(fsys types.FS) *Mapper {
	return &Mapper{
		fs:     fsys,
		logger: logging.GetLogger("paths.mapper"),
	}
}

// WithLogger replaces the mapper's logger
func (m *Mapper) WithLogger(logger zerolog.Logger) *Mapper {
	m.logger = logger
	return m
}

// Discover is a shorthand for NewMapper(fsys).Discover(...)
func Discover(fsys types.FS, inputRoot, inputSuffix, outputRoot, outputSuffix string) (types.MappingSet, error) {
	return NewMapper(fsys).Discover(inputRoot, inputSuffix, outputRoot, outputSuffix)
}

// Discover walks inputRoot and returns one mapping per matching file in
// discovery order. Suffixes are trimmed of surrounding whitespace.
func (m *Mapper) Discover(inputRoot, inputSuffix, outputRoot, outputSuffix string) (types.MappingSet, error) {
	inputSuffix = strings.TrimSpace(inputSuffix)
	outputSuffix = strings.TrimSpace(outputSuffix)

	if inputRoot == "" {
		return nil, errors.New(errors.ErrDiscovery, "input directory cannot be empty")
	}
	if outputRoot == "" {
		return nil, errors.New(errors.ErrDiscovery, "output directory cannot be empty")
	}

	absInput, err := filepath.Abs(inputRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot resolve input directory '%s'", inputRoot).
			WithDetail(errors.DetailPath, inputRoot)
	}
	absOutput, err := filepath.Abs(outputRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot resolve output directory '%s'", outputRoot).
			WithDetail(errors.DetailPath, outputRoot)
	}

	info, err := m.fs.Stat(absInput)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "input directory '%s' does not exist", absInput).
			WithDetail(errors.DetailPath, absInput)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDiscovery, "input path '%s' is not a directory", absInput).
			WithDetail(errors.DetailPath, absInput)
	}

	m.logger.Debug().
		Str("inputRoot", absInput).
		Str("inputSuffix", inputSuffix).
		Str("outputRoot", absOutput).
		Str("outputSuffix", outputSuffix).
		Msg("Discovering templates")

	w := &walker{
		mapper:       m,
		inputSuffix:  inputSuffix,
		outputSuffix: outputSuffix,
		ancestors:    make(map[string]bool),
		mappings:     types.MappingSet{},
	}
	if err := w.walk(absInput, absOutput); err != nil {
		return nil, err
	}

	m.logger.Debug().Int("count", len(w.mappings)).Msg("Discovery complete")
	return w.mappings, nil
}

// OutputName returns the output file name for name and whether name carries
// the input suffix at all
func OutputName(name, inputSuffix, outputSuffix string) (string, bool) {
	if !strings.HasSuffix(name, inputSuffix) {
		return "", false
	}
	return name[:len(name)-len(inputSuffix)] + outputSuffix, true
}

type walker struct {
	mapper       *Mapper
	inputSuffix  string
	outputSuffix string
	ancestors    map[string]bool
	mappings     types.MappingSet
}

func (w *walker) walk(inputDir, outputDir string) error {
	canonical, err := w.mapper.fs.Canonical(inputDir)
	if err != nil {
		canonical = inputDir
	}
	if w.ancestors[canonical] {
		w.mapper.logger.Debug().Str("dir", inputDir).Msg("Directory links back to an ancestor, skipping")
		return nil
	}
	w.ancestors[canonical] = true
	defer delete(w.ancestors, canonical)

	entries, err := w.mapper.fs.ReadDir(inputDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDiscovery, "cannot list directory '%s'", inputDir).
			WithDetail(errors.DetailPath, inputDir)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		inputPath := filepath.Join(inputDir, name)

		if w.isDir(inputPath, entry) {
			if err := w.walk(inputPath, filepath.Join(outputDir, name)); err != nil {
				return err
			}
			continue
		}

		outName, ok := OutputName(name, w.inputSuffix, w.outputSuffix)
		if !ok {
			w.mapper.logger.Trace().Str("file", inputPath).Msg("Skipping file without input suffix")
			continue
		}

		mapping := types.FileMapping{Input: inputPath, Output: filepath.Join(outputDir, outName)}
		w.mappings = append(w.mappings, mapping)
		w.mapper.logger.Debug().
			Str("input", mapping.Input).
			Str("output", mapping.Output).
			Msg("Mapped template")
	}

	return nil
}

// isDir reports whether the entry is a directory, following symlinks.
// A dangling link counts as a file.
func (w *walker) isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := w.mapper.fs.Stat(path)
	if err != nil {
		w.mapper.logger.Debug().Err(err).Str("path", path).Msg("Cannot follow link")
		return false
	}
	return info.IsDir()
}
