package types

import "fmt"

// FileMapping pairs a discovered template with the file it renders to.
// Both paths are absolute.
type FileMapping struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// String renders the mapping as "input -> output"
func (m FileMapping) String() string {
	return fmt.Sprintf("%s -> %s", m.Input, m.Output)
}

// MappingSet is the ordered result of discovery. Order is discovery order and
// every input appears at most once.
type MappingSet []FileMapping

// Inputs returns the input paths in order
func (s MappingSet) Inputs() []string {
	inputs := make([]string, len(s))
	for i, m := range s {
		inputs[i] = m.Input
	}
	return inputs
}

// Strings returns each mapping formatted with FileMapping.String
func (s MappingSet) Strings() []string {
	out := make([]string, len(s))
	for i, m := range s {
		out[i] = m.String()
	}
	return out
}

// Summary reports the outcome of a run. Processed equals Discovered unless
// the run aborted early.
type Summary struct {
	InputRoot  string     `json:"inputRoot"`
	OutputRoot string     `json:"outputRoot"`
	Mappings   MappingSet `json:"mappings"`
	Discovered int        `json:"discovered"`
	Processed  int        `json:"processed"`
}

// Complete reports whether every discovered file was processed
func (s Summary) Complete() bool {
	return s.Processed == s.Discovered
}
