package types

// Default values used when a setting is not supplied
const (
	DefaultInputSuffix  = ".st"
	DefaultOutputSuffix = ""
	DefaultEncoding     = "UTF-8"
	DefaultDelimiter    = '$'
)

// Config is the validated, read-only configuration for a single run.
// It is built once by the config package (or by a caller directly) and
// never modified afterwards.
type Config struct {
	InputRoot    string
	InputSuffix  string
	OutputRoot   string
	OutputSuffix string

	// Encoding names the charset used to read templates and write results
	Encoding string

	StartDelimiter rune
	EndDelimiter   rune

	// Attributes maps placeholder names to their substitution values
	Attributes map[string]string

	// AllowUnresolved leaves placeholders without a matching attribute in
	// the output verbatim instead of failing the run
	AllowUnresolved bool
}

// DefaultConfig returns a Config populated with the tool defaults.
// InputRoot and OutputRoot are left empty.
func DefaultConfig() Config {
	return Config{
		InputSuffix:    DefaultInputSuffix,
		OutputSuffix:   DefaultOutputSuffix,
		Encoding:       DefaultEncoding,
		StartDelimiter: DefaultDelimiter,
		EndDelimiter:   DefaultDelimiter,
		Attributes:     map[string]string{},
	}
}
