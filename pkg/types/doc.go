// Package types defines the core values and interfaces shared across tplgen:
// the run Config, FileMapping and MappingSet produced by discovery, the
// Summary returned from a run, and the FS abstraction every component reads
// and writes through.
package types
