package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tplgen operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Canonical returns the absolute, cleaned form of name with symlinks
	// resolved as far as the path exists. Implementations without symlink
	// support return the cleaned absolute path.
	Canonical(name string) (string, error)
}
