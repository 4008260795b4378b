package testutil

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/tplgen/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Tree maps slash-separated relative paths to file contents. A key ending
// in "/" declares an empty directory.
type Tree map[string]string

// WriteTree creates every entry of tree under root
func WriteTree(t testing.TB, fsys types.FS, root string, tree Tree) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(root, 0755))
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}

// ReadTree returns every regular file under root keyed by its slash-separated
// relative path. A missing root yields an empty tree.
func ReadTree(t testing.TB, fsys types.FS, root string) Tree {
	t.Helper()

	tree := Tree{}
	if _, err := fsys.Stat(root); err != nil {
		return tree
	}
	readTreeInto(t, fsys, root, "", tree)
	return tree
}

func readTreeInto(t testing.TB, fsys types.FS, dir, prefix string, tree Tree) {
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		rel := prefix + entry.Name()
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			readTreeInto(t, fsys, path, rel+"/", tree)
			continue
		}
		content, err := fsys.ReadFile(path)
		require.NoError(t, err)
		tree[rel] = string(content)
	}
}

// Dirs returns the sorted slash-separated relative paths of all directories
// under root
func Dirs(t testing.TB, fsys types.FS, root string) []string {
	t.Helper()

	dirs := []string{}
	var walk func(dir, prefix string)
	walk = func(dir, prefix string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			rel := prefix + entry.Name()
			dirs = append(dirs, rel)
			walk(filepath.Join(dir, entry.Name()), rel+"/")
		}
	}
	walk(root, "")
	sort.Strings(dirs)
	return dirs
}

// CaptureLogger returns a trace-level logger writing JSON lines into the
// returned buffer
func CaptureLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).Level(zerolog.TraceLevel), &buf
}
