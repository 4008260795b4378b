// Package testutil provides utilities for testing tplgen components.
//
// Key components:
//   - Tree, WriteTree, ReadTree: declare a directory of templates inline and
//     read back what a run produced
//   - CaptureLogger: a zerolog logger writing JSON lines to a buffer
//   - MockFS: a testify mock of types.FS for failure injection
//
// Most tests build trees on filesystem.NewMemory(); tests that need real
// symlinks or permissions use t.TempDir() with filesystem.NewOS().
package testutil
