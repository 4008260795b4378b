// Package paths discovers template files and maps each one to the output
// file it renders to.
//
// Discovery walks the input root depth-first. Entries of every directory
// are visited in name order, and a subdirectory is explored completely at
// the point its name comes up, so a.st, b/x.st, c.st are returned in that
// order. Directories are mirrored under the output root with their names
// unchanged. A file is selected when its name ends with the input suffix
// (case-sensitive; an empty suffix selects every file) and its output name
// is the name with that suffix replaced by the output suffix:
//
//	input/greeting.st  -> output/greeting.txt   (".st" -> ".txt")
//	input/a/b/c.st     -> output/a/b/c          (".st" -> "")
//
// Symlinked directories are followed and mirrored under their own name, so
// a directory reachable through a link and directly is mapped twice. A link
// back to a directory on the current path is not entered, which ends cycles.
//
// Discovery never creates directories.
package paths
