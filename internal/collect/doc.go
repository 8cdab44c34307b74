// Package collect gathers per-file unified diffs for a set of changed paths.
//
// Tracked paths are diffed against HEAD; untracked files are diffed against
// empty content with `git diff --no-index`, and untracked directories are
// expanded recursively. Extension, filename, and binary filters decide which
// paths are fetched at all.
package collect
