// Package cli implements the gitdiff command tree and the diff pipeline
// driver: validate the repository, list changed paths, collect per-file
// diffs, render. Handlers report failures through deterministic exit codes
// rather than panics or os.Exit calls.
package cli
