// Gitdiff shows unified diffs for every changed file in a git repository,
// covering staged, unstaged, and untracked changes.
//
// Output is a human-readable bordered listing per file, or with --json a
// structured array whose diffs are split into hunk blocks for downstream
// tooling. Files can be filtered by extension, by exact filename, and
// binaries can be excluded.
//
// Usage:
//
//	gitdiff .                         # diffs for the current repository
//	gitdiff -e .py -e .js ~/proj      # only Python and JavaScript files
//	gitdiff -b -j ~/proj              # JSON output, binaries excluded
//	gitdiff -f main.py ~/proj         # only files named main.py
//	gitdiff watch ~/proj              # re-run on working-tree changes
package main
