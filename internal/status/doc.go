// Package status parses `git status --porcelain` reports into changed-path
// records, resolving rename and copy entries to their destination path.
package status
