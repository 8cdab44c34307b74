// Package hunks splits unified diff text into self-contained blocks: the
// per-file header segment and each @@-delimited hunk.
package hunks
