// Package diag provides leveled diagnostics for the gitdiff pipeline.
//
// Warnings and errors are always written to the error stream. Informational
// and debug output is gated by a verbosity flag and suppressed entirely when
// JSON output is active, so stdout stays machine-parseable.
package diag
