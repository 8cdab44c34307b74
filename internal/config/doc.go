// Package config loads and persists the gitdiff configuration.
//
// The effective configuration is built once at startup by merging defaults,
// the JSON config file, GITDIFF_* environment variables, and CLI flag
// overrides, in that order. The result is passed by value to the pipeline
// and never mutated afterwards.
package config
