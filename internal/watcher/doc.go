// Package watcher reports working-tree changes via fsnotify, debouncing
// event bursts and skipping version-control and dependency directories.
package watcher
