// Package gitcmd shells out to the git executable and classifies results.
//
// The one subtlety it owns is exit-code handling: git diff exits 1 when the
// compared inputs differ, which is a successful outcome for this tool, while
// every other nonzero exit is a failure.
package gitcmd
