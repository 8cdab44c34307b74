package diag

import (
	"fmt"
	"io"
	"os"
)

// Logger routes diagnostics by level. Errors and warnings always go to the
// error stream. Info and debug messages go to the informational stream:
// debug only when Verbose is set, and neither when Quiet is set (JSON mode
// keeps stdout parseable).
type Logger struct {
	Verbose bool
	Quiet   bool
	Out     io.Writer
	Err     io.Writer
}

// New returns a Logger writing to stdout/stderr.
func New(verbose, quiet bool) *Logger {
	return &Logger{
		Verbose: verbose,
		Quiet:   quiet,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// Errorf reports an error. Always written.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.Err, "Error: "+format+"\n", args...)
}

// Warnf reports a warning. Always written.
func (l *Logger) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(l.Err, "Warning: "+format+"\n", args...)
}

// Infof reports progress. Suppressed in quiet mode.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Quiet {
		return
	}
	fmt.Fprintf(l.Out, format+"\n", args...)
}

// Debugf reports a verbose trace. Suppressed unless Verbose, and always in
// quiet mode.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Quiet || !l.Verbose {
		return
	}
	fmt.Fprintf(l.Out, format+"\n", args...)
}
