package output

import (
	"fmt"
	"io"

	"github.com/tugapse/gitdiff/internal/collect"
)

// TextWriter outputs a human-readable bordered listing, one block per file.
type TextWriter struct {
	// Color syntax-highlights diff bodies and styles the delimiter lines.
	Color bool
}

func (t *TextWriter) Write(w io.Writer, diffs map[string]collect.FileDiff) error {
	ew := &errWriter{w: w}

	if len(diffs) == 0 {
		ew.println("No changes detected.")
		return ew.err
	}

	for _, path := range sortedPaths(diffs) {
		fd := diffs[path]
		header := fmt.Sprintf("--- %s (%s) ---", fd.Path, fd.Status)
		footer := "-----"
		body := fd.Diff
		if t.Color {
			header = delimiterStyle.Render(header)
			footer = delimiterStyle.Render(footer)
			body = highlightDiff(body)
		}
		ew.println("")
		ew.println(header)
		ew.println(body)
		ew.println(footer)
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
