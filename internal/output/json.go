package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/tugapse/gitdiff/internal/collect"
	"github.com/tugapse/gitdiff/internal/hunks"
)

// fileEntry is one element of the JSON array. Field names are part of the
// output contract consumed by downstream tooling.
type fileEntry struct {
	Filename string   `json:"filename"`
	Ext      string   `json:"ext"`
	Diff     string   `json:"all_diffs_as_text"`
	Blocks   []string `json:"diff_blocks"`
}

// JSONWriter outputs the collected diffs as a pretty-printed JSON array,
// sorted by path, with each diff also split into hunk blocks. An empty input
// renders as the empty array.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, diffs map[string]collect.FileDiff) error {
	entries := make([]fileEntry, 0, len(diffs))
	for _, path := range sortedPaths(diffs) {
		fd := diffs[path]
		entries = append(entries, fileEntry{
			Filename: fd.Path,
			Ext:      filepath.Ext(fd.Path),
			Diff:     fd.Diff,
			Blocks:   hunks.Split(fd.Diff),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
