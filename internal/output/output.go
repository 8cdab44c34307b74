package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tugapse/gitdiff/internal/collect"
)

// Writer renders collected diffs in one output format.
type Writer interface {
	Write(w io.Writer, diffs map[string]collect.FileDiff) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, color bool) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Color: color}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteDiffs writes the collected diffs to the specified output (file path
// or stdout).
func WriteDiffs(diffs map[string]collect.FileDiff, format, outPath string, color bool) error {
	writer, err := GetWriter(format, color)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, diffs)
}

// sortedPaths returns the map keys in ascending lexicographic order. All
// output ordering comes from here, regardless of insertion order.
func sortedPaths(diffs map[string]collect.FileDiff) []string {
	paths := make([]string, 0, len(diffs))
	for p := range diffs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
