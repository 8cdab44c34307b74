package status

import (
	"strings"

	"github.com/tugapse/gitdiff/internal/diag"
)

// Untracked is the porcelain code git assigns to untracked paths.
const Untracked = "??"

// renameSep separates the old and new path in rename/copy status lines.
const renameSep = " -> "

// Change is one changed path from a porcelain status report.
type Change struct {
	Code string
	Path string
}

// Parse converts `git status --porcelain` output into Changes, preserving
// input order. Lines that do not split into a status code and a path are
// skipped with a debug diagnostic. Rename and copy lines ("R*"/"C*" codes
// with an "old -> new" remainder) resolve to the new path.
func Parse(report string, log *diag.Logger) []Change {
	var changes []Change
	for _, line := range strings.Split(report, "\n") {
		code, rest, ok := splitLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				log.Debugf("skipping malformed status line %q", line)
			}
			continue
		}
		changes = append(changes, Change{Code: code, Path: resolvePath(code, rest)})
	}
	return changes
}

// splitLine splits a status line on the first run of whitespace.
func splitLine(line string) (code, rest string, ok bool) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	rest = strings.TrimSpace(line[i+1:])
	if rest == "" {
		return "", "", false
	}
	return line[:i], rest, true
}

func resolvePath(code, rest string) string {
	if strings.HasPrefix(code, "R") || strings.HasPrefix(code, "C") {
		if i := strings.Index(rest, renameSep); i >= 0 {
			return strings.TrimSpace(rest[i+len(renameSep):])
		}
	}
	return rest
}
