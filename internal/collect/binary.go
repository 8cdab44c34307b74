package collect

import "strings"

// Binary-diff marker and not-tracked diagnostic, matched verbatim against
// git's output. These are compatibility contracts with git's current output
// format, not choices of this tool.
const (
	binaryMarkerPrefix = "Binary files "
	binaryMarkerSuffix = " differ"
	notInWorkTree      = "unknown revision or path not in the working tree"
)

// IsBinary reports whether git renders the path's diff as a binary-file
// stub. It diffs against HEAD first; when that fails because the path is not
// tracked, it retries with a two-sided comparison against empty content. Any
// command failure classifies as non-binary, so unknowns are still shown.
func (c *Collector) IsBinary(path string) bool {
	out, ok := c.run.Run("diff", "HEAD", "--", path)
	if !ok && strings.Contains(out, notInWorkTree) {
		out, ok = c.run.Run("diff", "--no-index", "/dev/null", path)
	}
	return ok && strings.Contains(out, binaryMarkerPrefix) && strings.Contains(out, binaryMarkerSuffix)
}
