package hunks

import "strings"

const (
	fileHeaderPrefix = "diff --git "
	hunkHeaderPrefix = "@@ "
)

// Split decomposes unified diff text into an ordered sequence of blocks. A
// new block starts at every file header ("diff --git ") and every hunk header
// ("@@ "); everything else accumulates into the current block. Empty input
// yields no blocks.
//
// No line is dropped or altered: joining the returned blocks with "\n"
// reproduces the input exactly.
func Split(diff string) []string {
	if diff == "" {
		return nil
	}

	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, fileHeaderPrefix) || strings.HasPrefix(line, hunkHeaderPrefix) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return blocks
}
