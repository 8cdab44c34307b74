package hunks

import (
	"strings"
	"testing"
)

const twoFileDiff = `diff --git a/main.py b/main.py
index 1234567..89abcde 100644
--- a/main.py
+++ b/main.py
@@ -1,3 +1,4 @@
 import os
+import sys
@@ -10,2 +11,3 @@
 def main():
+    pass
diff --git a/util.py b/util.py
--- a/util.py
+++ b/util.py
@@ -1 +1,2 @@
+def helper(): ...`

func TestSplit_Empty(t *testing.T) {
	if blocks := Split(""); len(blocks) != 0 {
		t.Errorf("got %d blocks from empty input, want 0", len(blocks))
	}
}

func TestSplit_SingleHunk(t *testing.T) {
	diff := "diff --git a/f b/f\n--- a/f\n+++ b/f\n@@ -1 +1 @@\n-old\n+new"
	blocks := Split(diff)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "diff --git ") {
		t.Errorf("block 0 starts with %q, want file header", firstLine(blocks[0]))
	}
	if !strings.HasPrefix(blocks[1], "@@ ") {
		t.Errorf("block 1 starts with %q, want hunk header", firstLine(blocks[1]))
	}
}

func TestSplit_TwoFiles(t *testing.T) {
	blocks := Split(twoFileDiff)
	if len(blocks) < 2 {
		t.Fatalf("got %d blocks, want at least 2", len(blocks))
	}

	headers := 0
	for _, b := range blocks {
		switch {
		case strings.HasPrefix(b, "diff --git "):
			headers++
		case strings.HasPrefix(b, "@@ "):
		default:
			t.Errorf("block starts with %q, want a file or hunk header", firstLine(b))
		}
	}
	if headers != 2 {
		t.Errorf("got %d file-header blocks, want 2", headers)
	}
}

func TestSplit_ReassemblyIdentity(t *testing.T) {
	inputs := []string{
		twoFileDiff,
		"no headers at all\njust lines",
		"@@ -1 +1 @@\n+x",
		"leading context\ndiff --git a/f b/f\n@@ -1 +1 @@\n+x\ntrailing",
		"\n\n",
		"diff --git a/f b/f",
	}
	for _, in := range inputs {
		blocks := Split(in)
		if got := strings.Join(blocks, "\n"); got != in {
			t.Errorf("reassembly mismatch:\n got: %q\nwant: %q", got, in)
		}
	}
}

func TestSplit_LeadingLinesBeforeFirstHeader(t *testing.T) {
	diff := "stray line\ndiff --git a/f b/f\n@@ -1 +1 @@\n+x"
	blocks := Split(diff)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0] != "stray line" {
		t.Errorf("block 0 = %q, want the stray line alone", blocks[0])
	}
}

func TestSplit_NoHeadersSingleBlock(t *testing.T) {
	diff := "a\nb\nc"
	blocks := Split(diff)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0] != diff {
		t.Errorf("block 0 = %q, want whole input", blocks[0])
	}
}

// A line that merely mentions @@ mid-line must not start a block.
func TestSplit_MarkerMustBePrefix(t *testing.T) {
	diff := "diff --git a/f b/f\n+something @@ inline\n+@@also not a hunk"
	blocks := Split(diff)
	if len(blocks) != 1 {
		t.Errorf("got %d blocks, want 1", len(blocks))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
