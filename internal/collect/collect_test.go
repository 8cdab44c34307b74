package collect

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tugapse/gitdiff/internal/diag"
	"github.com/tugapse/gitdiff/internal/gitcmd"
	"github.com/tugapse/gitdiff/internal/status"
)

func quietLogger() *diag.Logger {
	return &diag.Logger{Out: io.Discard, Err: io.Discard}
}

func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo builds a repo with a committed text file and a committed
// binary file, then dirties the working tree: main.py modified, img.bin
// modified, bar.txt untracked, and an untracked directory with two files.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	gitIn(t, dir, "init")
	gitIn(t, dir, "checkout", "-b", "main")

	os.WriteFile(filepath.Join(dir, "main.py"), []byte("print('hello')\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "img.bin"), []byte{0x00, 0x01, 0x02, 0xff}, 0o644)
	gitIn(t, dir, "add", "-A")
	gitIn(t, dir, "commit", "-m", "init")

	os.WriteFile(filepath.Join(dir, "main.py"), []byte("print('changed')\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "img.bin"), []byte{0x00, 0xaa, 0xbb, 0xcc}, 0o644)
	os.WriteFile(filepath.Join(dir, "bar.txt"), []byte("untracked content\n"), 0o644)

	os.MkdirAll(filepath.Join(dir, "newdir", "sub"), 0o755)
	os.WriteFile(filepath.Join(dir, "newdir", "a.py"), []byte("a = 1\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "newdir", "sub", "b.txt"), []byte("b\n"), 0o644)

	return dir
}

func changesFor(t *testing.T, dir string) []status.Change {
	t.Helper()
	run := gitcmd.New(dir, quietLogger())
	report, ok := run.Run("status", "--porcelain")
	if !ok {
		t.Fatal("git status failed")
	}
	return status.Parse(report, quietLogger())
}

func TestCollect_TrackedAndUntracked(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{}).Collect(changesFor(t, dir))

	fd, ok := diffs["main.py"]
	if !ok {
		t.Fatalf("main.py missing from results: %v", keys(diffs))
	}
	if fd.Status != "M" {
		t.Errorf("main.py status = %q, want %q", fd.Status, "M")
	}
	if !strings.Contains(fd.Diff, "+print('changed')") {
		t.Errorf("main.py diff missing added line:\n%s", fd.Diff)
	}

	fd, ok = diffs["bar.txt"]
	if !ok {
		t.Fatalf("bar.txt missing from results: %v", keys(diffs))
	}
	if fd.Status != "Untracked" {
		t.Errorf("bar.txt status = %q, want %q", fd.Status, "Untracked")
	}
	if !strings.Contains(fd.Diff, "+untracked content") {
		t.Errorf("bar.txt diff missing content:\n%s", fd.Diff)
	}
}

func TestCollect_UntrackedDirectoryExpanded(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{}).Collect(changesFor(t, dir))

	for _, path := range []string{"newdir/a.py", "newdir/sub/b.txt"} {
		fd, ok := diffs[path]
		if !ok {
			t.Errorf("%s missing from results: %v", path, keys(diffs))
			continue
		}
		if fd.Status != "Untracked" {
			t.Errorf("%s status = %q, want %q", path, fd.Status, "Untracked")
		}
	}
	if _, ok := diffs["newdir/"]; ok {
		t.Error("directory record itself should not be an entry")
	}
}

func TestCollect_ExtensionFilter(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{Extensions: []string{".py"}}).Collect(changesFor(t, dir))

	if _, ok := diffs["main.py"]; !ok {
		t.Errorf("main.py should pass the .py filter: %v", keys(diffs))
	}
	for path := range diffs {
		if !strings.HasSuffix(path, ".py") {
			t.Errorf("%s should have been filtered by extension", path)
		}
	}
}

func TestCollect_ExtensionFilterCaseInsensitive(t *testing.T) {
	dir := setupTestRepo(t)
	os.WriteFile(filepath.Join(dir, "UPPER.PY"), []byte("x = 1\n"), 0o644)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{Extensions: []string{".py"}}).Collect(changesFor(t, dir))

	if _, ok := diffs["UPPER.PY"]; !ok {
		t.Errorf("UPPER.PY should match the lower-cased filter: %v", keys(diffs))
	}
}

func TestCollect_FileNameFilter(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{FileName: "main.py"}).Collect(changesFor(t, dir))

	if len(diffs) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(diffs), keys(diffs))
	}
	if _, ok := diffs["main.py"]; !ok {
		t.Errorf("main.py missing: %v", keys(diffs))
	}
}

func TestCollect_SkipBinaries(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{SkipBinaries: true}).Collect(changesFor(t, dir))

	if _, ok := diffs["img.bin"]; ok {
		t.Error("modified binary should be skipped with SkipBinaries")
	}
	if _, ok := diffs["main.py"]; !ok {
		t.Errorf("text file should survive SkipBinaries: %v", keys(diffs))
	}
}

func TestCollect_BinaryShownByDefault(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{}).Collect(changesFor(t, dir))

	fd, ok := diffs["img.bin"]
	if !ok {
		t.Fatalf("img.bin missing without SkipBinaries: %v", keys(diffs))
	}
	if !strings.Contains(fd.Diff, "Binary files ") {
		t.Errorf("binary entry should carry git's binary stub:\n%s", fd.Diff)
	}
}

func TestIsBinary(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())
	c := New(run, quietLogger(), Options{})

	if !c.IsBinary("img.bin") {
		t.Error("modified binary should classify as binary")
	}
	if c.IsBinary("main.py") {
		t.Error("modified text file should classify as non-binary")
	}
}

// In a repo with no commits HEAD does not resolve, which exercises the
// retry against empty content.
func TestIsBinary_RetryWithoutHead(t *testing.T) {
	dir := t.TempDir()
	gitIn(t, dir, "init")
	os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x00, 0x01, 0xfe}, 0o644)
	os.WriteFile(filepath.Join(dir, "text.txt"), []byte("plain\n"), 0o644)

	run := gitcmd.New(dir, quietLogger())
	c := New(run, quietLogger(), Options{})

	if !c.IsBinary("blob.bin") {
		t.Error("untracked binary in a commitless repo should classify as binary")
	}
	if c.IsBinary("text.txt") {
		t.Error("untracked text file should classify as non-binary")
	}
}

func TestCollect_EmptyChanges(t *testing.T) {
	dir := setupTestRepo(t)
	run := gitcmd.New(dir, quietLogger())

	diffs := New(run, quietLogger(), Options{}).Collect(nil)
	if len(diffs) != 0 {
		t.Errorf("got %d entries for no changes, want 0", len(diffs))
	}
}

func keys(m map[string]FileDiff) []string {
	var ks []string
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
