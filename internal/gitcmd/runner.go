package gitcmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tugapse/gitdiff/internal/diag"
)

// Runner executes git commands in a fixed working directory.
type Runner struct {
	Dir string
	Log *diag.Logger
}

// New returns a Runner rooted at dir.
func New(dir string, log *diag.Logger) *Runner {
	return &Runner{Dir: dir, Log: log}
}

// Run executes git with the given arguments and returns the trimmed stdout
// text plus a success flag. A diff-family command (first argument "diff")
// exiting with code 1 is success: that is git's signal that differences were
// found. All other nonzero exits, a missing git executable, and unexpected
// execution faults report false.
//
// On a nonzero exit the returned text is the captured stdout joined with the
// captured stderr, since git writes diagnostics like "unknown revision or
// path not in the working tree" to stderr and callers match on them.
func (r *Runner) Run(args ...string) (string, bool) {
	cmdStr := "git " + strings.Join(args, " ")
	r.Log.Debugf("running %q in %q", cmdStr, r.Dir)

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errText := strings.TrimSpace(stderr.String())
	if errText != "" {
		r.Log.Debugf("git stderr: %s", errText)
	}

	if err == nil {
		return out, true
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if len(args) > 0 && args[0] == "diff" && code == 1 {
			r.Log.Debugf("git diff exited 1 (differences found)")
			return out, true
		}
		r.Log.Errorf("git command %q failed with exit code %d", cmdStr, code)
		return joinOutput(out, errText), false
	}

	if errors.Is(err, exec.ErrNotFound) {
		r.Log.Errorf("git not found; ensure it is installed and on your PATH")
		return "", false
	}

	r.Log.Errorf("running git command %q: %v", cmdStr, err)
	return "", false
}

// IsRepo reports whether dir contains a .git entry. Linked worktrees carry a
// .git file rather than a directory, so both count.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

func joinOutput(stdout, stderr string) string {
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return stdout + "\n" + stderr
	}
}
