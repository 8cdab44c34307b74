package collect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tugapse/gitdiff/internal/diag"
	"github.com/tugapse/gitdiff/internal/gitcmd"
	"github.com/tugapse/gitdiff/internal/status"
)

// untrackedLabel is the status label recorded for untracked entries.
const untrackedLabel = "Untracked"

// FileDiff is the collected diff for one path.
type FileDiff struct {
	Path   string
	Status string
	Diff   string
}

// Options filter which changed paths are collected.
type Options struct {
	// Extensions holds lower-cased extensions including the leading dot.
	Extensions []string
	// FileName, when set, keeps only paths whose base name equals it exactly.
	FileName string
	// SkipBinaries drops paths whose diff git renders as a binary stub.
	SkipBinaries bool
}

// Collector fetches per-file diffs for changed paths.
type Collector struct {
	run  *gitcmd.Runner
	log  *diag.Logger
	opts Options
	exts map[string]bool
}

// New returns a Collector using run for git invocations.
func New(run *gitcmd.Runner, log *diag.Logger, opts Options) *Collector {
	c := &Collector{run: run, log: log, opts: opts}
	if len(opts.Extensions) > 0 {
		c.exts = make(map[string]bool, len(opts.Extensions))
		for _, ext := range opts.Extensions {
			c.exts[strings.ToLower(ext)] = true
		}
	}
	return c
}

// Collect fetches a diff for every change that survives the filename,
// extension, and binary filters. Untracked directories are expanded
// recursively; untracked files are diffed against empty content; tracked
// paths are diffed against HEAD. Fetch failures warn and omit the path.
// Keys are unique; ordering is imposed by the renderer.
func (c *Collector) Collect(changes []status.Change) map[string]FileDiff {
	diffs := make(map[string]FileDiff)
	for _, ch := range changes {
		if c.opts.FileName != "" && filepath.Base(ch.Path) != c.opts.FileName {
			continue
		}
		if c.skipByExtension(ch.Path) {
			continue
		}
		if c.opts.SkipBinaries && c.IsBinary(ch.Path) {
			c.log.Infof("Ignoring binary file: %q", ch.Path)
			continue
		}

		if ch.Code == status.Untracked {
			c.collectUntracked(ch.Path, diffs)
		} else {
			c.collectTracked(ch, diffs)
		}
	}
	return diffs
}

func (c *Collector) skipByExtension(path string) bool {
	if c.exts == nil {
		return false
	}
	if c.exts[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	c.log.Debugf("skipping %q due to extension filter", path)
	return true
}

func (c *Collector) collectTracked(ch status.Change, diffs map[string]FileDiff) {
	out, ok := c.run.Run("diff", "HEAD", "--", ch.Path)
	if !ok {
		c.log.Warnf("could not get diff for %s, skipping", ch.Path)
		return
	}
	if strings.TrimSpace(out) == "" {
		return
	}
	diffs[ch.Path] = FileDiff{Path: ch.Path, Status: ch.Code, Diff: out}
}

// collectUntracked handles a "??" record: a regular file is diffed against
// empty content directly, a directory is expanded to its contained files
// with the extension and binary filters re-applied per file.
func (c *Collector) collectUntracked(path string, diffs map[string]FileDiff) {
	full := filepath.Join(c.run.Dir, path)
	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		c.collectUntrackedDir(path, full, diffs)
		return
	}
	c.collectUntrackedFile(path, diffs)
}

func (c *Collector) collectUntrackedDir(path, full string, diffs map[string]FileDiff) {
	c.log.Infof("--- Untracked Directory: %s ---", path)

	files, err := walkFiles(c.run.Dir, full)
	if err != nil {
		c.log.Warnf("walking untracked directory %q: %v", path, err)
	}

	found := false
	for _, rel := range files {
		if c.skipByExtension(rel) {
			continue
		}
		if c.opts.SkipBinaries && c.IsBinary(rel) {
			c.log.Infof("Ignoring binary file: %q", rel)
			continue
		}
		if c.collectUntrackedFile(rel, diffs) {
			found = true
		}
	}
	if !found {
		c.log.Debugf("no untracked files with content found in %s", path)
	}
	c.log.Infof("----- End Untracked Directory: %s -----", path)
}

// collectUntrackedFile diffs empty content against the file. Reports whether
// an entry was recorded.
func (c *Collector) collectUntrackedFile(path string, diffs map[string]FileDiff) bool {
	out, ok := c.run.Run("diff", "--no-index", "/dev/null", path)
	if !ok {
		c.log.Warnf("could not get diff for untracked file %s, skipping", path)
		return false
	}
	if strings.TrimSpace(out) == "" {
		return false
	}
	diffs[path] = FileDiff{Path: path, Status: untrackedLabel, Diff: out}
	return true
}
