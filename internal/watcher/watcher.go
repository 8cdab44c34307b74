package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of events (editor saves, git operations)
// into a single change notification.
const debounceDelay = 250 * time.Millisecond

// skipDirs are never watched and their events are ignored.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
}

// Watcher watches a directory tree and reports debounced change events.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Changes chan string
	Errors  chan error
	done    chan struct{}
}

// New creates a watcher rooted at dir, registering every subdirectory that
// is not in the skip list.
func New(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:     fsw,
		Changes: make(chan string, 1),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	if err := w.addRecursive(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start begins forwarding events on the Changes channel.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] && path != dir {
			return fs.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	var (
		timer *time.Timer
		fired <-chan time.Time
		last  string
	)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ignored(ev.Name) {
				continue
			}
			// New directories need their own watch before anything
			// written inside them is visible.
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(ev.Name)
				}
			}
			last = ev.Name
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fired = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case <-fired:
			timer = nil
			fired = nil
			select {
			case w.Changes <- last:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// ignored reports whether any component of path is in the skip list.
func ignored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if skipDirs[part] {
			return true
		}
	}
	return false
}
