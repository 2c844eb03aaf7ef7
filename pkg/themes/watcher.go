package themes

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces rapid successive events (editor save patterns,
// bulk copies) into a single rescan.
const debounceDelay = 500 * time.Millisecond

// Watch installs a directory watcher on dir, rescans the registry, and calls
// onReload once synchronously. Afterwards every debounced batch of file
// events triggers a rescan followed by onReload on the watcher goroutine.
//
// The initial rescan and callback happen even when the watcher cannot be
// installed (the error is still returned): a missing directory costs hot
// reload, not the builtin themes. Any previous watch is stopped first.
func (r *Registry) Watch(dir string, onReload func()) error {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()
	r.closeLocked()

	watchErr := r.startWatcher(dir, onReload)

	if err := r.LoadDir(dir); err != nil {
		slog.Debug("Initial theme scan", "dir", dir, "error", err)
	}
	onReload()

	return watchErr
}

// Close stops the directory watcher, if any. The registry stays usable.
func (r *Registry) Close() {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()
	r.closeLocked()
}

func (r *Registry) closeLocked() {
	if r.stopChan != nil {
		close(r.stopChan)
		r.stopChan = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
}

func (r *Registry) startWatcher(dir string, onReload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := addRecursive(watcher, dir); err != nil {
		watcher.Close()
		return err
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})
	go r.watchLoop(watcher, r.stopChan, dir, onReload)

	slog.Debug("Watching theme directory", "dir", dir)
	return nil
}

// addRecursive watches root and every directory below it. fsnotify itself
// is not recursive.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func (r *Registry) watchLoop(watcher *fsnotify.Watcher, stop chan struct{}, dir string, onReload func()) {
	var debounce *time.Timer

	for {
		select {
		case <-stop:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(watcher, event) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case <-stop:
					return
				default:
				}
				if err := r.LoadDir(dir); err != nil {
					slog.Debug("Theme rescan", "dir", dir, "error", err)
				}
				onReload()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Theme directory watcher error", "error", err)
		}
	}
}

// relevant reports whether an event warrants a rescan. Rename and Create are
// included to catch editors that save atomically by writing a temp file and
// renaming it over the target.
func relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	// New subdirectories join the watch so nested theme files hot-reload too.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				slog.Warn("Watch new theme subdirectory", "dir", event.Name, "error", err)
			}
			return true
		}
	}

	match, _ := doublestar.Match("*.{yaml,yml}", filepath.Base(event.Name))
	return match
}
