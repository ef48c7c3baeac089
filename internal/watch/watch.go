// Package watch signals repository changes for the status watch mode.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/joelmoss/vcsinfo/internal/log"
)

// Debounce is the window within which change events are coalesced.
const Debounce = 600 * time.Millisecond

// Watcher watches a repository root and selected VCS metadata directories,
// coalescing filesystem events onto a single-slot channel.
type Watcher struct {
	// Events receives a signal per burst of filesystem activity.
	Events chan struct{}

	fs    *fsnotify.Watcher
	roots []string
	done  chan struct{}
}

// New watches root plus the given subdirectories (relative to root, walked
// recursively). Directories that do not exist are skipped.
func New(root string, subdirs []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		Events: make(chan struct{}, 1),
		fs:     fsw,
		done:   make(chan struct{}),
	}
	for _, sub := range subdirs {
		w.roots = append(w.roots, filepath.Join(root, sub))
	}

	w.addDir(root)
	for _, r := range w.roots {
		w.addTree(r)
	}

	go w.run()
	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.signal()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// maybeWatchNewDir registers directories created under a watch root, so refs
// written into fresh subdirectories keep producing events.
func (w *Watcher) maybeWatchNewDir(path string) {
	if !w.isUnderRoot(path) {
		return
	}
	w.addDir(path)
}

func (w *Watcher) isUnderRoot(path string) bool {
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.fs.Add(path); err != nil {
		log.Printf("watcher add failed for %s: %v", path, err)
	}
}

func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		w.addDir(path)
		return nil
	})
}
