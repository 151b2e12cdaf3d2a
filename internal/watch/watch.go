package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes anywhere below a directory tree, coalescing bursts of events.
type Watcher struct {
	notify         *fsnotify.Watcher
	debounce       time.Duration
	followSymlinks bool
	ignore         func(path string) bool
}

// New creates a watcher. Events for paths accepted by ignore never trigger a change; ignore may be nil.
// With followSymlinks the directories behind symbolic links are watched as well.
// The watcher must be closed when it is no longer needed.
func New(debounce time.Duration, followSymlinks bool, ignore func(path string) bool) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher failed: %w", err)
	}
	if ignore == nil {
		ignore = func(string) bool { return false }
	}
	return &Watcher{notify: notify, debounce: debounce, followSymlinks: followSymlinks, ignore: ignore}, nil
}

func (w *Watcher) Close() error {
	return w.notify.Close()
}

// AddTree watches the given directory and all directories below it which are not ignored.
func (w *Watcher) AddTree(root string) error {
	return w.addTree(root, make(map[string]bool))
}

func (w *Watcher) addTree(root string, visited map[string]bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && w.ignore(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if !w.followSymlinks {
				return nil
			}
			return w.addLinkTarget(path, visited)
		}
		if !d.IsDir() {
			return nil
		}
		if w.followSymlinks {
			canonical, err := filepath.EvalSymlinks(path)
			if err != nil {
				return fmt.Errorf("resolving %s failed: %w", path, err)
			}
			if visited[canonical] {
				return filepath.SkipDir
			}
			visited[canonical] = true
		}
		if err := w.notify.Add(path); err != nil {
			return fmt.Errorf("watching %s failed: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) addLinkTarget(link string, visited map[string]bool) error {
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return nil //dangling and looping links are not indexed either
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return nil
	}
	return w.addTree(target, visited)
}

// Run blocks until the context is done or onChange fails, calling onChange once per burst of events.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if w.ignore(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if err := w.addIfDirectory(event.Name); err != nil {
					return err
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching failed: %w", err)
		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) addIfDirectory(path string) error {
	err := w.AddTree(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil //created and removed again before it could be watched
	}
	return err
}
