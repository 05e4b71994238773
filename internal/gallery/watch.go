package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a burst of file events must be quiet before a
// change is reported.
const DefaultSettle = 250 * time.Millisecond

// Watcher reports changes to the images of scanned directories. A burst
// of events, such as a copy of many files, is reported once.
type Watcher struct {
	fs      *fsnotify.Watcher
	opts    ScanOptions
	settle  time.Duration
	changes chan struct{}
	errs    chan error
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch watches the directories among paths. Plain files are not watched.
// With opts.Recursive, subdirectories are watched too, including ones
// created later.
func Watch(paths []string, opts ScanOptions, settle time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	w := &Watcher{
		fs:      fw,
		opts:    opts,
		settle:  settle,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := w.addDir(p); err != nil {
			fw.Close()
			return nil, err
		}
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers one value per settled burst of changes. It is closed
// by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers watcher errors. Delivery is best effort: an error is
// dropped while a previous one is unread. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	close(w.changes)
	close(w.errs)
	return err
}

func (w *Watcher) addDir(root string) error {
	if !w.opts.Recursive {
		if err := w.fs.Add(root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped like in Scan
		}
		if path != root && !w.opts.Hidden && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // a change is already pending
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// relevant reports whether ev can change the gallery. New directories are
// added to the watch list when scanning is recursive.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	if !w.opts.Hidden && strings.HasPrefix(name, ".") {
		return false
	}
	if ev.Has(fsnotify.Create) && w.opts.Recursive {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addDir(ev.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				select {
				case w.errs <- err:
				default:
				}
			}
			return true
		}
	}
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	// a removed directory has no extension to check
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		return IsImageFile(ev.Name) || filepath.Ext(ev.Name) == ""
	}
	return IsImageFile(ev.Name)
}
