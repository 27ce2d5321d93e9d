package glint

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file when it changes on disk and merges the
// result into a SettingSet. The file system is watched on a background
// goroutine, but reloading and merging only happen inside Poll, so the set is
// touched from the frame loop alone.
type Watcher struct {
	path    string
	set     *SettingSet
	watcher *fsnotify.Watcher
	changed chan struct{}
	errs    chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchSettings watches path and merges reloads into set. The containing
// directory is watched so editors that replace the file on save are seen.
func WatchSettings(path string, set *SettingSet) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		set:     set,
		watcher: w,
		changed: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll applies a pending reload, if any. It reports whether the set was
// updated. A file that fails to load leaves the set unchanged and returns
// the error; the next successful save is picked up normally.
func (w *Watcher) Poll() (bool, error) {
	select {
	case err := <-w.errs:
		return false, err
	default:
	}
	select {
	case <-w.changed:
	default:
		return false, nil
	}

	next, err := LoadSettingsFile(w.path)
	if err != nil {
		Logger().Warn("glint: settings reload failed", slog.String("path", w.path), slog.Any("err", err))
		return false, err
	}
	w.set.Merge(next)
	Logger().Debug("glint: settings reloaded", slog.String("path", w.path))
	return true, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Bursts of events collapse into one pending reload.
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
