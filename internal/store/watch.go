package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watchDebounce collapses editor write bursts (temp file + rename) into one
// notification.
const watchDebounce = 250 * time.Millisecond

// Watcher reports external changes to one project file. Events carries at
// most one pending notification; slow consumers never block the watcher.
type Watcher struct {
	Events chan struct{}

	fw      *fsnotify.Watcher
	done    chan struct{}
	closing sync.Once
}

// WatchProject watches the project file's directory (editors typically
// replace files by rename, which a file-level watch would lose) and filters
// for the file itself.
func WatchProject(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	w := &Watcher{
		Events: make(chan struct{}, 1),
		fw:     fw,
		done:   make(chan struct{}),
	}
	go w.run(filepath.Base(abs))
	return w, nil
}

func (w *Watcher) run(base string) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(watchDebounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.Events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher. Safe to call more than once. The Events channel
// is not closed; readers should select against their own done signal.
func (w *Watcher) Close() error {
	var err error
	w.closing.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
