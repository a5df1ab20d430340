// Package watch describes files as they appear in watched directories.
package watch

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/3leaps/magicprims/bindings/go/magic"
	"github.com/3leaps/magicprims/internal/log"
)

// Event reports one created or rewritten file.
type Event struct {
	Path        string
	Op          fsnotify.Op
	Description string
	// Err is the cookie's error state when libmagic produced no result.
	Err error
}

// Watcher owns one cookie and one fsnotify watcher. Run describes files on
// a single goroutine, so the cookie is never shared.
type Watcher struct {
	cookie  *magic.Cookie
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

// New opens a cookie with cfg and an fsnotify watcher. Both are released
// if either fails.
func New(cfg magic.Config, logger *log.Logger) (*Watcher, error) {
	cookie, err := magic.OpenConfig(cfg)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		_ = cookie.Close()
		return nil, err
	}

	return &Watcher{cookie: cookie, watcher: fw, logger: logger}, nil
}

// Add starts watching dir (not recursively).
func (w *Watcher) Add(dir string) error {
	return w.watcher.Add(dir)
}

// Run delivers an Event to fn for every regular file created or written
// in a watched directory, until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			fn(w.describe(event))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Log error but continue watching
			w.logger.Warn("watch: %v", err)
		}
	}
}

func (w *Watcher) describe(event fsnotify.Event) Event {
	ev := Event{Path: event.Name, Op: event.Op}
	desc, ok := w.cookie.File(event.Name)
	if !ok {
		ev.Err = w.cookie.Err()
		w.logger.Debug("%s: %v", event.Name, ev.Err)
		return ev
	}
	ev.Description = desc
	return ev
}

// Close stops watching and releases the cookie. It must not be called
// while Run is describing a file; cancel Run's context first.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	_ = w.cookie.Close()
	return err
}
