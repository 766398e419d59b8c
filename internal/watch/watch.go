// Package watch re-runs validation when manifest files change.
//
// It exists for local iteration: edit a manifest, see the validation
// outcome immediately, push once it is clean.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fanexid/addonlint/internal/errors"
)

// DefaultDebounce is the quiet period waited after the last event before
// the callback fires. Editors often produce bursts of writes per save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a directory tree and invokes a callback after changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger for watch events.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a Watcher over the tree rooted at root.
// All existing subdirectories are registered; directories created later are
// added as they appear.
func New(root string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating filesystem watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		root:     root,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks, invoking fn after each debounced batch of changes, until ctx
// is canceled or the watcher fails.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			// New directories must be registered to see their files.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addTree(event.Name)
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			fn()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watching for changes")
		}
	}
}

// relevant filters out chmod-only events and changes inside hidden directories.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return true
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return false
		}
	}
	return true
}

// addTree registers path and every directory below it. Non-directories and
// vanished paths are ignored.
func (w *Watcher) addTree(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// The entry may have vanished between the event and the walk.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			w.logger.Debug("cannot watch directory", "path", p, "error", err)
		}
		return nil
	})
}
