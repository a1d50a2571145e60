package watcher

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// listingOps are the events that change a directory listing. Writes to an
// existing file do not alter the generated catalog and are ignored.
const listingOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher watches one directory for entries being added, removed or renamed.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *log.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the window used to coalesce events.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger that receives watch errors.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a Watcher for dir.
func New(dir string, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		debounce: DefaultDebounceDuration,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done, calling onChange (debounced) after the
// listing of the directory changes. onChange runs on a timer goroutine but
// never concurrently with itself.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	debouncer := NewDebouncer(w.debounce)
	defer debouncer.Cancel()
	onChange = serialize(onChange)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&listingOps == 0 {
				continue
			}
			w.logger.Debug("asset listing changed", "op", ev.Op.String(), "file", ev.Name)
			debouncer.Trigger(onChange)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "dir", w.dir, "err", err)
		}
	}
}

// serialize wraps fn so that overlapping calls run one after another.
func serialize(fn func()) func() {
	var mu sync.Mutex
	return func() {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}
