package watcher

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/migmedia/planturl/internal/domain"
)

const DefaultDebounce = 150 * time.Millisecond

// Watcher reports settled changes to a single file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temp file and renaming it are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fs       *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
	fire  chan struct{}
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New starts watching path immediately; events that happen before Run are
// buffered and delivered once Run starts.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindNotFound, Path: path, Err: err}
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		fs:       fs,
		fire:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is done, calling fn once per settled burst of changes.
// Calls never overlap; changes arriving while fn runs are coalesced into one
// more call.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context)) error {
	defer w.stopTimer()
	defer w.fs.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.fire:
				fn(ctx)
			}
		}
	}()
	defer wg.Wait()

	w.logger.Info("watch.started", "path", w.path, "debounce", w.debounce.String())

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watch.stopped", "path", w.path)
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch.error", "path", w.path, "error", err.Error())
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	w.logger.Debug("watch.event", "path", ev.Name, "op", ev.Op.String())

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
