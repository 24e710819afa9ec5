package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where log records go. A non-empty Path wins; otherwise
// Debug logs to Stderr and anything else is discarded.
type Config struct {
	Path   string
	Debug  bool
	Stderr io.Writer
}

var (
	mu       sync.RWMutex
	global   = discard()
	logFile  *os.File
	logPath  string
	initedAt time.Time
)

func Setup(cfg Config) (func() error, error) {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	var (
		w    io.Writer
		f    *os.File
		path string
	)
	switch {
	case cfg.Path != "":
		path = filepath.Clean(cfg.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		w = f
	case cfg.Debug:
		w = cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
	default:
		setDiscard()
		return func() error { return nil }, nil
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		initedAt = time.Time{}
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the log file in use, empty when logging to stderr or nowhere.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// IsReady reports an error unless Setup installed a real handler.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if initedAt.IsZero() {
		return errors.New("logger not initialized")
	}
	return nil
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
	initedAt = time.Time{}
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
