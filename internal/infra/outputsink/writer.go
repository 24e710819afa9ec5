package outputsink

import (
	"io"
	"os"
	"path/filepath"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/ports"
)

type Writer struct {
	stdout   io.Writer
	fileMode os.FileMode
}

type Option func(*Writer)

// WithStdout replaces os.Stdout, mainly for tests.
func WithStdout(w io.Writer) Option {
	return func(s *Writer) { s.stdout = w }
}

func WithFileMode(mode os.FileMode) Option {
	return func(s *Writer) { s.fileMode = mode }
}

func NewWriter(opts ...Option) *Writer {
	s := &Writer{
		stdout:   os.Stdout,
		fileMode: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.OutputSink = (*Writer)(nil)

func (s *Writer) Write(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := s.stdout.Write(data); err != nil {
			return &domain.OpError{
				Op:   "outputsink.stdout",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
		return nil
	}

	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "outputsink.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, s.fileMode); err != nil {
		return &domain.OpError{
			Op:   "outputsink.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "outputsink.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
