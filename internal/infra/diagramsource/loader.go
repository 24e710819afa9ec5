package diagramsource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/ports"
)

// StdinPath is the explicit spelling of "read from stdin".
const StdinPath = "-"

type Loader struct {
	stdin io.Reader
}

type Option func(*Loader)

// WithStdin replaces os.Stdin, mainly for tests.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.DiagramSource = (*Loader)(nil)

func (l *Loader) LoadDiagram(path string) (string, error) {
	if path == "" || path == StdinPath {
		b, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", &domain.OpError{
				Op:   "diagramsource.stdin",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("error reading stdin: %w", err),
			}
		}
		return string(b), nil
	}

	path = filepath.Clean(path)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &domain.OpError{
				Op:   "diagramsource.load",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  fmt.Errorf("source file %s not found: %w", path, domain.ErrNotFound),
			}
		}
		return "", &domain.OpError{
			Op:   "diagramsource.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("error reading source file: %w", err),
		}
	}
	return string(b), nil
}
