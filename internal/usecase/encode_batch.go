package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/encoder"
	"github.com/migmedia/planturl/internal/ports"
)

const opBatch = "usecase.batch"

type EncodeBatch struct {
	source ports.DiagramSource
	logger *slog.Logger
}

func NewEncodeBatch(src ports.DiagramSource, logger *slog.Logger) *EncodeBatch {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &EncodeBatch{source: src, logger: logger}
}

// Execute encodes every file below root matching pattern ("**" allowed), one
// after another in path order. A file that fails is recorded in its entry and
// the batch continues; cancelling ctx stops it and returns what was done.
func (uc *EncodeBatch) Execute(ctx context.Context, root, pattern string, mode domain.Mode, server domain.ServerConfig) (domain.BatchResult, error) {
	if root == "" {
		root = "."
	}

	res := domain.BatchResult{
		Root:      root,
		Pattern:   pattern,
		StartedAt: time.Now(),
	}

	if !doublestar.ValidatePattern(pattern) {
		return res, &domain.OpError{Op: opBatch, Kind: domain.KindInvalidConfig, Path: pattern, Err: doublestar.ErrBadPattern}
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return res, &domain.OpError{Op: opBatch, Kind: domain.KindExecution, Path: root, Err: err}
	}
	if len(matches) == 0 {
		return res, &domain.OpError{Op: opBatch, Kind: domain.KindNotFound, Path: pattern, Err: domain.ErrNotFound}
	}
	sort.Strings(matches)

	res.Entries = make([]domain.BatchEntry, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			res.FinishedAt = time.Now()
			return res, err
		}

		path := filepath.Join(root, filepath.FromSlash(m))
		entry := domain.BatchEntry{Path: path}

		raw, lerr := uc.source.LoadDiagram(path)
		if lerr != nil {
			entry.Err = lerr
			uc.logger.Warn("batch.failed", "path", path, "error", lerr.Error())
		} else {
			entry.Encoded = encoder.Encode(raw, mode)
			entry.URL = domain.DiagramURL(server.BaseURL, server.ImageType, entry.Encoded)
		}
		res.Entries = append(res.Entries, entry)
	}

	res.FinishedAt = time.Now()
	uc.logger.Info("batch.done",
		"pattern", pattern,
		"files", len(res.Entries),
		"failed", res.Failed(),
		"duration_ms", res.FinishedAt.Sub(res.StartedAt).Milliseconds(),
	)
	return res, nil
}

// IsBatchEmpty reports whether err means the pattern matched nothing.
func IsBatchEmpty(err error) bool {
	var oe *domain.OpError
	return errors.As(err, &oe) && oe.Op == opBatch && oe.Kind == domain.KindNotFound
}
