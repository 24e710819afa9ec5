package tui

import (
	"errors"
	"path/filepath"

	"github.com/migmedia/planturl/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		name := filepath.Base(oe.Path)
		switch oe.Kind {
		case domain.KindNotFound:
			return "Not found: " + name
		case domain.KindExecution:
			if oe.Path != "" {
				return "Could not write " + name
			}
		}
		return "Unexpected error (see logs)"
	}

	return err.Error()
}
