package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/plantumlserver"
	"github.com/migmedia/planturl/internal/usecase"
)

// userMessage renders err as a single line naming the resource that failed.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var fe *domain.FetchError
	var oe *domain.OpError
	hasOp := errors.As(err, &oe)

	if errors.As(err, &fe) {
		url := ""
		if hasOp {
			url = oe.Path
		}
		if status := plantumlserver.StatusOf(err); status != 0 {
			return fmt.Sprintf("server returned %d for %s", status, url)
		}
		switch fe.Kind {
		case domain.FetchErrorTimeout:
			return "timed out fetching " + url
		case domain.FetchErrorDNS, domain.FetchErrorConn:
			return fmt.Sprintf("cannot reach server for %s (%s)", url, fe.Kind)
		default:
			return fmt.Sprintf("fetching %s failed: %v", url, fe.Err)
		}
	}

	if usecase.IsBatchEmpty(err) {
		return fmt.Sprintf("no files match %q", oe.Path)
	}

	if hasOp {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "diagramsource"):
				return fmt.Sprintf("source file %s not found", oe.Path)
			case strings.HasPrefix(oe.Op, "config"):
				return fmt.Sprintf("config file %s not found", oe.Path)
			case strings.HasPrefix(oe.Op, "watcher"):
				return fmt.Sprintf("cannot watch %s: directory not found", oe.Path)
			}
			return "not found: " + oe.Path

		case domain.KindInvalidConfig:
			if strings.HasPrefix(oe.Op, "template") {
				return fmt.Sprintf("invalid template: %v", rootCause(oe))
			}
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			return fmt.Sprintf("invalid config in %s: %v", base, rootCause(oe))

		case domain.KindInvalidInput:
			return fmt.Sprintf("invalid encoded diagram: %v", rootCause(oe))

		default:
			if oe.Path != "" {
				return fmt.Sprintf("%s: %v", oe.Path, rootCause(oe))
			}
			return rootCause(oe).Error()
		}
	}

	return err.Error()
}

// rootCause strips the OpError decoration but keeps the message of what it wraps.
func rootCause(oe *domain.OpError) error {
	if oe.Err == nil {
		return errors.New(string(oe.Kind))
	}
	return oe.Err
}
