package template

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/migmedia/planturl/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, fmt.Errorf("%w: unclosed template expression", domain.ErrInvalidConfig))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, fmt.Errorf("%w: empty template expression", domain.ErrInvalidConfig))
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(input, fmt.Errorf("%w: missing variable %q", domain.ErrInvalidConfig, key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// EntryVars exposes a batch entry to templates as path, name, encoded and url.
// name is the file name without its extension.
func EntryVars(e domain.BatchEntry) map[string]string {
	base := filepath.Base(e.Path)
	return map[string]string{
		"path":    e.Path,
		"name":    strings.TrimSuffix(base, filepath.Ext(base)),
		"encoded": e.Encoded,
		"url":     e.URL,
	}
}

// ConfigVars exposes the settings written by planturl init.
func ConfigVars(cfg domain.Config) map[string]string {
	return map[string]string{
		"server":      cfg.Server.BaseURL,
		"type":        cfg.Server.ImageType.String(),
		"timeout":     cfg.Server.Timeout.String(),
		"compression": cfg.Encoding.Mode.String(),
	}
}

func invalid(tmpl string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Path: tmpl,
		Err:  err,
	}
}
