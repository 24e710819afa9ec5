package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/migmedia/planturl/internal/domain"
)

const (
	FileName    = "planturl.yaml"
	EnvFileName = ".env"

	EnvServer      = "PLANTURL_SERVER"
	EnvImageType   = "PLANTURL_TYPE"
	EnvCompression = "PLANTURL_COMPRESSION"
	EnvTimeout     = "PLANTURL_TIMEOUT"
)

// Loader layers configuration: defaults < planturl.yaml < .env < process environment.
type Loader struct {
	lookupEnv func(string) (string, bool)
}

type Option func(*Loader)

// WithLookupEnv replaces os.LookupEnv, mainly for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookupEnv = fn }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads root/planturl.yaml and root/.env when present. An empty root
// skips both files and only applies the process environment.
func (l *Loader) Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if root != "" {
		if err := applyFile(&cfg, filepath.Join(root, FileName), false); err != nil {
			return cfg, err
		}
		if err := applyDotEnv(&cfg, filepath.Join(root, EnvFileName)); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg, l.lookupEnv, "environment"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads an explicitly named config file, which must exist.
// The environment still applies on top of it.
func (l *Loader) LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := applyFile(&cfg, path, true); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, l.lookupEnv, "environment"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFile(cfg *domain.Config, path string, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := y.apply(cfg); err != nil {
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func applyDotEnv(cfg *domain.Config, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "config.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	if err := applyEnv(cfg, lookup, path); err != nil {
		return err
	}
	return nil
}

func applyEnv(cfg *domain.Config, lookup func(string) (string, bool), source string) error {
	fail := func(err error) error {
		return &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Path: source,
			Err:  err,
		}
	}

	if v, ok := lookup(EnvServer); ok && strings.TrimSpace(v) != "" {
		cfg.Server.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvImageType); ok && strings.TrimSpace(v) != "" {
		t, err := domain.ParseImageType(v)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", EnvImageType, err))
		}
		cfg.Server.ImageType = t
	}
	if v, ok := lookup(EnvCompression); ok && strings.TrimSpace(v) != "" {
		m, err := domain.ParseMode(v)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", EnvCompression, err))
		}
		cfg.Encoding.Mode = m
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", EnvTimeout, err))
		}
		cfg.Server.Timeout = d
	}
	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}
