package config

import (
	"fmt"
	"strings"

	"github.com/migmedia/planturl/internal/domain"
)

type yamlConfig struct {
	Planturl struct {
		Server struct {
			URL     string `yaml:"url"`
			Type    string `yaml:"type"`
			Timeout string `yaml:"timeout"`
		} `yaml:"server"`

		Compression string `yaml:"compression"`

		Output struct {
			File string `yaml:"file"`
		} `yaml:"output"`
	} `yaml:"planturl"`
}

// apply writes parsed values on top of cfg; empty fields keep the defaults.
func (y yamlConfig) apply(cfg *domain.Config) error {
	p := y.Planturl

	if s := strings.TrimSpace(p.Server.URL); s != "" {
		cfg.Server.BaseURL = s
	}
	if p.Server.Type != "" {
		t, err := domain.ParseImageType(p.Server.Type)
		if err != nil {
			return fmt.Errorf("server.type: %w", err)
		}
		cfg.Server.ImageType = t
	}
	if p.Server.Timeout != "" {
		d, err := parseTimeout(p.Server.Timeout)
		if err != nil {
			return fmt.Errorf("server.timeout: %w", err)
		}
		cfg.Server.Timeout = d
	}
	if p.Compression != "" {
		m, err := domain.ParseMode(p.Compression)
		if err != nil {
			return fmt.Errorf("compression: %w", err)
		}
		cfg.Encoding.Mode = m
	}
	if s := strings.TrimSpace(p.Output.File); s != "" {
		cfg.Output.Path = s
	}
	return nil
}
