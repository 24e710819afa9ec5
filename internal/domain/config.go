package domain

import "time"

const DefaultBaseURL = "http://www.plantuml.com/plantuml"

// Config represents the planturl configuration loaded from planturl.yaml and the environment.
type Config struct {
	Server   ServerConfig
	Encoding EncodingConfig
	Output   OutputConfig
}

type ServerConfig struct {
	BaseURL   string
	ImageType ImageType
	Timeout   time.Duration
}

type EncodingConfig struct {
	Mode Mode
}

type OutputConfig struct {
	// Path is the file the result is written to; empty means stdout.
	Path string
}

// DefaultConfig provides sane defaults if planturl.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:   DefaultBaseURL,
			ImageType: ImageSVG,
			Timeout:   30 * time.Second,
		},
		Encoding: EncodingConfig{Mode: ModeDeflate},
	}
}
