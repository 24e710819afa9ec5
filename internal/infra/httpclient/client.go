package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/migmedia/planturl/internal/domain"
)

type Config struct {
	// Total timeout for the entire request (includes redirects, reading body, etc).
	// A context deadline can still override this.
	Timeout time.Duration

	// Transport / dial timeouts.
	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      20 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
	}
}

// ConfigFor derives client settings from the server section of the planturl config.
func ConfigFor(server domain.ServerConfig) Config {
	cfg := DefaultConfig()
	if server.Timeout > 0 {
		cfg.Timeout = server.Timeout
		if cfg.ResponseHeader > server.Timeout {
			cfg.ResponseHeader = server.Timeout
		}
	}
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
