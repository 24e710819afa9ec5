package plantumlserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/httpclient"
	"github.com/migmedia/planturl/internal/ports"
)

// Client downloads rendered diagrams from a PlantUML server.
type Client struct {
	exec   *httpclient.Executor
	accept string
	log    *slog.Logger
}

type Option func(*Client)

// WithExecutor replaces the default executor.
func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

// WithAccept sets the Accept header sent with every request.
func WithAccept(mediaType string) Option {
	return func(c *Client) { c.accept = mediaType }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		exec: httpclient.NewExecutor(),
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewForServer builds a client whose timeout and Accept header follow the server config.
func NewForServer(server domain.ServerConfig, l *slog.Logger) *Client {
	cfg := httpclient.ConfigFor(server)
	return New(
		WithExecutor(httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(cfg)),
			httpclient.WithTimeout(cfg.Timeout),
		)),
		WithAccept(server.ImageType.MediaType()),
		WithLogger(l),
	)
}

var _ ports.ImageFetcher = (*Client)(nil)

// Fetch GETs url and returns the body. Any status outside 2xx is an error,
// including the 400 a server answers with for diagrams it cannot parse, and so
// is a body cut off at the executor's size limit.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	headers := map[string]string{}
	if c.accept != "" {
		headers["Accept"] = c.accept
	}

	req, err := httpclient.BuildGet(ctx, url, headers)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		fe := classify(err)
		c.log.Warn("fetch.failed", "url", url, "kind", fe.Kind, "duration_ms", resp.Duration.Milliseconds())
		return nil, &domain.OpError{
			Op:   "plantumlserver.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  fe,
		}
	}

	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		c.log.Warn("fetch.status", "url", url, "status", resp.Status)
		return nil, &domain.OpError{
			Op:   "plantumlserver.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err: &domain.FetchError{
				Kind:   domain.FetchErrorHTTP,
				Status: resp.Status,
				Err:    domain.ErrUnexpectedStatus,
			},
		}
	}

	if resp.Truncated {
		c.log.Warn("fetch.truncated", "url", url, "bytes", len(resp.BodyBytes))
		return nil, &domain.OpError{
			Op:   "plantumlserver.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  fmt.Errorf("%w: more than %d bytes", domain.ErrBodyTooLarge, len(resp.BodyBytes)),
		}
	}

	c.log.Debug("fetch.done",
		"url", url,
		"status", resp.Status,
		"bytes", len(resp.BodyBytes),
		"duration_ms", resp.Duration.Milliseconds(),
	)
	return resp.BodyBytes, nil
}

func classify(err error) *domain.FetchError {
	kind := domain.FetchErrorUnknown

	var dnsErr *net.DNSError
	var netErr net.Error
	var opErr *net.OpError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = domain.FetchErrorTimeout
	case errors.As(err, &dnsErr):
		kind = domain.FetchErrorDNS
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = domain.FetchErrorTimeout
	case errors.As(err, &opErr):
		kind = domain.FetchErrorConn
	}

	return &domain.FetchError{Kind: kind, Err: err}
}

// StatusOf reports the HTTP status carried by a fetch error, or 0.
func StatusOf(err error) int {
	var fe *domain.FetchError
	if errors.As(err, &fe) && fe.Kind == domain.FetchErrorHTTP {
		return fe.Status
	}
	return 0
}
