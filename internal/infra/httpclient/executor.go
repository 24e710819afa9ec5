package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodyBytes = 16 << 20

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Truncated bool
	Duration  time.Duration
}

// Executor executes HTTP requests with timing.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes bounds how much of a response body is kept.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes the request and returns response data plus duration.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, e.maxBodyBytes)
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Status: resp.StatusCode, Duration: duration}, err
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Truncated: truncated,
		Duration:  duration,
	}, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
