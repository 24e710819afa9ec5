package httpclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/migmedia/planturl/internal/buildinfo"
	"github.com/migmedia/planturl/internal/domain"
)

// BuildGet builds a GET request for a diagram URL.
// A User-Agent is set unless headers already carry one.
func BuildGet(ctx context.Context, rawURL string, headers map[string]string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: rawURL,
			Err:  err,
		}
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", buildinfo.UserAgent())
	}
	return req, nil
}
