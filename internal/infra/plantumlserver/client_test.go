package plantumlserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/httpclient"
)

func TestFetch_OK(t *testing.T) {
	var gotPath, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("<svg>hello</svg>"))
	}))
	defer server.Close()

	c := New(WithAccept(domain.ImageSVG.MediaType()))
	url := domain.DiagramURL(server.URL, domain.ImageSVG, "SyfFKj2rKt3CoKnELR1Io4ZDoSa70000")

	body, err := c.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(body) != "<svg>hello</svg>" {
		t.Fatalf("unexpected body %q", body)
	}
	if gotPath != "/svg/SyfFKj2rKt3CoKnELR1Io4ZDoSa70000" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAccept != "image/svg+xml" {
		t.Fatalf("unexpected accept %q", gotAccept)
	}
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "syntax error", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := New().Fetch(context.Background(), server.URL+"/png/xyz")
	if err == nil {
		t.Fatalf("expected error for 400")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
	if !errors.Is(err, domain.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus in chain, got %v", err)
	}
	if StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", StatusOf(err))
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New(WithExecutor(httpclient.NewExecutor(httpclient.WithTimeout(20 * time.Millisecond))))
	_, err := c.Fetch(context.Background(), server.URL)

	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Kind != domain.FetchErrorTimeout {
		t.Fatalf("expected timeout kind, got %s", fe.Kind)
	}
	if StatusOf(err) != 0 {
		t.Fatalf("expected no status for transport errors")
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New().Fetch(context.Background(), url)

	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Kind != domain.FetchErrorConn {
		t.Fatalf("expected connection kind, got %s", fe.Kind)
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	_, err := New().Fetch(context.Background(), "")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestNewForServer(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer server.Close()

	c := NewForServer(domain.ServerConfig{
		BaseURL:   server.URL,
		ImageType: domain.ImagePNG,
		Timeout:   time.Second,
	}, nil)

	body, err := c.Fetch(context.Background(), server.URL+"/png/abc")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(body) != 4 || gotAccept != "image/png" {
		t.Fatalf("unexpected body %v / accept %q", body, gotAccept)
	}
}

func TestFetch_BodyOverLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 100))
	}))
	defer server.Close()

	c := New(WithExecutor(httpclient.NewExecutor(httpclient.WithMaxBodyBytes(10))))
	body, err := c.Fetch(context.Background(), server.URL+"/png/SmG0")
	if err == nil {
		t.Fatalf("expected error, got %d bytes", len(body))
	}
	if body != nil {
		t.Fatalf("expected no body, got %d bytes", len(body))
	}
	if !errors.Is(err, domain.ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Kind != domain.KindExecution || oe.Path != server.URL+"/png/SmG0" {
		t.Fatalf("unexpected error %#v", err)
	}
}

func TestFetch_BodyAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 10))
	}))
	defer server.Close()

	c := New(WithExecutor(httpclient.NewExecutor(httpclient.WithMaxBodyBytes(10))))
	body, err := c.Fetch(context.Background(), server.URL+"/png/SmG0")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(body) != 10 {
		t.Fatalf("expected 10 bytes, got %d", len(body))
	}
}
