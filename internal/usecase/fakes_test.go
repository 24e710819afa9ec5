package usecase

import (
	"context"
	"os"

	"github.com/migmedia/planturl/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeSource map[string]string

func (f fakeSource) LoadDiagram(path string) (string, error) {
	s, ok := f[path]
	if !ok {
		return "", &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: path, Err: os.ErrNotExist}
	}
	return s, nil
}

type fakeFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

type fakeSink struct {
	writes map[string][]byte
	err    error
}

func (s *fakeSink) Write(path string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.writes == nil {
		s.writes = map[string][]byte{}
	}
	s.writes[path] = append([]byte(nil), data...)
	return nil
}
