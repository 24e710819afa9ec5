package ports

import "context"

// ImageFetcher downloads a rendered diagram from a PlantUML server.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
