package ports

import "github.com/migmedia/planturl/internal/domain"

// ConfigInitializer creates a planturl.yaml (and friends) in a directory.
type ConfigInitializer interface {
	Init(root string, cfg domain.Config, force bool) ([]string, error)
}
