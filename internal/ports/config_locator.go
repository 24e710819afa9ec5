package ports

// ConfigLocator finds the directory holding planturl.yaml, starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
