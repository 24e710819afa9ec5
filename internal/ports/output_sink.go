package ports

// OutputSink persists the final payload. An empty path means stdout.
type OutputSink interface {
	Write(path string, data []byte) error
}
