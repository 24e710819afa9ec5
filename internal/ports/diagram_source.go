package ports

// DiagramSource reads raw diagram text from a source (e.g., a file or stdin).
type DiagramSource interface {
	// LoadDiagram reads the whole source. An empty path or "-" means stdin.
	LoadDiagram(path string) (string, error)
}
