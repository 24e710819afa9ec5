package domain

import "time"

// EncodeResult describes one encoded diagram and what was written for it.
type EncodeResult struct {
	SourcePath string
	Mode       Mode
	Encoded    string
	URL        string
	Output     OutputKind
	OutputPath string

	// Payload is exactly what reached the output sink.
	Payload []byte
}

// BatchEntry is the outcome for a single file of a batch run.
// Err is set instead of Encoded/URL when the file could not be encoded.
type BatchEntry struct {
	Path    string
	Encoded string
	URL     string
	Err     error
}

// BatchResult collects a whole batch run in path order.
type BatchResult struct {
	Root    string
	Pattern string

	StartedAt  time.Time
	FinishedAt time.Time

	Entries []BatchEntry
}

// Failed counts entries that carry an error.
func (r BatchResult) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}
