package encoder

import "strings"

const (
	startMarker = "@startuml\n"
	endMarker   = "\n@enduml"

	// Only these are trimmed, not unicode.IsSpace.
	trimSet = "\n \t"
)

// Normalize converts CRLF line endings, trims newlines, spaces and tabs from
// both ends, and removes one leading "@startuml\n" and one trailing
// "\n@enduml" when present. Blanks inside the markers belong to the body
// and are kept.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.Trim(s, trimSet)
	s = strings.TrimPrefix(s, startMarker)
	return strings.TrimSuffix(s, endMarker)
}
