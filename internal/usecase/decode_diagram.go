package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/migmedia/planturl/internal/encoder"
	"github.com/migmedia/planturl/internal/ports"
)

type DecodeDiagram struct {
	source ports.DiagramSource
	sink   ports.OutputSink
	logger *slog.Logger
}

func NewDecodeDiagram(src ports.DiagramSource, sink ports.OutputSink, logger *slog.Logger) *DecodeDiagram {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &DecodeDiagram{source: src, sink: sink, logger: logger}
}

// Execute reads an encoded diagram, or a full diagram URL, from sourcePath and
// writes the diagram text wrapped in @startuml/@enduml to outPath.
func (uc *DecodeDiagram) Execute(ctx context.Context, sourcePath, outPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in, err := uc.source.LoadDiagram(sourcePath)
	if err != nil {
		return "", err
	}

	text, err := encoder.Decode(EncodedFromURL(in))
	if err != nil {
		return "", err
	}

	out := "@startuml\n" + text + "\n@enduml\n"
	if err := uc.sink.Write(outPath, []byte(out)); err != nil {
		return "", err
	}

	uc.logger.Info("decode.done", "source", displayPath(sourcePath), "text_len", len(text))
	return text, nil
}

// EncodedFromURL returns the last path segment of a diagram URL without query
// or fragment. Anything without a slash is returned trimmed.
func EncodedFromURL(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
