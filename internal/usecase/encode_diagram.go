package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/encoder"
	"github.com/migmedia/planturl/internal/ports"
)

// EncodeRequest is one invocation of the encoder: where the diagram comes
// from, how to encode it and what to write where.
type EncodeRequest struct {
	SourcePath string
	Mode       domain.Mode
	Server     domain.ServerConfig
	Output     domain.OutputKind
	OutputPath string
}

type EncodeDiagram struct {
	source  ports.DiagramSource
	fetcher ports.ImageFetcher
	sink    ports.OutputSink
	logger  *slog.Logger
}

// NewEncodeDiagram wires the use case. fetcher may be nil when downloads are
// never requested; logger may be nil.
func NewEncodeDiagram(src ports.DiagramSource, fetcher ports.ImageFetcher, sink ports.OutputSink, logger *slog.Logger) *EncodeDiagram {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &EncodeDiagram{
		source:  src,
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
	}
}

func (uc *EncodeDiagram) Execute(ctx context.Context, req EncodeRequest) (domain.EncodeResult, error) {
	raw, err := uc.source.LoadDiagram(req.SourcePath)
	if err != nil {
		return domain.EncodeResult{}, err
	}

	res := domain.EncodeResult{
		SourcePath: req.SourcePath,
		Mode:       req.Mode,
		Output:     req.Output,
		OutputPath: req.OutputPath,
	}
	if res.Output == "" {
		res.Output = domain.OutputRaw
	}

	res.Encoded = encoder.Encode(raw, req.Mode)
	res.URL = domain.DiagramURL(req.Server.BaseURL, req.Server.ImageType, res.Encoded)

	switch res.Output {
	case domain.OutputDownload:
		if uc.fetcher == nil {
			return res, &domain.OpError{Op: "usecase.encode", Kind: domain.KindInvalidConfig, Path: res.URL, Err: domain.ErrInvalidConfig}
		}
		img, err := uc.fetcher.Fetch(ctx, res.URL)
		if err != nil {
			return res, err
		}
		res.Payload = img
	case domain.OutputImg:
		res.Payload = textPayload(domain.ImgTag(res.URL), req.OutputPath)
	case domain.OutputURL:
		res.Payload = textPayload(res.URL, req.OutputPath)
	default:
		res.Payload = textPayload(res.Encoded, req.OutputPath)
	}

	if err := uc.sink.Write(req.OutputPath, res.Payload); err != nil {
		return res, err
	}

	uc.logger.Info("encode.done",
		"source", displayPath(req.SourcePath),
		"mode", req.Mode.String(),
		"input_len", len(raw),
		"encoded_len", len(res.Encoded),
		"output", string(res.Output),
		"bytes", len(res.Payload),
	)
	return res, nil
}

// Text written to a file is kept byte-exact; on a terminal it gets a newline.
func textPayload(s, outPath string) []byte {
	if isStdio(outPath) {
		return []byte(s + "\n")
	}
	return []byte(s)
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

func displayPath(path string) string {
	if isStdio(path) {
		return "<stdin>"
	}
	return path
}
