package tui

import (
	"log/slog"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/ports"
)

type Deps struct {
	Config domain.Config

	// SourcePath is where ctrl+s writes the edited diagram; empty disables saving.
	SourcePath string
	Initial    string

	// Sink defaults to a file writer.
	Sink ports.OutputSink

	Logger *slog.Logger
	Debug  bool
}
