package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/config"
	"github.com/migmedia/planturl/internal/infra/logger"
)

type appCtx struct {
	// root is the directory holding planturl.yaml, empty when none was found.
	root string
	cfg  domain.Config
	log  *slog.Logger
}

// prepare loads configuration and installs the logger. The returned cleanup
// must run when the command finishes, even if err is nil.
func prepare(cmd *cobra.Command, g globalFlags) (*appCtx, func(), error) {
	cleanup, lerr := logger.Setup(logger.Config{
		Path:   g.logFile,
		Debug:  g.debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if cleanup == nil {
		cleanup = func() error { return nil }
	}
	done := func() { _ = cleanup() }

	log := logger.L()
	switch {
	case lerr != nil:
		// Logging is best effort; the command still runs.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: cannot open log file %s: %v\n", g.logFile, lerr)
	case g.debug && logger.IsReady() == nil && logger.Path() != "":
		fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logger.Path())
	}

	app := &appCtx{log: log}

	loader := config.NewLoader()
	var err error
	if g.config != "" {
		app.root = ""
		app.cfg, err = loader.LoadFile(g.config)
	} else {
		app.root = discoverRoot()
		app.cfg, err = loader.Load(app.root)
	}
	if err != nil {
		done()
		return nil, func() {}, err
	}

	log.Debug("config.loaded",
		"root", app.root,
		"file", g.config,
		"server", app.cfg.Server.BaseURL,
		"type", app.cfg.Server.ImageType.String(),
		"mode", app.cfg.Encoding.Mode.String(),
	)
	return app, done, nil
}

func discoverRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root, err := config.NewFinder().FindRoot(wd)
	if err != nil {
		return ""
	}
	return root
}
