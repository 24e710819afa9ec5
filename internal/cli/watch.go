package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/infra/diagramsource"
	"github.com/migmedia/planturl/internal/infra/outputsink"
	"github.com/migmedia/planturl/internal/infra/plantumlserver"
	"github.com/migmedia/planturl/internal/infra/watcher"
	"github.com/migmedia/planturl/internal/usecase"
)

func watchCmd(g *globalFlags) *cobra.Command {
	var ef encodeFlags

	c := &cobra.Command{
		Use:   "watch",
		Short: "Re-encode a diagram every time its file is saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ef.source == "" || ef.source == diagramsource.StdinPath {
				return errors.New("watch needs a file (use --source or -s)")
			}

			app, cleanup, err := prepare(cmd, *g)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := ef.request(cmd, app.cfg)
			if err != nil {
				return err
			}

			w, err := watcher.New(ef.source, watcher.WithLogger(app.log))
			if err != nil {
				return err
			}

			uc := usecase.NewEncodeDiagram(
				diagramsource.NewLoader(),
				plantumlserver.NewForServer(req.Server, app.log),
				outputsink.NewWriter(outputsink.WithStdout(cmd.OutOrStdout())),
				app.log,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			encode := func(ctx context.Context) {
				if _, err := uc.Execute(ctx, req); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Error:", userMessage(err))
				}
			}

			encode(ctx)
			return w.Run(ctx, encode)
		},
	}

	ef.bind(c)
	return c
}
