package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/infra/diagramsource"
	"github.com/migmedia/planturl/internal/infra/outputsink"
	"github.com/migmedia/planturl/internal/infra/plantumlserver"
	"github.com/migmedia/planturl/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

type globalFlags struct {
	config  string
	logFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	var ef encodeFlags

	cmd := &cobra.Command{
		Use:   "planturl",
		Short: "Encode PlantUML diagrams into server URLs",
		Long: "planturl reads a PlantUML diagram from a file or stdin and prints its\n" +
			"encoded form, the full server URL, an HTML img tag, or the rendered image.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := prepare(cmd, g)
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := ef.request(cmd, app.cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewEncodeDiagram(
				diagramsource.NewLoader(diagramsource.WithStdin(cmd.InOrStdin())),
				plantumlserver.NewForServer(req.Server, app.log),
				outputsink.NewWriter(outputsink.WithStdout(cmd.OutOrStdout())),
				app.log,
			)
			_, err = uc.Execute(cmd.Context(), req)
			return err
		},
	}

	ef.bind(cmd)

	cmd.PersistentFlags().StringVar(&g.config, "config", "", "config file (default: planturl.yaml found upward from the working directory)")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "append JSON logs to this file")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging (to stderr unless --log-file is set)")

	cmd.AddCommand(
		decodeCmd(&g),
		batchCmd(&g),
		watchCmd(&g),
		tuiCmd(&g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
