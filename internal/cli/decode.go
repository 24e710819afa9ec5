package cli

import (
	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/infra/diagramsource"
	"github.com/migmedia/planturl/internal/infra/outputsink"
	"github.com/migmedia/planturl/internal/usecase"
)

func decodeCmd(g *globalFlags) *cobra.Command {
	var source string
	var file string

	c := &cobra.Command{
		Use:   "decode",
		Short: "Turn an encoded diagram or diagram URL back into PlantUML text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := prepare(cmd, *g)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecase.NewDecodeDiagram(
				diagramsource.NewLoader(diagramsource.WithStdin(cmd.InOrStdin())),
				outputsink.NewWriter(outputsink.WithStdout(cmd.OutOrStdout())),
				app.log,
			)
			_, err = uc.Execute(cmd.Context(), source, file)
			return err
		},
	}

	c.Flags().StringVarP(&source, "source", "s", "", "file holding the encoded string or URL, stdin if not present")
	c.Flags().StringVarP(&file, "file", "f", "", "saves the diagram in the given file or stdout if not present")
	return c
}
