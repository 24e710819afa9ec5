package cli

import (
	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/infra/diagramsource"
	"github.com/migmedia/planturl/internal/ui/tui"
)

func tuiCmd(g *globalFlags) *cobra.Command {
	var source string

	c := &cobra.Command{
		Use:   "tui",
		Short: "Interactive preview: type a diagram, watch its encoding change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := prepare(cmd, *g)
			if err != nil {
				return err
			}
			defer cleanup()

			var initial string
			if source != "" {
				initial, err = diagramsource.NewLoader().LoadDiagram(source)
				if err != nil {
					return err
				}
			}

			return tui.Run(tui.Deps{
				Config:     app.cfg,
				SourcePath: source,
				Initial:    initial,
				Logger:     app.log,
				Debug:      g.debug,
			})
		},
	}

	c.Flags().StringVarP(&source, "source", "s", "", "file to seed the editor with")
	return c
}
