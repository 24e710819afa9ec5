package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/scaffold"
)

func initCmd() *cobra.Command {
	var force bool
	var ef encodeFlags

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create planturl.yaml and an example diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			req, err := ef.request(cmd, domain.DefaultConfig())
			if err != nil {
				return err
			}
			cfg := domain.DefaultConfig()
			cfg.Server = req.Server
			cfg.Encoding.Mode = req.Mode

			written, err := scaffold.NewInitializer().Init(root, cfg, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(written) == 0 {
				fmt.Fprintln(out, "Nothing to do (use --force to overwrite)")
				return nil
			}
			for _, p := range written {
				fmt.Fprintf(out, "created %s\n", p)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	c.Flags().StringVarP(&ef.baseURL, "base-url", "u", domain.DefaultBaseURL, "server URL to store")
	c.Flags().StringVarP(&ef.compression, "compression", "c", domain.ModeDeflate.String(), "compression to store [hex, deflate, best]")
	c.Flags().StringVarP(&ef.imageType, "type", "t", domain.ImageSVG.String(), "image type to store [ascii, png, svg]")
	return c
}
