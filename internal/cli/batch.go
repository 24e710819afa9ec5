package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/app/template"
	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/diagramsource"
	"github.com/migmedia/planturl/internal/usecase"
)

func batchCmd(g *globalFlags) *cobra.Command {
	var root string
	var format string
	var tmpl string
	var ef encodeFlags

	c := &cobra.Command{
		Use:   "batch PATTERN",
		Short: "Encode every diagram matching a glob (** allowed)",
		Example: "  planturl batch '**/*.puml'\n" +
			"  planturl batch 'docs/*.puml' --format json -c best\n" +
			"  planturl batch '**/*.puml' --template '![{{name}}]({{url}})'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "pretty" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
			if tmpl != "" {
				format = "template"
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

			uc := usecase.NewEncodeBatch(diagramsource.NewLoader(), app.log)
			res, err := uc.Execute(cmd.Context(), root, args[0], req.Mode, req.Server)
			if err != nil && len(res.Entries) == 0 {
				return err
			}

			if perr := printBatch(cmd.OutOrStdout(), res, format, tmpl); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}

			if n := res.Failed(); n > 0 {
				return fmt.Errorf("batch failed (%d of %d file(s))", n, len(res.Entries))
			}
			return nil
		},
	}

	c.Flags().StringVar(&root, "root", ".", "directory the pattern is matched against")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&tmpl, "template", "", "render each file with this template, e.g. '![{{name}}]({{url}})'")
	c.Flags().StringVarP(&ef.baseURL, "base-url", "u", domain.DefaultBaseURL, "server URL the encoded strings are appended to")
	c.Flags().StringVarP(&ef.compression, "compression", "c", domain.ModeDeflate.String(), "compression to use [hex, deflate, best]")
	c.Flags().StringVarP(&ef.imageType, "type", "t", domain.ImageSVG.String(), "image type [ascii, png, svg]")
	return c
}

type batchEntryJSON struct {
	Path    string `json:"path"`
	Encoded string `json:"encoded,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

type batchJSON struct {
	Root       string           `json:"root"`
	Pattern    string           `json:"pattern"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Failed     int              `json:"failed"`
	Entries    []batchEntryJSON `json:"entries"`
}

func printBatch(w io.Writer, res domain.BatchResult, format, tmpl string) error {
	switch format {
	case "template":
		return printTemplateBatch(w, res, tmpl)
	case "json":
		out := batchJSON{
			Root:       res.Root,
			Pattern:    res.Pattern,
			StartedAt:  res.StartedAt,
			FinishedAt: res.FinishedAt,
			Failed:     res.Failed(),
			Entries:    make([]batchEntryJSON, 0, len(res.Entries)),
		}
		for _, e := range res.Entries {
			je := batchEntryJSON{Path: e.Path, Encoded: e.Encoded, URL: e.URL}
			if e.Err != nil {
				je.Error = userMessage(e.Err)
			}
			out.Entries = append(out.Entries, je)
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		printPrettyBatch(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyBatch(w io.Writer, res domain.BatchResult) {
	for _, e := range res.Entries {
		if e.Err != nil {
			fmt.Fprintf(w, "- [FAIL] %s\n  error: %s\n", e.Path, userMessage(e.Err))
			continue
		}
		fmt.Fprintf(w, "- [OK] %s\n  %s\n", e.Path, e.URL)
	}

	total := res.FinishedAt.Sub(res.StartedAt)
	if res.StartedAt.IsZero() || res.FinishedAt.IsZero() {
		total = 0
	}
	fmt.Fprintf(w, "\n%d file(s), %d failed, %s\n", len(res.Entries), res.Failed(), total.Round(time.Millisecond))
}

// printTemplateBatch writes one rendered line per encoded file. Failed files
// are reported as comments so the output stays pasteable.
func printTemplateBatch(w io.Writer, res domain.BatchResult, tmpl string) error {
	for _, e := range res.Entries {
		if e.Err != nil {
			fmt.Fprintf(w, "<!-- %s: %s -->\n", e.Path, userMessage(e.Err))
			continue
		}
		line, err := template.RenderString(tmpl, template.EntryVars(e))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
