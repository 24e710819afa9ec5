package cli

import (
	"github.com/spf13/cobra"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/usecase"
)

// encodeFlags are shared by every command that encodes a diagram. Only flags
// the user actually set override the loaded configuration.
type encodeFlags struct {
	source      string
	baseURL     string
	compression string
	imageType   string
	file        string

	img      bool
	download bool
	link     bool
}

func (f *encodeFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.source, "source", "s", "", "input file, stdin if not present")
	fs.StringVarP(&f.baseURL, "base-url", "u", domain.DefaultBaseURL, "appends the encoded string onto this URL")
	fs.StringVarP(&f.compression, "compression", "c", domain.ModeDeflate.String(), "compression to use [hex, deflate, best]")
	fs.StringVarP(&f.imageType, "type", "t", domain.ImageSVG.String(), "image type [ascii, png, svg]")
	fs.StringVarP(&f.file, "file", "f", "", "saves the result in the given file or stdout if not present")
	fs.BoolVarP(&f.img, "img", "i", false, "embeds the URL into an HTML img tag")
	fs.BoolVarP(&f.download, "download", "d", false, "downloads the image from the PlantUML server")
	fs.BoolVarP(&f.link, "link", "l", false, "prints the full diagram URL")
}

// request merges cfg with the flags set on cmd.
func (f *encodeFlags) request(cmd *cobra.Command, cfg domain.Config) (usecase.EncodeRequest, error) {
	fs := cmd.Flags()

	if fs.Changed("base-url") {
		cfg.Server.BaseURL = f.baseURL
	}
	if fs.Changed("compression") {
		m, err := domain.ParseMode(f.compression)
		if err != nil {
			return usecase.EncodeRequest{}, err
		}
		cfg.Encoding.Mode = m
	}
	if fs.Changed("type") {
		t, err := domain.ParseImageType(f.imageType)
		if err != nil {
			return usecase.EncodeRequest{}, err
		}
		cfg.Server.ImageType = t
	}
	if fs.Changed("file") {
		cfg.Output.Path = f.file
	}

	return usecase.EncodeRequest{
		SourcePath: f.source,
		Mode:       cfg.Encoding.Mode,
		Server:     cfg.Server,
		Output:     f.outputKind(),
		OutputPath: cfg.Output.Path,
	}, nil
}

func (f *encodeFlags) outputKind() domain.OutputKind {
	switch {
	case f.img:
		return domain.OutputImg
	case f.download:
		return domain.OutputDownload
	case f.link:
		return domain.OutputURL
	default:
		return domain.OutputRaw
	}
}
