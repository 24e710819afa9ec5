package domain

import (
	"fmt"
	"strings"
)

// OutputKind decides what is written for an encoded diagram.
type OutputKind string

const (
	OutputRaw      OutputKind = "raw"
	OutputURL      OutputKind = "url"
	OutputImg      OutputKind = "img"
	OutputDownload OutputKind = "download"
)

// DiagramURL joins the server base URL, the image type and the encoded diagram.
func DiagramURL(baseURL string, t ImageType, encoded string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), t, encoded)
}

// ImgTag embeds a diagram URL into an HTML image tag.
func ImgTag(url string) string {
	return fmt.Sprintf(`<img src="%s">`, url)
}
