package domain

import (
	"fmt"
	"strings"
)

// ImageType is the rendering a PlantUML server is asked for.
// Its value is the path segment the server expects.
type ImageType string

const (
	ImageSVG   ImageType = "svg"
	ImagePNG   ImageType = "png"
	ImageASCII ImageType = "txt"
)

var ImageTypes = []ImageType{ImageSVG, ImagePNG, ImageASCII}

func (t ImageType) String() string { return string(t) }

// MediaType is sent as the Accept header when downloading.
func (t ImageType) MediaType() string {
	switch t {
	case ImagePNG:
		return "image/png"
	case ImageASCII:
		return "text/plain"
	default:
		return "image/svg+xml"
	}
}

// ParseImageType accepts svg, png and ascii (alias txt), case-insensitively.
func ParseImageType(s string) (ImageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return ImageSVG, nil
	case "png":
		return ImagePNG, nil
	case "ascii", "txt":
		return ImageASCII, nil
	default:
		return ImageSVG, fmt.Errorf("%w %q (expected ascii|png|svg)", ErrUnknownImageType, s)
	}
}

func (t ImageType) Next() ImageType {
	for i, it := range ImageTypes {
		if it == t {
			return ImageTypes[(i+1)%len(ImageTypes)]
		}
	}
	return ImageSVG
}
