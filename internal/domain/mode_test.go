package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  Mode
	}{
		{"deflate", ModeDeflate},
		{"gz", ModeDeflate},
		{"DEFLATE", ModeDeflate},
		{"hex", ModeHex},
		{" Hex ", ModeHex},
		{"best", ModeBest},
	}
	for _, c := range cases {
		got, err := ParseMode(c.input)
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ParseMode(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("zip")
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if !strings.Contains(err.Error(), `unknown compression mode "zip"`) {
		t.Fatalf("expected message to name the value, got %q", err.Error())
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestModeNext(t *testing.T) {
	if ModeDeflate.Next() != ModeHex || ModeHex.Next() != ModeBest || ModeBest.Next() != ModeDeflate {
		t.Fatalf("unexpected mode cycle")
	}
	if Mode(42).Next() != ModeDeflate {
		t.Fatalf("unknown mode should reset to deflate")
	}
}

func TestParseImageType(t *testing.T) {
	cases := []struct {
		input string
		want  ImageType
	}{
		{"svg", ImageSVG},
		{"PNG", ImagePNG},
		{"ascii", ImageASCII},
		{"txt", ImageASCII},
	}
	for _, c := range cases {
		got, err := ParseImageType(c.input)
		if err != nil {
			t.Fatalf("ParseImageType(%q) unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ParseImageType(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	if _, err := ParseImageType("gif"); !errors.Is(err, ErrUnknownImageType) {
		t.Fatalf("expected ErrUnknownImageType, got %v", err)
	}
}

func TestImageTypeMediaType(t *testing.T) {
	if ImagePNG.MediaType() != "image/png" || ImageSVG.MediaType() != "image/svg+xml" || ImageASCII.MediaType() != "text/plain" {
		t.Fatalf("unexpected media types")
	}
}

func TestDiagramURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"http://www.plantuml.com/plantuml", "http://www.plantuml.com/plantuml/svg/SyfFKj2rKt3CoKnELR1Io4ZDoSa70000"},
		{"http://localhost:8080/", "http://localhost:8080/svg/SyfFKj2rKt3CoKnELR1Io4ZDoSa70000"},
	}
	for _, c := range cases {
		if got := DiagramURL(c.base, ImageSVG, "SyfFKj2rKt3CoKnELR1Io4ZDoSa70000"); got != c.want {
			t.Errorf("DiagramURL(%q) = %q, want %q", c.base, got, c.want)
		}
	}
}

func TestImgTag(t *testing.T) {
	got := ImgTag("http://x/png/abc")
	if got != `<img src="http://x/png/abc">` {
		t.Fatalf("unexpected tag %q", got)
	}
}
