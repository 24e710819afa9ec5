package usecase

import (
	"context"
	"testing"

	"github.com/migmedia/planturl/internal/domain"
)

func TestDecodeDiagram_WrapsMarkers(t *testing.T) {
	sink := &fakeSink{}
	uc := NewDecodeDiagram(fakeSource{"": helloEncoded + "\n"}, sink, nil)

	text, err := uc.Execute(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if text != "Bob -> Alice : hello" {
		t.Fatalf("unexpected text %q", text)
	}
	if got := string(sink.writes[""]); got != "@startuml\nBob -> Alice : hello\n@enduml\n" {
		t.Fatalf("unexpected payload %q", got)
	}
}

func TestDecodeDiagram_Invalid(t *testing.T) {
	sink := &fakeSink{}
	uc := NewDecodeDiagram(fakeSource{"": "not*valid"}, sink, nil)

	if _, err := uc.Execute(context.Background(), "", ""); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("expected nothing written")
	}
}

func TestDecodeDiagram_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewDecodeDiagram(fakeSource{"": helloEncoded}, &fakeSink{}, nil)
	if _, err := uc.Execute(ctx, "", ""); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEncodedFromURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{helloEncoded, helloEncoded},
		{"  " + helloEncoded + "\n", helloEncoded},
		{"http://www.plantuml.com/plantuml/svg/" + helloEncoded, helloEncoded},
		{"http://localhost/plantuml/png/" + helloEncoded + "/", helloEncoded},
		{"https://host/plantuml/txt/~h426f62?fmt=1", "~h426f62"},
		{"https://host/plantuml/svg/" + helloEncoded + "#frag", helloEncoded},
	}
	for _, c := range cases {
		if got := EncodedFromURL(c.in); got != c.want {
			t.Errorf("EncodedFromURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
