package template

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/migmedia/planturl/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("![seq]({{url}})", map[string]string{"url": "http://x/svg/A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "![seq](http://x/svg/A)" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVarsAndSpaces(t *testing.T) {
	out, err := RenderString("{{ name }}: {{url}}", map[string]string{
		"name": "seq",
		"url":  "http://x/svg/A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "seq: http://x/svg/A" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringEmpty(t *testing.T) {
	out, err := RenderString("", nil)
	if err != nil || out != "" {
		t.Fatalf("RenderString(\"\") = %q, %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	for _, in := range []string{"Hello {{name}}", "{{url", "{{  }}"} {
		_, err := RenderString(in, map[string]string{})
		if !domain.IsKind(err, domain.KindInvalidConfig) || !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("RenderString(%q): expected invalid_config, got %v", in, err)
		}
	}
}

func TestEntryVars(t *testing.T) {
	got := EntryVars(domain.BatchEntry{Path: "docs/seq.flow.puml", Encoded: "SmG0", URL: "http://x/svg/SmG0"})
	want := map[string]string{
		"path":    "docs/seq.flow.puml",
		"name":    "seq.flow",
		"encoded": "SmG0",
		"url":     "http://x/svg/SmG0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("vars mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigVars(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.Timeout = 5 * time.Second

	got := ConfigVars(cfg)
	if got["server"] != domain.DefaultBaseURL || got["type"] != "svg" || got["timeout"] != "5s" || got["compression"] != "deflate" {
		t.Fatalf("unexpected vars: %v", got)
	}
}
