package diagramsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/migmedia/planturl/internal/domain"
)

func TestLoadDiagram_File(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "seq.puml")
	if err := os.WriteFile(p, []byte("@startuml\nA -> B\n@enduml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewLoader().LoadDiagram(p)
	if err != nil {
		t.Fatalf("LoadDiagram error: %v", err)
	}
	if got != "@startuml\nA -> B\n@enduml\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLoadDiagram_Stdin(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader("A -> B")))

	for _, path := range []string{"", StdinPath} {
		got, err := l.LoadDiagram(path)
		if err != nil {
			t.Fatalf("LoadDiagram(%q) error: %v", path, err)
		}
		if path == "" && got != "A -> B" {
			t.Fatalf("unexpected stdin content %q", got)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestLoadDiagram_StdinError(t *testing.T) {
	_, err := NewLoader(WithStdin(failingReader{})).LoadDiagram("")
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Fatalf("expected error to mention stdin, got %v", err)
	}
}

func TestLoadDiagram_NotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.puml")

	_, err := NewLoader().LoadDiagram(p)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain")
	}
	if !strings.Contains(err.Error(), "source file "+p+" not found") {
		t.Fatalf("expected message to name the path, got %v", err)
	}
}
