package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/migmedia/planturl/internal/domain"
)

type memSink struct {
	path string
	data []byte
	err  error
}

func (s *memSink) Write(path string, data []byte) error {
	s.path, s.data = path, data
	return s.err
}

func testDeps() Deps {
	return Deps{
		Config:  domain.DefaultConfig(),
		Initial: "@startuml\nBob -> Alice : hello\n@enduml",
		Sink:    &memSink{},
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestNewModel_EncodesInitialText(t *testing.T) {
	m := newModel(testDeps())

	if m.encoded != "SyfFKj2rKt3CoKnELR1Io4ZDoSa70000" {
		t.Fatalf("unexpected encoding %q", m.encoded)
	}
	if m.url != "http://www.plantuml.com/plantuml/svg/SyfFKj2rKt3CoKnELR1Io4ZDoSa70000" {
		t.Fatalf("unexpected url %q", m.url)
	}
	if !strings.Contains(m.View(), m.encoded) {
		t.Fatalf("view does not show the encoded string")
	}
}

func TestUpdate_CyclesModeAndType(t *testing.T) {
	m := newModel(testDeps())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != domain.ModeHex || !strings.HasPrefix(m.encoded, "~h") {
		t.Fatalf("expected hex after ctrl+t, got %v %q", m.mode, m.encoded)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != domain.ModeBest {
		t.Fatalf("expected best after second ctrl+t, got %v", m.mode)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.imageType != domain.ImagePNG || !strings.Contains(m.url, "/png/") {
		t.Fatalf("expected png after ctrl+y, got %s %q", m.imageType, m.url)
	}
}

func TestUpdate_TypingReencodes(t *testing.T) {
	deps := testDeps()
	deps.Initial = ""
	m := newModel(deps)
	empty := m.encoded

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
	if m.editor.Value() != "A" {
		t.Fatalf("expected editor to hold the typed rune, got %q", m.editor.Value())
	}
	if m.encoded == empty || m.encoded != "SmG0" {
		t.Fatalf("expected re-encoding after typing, got %q", m.encoded)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newModel(testDeps())
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(t, m, tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("expected a command for %v", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit for %v", k)
		}
	}
}

func TestUpdate_Save(t *testing.T) {
	deps := testDeps()
	deps.SourcePath = "diagram.puml"
	sink := &memSink{}
	deps.Sink = sink
	m := newModel(deps)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg := cmd()
	if sink.path != "diagram.puml" || string(sink.data) != deps.Initial+"\n" {
		t.Fatalf("unexpected write %q: %q", sink.path, sink.data)
	}

	m, _ = update(t, m, msg)
	if m.toastErr || !strings.Contains(m.toast, "Saved diagram.puml") {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestUpdate_SaveFailure(t *testing.T) {
	deps := testDeps()
	deps.SourcePath = "out/diagram.puml"
	deps.Sink = &memSink{err: &domain.OpError{Op: "outputsink.write", Kind: domain.KindExecution, Path: "out/diagram.puml", Err: errors.New("denied")}}
	m := newModel(deps)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = update(t, m, cmd())
	if !m.toastErr || m.toast != "Could not write diagram.puml" {
		t.Fatalf("unexpected toast %q (err=%v)", m.toast, m.toastErr)
	}
}

func TestUpdate_SaveWithoutSource(t *testing.T) {
	m := newModel(testDeps())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = update(t, m, cmd())
	if !m.toastErr {
		t.Fatalf("expected an error toast when there is no source file")
	}
}

func TestSafeModel_Forwards(t *testing.T) {
	s := wrapSafe(newModel(testDeps()), nil)
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	ss, ok := next.(safeModel)
	if !ok || ss.m.mode != domain.ModeHex {
		t.Fatalf("expected wrapped model to advance, got %T", next)
	}
	if ss.View() == "" {
		t.Fatalf("expected a view")
	}
}

func TestViewHelpers(t *testing.T) {
	if got := clampString("abcdef", 4); got != "abc…" {
		t.Fatalf("clampString = %q", got)
	}
	if got := clampString("abc", 4); got != "abc" {
		t.Fatalf("clampString = %q", got)
	}
	if got := wrapHard("abcdefg", 3); got != "abc\ndef\ng" {
		t.Fatalf("wrapHard = %q", got)
	}
}
