package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/encoder"
	"github.com/migmedia/planturl/internal/infra/outputsink"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Lines used by everything except the editor.
	chromeHeight = 14
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	editor textarea.Model

	mode      domain.Mode
	imageType domain.ImageType
	baseURL   string

	encoded string
	url     string

	width  int
	height int

	toast    string
	toastErr bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Sink == nil {
		deps.Sink = outputsink.NewWriter()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ed := textarea.New()
	ed.Placeholder = "Bob -> Alice : hello"
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.SetValue(deps.Initial)
	ed.Focus()

	m := model{
		theme:     DefaultTheme(),
		deps:      deps,
		log:       log,
		editor:    ed,
		mode:      deps.Config.Encoding.Mode,
		imageType: deps.Config.Server.ImageType,
		baseURL:   deps.Config.Server.BaseURL,
	}
	if m.imageType == "" {
		m.imageType = domain.ImageSVG
	}
	if m.baseURL == "" {
		m.baseURL = domain.DefaultBaseURL
	}
	m.resize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.log.Warn("tui.save_failed", "path", msg.path, "error", msg.err.Error())
			m.toast, m.toastErr = userMessage(msg.err), true
			return m, nil
		}
		m.log.Info("tui.saved", "path", msg.path, "bytes", msg.bytes)
		m.toast, m.toastErr = fmt.Sprintf("Saved %s (%d bytes)", msg.path, msg.bytes), false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			m.mode = m.mode.Next()
			m.refresh()
			return m, nil

		case "ctrl+y":
			m.imageType = m.imageType.Next()
			m.refresh()
			return m, nil

		case "ctrl+s":
			return m, cmdSave(m.deps.Sink, m.deps.SourcePath, m.editor.Value())
		}
	}

	var cmd tea.Cmd
	before := m.editor.Value()
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.toast = ""
		m.refresh()
	}
	return m, cmd
}

func (m *model) refresh() {
	m.encoded = encoder.Encode(m.editor.Value(), m.mode)
	m.url = domain.DiagramURL(m.baseURL, m.imageType, m.encoded)
	if m.deps.Debug {
		m.log.Debug("tui.encoded", "mode", m.mode.String(), "len", len(m.encoded))
	}
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h

	m.editor.SetWidth(max(w-4, 10))
	m.editor.SetHeight(max(h-chromeHeight, 3))
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)
	inner := max(m.width-6, 10)

	source := "scratch"
	if m.deps.SourcePath != "" {
		source = m.deps.SourcePath
	}
	header := m.theme.Title.Render("planturl") + " " +
		m.theme.Subtitle.Render("live PlantUML encoding • "+clampString(source, inner/2))

	status := fmt.Sprintf("%s %s   %s %s   %s %d",
		m.theme.Label.Render("mode"), m.theme.Value.Render(m.mode.String()),
		m.theme.Label.Render("type"), m.theme.Value.Render(m.imageType.String()),
		m.theme.Label.Render("length"), len(m.encoded),
	)

	card := m.theme.Card.Render(
		status + "\n\n" +
			m.theme.Label.Render("encoded") + "\n" + wrapHard(m.encoded, inner) + "\n\n" +
			m.theme.Label.Render("url") + "\n" + clampString(m.url, inner),
	)

	help := m.theme.Help.Render("ctrl+t mode • ctrl+y type • ctrl+s save • esc quit")

	out := header + "\n\n" + m.editor.View() + "\n" + card + "\n" + help
	if m.toast != "" {
		style := m.theme.Toast
		if m.toastErr {
			style = m.theme.Error
		}
		out += "\n" + style.Render(m.toast)
	}
	return wrap.Render(out)
}
