package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/migmedia/planturl/internal/ports"
)

func cmdSave(sink ports.OutputSink, path, text string) tea.Cmd {
	return func() tea.Msg {
		if sink == nil {
			return savedMsg{path: path, err: errors.New("no output sink configured")}
		}
		if path == "" {
			return savedMsg{err: errors.New("no source file to save to (start with --source)")}
		}
		data := []byte(text)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		err := sink.Write(path, data)
		return savedMsg{path: path, bytes: len(data), err: err}
	}
}
