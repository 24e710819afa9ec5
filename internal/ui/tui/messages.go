package tui

type savedMsg struct {
	path  string
	bytes int
	err   error
}
