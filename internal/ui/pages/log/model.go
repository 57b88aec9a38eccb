package log

import (
	"github.com/gamemon/gamemon/internal/status"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel shows the record of one server. height excludes the status bar.
func NewModel(key string, record status.Record, width, height int) Model {
	m := Model{
		key:      key,
		width:    width,
		height:   height,
		viewport: viewport.New(width, max(0, height-1)),
	}
	return m.SetRecord(record)
}

// SetRecord replaces the shown record. The view follows new lines unless the
// user has scrolled up.
func (m Model) SetRecord(record status.Record) Model {
	follow := m.viewport.AtBottom()
	m.record = record
	m.viewport.SetContent(m.content())
	if follow {
		m.viewport.GotoBottom()
	}
	return m
}

func (m Model) Key() string {
	return m.key
}

func (m Model) Init() tea.Cmd {
	return nil
}
