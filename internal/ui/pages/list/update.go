package list

import (
	"log/slog"

	"github.com/gamemon/gamemon/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkg/browser"
)

func (m Model) updateInternalRows() Model {
	m.keys = sortedKeys(m.report)
	m.table.SetRows(rows(m.report, m.keys, m.table.Columns()[4].Width))
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.report = msg.report
		m.updated = msg.at
		m.err = nil
		m.loading = false
		m = m.updateInternalRows()
		return m.scheduleTick()

	case errMsg:
		slog.Warn("status request failed", "url", m.source.URL("/status"), "error", msg.err)
		m.err = msg.err
		m.loading = false
		return m.scheduleTick()

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		return m, m.fetch()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.table.SetWidth(msg.Width)
		// one line for the system header, one for the help bar
		m.table.SetHeight(max(1, msg.Height-2))
		m.table.SetColumns(columns(logWidthFor(msg.Width)))
		m = m.updateInternalRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Refresh):
			m.tickID++
			return m, m.fetch()
		case key.Matches(msg, m.keyMap.Open):
			if err := browser.OpenURL(m.source.URL("/status")); err != nil {
				slog.Warn("could not open browser", "error", err)
			}
			return m, nil
		case key.Matches(msg, m.keyMap.ViewLogs):
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.keys) {
				k := m.keys[cursor]
				record := m.report.Servers[k]
				return m, func() tea.Msg {
					return messages.ShowServerMsg{Key: k, Record: record}
				}
			}
			return m, nil
		}
	}

	cmds := []tea.Cmd{}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)

	if m.loading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
