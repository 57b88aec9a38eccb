package list

import (
	"fmt"
	"strings"

	"github.com/gamemon/gamemon/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func (m Model) View() string {
	if m.loading {
		spinner := fmt.Sprintf("%s Loading %s", m.spinner.View(), m.source.URL("/status"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, spinner)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		m.table.View(),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render(m.help.View(m.keyMap))),
	)
}

func (m Model) header() string {
	parts := []string{}

	system := m.report.System
	if system.CPUTemp != nil {
		parts = append(parts, fmt.Sprintf("CPU %.1f°C", *system.CPUTemp))
	} else {
		parts = append(parts, "CPU "+styles.DimStyle.Render("n/a"))
	}

	if system.MemoryPercent != nil {
		parts = append(parts, fmt.Sprintf("MEM %s %.1f%%", m.memory.ViewAs(*system.MemoryPercent/100), *system.MemoryPercent))
	} else {
		parts = append(parts, "MEM "+styles.DimStyle.Render("n/a"))
	}

	if !m.updated.IsZero() {
		parts = append(parts, styles.DimStyle.Render("updated "+humanize.Time(m.updated)))
	}

	if m.err != nil {
		parts = append(parts, styles.RedStyle.Render("error: "+m.err.Error()))
	}

	style := styles.HeaderStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(strings.Join(parts, "  "))
}
