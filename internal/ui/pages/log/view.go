package log

import (
	"fmt"
	"strings"

	"github.com/gamemon/gamemon/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.title(), m.viewport.View())
}

func (m Model) title() string {
	state := styles.RedStyle.Render(m.record.Status)
	if m.record.Online {
		state = styles.GreenStyle.Render("online")
	}

	title := fmt.Sprintf("%s %s %s", styles.TitleStyle.Render(m.key), styles.DimStyle.Render(m.record.Name), state)
	if m.record.Uptime != nil {
		title += styles.DimStyle.Render(" up " + *m.record.Uptime)
	}
	return title
}

func (m Model) content() string {
	var b strings.Builder
	if m.record.Image != "" {
		fmt.Fprintf(&b, "Image: %s\n", m.record.Image)
	}
	if m.record.Health != "" {
		fmt.Fprintf(&b, "Health: %s\n", m.record.Health)
	}
	if m.record.Players != nil {
		fmt.Fprintf(&b, "Players: %d", *m.record.Players)
		if m.record.MaxPlayers != nil {
			fmt.Fprintf(&b, " of %d", *m.record.MaxPlayers)
		}
		b.WriteString("\n")
	}
	if m.record.LastChat != "" {
		fmt.Fprintf(&b, "Last chat: %s\n", m.record.LastChat)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if len(m.record.Logs) == 0 {
		b.WriteString(styles.DimStyle.Render("No recent logs"))
	} else {
		b.WriteString(strings.Join(m.record.Logs, "\n"))
	}

	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

// StatusBar implements the StatusBar interface
func (m Model) StatusBar() string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Press ESC/left to go back | ↑/↓ to scroll | Press q to quit")
}
