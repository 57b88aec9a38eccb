package log

import (
	"strings"
	"testing"

	"github.com/gamemon/gamemon/internal/status"

	"github.com/samber/lo"
)

func TestContent(t *testing.T) {
	t.Parallel()

	m := NewModel("minecraft", status.Record{
		Name:       "minecraft_server",
		Status:     "running",
		Online:     true,
		Logs:       []string{"Alice joined the game", "<Alice> hi"},
		Players:    lo.ToPtr(1),
		MaxPlayers: lo.ToPtr(20),
		LastChat:   "<Alice> hi",
		Image:      "itzg/minecraft-server",
		Health:     "healthy",
	}, 80, 20)

	view := m.View()
	for _, want := range []string{"minecraft", "online", "Players: 1 of 20", "Last chat: <Alice> hi", "Alice joined the game", "Image: itzg/minecraft-server", "Health: healthy"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestEmptyLogs(t *testing.T) {
	t.Parallel()

	m := NewModel("satisfactory", status.Record{Name: "satisfactory-server", Status: status.StatusNotFound}, 80, 20)
	if !strings.Contains(m.View(), "No recent logs") {
		t.Fatalf("View() = %q", m.View())
	}
}

func TestSetRecord(t *testing.T) {
	t.Parallel()

	m := NewModel("minecraft", status.Record{Logs: []string{"first"}}, 80, 20)
	m = m.SetRecord(status.Record{Logs: []string{"first", "second"}})
	if !strings.Contains(m.View(), "second") {
		t.Fatalf("View() = %q", m.View())
	}
	if m.Key() != "minecraft" {
		t.Fatalf("Key() = %q", m.Key())
	}
}
