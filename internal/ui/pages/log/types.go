package log

import (
	"github.com/gamemon/gamemon/internal/status"

	"github.com/charmbracelet/bubbles/viewport"
)

type Model struct {
	key      string
	record   status.Record
	width    int
	height   int
	viewport viewport.Model
}
