package list

import (
	"context"
	"time"

	"github.com/gamemon/gamemon/internal/status"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// Source is where the list page gets its reports from.
type Source interface {
	Status(ctx context.Context) (status.Report, error)
	URL(path string) string
}

type Model struct {
	ctx      context.Context
	source   Source
	interval time.Duration

	table   table.Model
	spinner spinner.Model
	help    help.Model
	memory  progress.Model
	keyMap  KeyMap

	report  status.Report
	keys    []string
	updated time.Time
	err     error
	loading bool
	tickID  int

	width  int
	height int
}

func NewModel(ctx context.Context, source Source, interval time.Duration) Model {
	tbl := table.New(
		table.WithColumns(columns(logColumnMinWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	tbl.SetStyles(table.DefaultStyles())

	return Model{
		ctx:      ctx,
		source:   source,
		interval: interval,
		table:    tbl,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		memory:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(20)),
		keyMap:   defaultKeyMap(),
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// Record returns the latest record for key.
func (m Model) Record(key string) (status.Record, bool) {
	r, ok := m.report.Servers[key]
	return r, ok
}

type reportMsg struct {
	report status.Report
	at     time.Time
}

type errMsg struct {
	err error
}

// tickMsg carries the id of the poll it belongs to. A manual refresh starts
// a new poll and older ticks are dropped.
type tickMsg struct {
	id int
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		report, err := m.source.Status(m.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return reportMsg{report: report, at: time.Now()}
	}
}

func (m Model) scheduleTick() (Model, tea.Cmd) {
	m.tickID++
	id := m.tickID
	return m, tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
