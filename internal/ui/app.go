package ui

import (
	"context"
	"time"

	"github.com/gamemon/gamemon/internal/ui/messages"
	"github.com/gamemon/gamemon/internal/ui/pages/list"
	logpage "github.com/gamemon/gamemon/internal/ui/pages/log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar is implemented by pages that render their own bottom line.
// They get one line less when the window is resized.
type StatusBar interface {
	StatusBar() string
}

type PageType int

const (
	List PageType = iota
	Log
)

type App struct {
	currentPage PageType
	listPage    list.Model
	logPage     logpage.Model
	quitKey     key.Binding
	backKey     key.Binding
	width       int
	height      int
}

var (
	defaultQuitKey = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	)
	defaultBackKey = key.NewBinding(
		key.WithKeys("esc", "left"),
		key.WithHelp("esc/left", "Go back"),
	)
)

func NewApp(ctx context.Context, source list.Source, interval time.Duration) App {
	return App{
		currentPage: List,
		listPage:    list.NewModel(ctx, source, interval),
		quitKey:     defaultQuitKey,
		backKey:     defaultBackKey,
	}
}

func (a App) activePage() tea.Model {
	switch a.currentPage {
	case List:
		return a.listPage
	case Log:
		return a.logPage
	}
	return nil
}

func (a App) Init() tea.Cmd {
	return a.listPage.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ShowServerMsg:
		a.currentPage = Log
		a.logPage = logpage.NewModel(msg.Key, msg.Record, a.width, a.height-1)
		return a, a.logPage.Init()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		model, _ := a.listPage.Update(msg)
		a.listPage = model.(list.Model)

		if a.currentPage == Log {
			msg.Height--
			model, _ := a.logPage.Update(msg)
			a.logPage = model.(logpage.Model)
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.quitKey):
			return a, tea.Quit
		case key.Matches(msg, a.backKey) && a.currentPage == Log:
			a.currentPage = List
			return a, nil
		}
		return a.updateActive(msg)
	}

	// The list page keeps polling while the log page is shown.
	model, cmd := a.listPage.Update(msg)
	a.listPage = model.(list.Model)
	if a.currentPage != Log {
		return a, cmd
	}

	if record, ok := a.listPage.Record(a.logPage.Key()); ok {
		a.logPage = a.logPage.SetRecord(record)
	}
	model, logCmd := a.logPage.Update(msg)
	a.logPage = model.(logpage.Model)
	return a, tea.Batch(cmd, logCmd)
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentPage {
	case List:
		var model tea.Model
		model, cmd = a.listPage.Update(msg)
		a.listPage = model.(list.Model)
	case Log:
		var model tea.Model
		model, cmd = a.logPage.Update(msg)
		a.logPage = model.(logpage.Model)
	}

	return a, cmd
}

func (a App) View() string {
	content := a.activePage().View()
	if statusBarPage, ok := a.activePage().(StatusBar); ok {
		return lipgloss.JoinVertical(lipgloss.Left, content, statusBarPage.StatusBar())
	}

	return content
}
