package tui

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int
	log        *slog.Logger
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(log *slog.Logger, pages ...Page) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:      pageMap,
		activePage: firstID,
		log:        log,
	}
}

// ActivePage returns the id of the page receiving input.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

// broadcast reports whether msg is delivered to every page, not just the
// active one. Navigation requests from inactive pages are ignored.
func broadcast(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.WindowSizeMsg, ConfigReloadedMsg, CommandMsg:
		return true
	}
	return false
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	var cmds []tea.Cmd
	if broadcast(msg) {
		for id, other := range a.pages {
			if id == a.activePage {
				continue
			}
			cmd, _ := other.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmd, nav := p.Update(msg)
	cmds = append(cmds, cmd)

	if nav != nil {
		next, exists := a.pages[nav.PageID]
		if !exists {
			a.log.Warn("navigation to unknown page", "page", nav.PageID, "from", a.activePage)
			return a, tea.Batch(cmds...)
		}
		a.log.Info("page switch", "from", a.activePage, "to", nav.PageID)
		a.activePage = nav.PageID
		cmds = append(cmds, next.Init())
		if a.width > 0 {
			w, h := a.width, a.height
			cmds = append(cmds, func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} })
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
