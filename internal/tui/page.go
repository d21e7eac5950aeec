package tui

import tea "github.com/charmbracelet/bubbletea"

// Page identifiers. Route names from the navigation registry resolve to
// these.
const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageProfile   = "profile"
)

// Page represents a top-level screen in the TUI (login, dashboard, profile).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}
