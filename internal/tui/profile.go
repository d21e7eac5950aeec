package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/scope"
)

// ProfilePage shows the signed-in user and the active scope. It is reached
// through the account menu and returns to the dashboard.
type ProfilePage struct {
	user  func() string
	scope scope.Cells
}

// NewProfilePage builds the profile page from the dashboard flags provided
// in ctx. It fails with scope.ErrNotProvided outside a providing scope.
func NewProfilePage(ctx context.Context, user func() string) (*ProfilePage, error) {
	cells, err := scope.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile page: %w", err)
	}
	return &ProfilePage{user: user, scope: cells}, nil
}

func (p *ProfilePage) ID() string { return PageProfile }

func (p *ProfilePage) Init() tea.Cmd { return nil }

func (p *ProfilePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch k.String() {
	case "ctrl+c":
		return tea.Quit, nil
	case "esc", "backspace", "q", "enter":
		return nil, &PageNav{PageID: PageDashboard}
	}
	return nil, nil
}

func (p *ProfilePage) View(width, height int) string {
	name := "guest"
	if p.user != nil && p.user() != "" {
		name = p.user()
	}

	label := lipgloss.NewStyle().Foreground(ColorGray).Width(14)
	row := func(k, v string) string { return label.Render(k) + v }

	listening := "off"
	if p.scope.Listening.Get() {
		listening = "on"
	}
	rows := []string{
		lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render("Profile"),
		"",
		row("User", name),
		row("Hospital", p.scope.Hospital.Get()),
		row("Data source", p.scope.DataSource.Get()),
		row("Listening", listening),
		"",
		lipgloss.NewStyle().Foreground(ColorGray).Render("esc: back to dashboard"),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if width <= 0 || height <= 0 {
		return card
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
