package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/nav"
)

// renderWithViewport renders the help modal using its viewport.
func (h *HelpModal) renderWithViewport(width, height int) string {
	modalWidth := width - 8   // Leave 4 chars margin on each side
	modalHeight := height - 4 // Leave 2 lines margin top and bottom

	contentWidth := max(10, modalWidth-4)
	contentHeight := max(3, modalHeight-4)

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight

	if h.rendered == "" || h.renderedWidth != contentWidth {
		h.rendered = renderMarkdown(helpMarkdown(h.ctx.Mode), contentWidth)
		h.renderedWidth = contentWidth
		h.viewport.SetContent(h.rendered)
	}

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(h.viewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help & Keys")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderMarkdown renders md with glamour, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func helpMarkdown(mode nav.Mode) string {
	var b strings.Builder
	b.WriteString("# TOM keys\n\n")
	if mode == nav.Compact {
		b.WriteString(`## Compact layout

| Key | Action |
|---|---|
| 1 – 6 | Feeds, TOM AI, Theatres, Staff, Alerts, Menu |
| ↑/↓ or k/j | Move in the open drawer |
| enter | Open the highlighted view |
| esc | Close the drawer (Theatres/Staff return to Feeds) |

Theatres and Staff open the **Operations** and **Logistics** drawers.
Back from a drawer view reopens the drawer it came from.
`)
	} else {
		b.WriteString(`## Wide layout

| Key | Action |
|---|---|
| ←/→, tab/shift+tab | Previous / next tab |
| 1 – 9 | Jump to tab |
| c / a | TOM AI / Alerts |
| m | Account menu (Settings, Help, Profile) |
| esc | Close the menu |
`)
	}
	b.WriteString(`
## Everywhere

| Key | Action |
|---|---|
| esc / backspace | Back |
| g | Go to a view by id |
| H / D | Cycle hospital / data source |
| L | Toggle listening |
| ? | This help |
| q, ctrl+c | Quit |

The layout switches between compact and wide with the terminal width.
`)
	return b.String()
}
