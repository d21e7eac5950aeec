package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal shows the key reference for the layout that was active when it
// was opened.
type HelpModal struct {
	ctx      ModalContext
	keys     KeyMap
	viewport viewport.Model

	// rendered markdown, cached per wrap width
	rendered      string
	renderedWidth int
}

func NewHelpModal(m *DashboardModel) *HelpModal {
	return &HelpModal{
		ctx:      m.modalContext(),
		keys:     m.keys,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Help, h.keys.Quit, h.keys.Escape):
			return true, nil
		case key.Matches(msg, h.keys.Up):
			h.viewport.LineUp(1)
			return false, nil
		case key.Matches(msg, h.keys.Down):
			h.viewport.LineDown(1)
			return false, nil
		}
		// pgup/pgdown and friends
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	return h.renderWithViewport(width, height)
}
