package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medaskca/tom/internal/nav"
)

// ModalContext provides read-only context to modals for rendering.
type ModalContext struct {
	Mode nav.Mode
}

// Action identifies what a component wants the dashboard to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionShowError
)

// ActionMsg lets components talk to the dashboard without mutating it
// directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}

// CommandMsg carries a navigation command from outside the event loop
// (the control API) into it.
type CommandMsg struct {
	Command nav.Command
}

// ConfigReloadedMsg carries settings that can change while running.
type ConfigReloadedMsg struct {
	CompactWidth int
	Skin         Skin
	Hospitals    []string
	DataSources  []string
}
