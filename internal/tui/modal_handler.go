package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on DashboardModel; the topmost modal
// receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (s *ModalStackState) HasModal() bool {
	return len(s.modalStack) > 0
}
