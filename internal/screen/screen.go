package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zenquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// GameChangedMsg is emitted by a screen after a game event moved the game
// to a different phase. The app answers it by replacing the active screen.
type GameChangedMsg struct{}

// GameChanged returns a command that emits GameChangedMsg.
func GameChanged() tea.Cmd {
	return func() tea.Msg { return GameChangedMsg{} }
}
