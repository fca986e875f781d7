package ending

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

const verse = `The moon in the pond
is not wet; the pond is not
holding the moon. Rest.`

// EndingScreen is shown once the final level has been passed.
type EndingScreen struct {
	game *game.Game
}

var _ screen.Screen = (*EndingScreen)(nil)
var _ screen.KeyHintProvider = (*EndingScreen)(nil)

// New creates a new EndingScreen.
func New(g *game.Game) *EndingScreen {
	return &EndingScreen{game: g}
}

func (e *EndingScreen) Init() tea.Cmd {
	return nil
}

func (e *EndingScreen) Title() string {
	return "Stillness"
}

func (e *EndingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Return to levels"},
		{Key: "Q", Description: "Leave"},
	}
}

func (e *EndingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			if err := e.game.ReturnToMenu(); err != nil {
				return e, nil
			}
			return e, screen.GameChanged()
		case "q":
			return e, tea.Quit
		}
	}
	return e, nil
}

func (e *EndingScreen) View(width, height int) string {
	u := e.game.User()

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Every level is behind you"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Render(verse),
		"",
		theme.Subtitle.Render(fmt.Sprintf("%s, your practice gathered", u.Name)),
		theme.Badge.Render(fmt.Sprintf("✦ %d merit", u.TotalScore)),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
