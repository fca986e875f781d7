package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/ui/components"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

// ResultScreen shows the outcome of a finished attempt. Enter moves on to
// the next level after a pass, or back to level select after a fail.
type ResultScreen struct {
	game *game.Game
	view game.ResultView
	done bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the game's finished attempt.
func New(g *game.Game) *ResultScreen {
	s := &ResultScreen{game: g}
	if r := g.Snapshot().Result; r != nil {
		s.view = *r
	}
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return s.view.LevelTitle
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.view.ContinueLabel},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.done {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "space":
		var err error
		if s.view.Passed {
			_, err = s.game.ContinueAfterPass()
		} else {
			err = s.game.RetryLevel()
		}
		if err != nil {
			return s, nil
		}
		s.done = true
		return s, screen.GameChanged()
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.view
	cw := components.ContentWidth(width)

	heading := theme.Title
	border := theme.Error
	if r.Passed {
		border = theme.Success
	} else {
		heading = heading.Foreground(theme.Secondary)
	}

	var b strings.Builder
	b.WriteString(heading.Width(cw - 6).Render(r.Heading))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(r.Message))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Merit: +%d",
		r.Correct, r.Total, r.Accuracy()*100, r.ScoreEarned)
	b.WriteString(theme.Body.Render(stats))
	b.WriteString("\n\n")

	marks := make([]string, len(r.Marks))
	for i, ok := range r.Marks {
		if ok {
			marks[i] = theme.Correct.Render("✓")
		} else {
			marks[i] = theme.Incorrect.Render("✗")
		}
	}
	b.WriteString(strings.Join(marks, " "))
	b.WriteString("\n\n")

	b.WriteString(theme.ButtonActive.Render(r.ContinueLabel))

	return components.Center(components.Card(b.String(), cw, border), width, height)
}
