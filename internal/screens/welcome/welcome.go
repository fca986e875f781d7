package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/ui/components"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond

	nameLimit = 24
)

const lotusArt = `        .
      .:|:.
   .:::|||:::.
  '::::|||::::'
    '::|||::'
 ~~~~~~~~~~~~~~~`

// ripple frames cycle under the lotus
var rippleFrames = []string{"◌", "○"}

type tickMsg time.Time

// WelcomeScreen shows a short splash animation and asks for the player's
// name. Enter starts the session.
type WelcomeScreen struct {
	game      *game.Game
	input     components.TextInput
	elapsed   time.Duration
	tickCount int
	started   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for g with the name input prefilled.
func New(g *game.Game, defaultName string) *WelcomeScreen {
	return &WelcomeScreen{
		game:  g,
		input: components.NewTextInput("your name", defaultName, nameLimit),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key during the animation only skips it.
		if w.elapsed < phase2End {
			w.elapsed = totalDur
			return w, nil
		}
		if msg.String() == "enter" {
			return w, w.begin()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) begin() tea.Cmd {
	if w.started {
		return nil
	}
	if err := w.game.StartSession(w.input.Value()); err != nil {
		return nil
	}
	w.started = true
	return screen.GameChanged()
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(lotusArt)

	if w.elapsed >= phase1End {
		ripple := rippleFrames[w.tickCount%len(rippleFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(ripple)
		secondary := lipgloss.NewStyle().Foreground(theme.Secondary).Render(ripple)

		lines := strings.Split(rendered, "\n")
		last := len(lines) - 1
		lines[last] = accent + " " + lines[last] + " " + secondary
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Sit quietly. Answer honestly."),
			"",
			theme.Hint.Render("What shall we call you?"),
			w.input.View(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
