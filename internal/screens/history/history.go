package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/router"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/store"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

const attemptLimit = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    []store.LevelStats
	Err      error
}

type answersLoadedMsg struct {
	AttemptID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen displays this run's finished attempts and per-level totals.
type HistoryScreen struct {
	game     *game.Game
	attempts []store.AttemptRecord
	stats    []store.LevelStats
	answers  map[string][]store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(g *game.Game) *HistoryScreen {
	return &HistoryScreen{
		game:     g,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	g := s.game
	return func() tea.Msg {
		attempts, stats, err := g.History(context.Background(), attemptLimit)
		return historyLoadedMsg{Attempts: attempts, Stats: stats, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Journal"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.AttemptID] = msg.Answers
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.attempts) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.attempts[s.selected].AttemptID
			if _, ok := s.answers[id]; ok || !s.expanded[s.selected] {
				return s, nil
			}
			return s, s.loadAnswers(id)
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadAnswers(attemptID string) tea.Cmd {
	g := s.game
	return func() tea.Msg {
		answers, err := g.AttemptAnswers(context.Background(), attemptID)
		return answersLoadedMsg{AttemptID: attemptID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Opening the journal...")
	}
	if len(s.attempts) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The journal is empty. Finish a level to begin it.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, st := range s.stats {
		line := fmt.Sprintf("Level %d   %d attempts   %d passed   best %d", st.LevelID, st.Attempts, st.Passes, st.BestScore)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := "✗"
		if a.Passed {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%s  %s %s  %d/%d correct  +%d",
			prefix, a.Timestamp.Format("15:04:05"), mark, a.LevelTitle, a.Correct, a.Total, a.ScoreEarned)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, ans := range s.answers[a.AttemptID] {
				style := theme.Correct
				if !ans.Correct {
					style = theme.Incorrect
				}
				detail := fmt.Sprintf("    Q%d  chose %c", ans.QuestionIndex+1, 'A'+ans.OptionIndex)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
