package play

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/session"
	"github.com/abhisek/zenquiz/internal/ui/components"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

// autoAdvanceMsg delivers an expired auto-advance ticket.
type autoAdvanceMsg struct {
	Ticket session.AutoAdvance
}

// PlayScreen runs one level attempt.
type PlayScreen struct {
	game    *game.Game
	choices components.MultiChoice
	// index is the question the cursor belongs to.
	index  int
	notice string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the game's active attempt.
func New(g *game.Game) *PlayScreen {
	s := &PlayScreen{game: g, index: -1}
	s.sync()
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	q := s.question()
	if q == nil {
		return ""
	}
	return q.LevelTitle
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	q := s.question()
	if q != nil && !q.Answered {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Move"},
			{Key: "Esc", Description: "Leave level"},
		}
	}
	next := "Next"
	if q != nil && q.IsLast {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "←", Description: "Back"},
		{Key: "→", Description: next},
		{Key: "Esc", Description: "Leave level"},
	}
}

func (s *PlayScreen) question() *game.QuestionView {
	return s.game.Snapshot().Question
}

// sync rebuilds the option list from the game. The cursor is kept while
// the question is unchanged.
func (s *PlayScreen) sync() {
	q := s.question()
	if q == nil {
		return
	}
	cursor := 0
	if q.Number-1 == s.index {
		cursor = s.choices.Cursor
	}
	opts := make([]components.ChoiceOption, len(q.Options))
	for i, o := range q.Options {
		opts[i] = components.ChoiceOption{Label: o.Label, Text: o.Text, Reveal: o.Reveal}
	}
	s.choices = components.MultiChoice{Options: opts, Cursor: cursor}
	s.index = q.Number - 1
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if !s.game.FireAutoAdvance(msg.Ticket) {
			return s, nil
		}
		return s, s.after()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""
	key := msg.String()
	switch key {
	case "up", "k":
		s.choices.Move(-1)
	case "down", "j":
		s.choices.Move(1)
	case "enter", "space":
		if s.choices.Locked() {
			return s, s.next()
		}
		return s, s.submit(s.choices.Cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return s, s.submit(int(key[0] - '1'))
	case "left", "h":
		if err := s.game.GoPrev(); err == nil {
			s.sync()
		}
	case "right", "l", "n":
		return s, s.next()
	case "esc":
		if err := s.game.ExitLevel(); err != nil {
			return s, nil
		}
		return s, screen.GameChanged()
	}
	return s, nil
}

func (s *PlayScreen) submit(option int) tea.Cmd {
	ticket, err := s.game.SubmitAnswer(option)
	if err != nil {
		return nil
	}
	s.sync()
	if ticket == nil {
		return nil
	}
	t := *ticket
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Ticket: t}
	})
}

func (s *PlayScreen) next() tea.Cmd {
	err := s.game.GoNext()
	if errors.Is(err, session.ErrNotReady) {
		s.notice = "Answer every question before finishing."
		return nil
	}
	if err != nil {
		return nil
	}
	return s.after()
}

// after refreshes the view once the game moved, handing off to the app
// when the attempt is over.
func (s *PlayScreen) after() tea.Cmd {
	if s.game.Phase() != game.PhasePlaying {
		return screen.GameChanged()
	}
	s.sync()
	return nil
}

func (s *PlayScreen) View(width, height int) string {
	q := s.question()
	if q == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var sections []string

	label := q.Subtitle
	if layout.IsCompactWidth(width) {
		label = ""
	}
	bar := components.NewProgressBar(label, q.AnsweredCount, q.Total, cw)
	sections = append(sections, bar.View(), "")

	prompt := theme.Hint.Render("Question "+q.Progress()) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-6).Render(q.Prompt)
	sections = append(sections, components.Card(prompt, cw, nil), "")

	sections = append(sections, strings.TrimRight(s.choices.View(cw), "\n"))

	if q.Answered {
		sections = append(sections, "", s.renderFeedback(q, cw))
	}
	if !q.CanStillPass {
		sections = append(sections, theme.Hint.Render("This attempt can no longer pass. Finish it, or leave and begin again."))
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return components.Center(content, width, height)
}

func (s *PlayScreen) renderFeedback(q *game.QuestionView, cw int) string {
	var b strings.Builder
	border := theme.Error
	if q.AnsweredCorrect {
		border = theme.Success
		b.WriteString(theme.Correct.Render("✓ Correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite"))
	}
	if q.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(q.Feedback))
	}
	if q.MultiAnswerNote {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("More than one answer was right here."))
	}
	switch {
	case q.AutoAdvancing:
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Moving on..."))
	case q.IsLast && q.CanFinish:
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("All %d answered. Press → to finish.", q.Total)))
	}
	return components.Card(b.String(), cw, border)
}
