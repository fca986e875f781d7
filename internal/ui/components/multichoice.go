package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/session"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

// ChoiceOption is one rendered answer option.
type ChoiceOption struct {
	Label  string
	Text   string
	Reveal session.Reveal
}

// MultiChoice renders the options of a question. Before an answer is
// recorded the cursor picks an option; afterwards every option shows its
// reveal state.
type MultiChoice struct {
	Options []ChoiceOption
	Cursor  int
}

// Locked reports whether the question has been answered.
func (m MultiChoice) Locked() bool {
	for _, o := range m.Options {
		if o.Reveal != session.RevealUnanswered {
			return true
		}
	}
	return false
}

// Move shifts the cursor by delta, clamped to the option range.
func (m *MultiChoice) Move(delta int) {
	if m.Locked() || len(m.Options) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Options)-1)
}

// View renders the option list wrapped at width.
func (m MultiChoice) View(width int) string {
	locked := m.Locked()
	textWidth := max(width-8, 10)

	var b strings.Builder
	for i, opt := range m.Options {
		marker, style := optionStyle(opt.Reveal)
		prefix := "  "
		if !locked && i == m.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}

		text := lipgloss.NewStyle().Width(textWidth).Render(opt.Text)
		lines := strings.Split(text, "\n")
		for j, l := range lines {
			if j == 0 {
				lines[j] = fmt.Sprintf("%s%s %s  %s", prefix, opt.Label, marker, l)
			} else {
				lines[j] = "       " + l
			}
		}
		b.WriteString(style.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func optionStyle(r session.Reveal) (string, lipgloss.Style) {
	switch r {
	case session.RevealSelectedCorrect:
		return "✓", theme.Correct
	case session.RevealSelectedWrong:
		return "✗", theme.Incorrect
	case session.RevealCorrectUnselected:
		return "○", theme.CorrectHint
	case session.RevealInert:
		return " ", theme.Inert
	default:
		return "·", theme.Unselected
	}
}
