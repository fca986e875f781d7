package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/zenquiz/internal/session"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "open"},
		{Label: "locked too", Disabled: true},
		{Label: "last"},
	})
	assert.Equal(t, 1, m.Selected, "starts on the first enabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected, "stays on the last enabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m.Select(0)
	assert.Equal(t, 1, m.Selected, "disabled items cannot be selected")
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, ran)
}

func TestMenu_ViewShowsBadgeAndDetail(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Level 1", Detail: "first steps", Badge: "open"}})
	view := m.View(40)
	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, "first steps")
	assert.Contains(t, view, "open")
}

func TestMultiChoice_CursorLocksAfterAnswer(t *testing.T) {
	mc := MultiChoice{Options: []ChoiceOption{
		{Label: "A", Text: "one"},
		{Label: "B", Text: "two"},
		{Label: "C", Text: "three"},
	}}
	assert.False(t, mc.Locked())

	mc.Move(1)
	mc.Move(5)
	assert.Equal(t, 2, mc.Cursor, "clamped to the last option")
	mc.Move(-10)
	assert.Equal(t, 0, mc.Cursor)

	mc.Options[1].Reveal = session.RevealSelectedCorrect
	assert.True(t, mc.Locked())
	mc.Move(1)
	assert.Equal(t, 0, mc.Cursor, "answered questions ignore cursor moves")
}

func TestMultiChoice_ViewMarksReveal(t *testing.T) {
	mc := MultiChoice{Options: []ChoiceOption{
		{Label: "A", Text: "right", Reveal: session.RevealCorrectUnselected},
		{Label: "B", Text: "chosen", Reveal: session.RevealSelectedWrong},
		{Label: "C", Text: "other", Reveal: session.RevealInert},
	}}
	view := mc.View(60)
	assert.Contains(t, view, "✗")
	assert.Contains(t, view, "○")
	assert.NotContains(t, view, "▸", "no cursor once answered")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("", 2, 5, 40)
	assert.InDelta(t, 0.4, p.Percent(), 1e-9)
	assert.Contains(t, p.View(), "2 / 5")

	assert.Zero(t, NewProgressBar("", 1, 0, 40).Percent())
	assert.Equal(t, 1.0, NewProgressBar("", 9, 5, 40).Percent())
}

func TestCard(t *testing.T) {
	card := Card("hello", 30, nil)
	lines := strings.Split(card, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, card, "hello")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 72, ContentWidth(200))
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
}
