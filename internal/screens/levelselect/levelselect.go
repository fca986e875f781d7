package levelselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/router"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/screens/history"
	"github.com/abhisek/zenquiz/internal/ui/components"
	"github.com/abhisek/zenquiz/internal/ui/layout"
	"github.com/abhisek/zenquiz/internal/ui/theme"
)

// LevelSelectScreen lists every level with its status. Locked levels are
// shown but cannot be entered.
type LevelSelectScreen struct {
	game   *game.Game
	menu   components.Menu
	cards  []game.LevelCard
	errMsg string
}

var _ screen.Screen = (*LevelSelectScreen)(nil)
var _ screen.KeyHintProvider = (*LevelSelectScreen)(nil)

// New creates a LevelSelectScreen for g.
func New(g *game.Game) *LevelSelectScreen {
	s := &LevelSelectScreen{game: g}
	s.cards = g.Snapshot().Levels

	items := make([]components.MenuItem, 0, len(s.cards)+2)
	current := 0
	for i, c := range s.cards {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:    c.Title,
			Detail:   c.Subtitle,
			Badge:    badge(c),
			Disabled: !c.Selectable(),
			Action:   func() tea.Cmd { return s.enter(id) },
		})
		if c.Status == game.CardCurrent {
			current = i
		}
	}
	items = append(items,
		components.MenuItem{Label: "Journal", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(g)}
			}
		}},
		components.MenuItem{Label: "Leave", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	s.menu = components.NewMenu(items)
	s.menu.Select(current)
	return s
}

func badge(c game.LevelCard) string {
	switch c.Status {
	case game.CardPassed:
		return fmt.Sprintf("✓ passed · best %d", c.BestScore)
	case game.CardCurrent:
		if c.Played {
			return fmt.Sprintf("◐ best %d", c.BestScore)
		}
		return "◐ open"
	default:
		return "🔒 locked"
	}
}

func (s *LevelSelectScreen) enter(levelID int) tea.Cmd {
	if err := s.game.SelectLevel(levelID); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return screen.GameChanged()
}

func (s *LevelSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelSelectScreen) Title() string {
	return "Choose a Level"
}

func (s *LevelSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Begin"},
		{Key: "H", Description: "Journal"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LevelSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		s.errMsg = ""
		switch kmsg.String() {
		case "h":
			g := s.game
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(g)}
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			i := int(kmsg.String()[0] - '1')
			if i < len(s.cards) {
				s.menu.Select(i)
				if s.menu.Selected == i {
					return s, s.enter(s.cards[i].ID)
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LevelSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.game.Snapshot()

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render("Path of Practice"),
		theme.Subtitle.Width(cw).Render(fmt.Sprintf("Stage: %s  ·  %d merit", snap.Stage, snap.User.TotalScore)),
	)

	menu := s.menu
	if layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		menu.Items = make([]components.MenuItem, len(s.menu.Items))
		for i, item := range s.menu.Items {
			item.Detail = ""
			menu.Items[i] = item
		}
	}
	sections = append(sections, components.Card(strings.TrimRight(menu.View(cw-6), "\n"), cw, nil))

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Center(content, width, height)
}
