package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/router"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/screens/ending"
	"github.com/abhisek/zenquiz/internal/screens/levelselect"
	"github.com/abhisek/zenquiz/internal/screens/play"
	"github.com/abhisek/zenquiz/internal/screens/result"
	"github.com/abhisek/zenquiz/internal/screens/welcome"
	"github.com/abhisek/zenquiz/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Game        *game.Game
	DefaultName string
	Logger      *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	game        *game.Game
	router      *router.Router
	defaultName string
	logger      *zap.Logger
	width       int
	height      int
}

// newAppModel creates a new AppModel showing the screen for the game's phase.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := AppModel{
		game:        opts.Game,
		defaultName: opts.DefaultName,
		logger:      logger,
	}
	m.router = router.New(m.screenFor(opts.Game.Phase()))
	return m
}

// screenFor returns a fresh screen for phase p.
func (m AppModel) screenFor(p game.Phase) screen.Screen {
	switch p {
	case game.PhaseLevelSelect:
		return levelselect.New(m.game)
	case game.PhasePlaying:
		return play.New(m.game)
	case game.PhaseResult:
		return result.New(m.game)
	case game.PhaseEnding:
		return ending.New(m.game)
	default:
		return welcome.New(m.game, m.defaultName)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.GameChangedMsg:
		p := m.game.Phase()
		m.logger.Debug("phase changed", zap.Stringer("phase", p))
		return m, m.router.Replace(m.screenFor(p))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	name, score := "", 0
	if m.game.Phase() != game.PhaseWelcome {
		u := m.game.User()
		name, score = u.Name, u.TotalScore
	}
	header := layout.RenderHeader(title, name, score, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
