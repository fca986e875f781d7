package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/router"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/screens/history"
	"github.com/abhisek/zenquiz/internal/screens/levelselect"
	"github.com/abhisek/zenquiz/internal/screens/play"
	"github.com/abhisek/zenquiz/internal/screens/welcome"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{Game: game.New(game.Options{}), DefaultName: "Ryokan"})
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
}

func TestGameChangedReplacesScreen(t *testing.T) {
	g := game.New(game.Options{})
	m := newAppModel(Options{Game: g})

	require.NoError(t, g.StartSession("Basho"))
	m, _ = update(t, m, screen.GameChangedMsg{})
	_, ok := m.router.Active().(*levelselect.LevelSelectScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())

	require.NoError(t, g.SelectLevel(1))
	m, _ = update(t, m, screen.GameChangedMsg{})
	_, ok = m.router.Active().(*play.PlayScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsPushedScreen(t *testing.T) {
	g := game.New(game.Options{})
	require.NoError(t, g.StartSession("Basho"))
	m := newAppModel(Options{Game: g})

	m, _ = update(t, m, router.PushScreenMsg{Screen: history.New(g)})
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscOnPlayLeavesLevel(t *testing.T) {
	g := game.New(game.Options{})
	require.NoError(t, g.StartSession("Basho"))
	require.NoError(t, g.SelectLevel(1))
	m := newAppModel(Options{Game: g})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, game.PhaseLevelSelect, g.Phase())

	m, _ = update(t, m, cmd())
	_, ok := m.router.Active().(*levelselect.LevelSelectScreen)
	assert.True(t, ok)
}

func TestViewHeaderShowsPlayer(t *testing.T) {
	g := game.New(game.Options{})
	m := newAppModel(Options{Game: g})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.NotContains(t, m.render(), "merit")

	require.NoError(t, g.StartSession("Basho"))
	m, _ = update(t, m, screen.GameChangedMsg{})
	content := m.render()
	assert.Contains(t, content, "Basho")
	assert.Contains(t, content, "0 merit")
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Game: game.New(game.Options{})})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}
