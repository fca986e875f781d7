package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/screen"
	"github.com/abhisek/zenquiz/internal/session"
)

func newTestWelcome(name string) (*WelcomeScreen, *game.Game) {
	g := game.New(game.Options{})
	return New(g, name), g
}

func sendTicks(w *WelcomeScreen, n int) {
	var s screen.Screen = w
	for i := 0; i < n; i++ {
		s, _ = s.Update(tickMsg(time.Now()))
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome("")

	view := w.View(100, 30)
	if strings.Contains(view, "Answer honestly") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	sendTicks(w, 10)
	if w.elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1500ms, got %v", w.elapsed)
	}

	view = w.View(100, 30)
	if !strings.Contains(view, "Answer honestly") {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestElapsedCapped(t *testing.T) {
	w, g := newTestWelcome("")

	sendTicks(w, 45)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if g.Phase() != game.PhaseWelcome {
		t.Error("ticks alone must not start the session")
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	w, g := newTestWelcome("Ryokan")
	sendTicks(w, 3)

	_, cmd := w.Update(enter())
	if cmd != nil {
		t.Error("first keypress should only skip the animation")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed %v after skip, got %v", totalDur, w.elapsed)
	}
	if g.Phase() != game.PhaseWelcome {
		t.Error("skipping must not start the session")
	}
}

func TestEnterStartsSession(t *testing.T) {
	w, g := newTestWelcome("Ryokan")
	sendTicks(w, 25)

	_, cmd := w.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(screen.GameChangedMsg); !ok {
		t.Fatalf("expected GameChangedMsg, got %T", cmd())
	}
	if g.Phase() != game.PhaseLevelSelect {
		t.Errorf("phase = %s, want level-select", g.Phase())
	}
	if g.User().Name != "Ryokan" {
		t.Errorf("name = %q, want Ryokan", g.User().Name)
	}
}

func TestBlankNameUsesDefault(t *testing.T) {
	w, g := newTestWelcome("   ")
	sendTicks(w, 25)
	w.Update(enter())

	if g.User().Name != session.DefaultUserName {
		t.Errorf("name = %q, want %q", g.User().Name, session.DefaultUserName)
	}
}

func TestTypingEditsName(t *testing.T) {
	w, g := newTestWelcome("Bash")
	sendTicks(w, 25)

	w.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	w.Update(enter())

	if g.User().Name != "Basho" {
		t.Errorf("name = %q, want Basho", g.User().Name)
	}
}

func TestEnterOnlyOnce(t *testing.T) {
	w, _ := newTestWelcome("")
	sendTicks(w, 25)

	w.Update(enter())
	_, cmd := w.Update(enter())
	if cmd != nil {
		t.Error("second enter should not produce a command")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome("")
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
