// Package game composes the level catalog, the progression tracker and the
// active level attempt behind the event interface the presentation layer
// drives. A Game is owned by a single goroutine.
package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/zenquiz/internal/catalog"
	"github.com/abhisek/zenquiz/internal/session"
	"github.com/abhisek/zenquiz/internal/store"
)

// Phase is the top-level screen state of the game.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseLevelSelect
	PhasePlaying
	PhaseResult
	PhaseEnding
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseLevelSelect:
		return "level-select"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	case PhaseEnding:
		return "ending"
	default:
		return "unknown"
	}
}

var (
	ErrWrongPhase   = errors.New("event not valid in the current phase")
	ErrLevelLocked  = errors.New("level is locked")
	ErrUnknownLevel = catalog.ErrUnknownLevel
	ErrNotPassed    = errors.New("level result is not a pass")
	ErrPassed       = errors.New("level result is a pass")
)

// Options configures a Game.
type Options struct {
	Catalog *catalog.Catalog

	// Journal records attempts. Nil disables journaling.
	Journal store.EventRepo

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// AutoAdvance overrides session.AutoAdvanceDelay when positive.
	AutoAdvance time.Duration

	// NewID generates attempt ids. Defaults to random UUIDs.
	NewID func() string
}

// Game is the composing caller: it owns the user, the tracker and at most
// one attempt, and routes level results to the tracker exactly once.
type Game struct {
	cat     *catalog.Catalog
	tracker *session.Tracker
	journal store.EventRepo
	logger  *zap.Logger
	delay   time.Duration
	newID   func() string

	phase     Phase
	attempt   *session.Attempt
	attemptID string

	// best holds the highest score earned per level in this run.
	best map[int]int
}

// New creates a game in the welcome phase with a fresh user.
func New(opts Options) *Game {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Game{
		cat:     cat,
		tracker: session.NewTracker(session.NewUser(""), cat.MaxLevelID()),
		journal: opts.Journal,
		logger:  logger,
		delay:   opts.AutoAdvance,
		newID:   newID,
		phase:   PhaseWelcome,
		best:    make(map[int]int),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// User returns a copy of the user state.
func (g *Game) User() session.User {
	return g.tracker.User()
}

// Catalog returns the catalog the game plays.
func (g *Game) Catalog() *catalog.Catalog {
	return g.cat
}

// Attempt returns the active attempt, or nil outside Playing and Result.
// It is for reads only; state changes go through Game's methods.
func (g *Game) Attempt() *session.Attempt {
	return g.attempt
}

// AttemptID returns the journal id of the active attempt.
func (g *Game) AttemptID() string {
	return g.attemptID
}

// CurrentStage returns the stage name of the highest unlocked level, or
// "Complete" once every level has been passed.
func (g *Game) CurrentStage() string {
	if g.tracker.AllComplete() {
		return "Complete"
	}
	lvl, err := g.cat.Level(g.tracker.User().UnlockedLevel)
	if err != nil {
		return "Complete"
	}
	return lvl.StageName()
}

// BestScore returns the highest score earned on levelID in this run.
func (g *Game) BestScore(levelID int) (int, bool) {
	s, ok := g.best[levelID]
	return s, ok
}
