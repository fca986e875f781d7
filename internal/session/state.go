package session

import (
	"errors"
	"time"

	"github.com/abhisek/zenquiz/internal/catalog"
)

// ScorePerCorrect is the score earned for each correct answer in a level.
const ScorePerCorrect = 10

// AttemptPhase represents the current phase of a level attempt.
type AttemptPhase int

const (
	PhaseInProgress AttemptPhase = iota // Serving questions
	PhaseFinished                       // Terminal; result is fixed
)

// String returns the phase name.
func (p AttemptPhase) String() string {
	if p == PhaseFinished {
		return "finished"
	}
	return "in-progress"
}

var (
	ErrNoQuestions     = errors.New("level has no questions")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrUnknownOption   = errors.New("option does not belong to the current question")
	ErrNotReady        = errors.New("not every question has been answered")
	ErrFinished        = errors.New("attempt already finished")
)

// Attempt tracks the runtime state of one attempt at a level, from the first
// question to the level result. An Attempt is owned by a single goroutine.
// Retrying a level requires a new Attempt.
type Attempt struct {
	// Level is the catalog entry being played.
	Level catalog.Level

	// questions is the fixed, ordered question set for the level.
	questions []catalog.Question

	// passThreshold is the minimum correct answers to pass.
	passThreshold int

	// current is the index of the displayed question.
	current int

	// history maps question index to the chosen option index.
	history History

	// phase is the current attempt phase.
	phase AttemptPhase

	// pending is the outstanding auto-advance ticket, if any.
	pending *AutoAdvance

	// generation increases whenever a ticket is issued or cancelled.
	generation uint64

	// delay is carried on every issued ticket.
	delay time.Duration

	// result is set once the attempt finishes.
	result *LevelResult
}

// NewAttempt creates an attempt positioned on the first question with an
// empty history.
func NewAttempt(level catalog.Level, questions []catalog.Question, passThreshold int) (*Attempt, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Attempt{
		Level:         level,
		questions:     questions,
		passThreshold: passThreshold,
		history:       newHistory(),
		phase:         PhaseInProgress,
		delay:         AutoAdvanceDelay,
	}, nil
}

// SetAutoAdvanceDelay changes the delay carried by tickets issued from now
// on. Non-positive values are ignored.
func (a *Attempt) SetAutoAdvanceDelay(d time.Duration) {
	if d > 0 {
		a.delay = d
	}
}

// NewAttemptFromCatalog resolves a level and its questions from the catalog.
func NewAttemptFromCatalog(c *catalog.Catalog, levelID int) (*Attempt, error) {
	level, err := c.Level(levelID)
	if err != nil {
		return nil, err
	}
	questions, err := c.QuestionsForLevel(levelID)
	if err != nil {
		return nil, err
	}
	return NewAttempt(level, questions, c.PassThreshold())
}
