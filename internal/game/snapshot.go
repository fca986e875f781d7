package game

import (
	"fmt"

	"github.com/abhisek/zenquiz/internal/session"
)

// CardStatus is the badge shown on a level card.
type CardStatus int

const (
	CardLocked CardStatus = iota
	CardCurrent
	CardPassed
)

// String returns the status name.
func (s CardStatus) String() string {
	switch s {
	case CardCurrent:
		return "current"
	case CardPassed:
		return "passed"
	default:
		return "locked"
	}
}

// Snapshot is everything the presentation layer needs to render a phase.
type Snapshot struct {
	Phase    Phase
	User     session.User
	Stage    string
	Levels   []LevelCard
	Question *QuestionView // set in PhasePlaying
	Result   *ResultView   // set in PhaseResult
}

// LevelCard describes one level on the level-select screen.
type LevelCard struct {
	ID          int
	Title       string
	Subtitle    string
	Description string
	Status      CardStatus
	BestScore   int
	Played      bool
}

// Selectable reports whether the card can be entered.
func (c LevelCard) Selectable() bool {
	return c.Status != CardLocked
}

// OptionView is one option with its reveal state.
type OptionView struct {
	Label  string // A, B, C...
	Text   string
	Reveal session.Reveal
}

// QuestionView describes the question on screen.
type QuestionView struct {
	LevelID    int
	LevelTitle string
	Subtitle   string
	Number     int // 1-based
	Total      int
	Prompt     string
	Options    []OptionView

	Answered        bool
	AnsweredCorrect bool
	Feedback        string
	// MultiAnswerNote is set when a correct answer was one of several.
	MultiAnswerNote bool

	AnsweredCount int
	CanStillPass  bool
	IsFirst       bool
	IsLast        bool
	CanFinish     bool

	// AutoAdvancing is set while an auto-advance ticket is outstanding.
	AutoAdvancing bool
}

// Progress returns the "n/total" counter.
func (q QuestionView) Progress() string {
	return fmt.Sprintf("%d/%d", q.Number, q.Total)
}

// ResultView describes a finished attempt.
type ResultView struct {
	session.LevelResult
	IsFinalLevel  bool
	Heading       string
	Message       string
	ContinueLabel string
	Marks         []bool // one per question, true when answered correctly
}

// Snapshot returns the current presentation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  g.phase,
		User:   g.tracker.User(),
		Stage:  g.CurrentStage(),
		Levels: g.levelCards(),
	}
	switch g.phase {
	case PhasePlaying:
		q := g.questionView()
		s.Question = &q
	case PhaseResult:
		if r, ok := g.attempt.Result(); ok {
			v := g.resultView(r)
			s.Result = &v
		}
	}
	return s
}

func (g *Game) levelCards() []LevelCard {
	levels := g.cat.Levels()
	cards := make([]LevelCard, len(levels))
	for i, l := range levels {
		status := CardLocked
		switch {
		case g.tracker.IsPassed(l.ID):
			status = CardPassed
		case g.tracker.IsUnlocked(l.ID):
			status = CardCurrent
		}
		best, played := g.best[l.ID]
		cards[i] = LevelCard{
			ID:          l.ID,
			Title:       l.Title,
			Subtitle:    l.Subtitle,
			Description: l.Description,
			Status:      status,
			BestScore:   best,
			Played:      played,
		}
	}
	return cards
}

func (g *Game) questionView() QuestionView {
	a := g.attempt
	q := a.CurrentQuestion()
	reveals := a.RevealAll()

	opts := make([]OptionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = OptionView{
			Label:  string(rune('A' + i)),
			Text:   o.Text,
			Reveal: reveals[i],
		}
	}

	v := QuestionView{
		LevelID:       a.Level.ID,
		LevelTitle:    a.Level.Title,
		Subtitle:      a.Level.Subtitle,
		Number:        a.CurrentIndex() + 1,
		Total:         a.Total(),
		Prompt:        q.Prompt,
		Options:       opts,
		AnsweredCount: a.AnsweredCount(),
		CanStillPass:  a.CanStillPass(),
		IsFirst:       a.IsFirst(),
		IsLast:        a.IsLast(),
		CanFinish:     a.CanFinish(),
	}
	if chosen, ok := a.CurrentAnswer(); ok {
		v.Answered = true
		v.AnsweredCorrect = chosen.Correct
		v.Feedback = chosen.Feedback
		v.MultiAnswerNote = chosen.Correct && q.MultipleCorrect()
	}
	_, v.AutoAdvancing = a.PendingAutoAdvance()
	return v
}

func (g *Game) resultView(r session.LevelResult) ResultView {
	v := ResultView{
		LevelResult:  r,
		IsFinalLevel: r.LevelID == g.cat.MaxLevelID(),
	}
	for i := 0; i < g.attempt.Total(); i++ {
		opt, _ := g.attempt.Answer(i)
		v.Marks = append(v.Marks, opt.Correct)
	}
	if r.Passed {
		v.Heading = "Level complete"
		v.Message = fmt.Sprintf("Well done. In %q your answers were clear as a mirror, untouched by dust.", r.LevelTitle)
		v.ContinueLabel = "Next level"
		if v.IsFinalLevel {
			v.ContinueLabel = "Enter stillness"
		}
	} else {
		v.Heading = "Practice unfinished"
		v.Message = fmt.Sprintf("Passing needs %d correct answers. A restless mind finds no wisdom; begin again.", r.PassThreshold)
		v.ContinueLabel = "Try again"
	}
	return v
}
