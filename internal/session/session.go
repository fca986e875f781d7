package session

import (
	"fmt"

	"github.com/abhisek/zenquiz/internal/catalog"
)

// SubmitAnswer records optionIndex as the answer to the current question.
// Answers are write-once: a second submission for the same question returns
// ErrAlreadyAnswered and leaves the history unchanged. A correct answer
// returns an auto-advance ticket the caller should fire after its Delay.
func (a *Attempt) SubmitAnswer(optionIndex int) (*AutoAdvance, error) {
	if a.phase != PhaseInProgress {
		return nil, ErrFinished
	}
	q := a.questions[a.current]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrUnknownOption, optionIndex, len(q.Options))
	}
	if !a.history.record(a.current, optionIndex) {
		return nil, ErrAlreadyAnswered
	}

	if !q.Options[optionIndex].Correct {
		return nil, nil
	}
	t := a.issueAutoAdvance(a.delay)
	return &t, nil
}

// GoNext moves to the next question. On the last question it finishes the
// attempt, but only when every question has an answer; otherwise it returns
// ErrNotReady and the index is unchanged. Any pending auto-advance is
// cancelled.
func (a *Attempt) GoNext() error {
	if a.phase != PhaseInProgress {
		return ErrFinished
	}
	a.CancelAutoAdvance()

	if !a.IsLast() {
		a.current++
		return nil
	}
	if !a.CanFinish() {
		return ErrNotReady
	}
	a.finish()
	return nil
}

// GoPrev moves to the previous question. No-op on the first question.
// Any pending auto-advance is cancelled.
func (a *Attempt) GoPrev() {
	if a.phase != PhaseInProgress {
		return
	}
	a.CancelAutoAdvance()
	if a.current > 0 {
		a.current--
	}
}

// Finish ends the attempt and returns its result. It returns ErrNotReady
// while any question is unanswered. Calling Finish again returns the same
// result.
func (a *Attempt) Finish() (LevelResult, error) {
	if a.result != nil {
		return *a.result, nil
	}
	if !a.CanFinish() {
		return LevelResult{}, ErrNotReady
	}
	a.finish()
	return *a.result, nil
}

// finish moves to the terminal phase and fixes the result.
func (a *Attempt) finish() {
	a.pending = nil
	a.phase = PhaseFinished
	r := BuildResult(a)
	a.result = &r
}

// Phase returns the attempt phase.
func (a *Attempt) Phase() AttemptPhase {
	return a.phase
}

// Finished reports whether the attempt reached its terminal phase.
func (a *Attempt) Finished() bool {
	return a.phase == PhaseFinished
}

// Result returns the level result once the attempt has finished.
func (a *Attempt) Result() (LevelResult, bool) {
	if a.result == nil {
		return LevelResult{}, false
	}
	return *a.result, true
}

// CurrentIndex returns the 0-based index of the displayed question.
func (a *Attempt) CurrentIndex() int {
	return a.current
}

// Total returns the number of questions in the level.
func (a *Attempt) Total() int {
	return len(a.questions)
}

// PassThreshold returns the minimum correct answers needed to pass.
func (a *Attempt) PassThreshold() int {
	return a.passThreshold
}

// CurrentQuestion returns the displayed question.
func (a *Attempt) CurrentQuestion() catalog.Question {
	return a.questions[a.current]
}

// IsFirst reports whether the first question is displayed.
func (a *Attempt) IsFirst() bool {
	return a.current == 0
}

// IsLast reports whether the last question is displayed.
func (a *Attempt) IsLast() bool {
	return a.current == len(a.questions)-1
}

// IsCurrentAnswered reports whether the displayed question has an answer.
func (a *Attempt) IsCurrentAnswered() bool {
	return a.history.Has(a.current)
}

// CurrentAnswer returns the option chosen for the displayed question.
func (a *Attempt) CurrentAnswer() (catalog.Option, bool) {
	return a.Answer(a.current)
}

// Answer returns the option chosen for question index i.
func (a *Attempt) Answer(i int) (catalog.Option, bool) {
	opt, ok := a.history.Get(i)
	if !ok {
		return catalog.Option{}, false
	}
	return a.questions[i].Options[opt], true
}

// AnsweredCount returns how many questions have an answer.
func (a *Attempt) AnsweredCount() int {
	return a.history.Len()
}

// CanFinish reports whether every question has an answer.
func (a *Attempt) CanFinish() bool {
	return a.history.Len() == len(a.questions)
}

// CorrectCount returns the number of correct answers recorded.
func (a *Attempt) CorrectCount() int {
	n := 0
	for i := range a.questions {
		if opt, ok := a.Answer(i); ok && opt.Correct {
			n++
		}
	}
	return n
}

// WrongCount returns the number of wrong answers recorded.
func (a *Attempt) WrongCount() int {
	return a.history.Len() - a.CorrectCount()
}

// CanStillPass reports whether no wrong answer has been recorded yet. It is a
// live "still perfect" flag, not the final pass decision.
func (a *Attempt) CanStillPass() bool {
	return a.WrongCount() == 0
}
