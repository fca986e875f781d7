package session

// Reveal describes how an option should be shown for the current question.
type Reveal int

const (
	RevealUnanswered        Reveal = iota // Question not answered yet; option selectable
	RevealSelectedCorrect                 // Chosen and correct
	RevealSelectedWrong                   // Chosen and wrong
	RevealCorrectUnselected               // Correct but not chosen
	RevealInert                           // Wrong and not chosen
)

// String returns the reveal state name.
func (r Reveal) String() string {
	switch r {
	case RevealSelectedCorrect:
		return "selected-correct"
	case RevealSelectedWrong:
		return "selected-wrong"
	case RevealCorrectUnselected:
		return "correct-unselected"
	case RevealInert:
		return "inert"
	default:
		return "unanswered"
	}
}

// RevealOption returns the reveal state of option i of the current question.
// An index outside the question's options is always inert.
func (a *Attempt) RevealOption(i int) Reveal {
	options := a.questions[a.current].Options
	if i < 0 || i >= len(options) {
		return RevealInert
	}
	chosen, answered := a.history.Get(a.current)
	if !answered {
		return RevealUnanswered
	}
	opt := options[i]
	switch {
	case i == chosen && opt.Correct:
		return RevealSelectedCorrect
	case i == chosen:
		return RevealSelectedWrong
	case opt.Correct:
		return RevealCorrectUnselected
	default:
		return RevealInert
	}
}

// RevealAll returns reveal states for every option of the current question.
func (a *Attempt) RevealAll() []Reveal {
	opts := a.questions[a.current].Options
	out := make([]Reveal, len(opts))
	for i := range opts {
		out[i] = a.RevealOption(i)
	}
	return out
}
