package session

import "time"

// AutoAdvanceDelay is how long a correct answer stays on screen before the
// attempt moves on by itself.
const AutoAdvanceDelay = 1500 * time.Millisecond

// AutoAdvance is a ticket for one scheduled advance after a correct answer.
// The caller owns the timer; the attempt only honours the ticket if nothing
// has happened since it was issued.
type AutoAdvance struct {
	Index      int
	Generation uint64
	Delay      time.Duration
}

// PendingAutoAdvance returns the outstanding ticket, if any.
func (a *Attempt) PendingAutoAdvance() (AutoAdvance, bool) {
	if a.pending == nil {
		return AutoAdvance{}, false
	}
	return *a.pending, true
}

// CancelAutoAdvance drops any outstanding ticket. Tickets issued before the
// call become stale.
func (a *Attempt) CancelAutoAdvance() {
	a.pending = nil
	a.generation++
}

// issueAutoAdvance replaces any outstanding ticket with one for the current
// question.
func (a *Attempt) issueAutoAdvance(delay time.Duration) AutoAdvance {
	a.generation++
	t := AutoAdvance{
		Index:      a.current,
		Generation: a.generation,
		Delay:      delay,
	}
	a.pending = &t
	return t
}

// FireAutoAdvance is called when the timer for t expires. It returns true if
// the attempt moved: to the next question, or to finished when t was for the
// last question and every question is answered. Stale tickets are ignored.
func (a *Attempt) FireAutoAdvance(t AutoAdvance) bool {
	if a.pending == nil || *a.pending != t {
		return false
	}
	a.pending = nil
	if a.phase != PhaseInProgress || a.current != t.Index {
		return false
	}

	if a.IsLast() {
		if !a.CanFinish() {
			return false
		}
		a.finish()
		return true
	}
	a.current++
	return true
}
