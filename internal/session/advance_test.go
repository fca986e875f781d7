package session

import (
	"testing"
	"time"
)

func TestFireAutoAdvance_MovesToNext(t *testing.T) {
	a := testAttempt(t)
	ticket, _ := a.SubmitAnswer(0)

	if !a.FireAutoAdvance(*ticket) {
		t.Fatal("expected ticket to advance")
	}
	if a.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", a.CurrentIndex())
	}
	if _, ok := a.PendingAutoAdvance(); ok {
		t.Error("expected no pending ticket after firing")
	}
}

func TestFireAutoAdvance_FiresOnce(t *testing.T) {
	a := testAttempt(t)
	ticket, _ := a.SubmitAnswer(0)

	a.FireAutoAdvance(*ticket)
	if a.FireAutoAdvance(*ticket) {
		t.Error("ticket fired twice")
	}
	if a.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", a.CurrentIndex())
	}
}

func TestFireAutoAdvance_StaleAfterManualNavigation(t *testing.T) {
	tests := []struct {
		name string
		nav  func(a *Attempt)
		want int
	}{
		{"next", func(a *Attempt) { _ = a.GoNext() }, 2},
		{"prev", func(a *Attempt) { a.GoPrev() }, 0},
		{"cancel", func(a *Attempt) { a.CancelAutoAdvance() }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAttempt(t)
			_ = a.GoNext() // start on question 1 so prev has somewhere to go
			ticket, _ := a.SubmitAnswer(0)

			tt.nav(a)
			if a.FireAutoAdvance(*ticket) {
				t.Error("stale ticket should be ignored")
			}
			if a.CurrentIndex() != tt.want {
				t.Errorf("CurrentIndex = %d, want %d", a.CurrentIndex(), tt.want)
			}
		})
	}
}

func TestFireAutoAdvance_StaleAfterReturningToSameQuestion(t *testing.T) {
	a := testAttempt(t)
	ticket, _ := a.SubmitAnswer(0)

	// Leave and come back: index matches again but the generation does not.
	_ = a.GoNext()
	a.GoPrev()

	if a.FireAutoAdvance(*ticket) {
		t.Error("ticket from before navigation should be stale")
	}
	if a.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", a.CurrentIndex())
	}
}

func TestFireAutoAdvance_LastQuestionFinishesWhenComplete(t *testing.T) {
	a := testAttempt(t)
	for i := 0; i < 4; i++ {
		_, _ = a.SubmitAnswer(0)
		_ = a.GoNext()
	}
	ticket, _ := a.SubmitAnswer(0)

	if !a.FireAutoAdvance(*ticket) {
		t.Fatal("expected last ticket to finish the attempt")
	}
	if !a.Finished() {
		t.Error("expected finished")
	}
	r, ok := a.Result()
	if !ok || !r.Passed || r.ScoreEarned != 50 {
		t.Errorf("Result = %+v, %v; want passed with 50", r, ok)
	}
}

func TestFireAutoAdvance_LastQuestionIncompleteIsNoop(t *testing.T) {
	a := testAttempt(t)
	for !a.IsLast() {
		_ = a.GoNext()
	}
	ticket, _ := a.SubmitAnswer(0)

	if a.FireAutoAdvance(*ticket) {
		t.Error("expected no-op with unanswered questions left")
	}
	if a.Finished() {
		t.Error("attempt must not finish with an incomplete history")
	}
	if a.CurrentIndex() != a.Total()-1 {
		t.Errorf("CurrentIndex = %d, want last", a.CurrentIndex())
	}
}

func TestFireAutoAdvance_ForeignTicket(t *testing.T) {
	a := testAttempt(t)
	_, _ = a.SubmitAnswer(0)

	if a.FireAutoAdvance(AutoAdvance{Index: 0, Generation: 999}) {
		t.Error("ticket never issued by this attempt should be ignored")
	}
}

func TestSetAutoAdvanceDelay(t *testing.T) {
	a := testAttempt(t)
	a.SetAutoAdvanceDelay(0)
	a.SetAutoAdvanceDelay(200 * time.Millisecond)

	ticket, _ := a.SubmitAnswer(0)
	if ticket.Delay != 200*time.Millisecond {
		t.Errorf("Delay = %v, want 200ms", ticket.Delay)
	}
}
