package session

// History records the option chosen for each answered question index.
// Entries are write-once: an answered index is never overwritten or removed.
type History struct {
	answers map[int]int
}

func newHistory() History {
	return History{answers: make(map[int]int)}
}

// Get returns the option index recorded for question index i.
func (h History) Get(i int) (int, bool) {
	opt, ok := h.answers[i]
	return opt, ok
}

// Has reports whether question index i has been answered.
func (h History) Has(i int) bool {
	_, ok := h.answers[i]
	return ok
}

// Len returns the number of answered questions.
func (h History) Len() int {
	return len(h.answers)
}

// record stores opt under index i. Returns false without changing anything
// if i already has an answer.
func (h *History) record(i, opt int) bool {
	if _, exists := h.answers[i]; exists {
		return false
	}
	h.answers[i] = opt
	return true
}
