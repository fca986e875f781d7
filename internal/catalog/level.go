package catalog

import "strings"

// DefaultPassThreshold is the number of correct answers needed to pass a
// level when the catalog does not set one.
const DefaultPassThreshold = 5

// Option is one selectable answer to a question.
type Option struct {
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// Question is a single multiple-choice prompt.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`

	// MaxCorrect marks questions with more than one acceptable answer.
	// Only feedback copy depends on it; scoring does not.
	MaxCorrect int `json:"max_correct,omitempty"`
}

// MultipleCorrect reports whether more than one option is acceptable.
func (q Question) MultipleCorrect() bool {
	return q.MaxCorrect > 1
}

// CorrectOptions returns the number of options flagged correct.
func (q Question) CorrectOptions() int {
	n := 0
	for _, o := range q.Options {
		if o.Correct {
			n++
		}
	}
	return n
}

// Level is the immutable descriptor of one stage. IDs are 1-based and define
// the play order.
type Level struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// StageName returns the part of the title after the "Level N:" prefix.
func (l Level) StageName() string {
	if _, name, ok := strings.Cut(l.Title, ":"); ok {
		return strings.TrimSpace(name)
	}
	return l.Title
}
