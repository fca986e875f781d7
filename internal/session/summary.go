package session

// LevelResult holds the outcome of a finished attempt.
type LevelResult struct {
	LevelID       int
	LevelTitle    string
	Total         int
	Correct       int
	Wrong         int
	PassThreshold int
	Passed        bool
	ScoreEarned   int
}

// BuildResult computes the result from the attempt's answer history alone.
func BuildResult(a *Attempt) LevelResult {
	correct := a.CorrectCount()
	return LevelResult{
		LevelID:       a.Level.ID,
		LevelTitle:    a.Level.Title,
		Total:         a.Total(),
		Correct:       correct,
		Wrong:         a.WrongCount(),
		PassThreshold: a.passThreshold,
		Passed:        correct >= a.passThreshold,
		ScoreEarned:   correct * ScorePerCorrect,
	}
}

// Accuracy returns the fraction of questions answered correctly.
func (r LevelResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}
